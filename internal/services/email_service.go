package services

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type Mailer interface {
	SendClientWelcome(email, name string) error
}

type emailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail string) Mailer {
	dialer := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword)
	return &emailService{
		dialer: dialer,
		from:   fromEmail,
	}
}

func (s *emailService) SendClientWelcome(email, name string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Welcome to ShopDesk!")

	if name == "" {
		name = "there"
	}
	body := fmt.Sprintf(`
		<h2>Hello %s!</h2>
		<p>Your client account has been created in our system.</p>
		<p>You will receive delivery reminders on your selected day.</p>
		<p>Best regards,<br>The ShopDesk Team</p>
	`, name)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}

	return nil
}
