package services

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"shopdesk/internal/models"
)

// TelegramNotifier posts new-client notifications to an ops chat.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramNotifier(botToken string, chatID int64) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("telegram bot init: %w", err)
	}
	return &TelegramNotifier{bot: bot, chatID: chatID}, nil
}

func (n *TelegramNotifier) ClientCreated(client *models.Client) error {
	name := client.FullName()
	if name == "" {
		name = fmt.Sprintf("client #%d", client.ID)
	}
	text := fmt.Sprintf("New client: %s", name)
	if len(client.Shops) > 0 && client.Shops[0].ShopName != "" {
		text += fmt.Sprintf("\nShop: %s", client.Shops[0].ShopName)
	}
	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram sendMessage: %w", err)
	}
	return nil
}
