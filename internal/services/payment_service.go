package services

import (
	"shopdesk/internal/models"
	"shopdesk/internal/repositories"
)

// PaymentService exposes the read-only payment type catalog.
type PaymentService struct {
	repo repositories.PaymentRepository
}

func NewPaymentService(repo repositories.PaymentRepository) *PaymentService {
	return &PaymentService{repo: repo}
}

func (s *PaymentService) List() ([]*models.Payment, error) {
	return s.repo.List()
}
