package services

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"shopdesk/internal/models"
	"shopdesk/internal/repositories"
)

var (
	ErrClientIDRequired = errors.New("client id is required")
	ErrInvalidClientID  = errors.New("invalid client id")
	ErrClientNotFound   = errors.New("client not found")
)

// OrphanedShopError reports a client write that failed after its shop
// was already persisted. The shop row is left behind; there is no
// compensating delete.
type OrphanedShopError struct {
	ShopID int64
	Err    error
}

func (e *OrphanedShopError) Error() string {
	return fmt.Sprintf("client creation failed, shop %d orphaned: %v", e.ShopID, e.Err)
}

func (e *OrphanedShopError) Unwrap() error { return e.Err }

// Notifier is told about new clients. Delivery is best-effort.
type Notifier interface {
	ClientCreated(client *models.Client) error
}

type ClientService struct {
	clients  repositories.ClientRepository
	shops    repositories.ShopRepository
	mailer   Mailer
	notifier Notifier
}

// NewClientService wires the client flow. mailer and notifier may be nil.
func NewClientService(clients repositories.ClientRepository, shops repositories.ShopRepository, mailer Mailer, notifier Notifier) *ClientService {
	return &ClientService{clients: clients, shops: shops, mailer: mailer, notifier: notifier}
}

// Create persists the shop first, then the client referencing it, and
// re-reads the client with references resolved. The two writes are not
// atomic: a failed client write after a successful shop write returns
// *OrphanedShopError.
func (s *ClientService) Create(client *models.Client, shop *models.Shop, paymentIDs []int64) (*models.Client, error) {
	now := time.Now()
	if client.CreatedAt.IsZero() {
		client.CreatedAt = now
	}

	var shopIDs []int64
	if shop != nil {
		if shop.CreatedAt.IsZero() {
			shop.CreatedAt = now
		}
		shopID, err := s.shops.Create(shop)
		if err != nil {
			return nil, err
		}
		shopIDs = []int64{shopID}
	}

	id, err := s.clients.Create(client, shopIDs, paymentIDs)
	if err != nil {
		if len(shopIDs) > 0 {
			return nil, &OrphanedShopError{ShopID: shopIDs[0], Err: err}
		}
		return nil, err
	}

	created, err := s.clients.GetByID(id)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, fmt.Errorf("re-read created client %d: not found", id)
	}

	s.notifyCreated(created)
	return created, nil
}

func (s *ClientService) List() ([]*models.Client, error) {
	return s.clients.List()
}

// Delete removes a client by its string id. A missing id and an
// unknown id are distinct faults.
func (s *ClientService) Delete(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrClientIDRequired
	}
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return ErrInvalidClientID
	}
	found, err := s.clients.Delete(n)
	if err != nil {
		return err
	}
	if !found {
		return ErrClientNotFound
	}
	return nil
}

func (s *ClientService) notifyCreated(client *models.Client) {
	if s.mailer != nil && client.Email != "" {
		if err := s.mailer.SendClientWelcome(client.Email, client.FullName()); err != nil {
			log.Printf("[client][create] welcome email to %q failed: %v", client.Email, err)
		}
	}
	if s.notifier != nil {
		if err := s.notifier.ClientCreated(client); err != nil {
			log.Printf("[client][create] telegram notify failed: %v", err)
		}
	}
}
