package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopdesk/internal/models"
)

type stubShopRepo struct {
	nextID  int64
	err     error
	created []*models.Shop
}

func (s *stubShopRepo) Create(shop *models.Shop) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.nextID++
	s.created = append(s.created, shop)
	return s.nextID, nil
}

func (s *stubShopRepo) GetByID(id int64) (*models.Shop, error) { return nil, nil }

type stubClientRepo struct {
	createErr  error
	createdID  int64
	gotShops   []int64
	gotPays    []int64
	reRead     *models.Client
	listResult []*models.Client
	listErr    error

	deleteCalled bool
	deleteFound  bool
	deleteErr    error
	deletedID    int64
}

func (s *stubClientRepo) Create(client *models.Client, shopIDs, paymentIDs []int64) (int64, error) {
	if s.createErr != nil {
		return 0, s.createErr
	}
	s.gotShops = shopIDs
	s.gotPays = paymentIDs
	return s.createdID, nil
}

func (s *stubClientRepo) GetByID(id int64) (*models.Client, error) { return s.reRead, nil }

func (s *stubClientRepo) List() ([]*models.Client, error) { return s.listResult, s.listErr }

func (s *stubClientRepo) Delete(id int64) (bool, error) {
	s.deleteCalled = true
	s.deletedID = id
	return s.deleteFound, s.deleteErr
}

func TestCreateShopFirstThenClient(t *testing.T) {
	shops := &stubShopRepo{nextID: 6}
	clients := &stubClientRepo{
		createdID: 11,
		reRead: &models.Client{
			ID:    11,
			Shops: []models.Shop{{ID: 7, ShopName: "Corner Shop"}},
		},
	}
	svc := NewClientService(clients, shops, nil, nil)

	created, err := svc.Create(
		&models.Client{FirstName: "Ada"},
		&models.Shop{ShopName: "Corner Shop"},
		[]int64{1},
	)
	require.NoError(t, err)

	require.Len(t, shops.created, 1)
	assert.Equal(t, []int64{7}, clients.gotShops)
	assert.Equal(t, []int64{1}, clients.gotPays)
	require.Len(t, created.Shops, 1)
	assert.Equal(t, "Corner Shop", created.Shops[0].ShopName)
	assert.False(t, shops.created[0].CreatedAt.IsZero())
}

func TestCreateWithoutShop(t *testing.T) {
	shops := &stubShopRepo{}
	clients := &stubClientRepo{createdID: 3, reRead: &models.Client{ID: 3, Shops: []models.Shop{}}}
	svc := NewClientService(clients, shops, nil, nil)

	created, err := svc.Create(&models.Client{}, nil, nil)
	require.NoError(t, err)

	assert.Empty(t, shops.created)
	assert.Empty(t, clients.gotShops)
	assert.Equal(t, int64(3), created.ID)
}

func TestCreateShopOrphanedOnClientFailure(t *testing.T) {
	shops := &stubShopRepo{nextID: 41}
	clients := &stubClientRepo{createErr: errors.New("insert failed")}
	svc := NewClientService(clients, shops, nil, nil)

	_, err := svc.Create(&models.Client{}, &models.Shop{ShopName: "S"}, nil)

	var orphaned *OrphanedShopError
	require.ErrorAs(t, err, &orphaned)
	assert.Equal(t, int64(42), orphaned.ShopID)
	// The shop write already happened; nothing compensates it.
	assert.Len(t, shops.created, 1)
}

func TestCreateFailureWithoutShopIsPlain(t *testing.T) {
	clients := &stubClientRepo{createErr: errors.New("insert failed")}
	svc := NewClientService(clients, &stubShopRepo{}, nil, nil)

	_, err := svc.Create(&models.Client{}, nil, nil)

	require.Error(t, err)
	var orphaned *OrphanedShopError
	assert.False(t, errors.As(err, &orphaned))
}

func TestDeleteRequiresID(t *testing.T) {
	clients := &stubClientRepo{}
	svc := NewClientService(clients, &stubShopRepo{}, nil, nil)

	assert.ErrorIs(t, svc.Delete(""), ErrClientIDRequired)
	assert.ErrorIs(t, svc.Delete("   "), ErrClientIDRequired)
	assert.ErrorIs(t, svc.Delete("not-a-number"), ErrInvalidClientID)
	assert.False(t, clients.deleteCalled)
}

func TestDeleteNotFound(t *testing.T) {
	clients := &stubClientRepo{deleteFound: false}
	svc := NewClientService(clients, &stubShopRepo{}, nil, nil)

	assert.ErrorIs(t, svc.Delete("99"), ErrClientNotFound)
	assert.Equal(t, int64(99), clients.deletedID)
}

func TestDeleteSuccess(t *testing.T) {
	clients := &stubClientRepo{deleteFound: true}
	svc := NewClientService(clients, &stubShopRepo{}, nil, nil)

	require.NoError(t, svc.Delete("7"))
	assert.Equal(t, int64(7), clients.deletedID)
}

type recordingMailer struct{ sent []string }

func (m *recordingMailer) SendClientWelcome(email, name string) error {
	m.sent = append(m.sent, email)
	return nil
}

type recordingNotifier struct{ notified []int64 }

func (n *recordingNotifier) ClientCreated(client *models.Client) error {
	n.notified = append(n.notified, client.ID)
	return nil
}

func TestCreateNotifiesBestEffort(t *testing.T) {
	mailer := &recordingMailer{}
	notifier := &recordingNotifier{}
	clients := &stubClientRepo{
		createdID: 5,
		reRead:    &models.Client{ID: 5, Email: "ada@example.com"},
	}
	svc := NewClientService(clients, &stubShopRepo{}, mailer, notifier)

	_, err := svc.Create(&models.Client{Email: "ada@example.com"}, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"ada@example.com"}, mailer.sent)
	assert.Equal(t, []int64{5}, notifier.notified)
}

func TestCreateSkipsMailWithoutEmail(t *testing.T) {
	mailer := &recordingMailer{}
	clients := &stubClientRepo{createdID: 5, reRead: &models.Client{ID: 5}}
	svc := NewClientService(clients, &stubShopRepo{}, mailer, nil)

	_, err := svc.Create(&models.Client{}, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, mailer.sent)
}
