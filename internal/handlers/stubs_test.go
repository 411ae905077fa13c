package handlers

import (
	"errors"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"shopdesk/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// In-memory repositories backing handler tests.

type memShopRepo struct {
	seq   int64
	shops map[int64]models.Shop
}

func newMemShopRepo() *memShopRepo {
	return &memShopRepo{shops: map[int64]models.Shop{}}
}

func (m *memShopRepo) Create(shop *models.Shop) (int64, error) {
	m.seq++
	stored := *shop
	stored.ID = m.seq
	m.shops[m.seq] = stored
	return m.seq, nil
}

func (m *memShopRepo) GetByID(id int64) (*models.Shop, error) {
	if s, ok := m.shops[id]; ok {
		return &s, nil
	}
	return nil, nil
}

type memPaymentRepo struct {
	payments []*models.Payment
	err      error
}

func (m *memPaymentRepo) List() ([]*models.Payment, error) {
	return m.payments, m.err
}

type memClientRepo struct {
	seq      int64
	clients  map[int64]models.Client
	shopRefs map[int64][]int64
	payRefs  map[int64][]int64

	shops    *memShopRepo
	payments map[int64]models.Payment

	failCreate bool
	failList   bool
}

func newMemClientRepo(shops *memShopRepo) *memClientRepo {
	return &memClientRepo{
		clients:  map[int64]models.Client{},
		shopRefs: map[int64][]int64{},
		payRefs:  map[int64][]int64{},
		shops:    shops,
		payments: map[int64]models.Payment{
			1: {ID: 1, Value: "Cash"},
			2: {ID: 2, Value: "Credit Card"},
		},
	}
}

func (m *memClientRepo) Create(client *models.Client, shopIDs, paymentIDs []int64) (int64, error) {
	if m.failCreate {
		return 0, errors.New("storage unavailable")
	}
	m.seq++
	stored := *client
	stored.ID = m.seq
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	m.clients[m.seq] = stored
	m.shopRefs[m.seq] = shopIDs
	m.payRefs[m.seq] = paymentIDs
	return m.seq, nil
}

func (m *memClientRepo) GetByID(id int64) (*models.Client, error) {
	stored, ok := m.clients[id]
	if !ok {
		return nil, nil
	}
	return m.resolve(stored), nil
}

func (m *memClientRepo) List() ([]*models.Client, error) {
	if m.failList {
		return nil, errors.New("storage unavailable")
	}
	ids := make([]int64, 0, len(m.clients))
	for id := range m.clients {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	res := make([]*models.Client, 0, len(ids))
	for _, id := range ids {
		res = append(res, m.resolve(m.clients[id]))
	}
	return res, nil
}

func (m *memClientRepo) Delete(id int64) (bool, error) {
	if _, ok := m.clients[id]; !ok {
		return false, nil
	}
	delete(m.clients, id)
	delete(m.shopRefs, id)
	delete(m.payRefs, id)
	return true, nil
}

func (m *memClientRepo) resolve(stored models.Client) *models.Client {
	stored.Shops = []models.Shop{}
	stored.Payments = []models.Payment{}
	for _, shopID := range m.shopRefs[stored.ID] {
		if s, ok := m.shops.shops[shopID]; ok {
			stored.Shops = append(stored.Shops, s)
		}
	}
	for _, payID := range m.payRefs[stored.ID] {
		if p, ok := m.payments[payID]; ok {
			stored.Payments = append(stored.Payments, p)
		}
	}
	return &stored
}
