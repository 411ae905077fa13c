package repositories

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"shopdesk/internal/models"
)

type ClientRepository interface {
	Create(client *models.Client, shopIDs, paymentIDs []int64) (int64, error)
	GetByID(id int64) (*models.Client, error)
	List() ([]*models.Client, error)
	Delete(id int64) (bool, error)
}

type clientRepository struct {
	db *sql.DB
}

func NewClientRepository(db *sql.DB) ClientRepository {
	return &clientRepository{db: db}
}

// Create inserts the client row together with its ordered shop and
// payment reference rows.
func (r *clientRepository) Create(client *models.Client, shopIDs, paymentIDs []int64) (int64, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("create client: %w", err)
	}
	defer tx.Rollback()

	const q = `
                INSERT INTO clients (first_name, last_name, nid, brn_number, phone_number, mobile_number, email, delivery_day, created_at)
                VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
                RETURNING id
        `
	var id int64
	if err := tx.QueryRow(q,
		client.FirstName,
		client.LastName,
		client.NID,
		client.BRNNumber,
		client.PhoneNumber,
		client.MobileNumber,
		client.Email,
		client.DeliveryDay,
		client.CreatedAt,
	).Scan(&id); err != nil {
		return 0, fmt.Errorf("create client: %w", err)
	}

	for pos, shopID := range shopIDs {
		if _, err := tx.Exec(
			`INSERT INTO client_shops (client_id, shop_id, position) VALUES ($1, $2, $3)`,
			id, shopID, pos,
		); err != nil {
			return 0, fmt.Errorf("link shop %d: %w", shopID, err)
		}
	}
	for pos, paymentID := range paymentIDs {
		if _, err := tx.Exec(
			`INSERT INTO client_payments (client_id, payment_id, position) VALUES ($1, $2, $3)`,
			id, paymentID, pos,
		); err != nil {
			return 0, fmt.Errorf("link payment %d: %w", paymentID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("create client: %w", err)
	}
	return id, nil
}

func (r *clientRepository) GetByID(id int64) (*models.Client, error) {
	const q = `
                SELECT id, first_name, last_name, nid, brn_number, phone_number, mobile_number, email, delivery_day, created_at
                FROM clients
                WHERE id=$1
        `
	var c models.Client
	if err := r.db.QueryRow(q, id).Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.NID, &c.BRNNumber,
		&c.PhoneNumber, &c.MobileNumber, &c.Email, &c.DeliveryDay, &c.CreatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	if err := r.resolveRefs([]*models.Client{&c}); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clientRepository) List() ([]*models.Client, error) {
	const q = `
                SELECT id, first_name, last_name, nid, brn_number, phone_number, mobile_number, email, delivery_day, created_at
                FROM clients
                ORDER BY created_at DESC, id DESC
        `
	rows, err := r.db.Query(q)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var res []*models.Client
	for rows.Next() {
		var c models.Client
		if err := rows.Scan(
			&c.ID, &c.FirstName, &c.LastName, &c.NID, &c.BRNNumber,
			&c.PhoneNumber, &c.MobileNumber, &c.Email, &c.DeliveryDay, &c.CreatedAt,
		); err != nil {
			return nil, err
		}
		res = append(res, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.resolveRefs(res); err != nil {
		return nil, err
	}
	return res, nil
}

func (r *clientRepository) Delete(id int64) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM clients WHERE id=$1`, id)
	if err != nil {
		return false, fmt.Errorf("delete client: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete client: %w", err)
	}
	return n > 0, nil
}

// resolveRefs replaces shop and payment references with the referenced
// rows, preserving reference order.
func (r *clientRepository) resolveRefs(clients []*models.Client) error {
	if len(clients) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(clients))
	byID := make(map[int64]*models.Client, len(clients))
	for _, c := range clients {
		ids = append(ids, c.ID)
		byID[c.ID] = c
		c.Shops = []models.Shop{}
		c.Payments = []models.Payment{}
	}

	const shopsQ = `
                SELECT cs.client_id, s.id, s.shop_name, s.address_name, s.address_city, s.lat, s.long, s.created_at
                FROM client_shops cs
                JOIN shops s ON s.id = cs.shop_id
                WHERE cs.client_id = ANY($1)
                ORDER BY cs.client_id, cs.position
        `
	rows, err := r.db.Query(shopsQ, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("resolve shops: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var clientID int64
		var s models.Shop
		if err := rows.Scan(&clientID, &s.ID, &s.ShopName, &s.Address.Name, &s.Address.City, &s.Address.Lat, &s.Address.Long, &s.CreatedAt); err != nil {
			return err
		}
		if c, ok := byID[clientID]; ok {
			c.Shops = append(c.Shops, s)
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	const paymentsQ = `
                SELECT cp.client_id, p.id, p.value
                FROM client_payments cp
                JOIN payments p ON p.id = cp.payment_id
                WHERE cp.client_id = ANY($1)
                ORDER BY cp.client_id, cp.position
        `
	prows, err := r.db.Query(paymentsQ, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("resolve payments: %w", err)
	}
	defer prows.Close()
	for prows.Next() {
		var clientID int64
		var p models.Payment
		if err := prows.Scan(&clientID, &p.ID, &p.Value); err != nil {
			return err
		}
		if c, ok := byID[clientID]; ok {
			c.Payments = append(c.Payments, p)
		}
	}
	return prows.Err()
}
