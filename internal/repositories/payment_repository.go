package repositories

import (
	"database/sql"
	"fmt"

	"shopdesk/internal/models"
)

type PaymentRepository interface {
	List() ([]*models.Payment, error)
}

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) List() ([]*models.Payment, error) {
	const q = `
                SELECT id, value
                FROM payments
                ORDER BY id
        `
	rows, err := r.db.Query(q)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var res []*models.Payment
	for rows.Next() {
		var p models.Payment
		if err := rows.Scan(&p.ID, &p.Value); err != nil {
			return nil, err
		}
		res = append(res, &p)
	}
	return res, rows.Err()
}
