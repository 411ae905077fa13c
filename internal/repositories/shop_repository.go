package repositories

import (
	"database/sql"
	"fmt"

	"shopdesk/internal/models"
)

type ShopRepository interface {
	Create(shop *models.Shop) (int64, error)
	GetByID(id int64) (*models.Shop, error)
}

type shopRepository struct {
	db *sql.DB
}

func NewShopRepository(db *sql.DB) ShopRepository {
	return &shopRepository{db: db}
}

func (r *shopRepository) Create(shop *models.Shop) (int64, error) {
	const q = `
                INSERT INTO shops (shop_name, address_name, address_city, lat, long, created_at)
                VALUES ($1, $2, $3, $4, $5, $6)
                RETURNING id
        `
	var id int64
	if err := r.db.QueryRow(q,
		shop.ShopName,
		shop.Address.Name,
		shop.Address.City,
		shop.Address.Lat,
		shop.Address.Long,
		shop.CreatedAt,
	).Scan(&id); err != nil {
		return 0, fmt.Errorf("create shop: %w", err)
	}
	return id, nil
}

func (r *shopRepository) GetByID(id int64) (*models.Shop, error) {
	const q = `
                SELECT id, shop_name, address_name, address_city, lat, long, created_at
                FROM shops
                WHERE id=$1
        `
	var s models.Shop
	if err := r.db.QueryRow(q, id).Scan(&s.ID, &s.ShopName, &s.Address.Name, &s.Address.City, &s.Address.Lat, &s.Address.Long, &s.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get shop: %w", err)
	}
	return &s, nil
}
