package repository

import (
	"context"
	"fmt"

	"github.com/fekuna/eyewear-storefront-service/internal/model"
	"github.com/fekuna/eyewear-storefront-service/internal/shipping"
	"github.com/fekuna/eyewear-storefront-service/pkg/database/postgres"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

var _ shipping.Repository = (*PGRepository)(nil)

func (r *PGRepository) Create(ctx context.Context, c *model.ShippingCity) error {
	query := `
        INSERT INTO shipping_cities (id, name_ar, name_en, shipping_fee, sort_order, is_active, created_at, updated_at)
        VALUES (:id, :name_ar, :name_en, :shipping_fee, :sort_order, :is_active, :created_at, :updated_at)
    `
	if _, err := r.DB.NamedExecContext(ctx, query, c); err != nil {
		return fmt.Errorf("insert shipping city: %w", err)
	}
	return nil
}

func (r *PGRepository) FindAll(ctx context.Context, activeOnly bool) ([]model.ShippingCity, error) {
	cities := []model.ShippingCity{}
	query := "SELECT * FROM shipping_cities"
	if activeOnly {
		query += " WHERE is_active = TRUE"
	}
	query += " ORDER BY sort_order ASC, created_at ASC"

	if err := r.DB.SelectContext(ctx, &cities, query); err != nil {
		return nil, fmt.Errorf("list shipping cities: %w", err)
	}
	return cities, nil
}

func (r *PGRepository) Update(ctx context.Context, c *model.ShippingCity) (*model.ShippingCity, error) {
	query := `
        UPDATE shipping_cities
        SET name_ar = :name_ar,
            name_en = :name_en,
            shipping_fee = :shipping_fee,
            sort_order = :sort_order,
            is_active = :is_active,
            updated_at = :updated_at
        WHERE id = :id
        RETURNING *
    `
	var out model.ShippingCity
	found, err := postgres.NamedGet(ctx, r.DB, &out, query, c)
	if err != nil {
		return nil, fmt.Errorf("update shipping city %s: %w", c.ID, err)
	}
	if !found {
		return nil, nil
	}
	return &out, nil
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM shipping_cities WHERE id = $1", id)
	if err != nil && !postgres.IsInvalidInput(err) {
		return fmt.Errorf("delete shipping city %s: %w", id, err)
	}
	return nil
}
