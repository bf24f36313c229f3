package repository

import (
	"context"
	"fmt"

	"github.com/fekuna/eyewear-storefront-service/internal/inventory"
	"github.com/fekuna/eyewear-storefront-service/internal/model"
	"github.com/fekuna/eyewear-storefront-service/pkg/database/postgres"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

var _ inventory.Repository = (*PGRepository)(nil)

func (r *PGRepository) FindProduct(ctx context.Context, id string) (*model.Product, error) {
	var p model.Product
	err := r.DB.GetContext(ctx, &p, `SELECT * FROM products WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		// A malformed id cannot match any row.
		if postgres.IsNoRows(err) || postgres.IsInvalidInput(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find product %s: %w", id, err)
	}
	return &p, nil
}

// Decrement delegates check-and-subtract to decrement_inventory, which raises
// when stock is short at the moment of the update.
func (r *PGRepository) Decrement(ctx context.Context, productID string, quantity int) error {
	_, err := r.DB.ExecContext(ctx, `SELECT decrement_inventory($1, $2)`, productID, quantity)
	if err != nil {
		if postgres.IsRaised(err) {
			return inventory.ErrInsufficientStock
		}
		return fmt.Errorf("decrement inventory %s: %w", productID, err)
	}
	return nil
}
