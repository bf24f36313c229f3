package repository

import (
	"context"
	"fmt"

	"github.com/fekuna/eyewear-storefront-service/internal/analytics"
	"github.com/fekuna/eyewear-storefront-service/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

var _ analytics.Repository = (*PGRepository)(nil)

func (r *PGRepository) ListPrices(ctx context.Context) ([]decimal.Decimal, error) {
	prices := []decimal.Decimal{}
	if err := r.DB.SelectContext(ctx, &prices, `SELECT price FROM products`); err != nil {
		return nil, fmt.Errorf("list prices: %w", err)
	}
	return prices, nil
}

func (r *PGRepository) ListCategoryPairs(ctx context.Context) ([]model.CategoryPair, error) {
	pairs := []model.CategoryPair{}
	query := `SELECT parent_category, subcategory FROM products ORDER BY created_at ASC, id ASC`
	if err := r.DB.SelectContext(ctx, &pairs, query); err != nil {
		return nil, fmt.Errorf("list category pairs: %w", err)
	}
	return pairs, nil
}
