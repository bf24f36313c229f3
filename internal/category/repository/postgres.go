package repository

import (
	"context"
	"fmt"

	"github.com/fekuna/eyewear-storefront-service/internal/category"
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

var _ category.Repository = (*PGRepository)(nil)

func (r *PGRepository) Create(ctx context.Context, c *model.Category) error {
	query := `
        INSERT INTO categories (id, name_ar, name_en, description_ar, description_en, icon, color, sort_order, is_active, created_at, updated_at)
        VALUES (:id, :name_ar, :name_en, :description_ar, :description_en, :icon, :color, :sort_order, :is_active, :created_at, :updated_at)
    `
	if _, err := r.DB.NamedExecContext(ctx, query, c); err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

func (r *PGRepository) FindAll(ctx context.Context, activeOnly bool) ([]model.Category, error) {
	categories := []model.Category{}
	query := "SELECT * FROM categories"
	if activeOnly {
		query += " WHERE is_active = TRUE"
	}
	query += " ORDER BY sort_order ASC, created_at ASC"

	if err := r.DB.SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (r *PGRepository) FindSubcategories(ctx context.Context, activeOnly bool) ([]model.Subcategory, error) {
	subs := []model.Subcategory{}
	query := "SELECT * FROM subcategories"
	if activeOnly {
		query += " WHERE is_active = TRUE"
	}
	query += " ORDER BY sort_order ASC, created_at ASC"

	if err := r.DB.SelectContext(ctx, &subs, query); err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}
	return subs, nil
}

func (r *PGRepository) Update(ctx context.Context, c *model.Category) (*model.Category, error) {
	query := `
        UPDATE categories
        SET name_ar = :name_ar,
            name_en = :name_en,
            description_ar = :description_ar,
            description_en = :description_en,
            icon = :icon,
            color = :color,
            sort_order = :sort_order,
            is_active = :is_active,
            updated_at = :updated_at
        WHERE id = :id
        RETURNING *
    `
	var out model.Category
	found, err := postgres.NamedGet(ctx, r.DB, &out, query, c)
	if err != nil {
		return nil, fmt.Errorf("update category %s: %w", c.ID, err)
	}
	if !found {
		return nil, nil
	}
	return &out, nil
}

// Delete succeeds whether or not the row existed. Subcategories cascade.
func (r *PGRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM categories WHERE id = $1", id)
	if err != nil && !postgres.IsInvalidInput(err) {
		return fmt.Errorf("delete category %s: %w", id, err)
	}
	return nil
}
