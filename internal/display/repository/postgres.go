package repository

import (
	"context"
	"fmt"

	"github.com/fekuna/eyewear-storefront-service/internal/display"
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

var _ display.Repository = (*PGRepository)(nil)

func (r *PGRepository) CreateCategoryDisplay(ctx context.Context, d *model.CategoryDisplay) error {
	query := `
        INSERT INTO category_displays (id, category_key, title_ar, title_en, background_image, is_visible, sort_order, created_at, updated_at)
        VALUES (:id, :category_key, :title_ar, :title_en, :background_image, :is_visible, :sort_order, :created_at, :updated_at)
    `
	if _, err := r.DB.NamedExecContext(ctx, query, d); err != nil {
		return fmt.Errorf("insert category display: %w", err)
	}
	return nil
}

func (r *PGRepository) FindCategoryDisplays(ctx context.Context, visibleOnly bool) ([]model.CategoryDisplay, error) {
	out := []model.CategoryDisplay{}
	query := "SELECT * FROM category_displays"
	if visibleOnly {
		query += " WHERE is_visible = TRUE"
	}
	query += " ORDER BY sort_order ASC, created_at ASC"

	if err := r.DB.SelectContext(ctx, &out, query); err != nil {
		return nil, fmt.Errorf("list category displays: %w", err)
	}
	return out, nil
}

func (r *PGRepository) UpdateCategoryDisplay(ctx context.Context, d *model.CategoryDisplay) (*model.CategoryDisplay, error) {
	query := `
        UPDATE category_displays
        SET category_key = :category_key,
            title_ar = :title_ar,
            title_en = :title_en,
            background_image = :background_image,
            is_visible = :is_visible,
            sort_order = :sort_order,
            updated_at = :updated_at
        WHERE id = :id
        RETURNING *
    `
	var out model.CategoryDisplay
	found, err := postgres.NamedGet(ctx, r.DB, &out, query, d)
	if err != nil {
		return nil, fmt.Errorf("update category display %s: %w", d.ID, err)
	}
	if !found {
		return nil, nil
	}
	return &out, nil
}

func (r *PGRepository) DeleteCategoryDisplay(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM category_displays WHERE id = $1", id)
	if err != nil && !postgres.IsInvalidInput(err) {
		return fmt.Errorf("delete category display %s: %w", id, err)
	}
	return nil
}

// UpsertSubcategoryDisplay keeps the existing id and created_at on conflict.
func (r *PGRepository) UpsertSubcategoryDisplay(ctx context.Context, d *model.SubcategoryDisplay) (*model.SubcategoryDisplay, error) {
	query := `
        INSERT INTO subcategory_displays (id, parent_category, subcategory_key, title_ar, title_en, background_image, is_visible, sort_order, created_at, updated_at)
        VALUES (:id, :parent_category, :subcategory_key, :title_ar, :title_en, :background_image, :is_visible, :sort_order, :created_at, :updated_at)
        ON CONFLICT (parent_category, subcategory_key) DO UPDATE
        SET title_ar = EXCLUDED.title_ar,
            title_en = EXCLUDED.title_en,
            background_image = EXCLUDED.background_image,
            is_visible = EXCLUDED.is_visible,
            sort_order = EXCLUDED.sort_order,
            updated_at = EXCLUDED.updated_at
        RETURNING *
    `
	var out model.SubcategoryDisplay
	found, err := postgres.NamedGet(ctx, r.DB, &out, query, d)
	if err != nil {
		return nil, fmt.Errorf("upsert subcategory display %s/%s: %w", d.ParentCategory, d.SubcategoryKey, err)
	}
	if !found {
		return nil, fmt.Errorf("upsert subcategory display %s/%s: no row returned", d.ParentCategory, d.SubcategoryKey)
	}
	return &out, nil
}

func (r *PGRepository) FindSubcategoryDisplays(ctx context.Context, visibleOnly bool) ([]model.SubcategoryDisplay, error) {
	out := []model.SubcategoryDisplay{}
	query := "SELECT * FROM subcategory_displays"
	if visibleOnly {
		query += " WHERE is_visible = TRUE"
	}
	query += " ORDER BY sort_order ASC, created_at ASC"

	if err := r.DB.SelectContext(ctx, &out, query); err != nil {
		return nil, fmt.Errorf("list subcategory displays: %w", err)
	}
	return out, nil
}

func (r *PGRepository) DeleteSubcategoryDisplay(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM subcategory_displays WHERE id = $1", id)
	if err != nil && !postgres.IsInvalidInput(err) {
		return fmt.Errorf("delete subcategory display %s: %w", id, err)
	}
	return nil
}
