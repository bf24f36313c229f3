package repository

import (
	"context"
	"fmt"

	"github.com/fekuna/eyewear-storefront-service/internal/model"
	"github.com/fekuna/eyewear-storefront-service/internal/subcategory"
	"github.com/fekuna/eyewear-storefront-service/pkg/database/postgres"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

var _ subcategory.Repository = (*PGRepository)(nil)

func (r *PGRepository) Create(ctx context.Context, s *model.Subcategory) error {
	query := `
        INSERT INTO subcategories (id, category_id, name_ar, name_en, description_ar, description_en, icon, sort_order, is_active, created_at, updated_at)
        VALUES (:id, :category_id, :name_ar, :name_en, :description_ar, :description_en, :icon, :sort_order, :is_active, :created_at, :updated_at)
    `
	if _, err := r.DB.NamedExecContext(ctx, query, s); err != nil {
		if isUnknownCategory(err) {
			return subcategory.ErrUnknownCategory
		}
		return fmt.Errorf("insert subcategory: %w", err)
	}
	return nil
}

func (r *PGRepository) FindAll(ctx context.Context, activeOnly bool) ([]model.Subcategory, error) {
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

func (r *PGRepository) FindCategoriesByIDs(ctx context.Context, ids []string) ([]model.Category, error) {
	cats := []model.Category{}
	if len(ids) == 0 {
		return cats, nil
	}
	err := r.DB.SelectContext(ctx, &cats, `SELECT * FROM categories WHERE id = ANY($1::uuid[])`, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("load parent categories: %w", err)
	}
	return cats, nil
}

func (r *PGRepository) Update(ctx context.Context, s *model.Subcategory) (*model.Subcategory, error) {
	query := `
        UPDATE subcategories
        SET category_id = :category_id,
            name_ar = :name_ar,
            name_en = :name_en,
            description_ar = :description_ar,
            description_en = :description_en,
            icon = :icon,
            sort_order = :sort_order,
            is_active = :is_active,
            updated_at = :updated_at
        WHERE id = :id
        RETURNING *
    `
	var out model.Subcategory
	found, err := postgres.NamedGet(ctx, r.DB, &out, query, s)
	if err != nil {
		if isUnknownCategory(err) {
			return nil, subcategory.ErrUnknownCategory
		}
		return nil, fmt.Errorf("update subcategory %s: %w", s.ID, err)
	}
	if !found {
		return nil, nil
	}
	return &out, nil
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM subcategories WHERE id = $1", id)
	if err != nil && !postgres.IsInvalidInput(err) {
		return fmt.Errorf("delete subcategory %s: %w", id, err)
	}
	return nil
}

// A category_id that is missing or not a uuid.
func isUnknownCategory(err error) bool {
	return postgres.IsForeignKeyViolation(err) || postgres.IsInvalidInput(err)
}
