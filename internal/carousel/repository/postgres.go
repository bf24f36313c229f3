package repository

import (
	"context"
	"fmt"

	"github.com/fekuna/eyewear-storefront-service/internal/carousel"
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

var _ carousel.Repository = (*PGRepository)(nil)

func (r *PGRepository) Create(ctx context.Context, s *model.CarouselSlide) error {
	query := `
        INSERT INTO carousel_slides (id, title_ar, title_en, subtitle_ar, subtitle_en, image_url, link_url, sort_order, is_active, created_at, updated_at)
        VALUES (:id, :title_ar, :title_en, :subtitle_ar, :subtitle_en, :image_url, :link_url, :sort_order, :is_active, :created_at, :updated_at)
    `
	if _, err := r.DB.NamedExecContext(ctx, query, s); err != nil {
		return fmt.Errorf("insert carousel slide: %w", err)
	}
	return nil
}

func (r *PGRepository) FindAll(ctx context.Context, activeOnly bool) ([]model.CarouselSlide, error) {
	slides := []model.CarouselSlide{}
	query := "SELECT * FROM carousel_slides"
	if activeOnly {
		query += " WHERE is_active = TRUE"
	}
	query += " ORDER BY sort_order ASC, created_at ASC"

	if err := r.DB.SelectContext(ctx, &slides, query); err != nil {
		return nil, fmt.Errorf("list carousel slides: %w", err)
	}
	return slides, nil
}

func (r *PGRepository) Update(ctx context.Context, s *model.CarouselSlide) (*model.CarouselSlide, error) {
	query := `
        UPDATE carousel_slides
        SET title_ar = :title_ar,
            title_en = :title_en,
            subtitle_ar = :subtitle_ar,
            subtitle_en = :subtitle_en,
            image_url = :image_url,
            link_url = :link_url,
            sort_order = :sort_order,
            is_active = :is_active,
            updated_at = :updated_at
        WHERE id = :id
        RETURNING *
    `
	var out model.CarouselSlide
	found, err := postgres.NamedGet(ctx, r.DB, &out, query, s)
	if err != nil {
		return nil, fmt.Errorf("update carousel slide %s: %w", s.ID, err)
	}
	if !found {
		return nil, nil
	}
	return &out, nil
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM carousel_slides WHERE id = $1", id)
	if err != nil && !postgres.IsInvalidInput(err) {
		return fmt.Errorf("delete carousel slide %s: %w", id, err)
	}
	return nil
}
