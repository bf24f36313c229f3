package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/fekuna/eyewear-storefront-service/internal/model"
	"github.com/fekuna/eyewear-storefront-service/internal/product"
	"github.com/fekuna/eyewear-storefront-service/internal/product/dto"
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

var _ product.Repository = (*PGRepository)(nil)

func (r *PGRepository) Create(ctx context.Context, p *model.Product) error {
	query := `
        INSERT INTO products (
            id, name_ar, name_en, description_ar, description_en,
            price, quantity, parent_category, subcategory, images,
            created_at, updated_at
        )
        VALUES (
            :id, :name_ar, :name_en, :description_ar, :description_en,
            :price, :quantity, :parent_category, :subcategory, :images,
            :created_at, :updated_at
        )
    `
	if _, err := r.DB.NamedExecContext(ctx, query, p); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	var p model.Product
	err := r.DB.GetContext(ctx, &p, `SELECT * FROM products WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if postgres.IsNoRows(err) || postgres.IsInvalidInput(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find product %s: %w", id, err)
	}
	return &p, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.Product, error) {
	products := []model.Product{}

	conditions := []string{}
	args := map[string]interface{}{}

	if f.ParentCategory != "" {
		conditions = append(conditions, "parent_category = :parent_category")
		args["parent_category"] = f.ParentCategory
	}
	if f.Subcategory != "" {
		conditions = append(conditions, "subcategory = :subcategory")
		args["subcategory"] = f.Subcategory
	}
	if f.InStock {
		conditions = append(conditions, "quantity > 0")
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}
	query := "SELECT * FROM products" + whereClause + " ORDER BY created_at DESC"

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("prepare product list: %w", err)
	}
	defer nstmt.Close()

	if err := nstmt.SelectContext(ctx, &products, args); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// Search is the SQL fallback used when the search index is unavailable.
func (r *PGRepository) Search(ctx context.Context, query string, limit int) ([]model.Product, error) {
	products := []model.Product{}
	q := `
        SELECT * FROM products
        WHERE name_en ILIKE $1 OR name_ar ILIKE $1 OR description_en ILIKE $1 OR description_ar ILIKE $1
        ORDER BY created_at DESC
        LIMIT $2
    `
	if err := r.DB.SelectContext(ctx, &products, q, "%"+escapeLike(query)+"%", limit); err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return products, nil
}

func (r *PGRepository) Update(ctx context.Context, p *model.Product) (*model.Product, error) {
	query := `
        UPDATE products
        SET name_ar = :name_ar,
            name_en = :name_en,
            description_ar = :description_ar,
            description_en = :description_en,
            price = :price,
            quantity = :quantity,
            parent_category = :parent_category,
            subcategory = :subcategory,
            updated_at = :updated_at
        WHERE id = :id
        RETURNING *
    `
	var out model.Product
	found, err := postgres.NamedGet(ctx, r.DB, &out, query, p)
	if err != nil {
		return nil, fmt.Errorf("update product %s: %w", p.ID, err)
	}
	if !found {
		return nil, nil
	}
	return &out, nil
}

func (r *PGRepository) Delete(ctx context.Context, id string) (*model.Product, error) {
	var p model.Product
	err := r.DB.GetContext(ctx, &p, `DELETE FROM products WHERE id = $1 RETURNING *`, id)
	if err != nil {
		if postgres.IsNoRows(err) || postgres.IsInvalidInput(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("delete product %s: %w", id, err)
	}
	return &p, nil
}

func (r *PGRepository) AppendImage(ctx context.Context, id, name string) (*model.Product, error) {
	var p model.Product
	query := `
        UPDATE products
        SET images = array_append(images, $2), updated_at = NOW()
        WHERE id = $1
        RETURNING *
    `
	if err := r.DB.GetContext(ctx, &p, query, id, name); err != nil {
		if postgres.IsNoRows(err) || postgres.IsInvalidInput(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("append image to product %s: %w", id, err)
	}
	return &p, nil
}

// DetachImages keeps the remaining images in their stored order.
func (r *PGRepository) DetachImages(ctx context.Context, names []string) ([]model.Product, error) {
	products := []model.Product{}
	query := `
        UPDATE products
        SET images = ARRAY(
                SELECT img FROM unnest(images) WITH ORDINALITY AS t(img, ord)
                WHERE img <> ALL($1::text[])
                ORDER BY ord
            ),
            updated_at = NOW()
        WHERE images && $1::text[]
        RETURNING *
    `
	if err := r.DB.SelectContext(ctx, &products, query, pq.Array(names)); err != nil {
		return nil, fmt.Errorf("detach images: %w", err)
	}
	return products, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
