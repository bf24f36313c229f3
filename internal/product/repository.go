package product

import (
	"context"
	"io"

	"github.com/fekuna/eyewear-storefront-service/internal/model"
	"github.com/fekuna/eyewear-storefront-service/internal/product/dto"
)

type Repository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id string) (*model.Product, error)
	FindAll(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error)
	Search(ctx context.Context, query string, limit int) ([]model.Product, error)
	// Update and Delete return nil, nil when no row has the id.
	Update(ctx context.Context, product *model.Product) (*model.Product, error)
	Delete(ctx context.Context, id string) (*model.Product, error)

	AppendImage(ctx context.Context, id, name string) (*model.Product, error)
	// DetachImages returns the products that referenced any of names.
	DetachImages(ctx context.Context, names []string) ([]model.Product, error)
}

// SearchIndex is the full-text product index kept in sync from product events.
type SearchIndex interface {
	Index(ctx context.Context, product *model.Product) error
	Remove(ctx context.Context, id string) error
	Search(ctx context.Context, query string, limit int) ([]model.Product, error)
}

// ImageStore holds product image objects.
type ImageStore interface {
	Upload(ctx context.Context, name, contentType string, body io.Reader) error
	Remove(ctx context.Context, names []string) error
	PublicURL(name string) string
}
