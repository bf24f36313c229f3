package category

import (
	"context"

	"github.com/fekuna/eyewear-storefront-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, category *model.Category) error
	FindAll(ctx context.Context, activeOnly bool) ([]model.Category, error)
	FindSubcategories(ctx context.Context, activeOnly bool) ([]model.Subcategory, error)
	// Update returns nil, nil when no row has the category's id.
	Update(ctx context.Context, category *model.Category) (*model.Category, error)
	Delete(ctx context.Context, id string) error
}
