package subcategory

import (
	"context"

	"github.com/fekuna/eyewear-storefront-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, sub *model.Subcategory) error
	FindAll(ctx context.Context, activeOnly bool) ([]model.Subcategory, error)
	FindCategoriesByIDs(ctx context.Context, ids []string) ([]model.Category, error)
	// Update returns nil, nil when no row has the subcategory's id.
	Update(ctx context.Context, sub *model.Subcategory) (*model.Subcategory, error)
	Delete(ctx context.Context, id string) error
}
