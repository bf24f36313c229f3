package display

import (
	"context"

	"github.com/fekuna/eyewear-storefront-service/internal/model"
)

type Repository interface {
	CreateCategoryDisplay(ctx context.Context, d *model.CategoryDisplay) error
	FindCategoryDisplays(ctx context.Context, visibleOnly bool) ([]model.CategoryDisplay, error)
	// UpdateCategoryDisplay returns nil, nil when no row has the display's id.
	UpdateCategoryDisplay(ctx context.Context, d *model.CategoryDisplay) (*model.CategoryDisplay, error)
	DeleteCategoryDisplay(ctx context.Context, id string) error

	// UpsertSubcategoryDisplay inserts or replaces the row keyed by
	// (parent_category, subcategory_key) and returns the stored row.
	UpsertSubcategoryDisplay(ctx context.Context, d *model.SubcategoryDisplay) (*model.SubcategoryDisplay, error)
	FindSubcategoryDisplays(ctx context.Context, visibleOnly bool) ([]model.SubcategoryDisplay, error)
	DeleteSubcategoryDisplay(ctx context.Context, id string) error
}
