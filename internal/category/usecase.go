package category

import (
	"context"

	"github.com/fekuna/eyewear-storefront-service/internal/category/dto"
	"github.com/fekuna/eyewear-storefront-service/internal/model"
)

type UseCase interface {
	ListCategories(ctx context.Context, activeOnly bool) ([]model.Category, error)
	CreateCategory(ctx context.Context, input *dto.CategoryInput) (*model.Category, error)
	UpdateCategory(ctx context.Context, id string, input *dto.CategoryInput) (*model.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}
