package subcategory

import (
	"context"
	"errors"

	"github.com/fekuna/eyewear-storefront-service/internal/model"
	"github.com/fekuna/eyewear-storefront-service/internal/subcategory/dto"
)

// ErrUnknownCategory is returned by writes whose category_id matches no category.
var ErrUnknownCategory = errors.New("unknown category")

type UseCase interface {
	ListSubcategories(ctx context.Context, activeOnly bool) ([]model.Subcategory, error)
	CreateSubcategory(ctx context.Context, input *dto.SubcategoryInput) (*model.Subcategory, error)
	UpdateSubcategory(ctx context.Context, id string, input *dto.SubcategoryInput) (*model.Subcategory, error)
	DeleteSubcategory(ctx context.Context, id string) error
}
