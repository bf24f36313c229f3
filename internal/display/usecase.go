package display

import (
	"context"

	"github.com/fekuna/eyewear-storefront-service/internal/display/dto"
	"github.com/fekuna/eyewear-storefront-service/internal/model"
)

type UseCase interface {
	ListCategoryDisplays(ctx context.Context, visibleOnly bool) ([]model.CategoryDisplay, error)
	CreateCategoryDisplay(ctx context.Context, input *dto.CategoryDisplayInput) (*model.CategoryDisplay, error)
	UpdateCategoryDisplay(ctx context.Context, id string, input *dto.CategoryDisplayInput) (*model.CategoryDisplay, error)
	DeleteCategoryDisplay(ctx context.Context, id string) error

	ListSubcategoryDisplays(ctx context.Context, visibleOnly bool) ([]model.SubcategoryDisplay, error)
	SaveSubcategoryDisplay(ctx context.Context, input *dto.SubcategoryDisplayInput) (*model.SubcategoryDisplay, error)
	DeleteSubcategoryDisplay(ctx context.Context, id string) error
}
