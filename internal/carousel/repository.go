package carousel

import (
	"context"

	"github.com/fekuna/eyewear-storefront-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, slide *model.CarouselSlide) error
	FindAll(ctx context.Context, activeOnly bool) ([]model.CarouselSlide, error)
	Update(ctx context.Context, slide *model.CarouselSlide) (*model.CarouselSlide, error)
	Delete(ctx context.Context, id string) error
}
