package carousel

import (
	"context"

	"github.com/fekuna/eyewear-storefront-service/internal/carousel/dto"
	"github.com/fekuna/eyewear-storefront-service/internal/model"
)

type UseCase interface {
	ListSlides(ctx context.Context, activeOnly bool) ([]model.CarouselSlide, error)
	CreateSlide(ctx context.Context, input *dto.SlideInput) (*model.CarouselSlide, error)
	UpdateSlide(ctx context.Context, id string, input *dto.SlideInput) (*model.CarouselSlide, error)
	DeleteSlide(ctx context.Context, id string) error
}
