package shipping

import (
	"context"

	"github.com/fekuna/eyewear-storefront-service/internal/model"
	"github.com/fekuna/eyewear-storefront-service/internal/shipping/dto"
)

type UseCase interface {
	ListCities(ctx context.Context, activeOnly bool) ([]model.ShippingCity, error)
	CreateCity(ctx context.Context, input *dto.ShippingCityInput) (*model.ShippingCity, error)
	UpdateCity(ctx context.Context, id string, input *dto.ShippingCityInput) (*model.ShippingCity, error)
	DeleteCity(ctx context.Context, id string) error
}
