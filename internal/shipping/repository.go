package shipping

import (
	"context"

	"github.com/fekuna/eyewear-storefront-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, city *model.ShippingCity) error
	FindAll(ctx context.Context, activeOnly bool) ([]model.ShippingCity, error)
	// Update returns nil, nil when no row has the city's id.
	Update(ctx context.Context, city *model.ShippingCity) (*model.ShippingCity, error)
	Delete(ctx context.Context, id string) error
}
