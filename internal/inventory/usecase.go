package inventory

import (
	"context"

	"github.com/fekuna/eyewear-storefront-service/internal/inventory/dto"
)

type UseCase interface {
	Sell(ctx context.Context, input *dto.SellInput) (*dto.SellResult, error)
}
