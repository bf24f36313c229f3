package analytics

import (
	"context"

	"github.com/fekuna/eyewear-storefront-service/internal/model"
	"github.com/shopspring/decimal"
)

type Repository interface {
	ListPrices(ctx context.Context) ([]decimal.Decimal, error)
	// ListCategoryPairs returns pairs in stable table order.
	ListCategoryPairs(ctx context.Context) ([]model.CategoryPair, error)
}
