package inventory

import (
	"context"
	"errors"

	"github.com/fekuna/eyewear-storefront-service/internal/model"
)

// ErrInsufficientStock is returned by Decrement when the conditional update
// matched no row.
var ErrInsufficientStock = errors.New("insufficient stock")

type Repository interface {
	// FindProduct returns nil, nil when the product does not exist.
	FindProduct(ctx context.Context, id string) (*model.Product, error)
	// Decrement subtracts quantity in one atomic step or not at all.
	Decrement(ctx context.Context, productID string, quantity int) error
}
