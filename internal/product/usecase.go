package product

import (
	"context"

	"github.com/fekuna/eyewear-storefront-service/internal/model"
	"github.com/fekuna/eyewear-storefront-service/internal/product/dto"
)

type UseCase interface {
	ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error)
	SearchProducts(ctx context.Context, query string, limit int) ([]model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	CreateProduct(ctx context.Context, input *dto.ProductInput) (*model.Product, error)
	UpdateProduct(ctx context.Context, id string, input *dto.ProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	UploadImage(ctx context.Context, input *dto.ImageUpload) (*dto.ImageResult, error)
	DeleteImages(ctx context.Context, names []string) error
}
