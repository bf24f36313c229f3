package usecase

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/fekuna/eyewear-storefront-service/internal/events"
	"github.com/fekuna/eyewear-storefront-service/internal/model"
	"github.com/fekuna/eyewear-storefront-service/internal/product"
	"github.com/fekuna/eyewear-storefront-service/internal/product/dto"
	"github.com/fekuna/eyewear-storefront-service/pkg/apperror"
	"github.com/fekuna/eyewear-storefront-service/pkg/i18n"
	"github.com/fekuna/eyewear-storefront-service/pkg/logger"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

const (
	DefaultSearchLimit = 20
	MaxSearchLimit     = 100
)

type productUseCase struct {
	repo   product.Repository
	index  product.SearchIndex
	images product.ImageStore
	events *events.Publisher
	logger logger.ZapLogger
}

// NewProductUseCase accepts a nil index; search then goes straight to SQL.
func NewProductUseCase(repo product.Repository, index product.SearchIndex, images product.ImageStore, ev *events.Publisher, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:   repo,
		index:  index,
		images: images,
		events: ev,
		logger: log,
	}
}

func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error) {
	products, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, apperror.Store(i18n.MsgInternal, err)
	}
	return products, nil
}

func (uc *productUseCase) SearchProducts(ctx context.Context, query string, limit int) ([]model.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperror.Validation(i18n.MsgSearchQueryRequired)
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}

	if uc.index != nil {
		products, err := uc.index.Search(ctx, query, limit)
		if err == nil {
			return products, nil
		}
		uc.logger.Warn("search index failed, falling back to SQL", zap.String("query", query), zap.Error(err))
	}

	products, err := uc.repo.Search(ctx, query, limit)
	if err != nil {
		return nil, apperror.Store(i18n.MsgInternal, err)
	}
	return products, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Store(i18n.MsgInternal, err)
	}
	if p == nil {
		return nil, apperror.NotFound(i18n.MsgProductNotFound)
	}
	return p, nil
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.ProductInput) (*model.Product, error) {
	p, err := fromInput(input)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	p.ID = uuid.New().String()
	p.CreatedAt = now
	p.UpdatedAt = now
	p.Images = pq.StringArray(cleanNames(input.Images))

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, apperror.Store(i18n.MsgInternal, err)
	}

	uc.events.ProductUpserted(ctx, p)
	return p, nil
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, id string, input *dto.ProductInput) (*model.Product, error) {
	p, err := fromInput(input)
	if err != nil {
		return nil, err
	}
	p.ID = id
	p.UpdatedAt = time.Now()

	updated, err := uc.repo.Update(ctx, p)
	if err != nil {
		return nil, apperror.Store(i18n.MsgInternal, err)
	}
	if updated == nil {
		return nil, apperror.NotFound(i18n.MsgProductNotFound)
	}

	uc.events.ProductUpserted(ctx, updated)
	return updated, nil
}

// DeleteProduct removes the row first; leftover image objects are only logged.
func (uc *productUseCase) DeleteProduct(ctx context.Context, id string) error {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return apperror.Store(i18n.MsgInternal, err)
	}
	if deleted == nil {
		return nil
	}

	uc.events.ProductDeleted(ctx, deleted.ID)

	if len(deleted.Images) > 0 {
		if err := uc.images.Remove(ctx, deleted.Images); err != nil {
			uc.logger.Warn("failed to remove images of deleted product",
				zap.String("product_id", deleted.ID),
				zap.Strings("images", deleted.Images),
				zap.Error(err),
			)
		}
	}
	return nil
}

func (uc *productUseCase) UploadImage(ctx context.Context, input *dto.ImageUpload) (*dto.ImageResult, error) {
	p, err := uc.repo.FindByID(ctx, input.ProductID)
	if err != nil {
		return nil, apperror.Store(i18n.MsgInternal, err)
	}
	if p == nil {
		return nil, apperror.NotFound(i18n.MsgProductNotFound)
	}

	name := objectName(p.ID, input.FileName)
	if err := uc.images.Upload(ctx, name, input.ContentType, input.Body); err != nil {
		return nil, apperror.Store(i18n.MsgUploadFailed, err)
	}

	updated, err := uc.repo.AppendImage(ctx, p.ID, name)
	if err != nil || updated == nil {
		// The product vanished or the write failed; do not leave an orphan object.
		if rmErr := uc.images.Remove(ctx, []string{name}); rmErr != nil {
			uc.logger.Warn("failed to remove orphaned image", zap.String("name", name), zap.Error(rmErr))
		}
		if err != nil {
			return nil, apperror.Store(i18n.MsgUploadFailed, err)
		}
		return nil, apperror.NotFound(i18n.MsgProductNotFound)
	}

	uc.events.ProductUpserted(ctx, updated)
	return &dto.ImageResult{
		Name:    name,
		URL:     uc.images.PublicURL(name),
		Product: updated,
	}, nil
}

func (uc *productUseCase) DeleteImages(ctx context.Context, names []string) error {
	names = cleanNames(names)
	if len(names) == 0 {
		return apperror.Validation(i18n.MsgImageNamesRequired)
	}

	if err := uc.images.Remove(ctx, names); err != nil {
		return apperror.Store(i18n.MsgInternal, err)
	}

	touched, err := uc.repo.DetachImages(ctx, names)
	if err != nil {
		return apperror.Store(i18n.MsgInternal, err)
	}
	for i := range touched {
		uc.events.ProductUpserted(ctx, &touched[i])
	}
	return nil
}

func fromInput(input *dto.ProductInput) (*model.Product, error) {
	if strings.TrimSpace(input.NameAr) == "" && strings.TrimSpace(input.NameEn) == "" {
		return nil, apperror.Validation(i18n.MsgNameRequired)
	}
	price, err := model.ParseAmount(input.Price)
	if err != nil {
		return nil, apperror.Validation(i18n.MsgPriceInvalid)
	}
	quantity := 0
	if input.Quantity != nil {
		quantity = *input.Quantity
	}
	if quantity < 0 {
		return nil, apperror.Validation(i18n.MsgQuantityNegative)
	}

	return &model.Product{
		NameAr:         strings.TrimSpace(input.NameAr),
		NameEn:         strings.TrimSpace(input.NameEn),
		DescriptionAr:  input.DescriptionAr,
		DescriptionEn:  input.DescriptionEn,
		Price:          price,
		Quantity:       quantity,
		ParentCategory: strings.TrimSpace(input.ParentCategory),
		Subcategory:    strings.TrimSpace(input.Subcategory),
	}, nil
}

// objectName groups a product's images under its id and never reuses a name.
func objectName(productID, fileName string) string {
	return "products/" + productID + "/" + uuid.New().String() + strings.ToLower(filepath.Ext(fileName))
}

func cleanNames(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
