package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/fekuna/eyewear-storefront-service/internal/cachekey"
	"github.com/fekuna/eyewear-storefront-service/internal/model"
	"github.com/fekuna/eyewear-storefront-service/internal/shipping"
	"github.com/fekuna/eyewear-storefront-service/internal/shipping/dto"
	"github.com/fekuna/eyewear-storefront-service/pkg/apperror"
	"github.com/fekuna/eyewear-storefront-service/pkg/cache"
	"github.com/fekuna/eyewear-storefront-service/pkg/i18n"
	"github.com/fekuna/eyewear-storefront-service/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type shippingUseCase struct {
	repo   shipping.Repository
	cache  cache.Store
	logger logger.ZapLogger
}

func NewShippingUseCase(repo shipping.Repository, store cache.Store, log logger.ZapLogger) shipping.UseCase {
	return &shippingUseCase{
		repo:   repo,
		cache:  store,
		logger: log,
	}
}

func (uc *shippingUseCase) ListCities(ctx context.Context, activeOnly bool) ([]model.ShippingCity, error) {
	return cache.Remember(ctx, uc.cache, cachekey.List(cachekey.ShippingCities, activeOnly), cachekey.TTL,
		func(ctx context.Context) ([]model.ShippingCity, error) {
			cities, err := uc.repo.FindAll(ctx, activeOnly)
			if err != nil {
				return nil, apperror.Store(i18n.MsgInternal, err)
			}
			return cities, nil
		})
}

func (uc *shippingUseCase) CreateCity(ctx context.Context, input *dto.ShippingCityInput) (*model.ShippingCity, error) {
	city, err := fromInput(input)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	city.ID = uuid.New().String()
	city.CreatedAt = now
	city.UpdatedAt = now

	if err := uc.repo.Create(ctx, city); err != nil {
		return nil, apperror.Store(i18n.MsgInternal, err)
	}
	uc.invalidate(ctx)
	return city, nil
}

func (uc *shippingUseCase) UpdateCity(ctx context.Context, id string, input *dto.ShippingCityInput) (*model.ShippingCity, error) {
	city, err := fromInput(input)
	if err != nil {
		return nil, err
	}
	city.ID = id
	city.UpdatedAt = time.Now()

	updated, err := uc.repo.Update(ctx, city)
	if err != nil {
		return nil, apperror.Store(i18n.MsgInternal, err)
	}
	if updated == nil {
		return nil, apperror.NotFound(i18n.MsgShippingCityNotFound)
	}

	uc.invalidate(ctx)
	return updated, nil
}

func (uc *shippingUseCase) DeleteCity(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return apperror.Store(i18n.MsgInternal, err)
	}
	uc.invalidate(ctx)
	return nil
}

func fromInput(input *dto.ShippingCityInput) (*model.ShippingCity, error) {
	if strings.TrimSpace(input.NameEn) == "" {
		return nil, apperror.Validation(i18n.MsgShippingNameRequired)
	}
	fee, err := model.ParseAmount(input.ShippingFee)
	if err != nil {
		return nil, apperror.Validation(i18n.MsgShippingFeeInvalid)
	}

	city := &model.ShippingCity{
		NameAr:      strings.TrimSpace(input.NameAr),
		NameEn:      strings.TrimSpace(input.NameEn),
		ShippingFee: fee,
		IsActive:    true,
	}
	if input.SortOrder != nil {
		city.SortOrder = *input.SortOrder
	}
	if input.IsActive != nil {
		city.IsActive = *input.IsActive
	}
	return city, nil
}

func (uc *shippingUseCase) invalidate(ctx context.Context) {
	if err := uc.cache.Delete(ctx, cachekey.Lists(cachekey.ShippingCities)...); err != nil {
		uc.logger.Warn("failed to invalidate shipping cache", zap.Error(err))
	}
}
