package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/fekuna/eyewear-storefront-service/internal/cachekey"
	"github.com/fekuna/eyewear-storefront-service/internal/display"
	"github.com/fekuna/eyewear-storefront-service/internal/display/dto"
	"github.com/fekuna/eyewear-storefront-service/internal/model"
	"github.com/fekuna/eyewear-storefront-service/pkg/apperror"
	"github.com/fekuna/eyewear-storefront-service/pkg/cache"
	"github.com/fekuna/eyewear-storefront-service/pkg/i18n"
	"github.com/fekuna/eyewear-storefront-service/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type displayUseCase struct {
	repo   display.Repository
	cache  cache.Store
	logger logger.ZapLogger
}

func NewDisplayUseCase(repo display.Repository, store cache.Store, log logger.ZapLogger) display.UseCase {
	return &displayUseCase{
		repo:   repo,
		cache:  store,
		logger: log,
	}
}

func (uc *displayUseCase) ListCategoryDisplays(ctx context.Context, visibleOnly bool) ([]model.CategoryDisplay, error) {
	return cache.Remember(ctx, uc.cache, cachekey.List(cachekey.CategoryDisplays, visibleOnly), cachekey.TTL,
		func(ctx context.Context) ([]model.CategoryDisplay, error) {
			out, err := uc.repo.FindCategoryDisplays(ctx, visibleOnly)
			if err != nil {
				return nil, apperror.Store(i18n.MsgInternal, err)
			}
			return out, nil
		})
}

func (uc *displayUseCase) CreateCategoryDisplay(ctx context.Context, input *dto.CategoryDisplayInput) (*model.CategoryDisplay, error) {
	if strings.TrimSpace(input.BackgroundImage) == "" {
		return nil, apperror.Validation(i18n.MsgBackgroundRequired)
	}

	now := time.Now()
	d := &model.CategoryDisplay{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CategoryKey:     strings.TrimSpace(input.CategoryKey),
		TitleAr:         input.TitleAr,
		TitleEn:         input.TitleEn,
		BackgroundImage: strings.TrimSpace(input.BackgroundImage),
		IsVisible:       boolOr(input.IsVisible, true),
		SortOrder:       intOr(input.SortOrder, 0),
	}

	if err := uc.repo.CreateCategoryDisplay(ctx, d); err != nil {
		return nil, apperror.Store(i18n.MsgInternal, err)
	}
	uc.invalidate(ctx, cachekey.CategoryDisplays)
	return d, nil
}

func (uc *displayUseCase) UpdateCategoryDisplay(ctx context.Context, id string, input *dto.CategoryDisplayInput) (*model.CategoryDisplay, error) {
	if strings.TrimSpace(input.BackgroundImage) == "" {
		return nil, apperror.Validation(i18n.MsgBackgroundRequired)
	}

	updated, err := uc.repo.UpdateCategoryDisplay(ctx, &model.CategoryDisplay{
		BaseModel:       model.BaseModel{ID: id, UpdatedAt: time.Now()},
		CategoryKey:     strings.TrimSpace(input.CategoryKey),
		TitleAr:         input.TitleAr,
		TitleEn:         input.TitleEn,
		BackgroundImage: strings.TrimSpace(input.BackgroundImage),
		IsVisible:       boolOr(input.IsVisible, true),
		SortOrder:       intOr(input.SortOrder, 0),
	})
	if err != nil {
		return nil, apperror.Store(i18n.MsgInternal, err)
	}
	if updated == nil {
		return nil, apperror.NotFound(i18n.MsgDisplayNotFound)
	}

	uc.invalidate(ctx, cachekey.CategoryDisplays)
	return updated, nil
}

func (uc *displayUseCase) DeleteCategoryDisplay(ctx context.Context, id string) error {
	if err := uc.repo.DeleteCategoryDisplay(ctx, id); err != nil {
		return apperror.Store(i18n.MsgInternal, err)
	}
	uc.invalidate(ctx, cachekey.CategoryDisplays)
	return nil
}

func (uc *displayUseCase) ListSubcategoryDisplays(ctx context.Context, visibleOnly bool) ([]model.SubcategoryDisplay, error) {
	return cache.Remember(ctx, uc.cache, cachekey.List(cachekey.SubcategoryDisplays, visibleOnly), cachekey.TTL,
		func(ctx context.Context) ([]model.SubcategoryDisplay, error) {
			out, err := uc.repo.FindSubcategoryDisplays(ctx, visibleOnly)
			if err != nil {
				return nil, apperror.Store(i18n.MsgInternal, err)
			}
			return out, nil
		})
}

// SaveSubcategoryDisplay is the only write path for subcategory displays.
func (uc *displayUseCase) SaveSubcategoryDisplay(ctx context.Context, input *dto.SubcategoryDisplayInput) (*model.SubcategoryDisplay, error) {
	parent := strings.TrimSpace(input.ParentCategory)
	key := strings.TrimSpace(input.SubcategoryKey)
	if parent == "" || key == "" {
		return nil, apperror.Validation(i18n.MsgDisplayKeysRequired)
	}
	if strings.TrimSpace(input.BackgroundImage) == "" {
		return nil, apperror.Validation(i18n.MsgBackgroundRequired)
	}

	now := time.Now()
	saved, err := uc.repo.UpsertSubcategoryDisplay(ctx, &model.SubcategoryDisplay{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ParentCategory:  parent,
		SubcategoryKey:  key,
		TitleAr:         input.TitleAr,
		TitleEn:         input.TitleEn,
		BackgroundImage: strings.TrimSpace(input.BackgroundImage),
		IsVisible:       boolOr(input.IsVisible, true),
		SortOrder:       intOr(input.SortOrder, 0),
	})
	if err != nil {
		return nil, apperror.Store(i18n.MsgInternal, err)
	}

	uc.invalidate(ctx, cachekey.SubcategoryDisplays)
	return saved, nil
}

func (uc *displayUseCase) DeleteSubcategoryDisplay(ctx context.Context, id string) error {
	if err := uc.repo.DeleteSubcategoryDisplay(ctx, id); err != nil {
		return apperror.Store(i18n.MsgInternal, err)
	}
	uc.invalidate(ctx, cachekey.SubcategoryDisplays)
	return nil
}

func (uc *displayUseCase) invalidate(ctx context.Context, entity string) {
	if err := uc.cache.Delete(ctx, cachekey.Lists(entity)...); err != nil {
		uc.logger.Warn("failed to invalidate display cache", zap.String("entity", entity), zap.Error(err))
	}
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
