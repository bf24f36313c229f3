package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/fekuna/eyewear-storefront-service/internal/cachekey"
	"github.com/fekuna/eyewear-storefront-service/internal/model"
	"github.com/fekuna/eyewear-storefront-service/internal/subcategory"
	"github.com/fekuna/eyewear-storefront-service/internal/subcategory/dto"
	"github.com/fekuna/eyewear-storefront-service/pkg/apperror"
	"github.com/fekuna/eyewear-storefront-service/pkg/cache"
	"github.com/fekuna/eyewear-storefront-service/pkg/i18n"
	"github.com/fekuna/eyewear-storefront-service/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type subcategoryUseCase struct {
	repo   subcategory.Repository
	cache  cache.Store
	logger logger.ZapLogger
}

func NewSubcategoryUseCase(repo subcategory.Repository, store cache.Store, log logger.ZapLogger) subcategory.UseCase {
	return &subcategoryUseCase{
		repo:   repo,
		cache:  store,
		logger: log,
	}
}

func (uc *subcategoryUseCase) ListSubcategories(ctx context.Context, activeOnly bool) ([]model.Subcategory, error) {
	return cache.Remember(ctx, uc.cache, cachekey.List(cachekey.Subcategories, activeOnly), cachekey.TTL,
		func(ctx context.Context) ([]model.Subcategory, error) {
			subs, err := uc.repo.FindAll(ctx, activeOnly)
			if err != nil {
				return nil, apperror.Store(i18n.MsgInternal, err)
			}

			ids := make([]string, 0, len(subs))
			seen := make(map[string]bool, len(subs))
			for _, s := range subs {
				if !seen[s.CategoryID] {
					seen[s.CategoryID] = true
					ids = append(ids, s.CategoryID)
				}
			}

			parents, err := uc.repo.FindCategoriesByIDs(ctx, ids)
			if err != nil {
				return nil, apperror.Store(i18n.MsgInternal, err)
			}
			byID := make(map[string]model.Category, len(parents))
			for _, c := range parents {
				byID[c.ID] = c
			}
			for i := range subs {
				if c, ok := byID[subs[i].CategoryID]; ok {
					subs[i].Category = &c
				}
			}
			return subs, nil
		})
}

func (uc *subcategoryUseCase) CreateSubcategory(ctx context.Context, input *dto.SubcategoryInput) (*model.Subcategory, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	now := time.Now()
	sub := &model.Subcategory{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	applyInput(sub, input)

	if err := uc.repo.Create(ctx, sub); err != nil {
		return nil, mapWriteError(err)
	}

	uc.invalidate(ctx)
	return sub, nil
}

func (uc *subcategoryUseCase) UpdateSubcategory(ctx context.Context, id string, input *dto.SubcategoryInput) (*model.Subcategory, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	sub := &model.Subcategory{BaseModel: model.BaseModel{ID: id, UpdatedAt: time.Now()}}
	applyInput(sub, input)

	updated, err := uc.repo.Update(ctx, sub)
	if err != nil {
		return nil, mapWriteError(err)
	}
	if updated == nil {
		return nil, apperror.NotFound(i18n.MsgSubcategoryNotFound)
	}

	uc.invalidate(ctx)
	return updated, nil
}

func (uc *subcategoryUseCase) DeleteSubcategory(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return apperror.Store(i18n.MsgInternal, err)
	}
	uc.invalidate(ctx)
	return nil
}

func validate(input *dto.SubcategoryInput) error {
	if strings.TrimSpace(input.NameAr) == "" && strings.TrimSpace(input.NameEn) == "" {
		return apperror.Validation(i18n.MsgNameRequired)
	}
	categoryID := strings.TrimSpace(input.CategoryID)
	if categoryID == "" {
		return apperror.Validation(i18n.MsgCategoryIDRequired)
	}
	if _, err := uuid.Parse(categoryID); err != nil {
		return apperror.Validation(i18n.MsgCategoryNotFound)
	}
	return nil
}

func applyInput(s *model.Subcategory, input *dto.SubcategoryInput) {
	s.CategoryID = strings.TrimSpace(input.CategoryID)
	s.NameAr = strings.TrimSpace(input.NameAr)
	s.NameEn = strings.TrimSpace(input.NameEn)
	s.DescriptionAr = input.DescriptionAr
	s.DescriptionEn = input.DescriptionEn
	s.Icon = input.Icon
	s.SortOrder = 0
	if input.SortOrder != nil {
		s.SortOrder = *input.SortOrder
	}
	s.IsActive = true
	if input.IsActive != nil {
		s.IsActive = *input.IsActive
	}
}

func mapWriteError(err error) error {
	if errors.Is(err, subcategory.ErrUnknownCategory) {
		return apperror.Validation(i18n.MsgCategoryNotFound)
	}
	return apperror.Store(i18n.MsgInternal, err)
}

// Category lists embed subcategories, so both are dropped.
func (uc *subcategoryUseCase) invalidate(ctx context.Context) {
	keys := cachekey.Lists(cachekey.Subcategories, cachekey.Categories)
	if err := uc.cache.Delete(ctx, keys...); err != nil {
		uc.logger.Warn("failed to invalidate subcategory cache", zap.Error(err))
	}
}
