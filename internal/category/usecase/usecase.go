package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/fekuna/eyewear-storefront-service/internal/cachekey"
	"github.com/fekuna/eyewear-storefront-service/internal/category"
	"github.com/fekuna/eyewear-storefront-service/internal/category/dto"
	"github.com/fekuna/eyewear-storefront-service/internal/model"
	"github.com/fekuna/eyewear-storefront-service/pkg/apperror"
	"github.com/fekuna/eyewear-storefront-service/pkg/cache"
	"github.com/fekuna/eyewear-storefront-service/pkg/i18n"
	"github.com/fekuna/eyewear-storefront-service/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type categoryUseCase struct {
	repo   category.Repository
	cache  cache.Store
	logger logger.ZapLogger
}

func NewCategoryUseCase(repo category.Repository, store cache.Store, log logger.ZapLogger) category.UseCase {
	return &categoryUseCase{
		repo:   repo,
		cache:  store,
		logger: log,
	}
}

func (uc *categoryUseCase) ListCategories(ctx context.Context, activeOnly bool) ([]model.Category, error) {
	return cache.Remember(ctx, uc.cache, cachekey.List(cachekey.Categories, activeOnly), cachekey.TTL,
		func(ctx context.Context) ([]model.Category, error) {
			categories, err := uc.repo.FindAll(ctx, activeOnly)
			if err != nil {
				return nil, apperror.Store(i18n.MsgInternal, err)
			}
			subs, err := uc.repo.FindSubcategories(ctx, activeOnly)
			if err != nil {
				return nil, apperror.Store(i18n.MsgInternal, err)
			}
			return attachSubcategories(categories, subs), nil
		})
}

// attachSubcategories keeps the repository order of both slices.
func attachSubcategories(categories []model.Category, subs []model.Subcategory) []model.Category {
	byParent := make(map[string][]model.Subcategory, len(categories))
	for _, s := range subs {
		byParent[s.CategoryID] = append(byParent[s.CategoryID], s)
	}
	for i := range categories {
		children := byParent[categories[i].ID]
		if children == nil {
			children = []model.Subcategory{}
		}
		categories[i].Subcategories = children
	}
	return categories
}

func (uc *categoryUseCase) CreateCategory(ctx context.Context, input *dto.CategoryInput) (*model.Category, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	now := time.Now()
	cat := &model.Category{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	applyInput(cat, input)

	if err := uc.repo.Create(ctx, cat); err != nil {
		return nil, apperror.Store(i18n.MsgInternal, err)
	}
	cat.Subcategories = []model.Subcategory{}

	uc.invalidate(ctx)
	return cat, nil
}

func (uc *categoryUseCase) UpdateCategory(ctx context.Context, id string, input *dto.CategoryInput) (*model.Category, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	cat := &model.Category{BaseModel: model.BaseModel{ID: id, UpdatedAt: time.Now()}}
	applyInput(cat, input)

	updated, err := uc.repo.Update(ctx, cat)
	if err != nil {
		return nil, apperror.Store(i18n.MsgInternal, err)
	}
	if updated == nil {
		return nil, apperror.NotFound(i18n.MsgCategoryNotFound)
	}

	uc.invalidate(ctx)
	return updated, nil
}

func (uc *categoryUseCase) DeleteCategory(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return apperror.Store(i18n.MsgInternal, err)
	}
	uc.invalidate(ctx)
	return nil
}

func validate(input *dto.CategoryInput) error {
	if strings.TrimSpace(input.NameAr) == "" && strings.TrimSpace(input.NameEn) == "" {
		return apperror.Validation(i18n.MsgNameRequired)
	}
	return nil
}

// applyInput copies input onto c with the declared defaults.
func applyInput(c *model.Category, input *dto.CategoryInput) {
	c.NameAr = strings.TrimSpace(input.NameAr)
	c.NameEn = strings.TrimSpace(input.NameEn)
	c.DescriptionAr = input.DescriptionAr
	c.DescriptionEn = input.DescriptionEn
	c.Icon = input.Icon
	c.Color = input.Color
	if strings.TrimSpace(c.Color) == "" {
		c.Color = model.DefaultCategoryColor
	}
	c.SortOrder = 0
	if input.SortOrder != nil {
		c.SortOrder = *input.SortOrder
	}
	c.IsActive = true
	if input.IsActive != nil {
		c.IsActive = *input.IsActive
	}
}

// Subcategory lists embed their parent, so both are dropped.
func (uc *categoryUseCase) invalidate(ctx context.Context) {
	keys := cachekey.Lists(cachekey.Categories, cachekey.Subcategories)
	if err := uc.cache.Delete(ctx, keys...); err != nil {
		uc.logger.Warn("failed to invalidate category cache", zap.Error(err))
	}
}
