package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/fekuna/eyewear-storefront-service/internal/cachekey"
	"github.com/fekuna/eyewear-storefront-service/internal/carousel"
	"github.com/fekuna/eyewear-storefront-service/internal/carousel/dto"
	"github.com/fekuna/eyewear-storefront-service/internal/model"
	"github.com/fekuna/eyewear-storefront-service/pkg/apperror"
	"github.com/fekuna/eyewear-storefront-service/pkg/cache"
	"github.com/fekuna/eyewear-storefront-service/pkg/i18n"
	"github.com/fekuna/eyewear-storefront-service/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type carouselUseCase struct {
	repo   carousel.Repository
	cache  cache.Store
	logger logger.ZapLogger
}

func NewCarouselUseCase(repo carousel.Repository, store cache.Store, log logger.ZapLogger) carousel.UseCase {
	return &carouselUseCase{
		repo:   repo,
		cache:  store,
		logger: log,
	}
}

func (uc *carouselUseCase) ListSlides(ctx context.Context, activeOnly bool) ([]model.CarouselSlide, error) {
	return cache.Remember(ctx, uc.cache, cachekey.List(cachekey.CarouselSlides, activeOnly), cachekey.TTL,
		func(ctx context.Context) ([]model.CarouselSlide, error) {
			slides, err := uc.repo.FindAll(ctx, activeOnly)
			if err != nil {
				return nil, apperror.Store(i18n.MsgInternal, err)
			}
			return slides, nil
		})
}

func (uc *carouselUseCase) CreateSlide(ctx context.Context, input *dto.SlideInput) (*model.CarouselSlide, error) {
	if strings.TrimSpace(input.ImageURL) == "" {
		return nil, apperror.Validation(i18n.MsgImageURLRequired)
	}

	now := time.Now()
	slide := newSlide(input)
	slide.ID = uuid.New().String()
	slide.CreatedAt = now
	slide.UpdatedAt = now

	if err := uc.repo.Create(ctx, slide); err != nil {
		return nil, apperror.Store(i18n.MsgInternal, err)
	}
	uc.invalidate(ctx)
	return slide, nil
}

func (uc *carouselUseCase) UpdateSlide(ctx context.Context, id string, input *dto.SlideInput) (*model.CarouselSlide, error) {
	if strings.TrimSpace(input.ImageURL) == "" {
		return nil, apperror.Validation(i18n.MsgImageURLRequired)
	}

	slide := newSlide(input)
	slide.ID = id
	slide.UpdatedAt = time.Now()

	updated, err := uc.repo.Update(ctx, slide)
	if err != nil {
		return nil, apperror.Store(i18n.MsgInternal, err)
	}
	if updated == nil {
		return nil, apperror.NotFound(i18n.MsgSlideNotFound)
	}

	uc.invalidate(ctx)
	return updated, nil
}

func (uc *carouselUseCase) DeleteSlide(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return apperror.Store(i18n.MsgInternal, err)
	}
	uc.invalidate(ctx)
	return nil
}

func newSlide(input *dto.SlideInput) *model.CarouselSlide {
	s := &model.CarouselSlide{
		TitleAr:    input.TitleAr,
		TitleEn:    input.TitleEn,
		SubtitleAr: input.SubtitleAr,
		SubtitleEn: input.SubtitleEn,
		ImageURL:   strings.TrimSpace(input.ImageURL),
		LinkURL:    strings.TrimSpace(input.LinkURL),
		IsActive:   true,
	}
	if input.SortOrder != nil {
		s.SortOrder = *input.SortOrder
	}
	if input.IsActive != nil {
		s.IsActive = *input.IsActive
	}
	return s
}

func (uc *carouselUseCase) invalidate(ctx context.Context) {
	if err := uc.cache.Delete(ctx, cachekey.Lists(cachekey.CarouselSlides)...); err != nil {
		uc.logger.Warn("failed to invalidate carousel cache", zap.Error(err))
	}
}
