package usecase

import (
	"context"
	"sort"

	"github.com/fekuna/eyewear-storefront-service/internal/analytics"
	"github.com/fekuna/eyewear-storefront-service/internal/model"
	"github.com/fekuna/eyewear-storefront-service/pkg/apperror"
	"github.com/fekuna/eyewear-storefront-service/pkg/i18n"
	"github.com/fekuna/eyewear-storefront-service/pkg/logger"
	"github.com/shopspring/decimal"
)

type analyticsUseCase struct {
	repo            analytics.Repository
	totalCategories int
	logger          logger.ZapLogger
}

// NewAnalyticsUseCase reports totalCategories verbatim; it is configuration,
// not derived from the data.
func NewAnalyticsUseCase(repo analytics.Repository, totalCategories int, log logger.ZapLogger) analytics.UseCase {
	return &analyticsUseCase{
		repo:            repo,
		totalCategories: totalCategories,
		logger:          log,
	}
}

func (uc *analyticsUseCase) GetAnalytics(ctx context.Context) (*model.Analytics, error) {
	prices, err := uc.repo.ListPrices(ctx)
	if err != nil {
		return nil, apperror.Store(i18n.MsgAnalyticsFailed, err)
	}
	pairs, err := uc.repo.ListCategoryPairs(ctx)
	if err != nil {
		return nil, apperror.Store(i18n.MsgAnalyticsFailed, err)
	}

	out := PriceStats(prices)
	out.Breakdown = Breakdown(pairs)
	out.TotalCategories = uc.totalCategories
	return out, nil
}

// PriceStats is all zeros for an empty set.
func PriceStats(prices []decimal.Decimal) *model.Analytics {
	out := &model.Analytics{Breakdown: []model.CategoryCount{}}
	if len(prices) == 0 {
		return out
	}

	sum := decimal.Zero
	out.Min, out.Max = prices[0], prices[0]
	for _, p := range prices {
		sum = sum.Add(p)
		if p.LessThan(out.Min) {
			out.Min = p
		}
		if p.GreaterThan(out.Max) {
			out.Max = p
		}
	}

	out.Count = len(prices)
	out.Avg = sum.Div(decimal.NewFromInt(int64(len(prices))))
	return out
}

// Breakdown counts pairs per "parent_subcategory" key, most frequent first.
// Equal counts keep first-encounter order.
func Breakdown(pairs []model.CategoryPair) []model.CategoryCount {
	counts := []model.CategoryCount{}
	index := make(map[string]int, len(pairs))
	for _, p := range pairs {
		key := p.Key()
		if i, ok := index[key]; ok {
			counts[i].Count++
			continue
		}
		index[key] = len(counts)
		counts = append(counts, model.CategoryCount{Category: key, Count: 1})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}
