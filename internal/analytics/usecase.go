package analytics

import (
	"context"

	"github.com/fekuna/eyewear-storefront-service/internal/model"
)

type UseCase interface {
	GetAnalytics(ctx context.Context) (*model.Analytics, error)
}
