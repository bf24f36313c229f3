package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/fekuna/eyewear-storefront-service/internal/events"
	"github.com/fekuna/eyewear-storefront-service/internal/inventory"
	"github.com/fekuna/eyewear-storefront-service/internal/inventory/dto"
	"github.com/fekuna/eyewear-storefront-service/pkg/apperror"
	"github.com/fekuna/eyewear-storefront-service/pkg/i18n"
	"github.com/fekuna/eyewear-storefront-service/pkg/logger"
	"go.uber.org/zap"
)

type inventoryUseCase struct {
	repo   inventory.Repository
	events *events.Publisher
	logger logger.ZapLogger
}

func NewInventoryUseCase(repo inventory.Repository, ev *events.Publisher, log logger.ZapLogger) inventory.UseCase {
	return &inventoryUseCase{
		repo:   repo,
		events: ev,
		logger: log,
	}
}

func (uc *inventoryUseCase) Sell(ctx context.Context, input *dto.SellInput) (*dto.SellResult, error) {
	// 1. Validate
	productID := strings.TrimSpace(input.ProductID)
	if productID == "" {
		return nil, apperror.Validation(i18n.MsgProductIDRequired)
	}
	if input.Quantity == nil {
		return nil, apperror.Validation(i18n.MsgQuantityRequired)
	}
	quantity := *input.Quantity
	if quantity <= 0 {
		return nil, apperror.Validation(i18n.MsgQuantityPositive)
	}

	// 2. Current stock
	p, err := uc.repo.FindProduct(ctx, productID)
	if err != nil {
		return nil, apperror.Store(i18n.MsgSellFailed, err)
	}
	if p == nil {
		return nil, apperror.NotFound(i18n.MsgProductNotFound)
	}
	if p.Quantity < quantity {
		return nil, apperror.Validation(i18n.MsgInsufficientStock)
	}

	// 3. Atomic decrement. Another sale may have taken the stock since step 2.
	if err := uc.repo.Decrement(ctx, productID, quantity); err != nil {
		if errors.Is(err, inventory.ErrInsufficientStock) {
			return nil, apperror.Validation(i18n.MsgInsufficientStock)
		}
		return nil, apperror.Store(i18n.MsgSellFailed, err)
	}

	// 4. Read back. The write already happened, so a failed read is not an error.
	updated, err := uc.repo.FindProduct(ctx, productID)
	if err != nil {
		uc.logger.Warn("sold but failed to reload product",
			zap.String("product_id", productID),
			zap.Error(err),
		)
		updated = nil
	}

	uc.events.StockSold(ctx, productID, quantity, updated)

	return &dto.SellResult{Success: true, Product: updated}, nil
}
