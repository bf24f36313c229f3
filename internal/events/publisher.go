package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fekuna/eyewear-storefront-service/internal/model"
	"github.com/fekuna/eyewear-storefront-service/pkg/broker"
	"github.com/fekuna/eyewear-storefront-service/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Publisher emits product events keyed by product id so a product's events
// stay ordered within one partition. Failures are logged, never returned.
type Publisher struct {
	broker broker.Publisher
	logger logger.ZapLogger
	now    func() time.Time
}

func NewPublisher(b broker.Publisher, log logger.ZapLogger) *Publisher {
	return &Publisher{broker: b, logger: log, now: time.Now}
}

func (p *Publisher) ProductUpserted(ctx context.Context, product *model.Product) {
	p.publish(ctx, &model.ProductEvent{
		EventType: model.EventProductUpserted,
		ProductID: product.ID,
		Product:   product,
	})
}

func (p *Publisher) ProductDeleted(ctx context.Context, id string) {
	p.publish(ctx, &model.ProductEvent{
		EventType: model.EventProductDeleted,
		ProductID: id,
	})
}

// StockSold carries the refreshed product when the caller could read it back.
func (p *Publisher) StockSold(ctx context.Context, productID string, quantity int, product *model.Product) {
	p.publish(ctx, &model.ProductEvent{
		EventType: model.EventStockSold,
		ProductID: productID,
		Quantity:  quantity,
		Product:   product,
	})
}

func (p *Publisher) publish(ctx context.Context, event *model.ProductEvent) {
	if p == nil || p.broker == nil {
		return
	}

	event.EventID = uuid.New().String()
	event.Timestamp = p.now().UTC()

	data, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("failed to marshal product event", zap.String("event_type", event.EventType), zap.Error(err))
		return
	}

	if err := p.broker.Publish(ctx, event.ProductID, data); err != nil {
		p.logger.Warn("failed to publish product event",
			zap.String("event_type", event.EventType),
			zap.String("product_id", event.ProductID),
			zap.Error(err),
		)
	}
}
