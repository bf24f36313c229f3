package listener

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fekuna/eyewear-storefront-service/internal/model"
	"github.com/fekuna/eyewear-storefront-service/internal/product"
	"github.com/fekuna/eyewear-storefront-service/pkg/logger"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

// IndexListener applies product events to the search index.
type IndexListener struct {
	reader MessageReader
	index  product.SearchIndex
	logger logger.ZapLogger
	retry  time.Duration
}

func NewIndexListener(reader MessageReader, index product.SearchIndex, log logger.ZapLogger) *IndexListener {
	return &IndexListener{
		reader: reader,
		index:  index,
		logger: log,
		retry:  time.Second,
	}
}

func (l *IndexListener) Start(ctx context.Context) {
	l.logger.Info("Starting product index listener")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Stopping product index listener")
			return
		default:
			msg, err := l.reader.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				l.logger.Error("Failed to read kafka message", zap.Error(err))
				select {
				case <-ctx.Done():
					l.logger.Info("Stopping product index listener")
					return
				case <-time.After(l.retry):
				}
				continue
			}
			if err := l.Handle(ctx, msg.Value); err != nil {
				l.logger.Error("Failed to apply product event",
					zap.String("key", string(msg.Key)),
					zap.Int64("offset", msg.Offset),
					zap.Error(err),
				)
			}
		}
	}
}

// Handle applies one encoded ProductEvent. Stock events without a product
// snapshot are skipped; the next upsert carries the current state.
func (l *IndexListener) Handle(ctx context.Context, value []byte) error {
	var event model.ProductEvent
	if err := json.Unmarshal(value, &event); err != nil {
		return fmt.Errorf("decode product event: %w", err)
	}

	switch event.EventType {
	case model.EventProductUpserted, model.EventStockSold:
		if event.Product == nil {
			l.logger.Debug("Skipping product event without snapshot",
				zap.String("event_type", event.EventType),
				zap.String("product_id", event.ProductID),
			)
			return nil
		}
		return l.index.Index(ctx, event.Product)
	case model.EventProductDeleted:
		return l.index.Remove(ctx, event.ProductID)
	default:
		return nil
	}
}
