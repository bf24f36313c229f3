package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/fekuna/eyewear-storefront-service/internal/model"
	"github.com/fekuna/eyewear-storefront-service/pkg/broker"
	"github.com/fekuna/eyewear-storefront-service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishKeysByProductID(t *testing.T) {
	var gotKey string
	var gotEvent model.ProductEvent
	pub := NewPublisher(broker.PublisherFunc(func(_ context.Context, key string, value []byte) error {
		gotKey = key
		return json.Unmarshal(value, &gotEvent)
	}), logger.NewNop())

	p := &model.Product{BaseModel: model.BaseModel{ID: "p-1"}, Quantity: 2}
	pub.StockSold(context.Background(), "p-1", 3, p)

	assert.Equal(t, "p-1", gotKey)
	assert.Equal(t, model.EventStockSold, gotEvent.EventType)
	assert.Equal(t, 3, gotEvent.Quantity)
	require.NotNil(t, gotEvent.Product)
	assert.Equal(t, 2, gotEvent.Product.Quantity)
	assert.NotEmpty(t, gotEvent.EventID)
	assert.False(t, gotEvent.Timestamp.IsZero())
}

func TestPublishFailureIsSwallowed(t *testing.T) {
	pub := NewPublisher(broker.PublisherFunc(func(context.Context, string, []byte) error {
		return errors.New("broker down")
	}), logger.NewNop())

	assert.NotPanics(t, func() { pub.ProductDeleted(context.Background(), "p-1") })

	var nilPub *Publisher
	assert.NotPanics(t, func() { nilPub.ProductDeleted(context.Background(), "p-1") })
}
