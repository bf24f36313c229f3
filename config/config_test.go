package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnvDefaults(t *testing.T) {
	cfg := LoadEnv()

	assert.Equal(t, 2, cfg.Analytics.TotalCategories)
	assert.Equal(t, "ar", cfg.I18n.DefaultLocale)
	assert.Equal(t, "products", cfg.Elastic.Index)
	assert.True(t, cfg.Redis.Enabled)
	assert.False(t, cfg.Redis.LocalCache)
	assert.False(t, cfg.Kafka.Enabled)
	assert.Empty(t, cfg.Tracing.OTLPEndpoint)
	assert.Equal(t, 1.0, cfg.Tracing.SampleRatio)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ANALYTICS_TOTAL_CATEGORIES", "5")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("REDIS_ENABLED", "false")
	t.Setenv("POSTGRES_MAX_OPEN_CONNS", "not-a-number")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("OTEL_TRACES_SAMPLER_RATIO", "0.1")
	t.Setenv("CACHE_LOCAL", "true")

	cfg := LoadEnv()

	assert.Equal(t, 5, cfg.Analytics.TotalCategories)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 10, cfg.Postgres.MaxOpenConns)
	assert.Equal(t, "9000", cfg.Server.HTTPPort)
	assert.Equal(t, 0.1, cfg.Tracing.SampleRatio)
	assert.True(t, cfg.Redis.LocalCache)
}
