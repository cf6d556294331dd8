package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Handoff.Store)
	assert.Equal(t, 30*time.Minute, cfg.Handoff.TTL)
	assert.Equal(t, 100, cfg.Checkout.StandardDeliveryFee)
	assert.Equal(t, 200, cfg.Checkout.ExpressDeliveryFee)
	assert.Equal(t, 50, cfg.Checkout.MealCost)
	assert.False(t, cfg.Catalog.SymmetricIncompatibility)
	assert.False(t, cfg.Kafka.Enabled())
	assert.Equal(t, 5*time.Second, cfg.Kafka.PublishTimeout)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("HANDOFF_STORE", "redis")
	t.Setenv("SESSION_IDLE_TIMEOUT", "45m")
	t.Setenv("CATALOG_SYMMETRIC_INCOMPATIBILITY", "true")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092")
	t.Setenv("KAFKA_PUBLISH_TIMEOUT", "2s")
	t.Setenv("DELIVERY_FEE_EXPRESS", "250")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "redis", cfg.Handoff.Store)
	assert.Equal(t, 45*time.Minute, cfg.Session.IdleTimeout)
	assert.True(t, cfg.Catalog.SymmetricIncompatibility)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.Kafka.Enabled())
	assert.Equal(t, 2*time.Second, cfg.Kafka.PublishTimeout)
	assert.Equal(t, 250, cfg.Checkout.ExpressDeliveryFee)
}

func TestParseHelpers_FallBackOnGarbage(t *testing.T) {
	assert.Equal(t, 5*time.Minute, parseDuration("soon", 5*time.Minute))
	assert.Equal(t, 7, parseInt("seven", 7))
	assert.False(t, parseBool("maybe"))
	assert.Empty(t, parseSlice(""))
	assert.Equal(t, []string{"a", "b"}, parseSlice("a,,b"))
}
