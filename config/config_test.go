package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roombook/config"
)

func TestGet(t *testing.T) {
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("APP_RATE_LIMITER_ENABLE", "true")
	t.Setenv("APP_RATE_LIMITER_MAX_REQUESTS", "5")
	t.Setenv("APP_CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("SEED_ROOMS", "12")
	t.Setenv("EXTERNAL_OTEL_ENDPOINT", "collector:4317")

	require.NoError(t, config.Init())

	cfg := config.Get()

	assert.Equal(t, "8081", cfg.Server.Port)
	assert.True(t, cfg.App.RateLimiter.Enable)
	assert.Equal(t, 5, cfg.App.RateLimiter.MaxRequests)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.App.CORS.AllowedOrigins)
	assert.Equal(t, 12, cfg.Seed.Rooms)
	assert.Equal(t, "collector:4317", cfg.External.Otel.Endpoint)
	assert.Same(t, cfg, config.Get(), "configuration is a singleton")
}
