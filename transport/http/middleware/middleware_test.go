package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"roombook/config"
	"roombook/infras/otel/mocks"
	cacheMocks "roombook/shared/cache/mocks"
	"roombook/shared/constant"
	"roombook/transport/http/middleware"
)

var ok = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
})

func limiterConfig(enable bool) *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = enable
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

func request() *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)
	req.Header.Set(constant.RequestHeaderForwardedFor, "10.0.0.1, 10.0.0.2")
	req.Header.Set(constant.RequestHeaderUserAgent, "go-test")

	return req
}

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name      string
		count     int
		status    int
		remaining string
	}{
		{name: "first request", count: 1, status: http.StatusNoContent, remaining: "1"},
		{name: "at limit", count: 2, status: http.StatusNoContent, remaining: "0"},
		{name: "over limit", count: 3, status: http.StatusTooManyRequests, remaining: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			cache := cacheMocks.NewMockRedisCache(ctrl)
			cache.EXPECT().
				Increment(gomock.Any(), "limiter:10.0.0.1:go-test", 60).
				Return(tt.count, nil)

			mw := middleware.NewAppMiddleware(mocks.NewOtel(), limiterConfig(true), cache)

			rec := httptest.NewRecorder()
			mw.RateLimit()(ok).ServeHTTP(rec, request())

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "2", rec.Header().Get(constant.RequestHeaderRateLimit))
			assert.Equal(t, tt.remaining, rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
		})
	}
}

func TestRateLimit_CacheErrorAllowsRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := cacheMocks.NewMockRedisCache(ctrl)
	cache.EXPECT().Increment(gomock.Any(), gomock.Any(), gomock.Any()).Return(0, errors.New("connection refused"))

	mw := middleware.NewAppMiddleware(mocks.NewOtel(), limiterConfig(true), cache)

	rec := httptest.NewRecorder()
	mw.RateLimit()(ok).ServeHTTP(rec, request())

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRateLimit_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	mw := middleware.NewAppMiddleware(mocks.NewOtel(), limiterConfig(false), cache)

	rec := httptest.NewRecorder()
	mw.RateLimit()(ok).ServeHTTP(rec, request())

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get(constant.RequestHeaderRateLimit))
}

func TestRequestID(t *testing.T) {
	mw := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{}, nil)

	var seen string
	handler := mw.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = middleware.GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(constant.RequestHeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(constant.RequestHeaderRequestID, "abc-123")

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", rec.Header().Get(constant.RequestHeaderRequestID))
}

func TestTracing(t *testing.T) {
	ot := mocks.NewOtel()
	mw := middleware.NewAppMiddleware(ot, &config.Config{}, nil)

	rec := httptest.NewRecorder()
	mw.Tracing(ok).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/availability", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{"GET /v1/availability"}, ot.Spans())
}
