package middleware_test

import (
	"agenda/config"
	otelMocks "agenda/infras/otel/mocks"
	cacheMocks "agenda/shared/cache/mocks"
	"agenda/transport/http/middleware"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func limiterConfig(enable bool) *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = enable
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name       string
		enable     bool
		count      int64
		cacheErr   error
		wantCode   int
		wantRemain string
	}{
		{name: "disabled", enable: false, wantCode: http.StatusOK},
		{name: "first request", enable: true, count: 1, wantCode: http.StatusOK, wantRemain: "1"},
		{name: "last allowed", enable: true, count: 2, wantCode: http.StatusOK, wantRemain: "0"},
		{name: "over limit", enable: true, count: 3, wantCode: http.StatusTooManyRequests, wantRemain: "0"},
		{name: "cache down", enable: true, cacheErr: errors.New("dial tcp: refused"), wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			cache := cacheMocks.NewMockRedisCache(ctrl)

			if tt.enable {
				cache.EXPECT().
					Increment(gomock.Any(), "limiter:10.0.0.1:test-agent", 60).
					Return(tt.count, tt.cacheErr)
			}

			mw := middleware.NewAppMiddleware(otelMocks.NewOtel(), limiterConfig(tt.enable), cache)

			req := httptest.NewRequest(http.MethodGet, "/v1/catalog", nil)
			req.Header.Set("User-Agent", "test-agent")
			req.Header.Set("X-Forwarded-For", "10.0.0.1, 172.16.0.1")

			rec := httptest.NewRecorder()
			mw.RateLimit()(okHandler).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantRemain, rec.Header().Get("X-RateLimit-Remaining"))
		})
	}
}

func TestLoggingAndTracingPassThrough(t *testing.T) {
	mw := middleware.NewAppMiddleware(otelMocks.NewOtel(), &config.Config{}, nil)

	handler := mw.Tracing(mw.Logging(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/bookings", nil))

	assert.Equal(t, http.StatusConflict, rec.Code)
}
