package http

import (
	"agenda/config"
	otelMocks "agenda/infras/otel/mocks"
	"agenda/internal/domains/booking/mocks"
	"agenda/internal/domains/booking/model/dto"
	"agenda/internal/handlers/booking"
	"agenda/transport/http/middleware"
	"agenda/transport/http/router"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestServer(t *testing.T) (*HTTP, *mocks.MockBookingService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := mocks.NewMockBookingService(ctrl)
	otl := otelMocks.NewOtel()
	cfg := &config.Config{}

	r := router.New(cfg, router.DomainHandlers{Booking: booking.New(svc, otl)}, middleware.NewAppMiddleware(otl, cfg, nil))

	return New(cfg, r), svc
}

func TestHealth(t *testing.T) {
	server, _ := newTestServer(t)
	handler := server.Handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ServerStateReady, server.State())

	server.setState(ServerStateInGracePeriod)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRoutesMounted(t *testing.T) {
	server, svc := newTestServer(t)
	svc.EXPECT().Catalog(gomock.Any()).Return(dto.CatalogResponse{})

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/catalog", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	rec = httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/unknown", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
