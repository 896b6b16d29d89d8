package booking_test

import (
	otelMocks "agenda/infras/otel/mocks"
	"agenda/internal/domains/booking/mocks"
	"agenda/internal/domains/booking/model"
	"agenda/internal/domains/booking/model/dto"
	"agenda/internal/handlers/booking"
	gDto "agenda/shared/dto"
	"agenda/shared/failure"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*mocks.MockBookingService, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := mocks.NewMockBookingService(ctrl)

	handler := booking.New(svc, otelMocks.NewOtel())
	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	return svc, router
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	return rec
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body["error"]
}

func TestCreateBooking(t *testing.T) {
	body := `{"requester_name":"Ana","date":"2024-03-10","time_slot":"07:10/08:00","location":"Química"}`
	want := dto.CreateBookingRequest{
		RequesterName: "Ana",
		Date:          "2024-03-10",
		TimeSlot:      model.TimeSlot0710,
		Location:      model.LocationQuimica,
	}

	tests := []struct {
		name      string
		body      string
		setupMock func(svc *mocks.MockBookingService)
		wantCode  int
		wantError string
	}{
		{
			name: "created",
			body: body,
			setupMock: func(svc *mocks.MockBookingService) {
				svc.EXPECT().Create(gomock.Any(), want).Return(dto.BookingResponse{ID: "b1", RequesterName: "Ana"}, nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name: "conflict",
			body: body,
			setupMock: func(svc *mocks.MockBookingService) {
				svc.EXPECT().Create(gomock.Any(), want).Return(dto.BookingResponse{}, failure.Conflict("time slot already booked for this location"))
			},
			wantCode:  http.StatusConflict,
			wantError: "time slot already booked for this location",
		},
		{
			name:      "missing name",
			body:      `{"date":"2024-03-10","time_slot":"07:10/08:00","location":"Química"}`,
			setupMock: func(*mocks.MockBookingService) {},
			wantCode:  http.StatusBadRequest,
			wantError: "requester_name is required",
		},
		{
			name:      "malformed body",
			body:      `{"requester_name":`,
			setupMock: func(*mocks.MockBookingService) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "storage failure",
			body: body,
			setupMock: func(svc *mocks.MockBookingService) {
				svc.EXPECT().Create(gomock.Any(), want).Return(dto.BookingResponse{}, errors.New("pq: connection refused"))
			},
			wantCode:  http.StatusInternalServerError,
			wantError: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := setup(t)
			tt.setupMock(svc)

			rec := serve(router, http.MethodPost, "/v1/bookings", tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, errorMessage(t, rec))
			}

			if tt.wantCode == http.StatusCreated {
				var res struct {
					Data dto.BookingResponse `json:"data"`
				}

				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
				assert.Equal(t, "b1", res.Data.ID)
			}
		})
	}
}

func TestGetBookingsByDate(t *testing.T) {
	t.Run("empty day", func(t *testing.T) {
		svc, router := setup(t)
		svc.EXPECT().GetByDate(gomock.Any(), "2024-03-11").Return([]dto.BookingResponse{}, nil)

		rec := serve(router, http.MethodGet, "/v1/bookings?date=2024-03-11", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":[]}`, rec.Body.String())
	})

	t.Run("missing date", func(t *testing.T) {
		svc, router := setup(t)
		svc.EXPECT().GetByDate(gomock.Any(), "").Return(nil, failure.BadRequestFromString("date must match the format 2006-01-02"))

		rec := serve(router, http.MethodGet, "/v1/bookings", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetRecentBookings(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		wantLimit int
	}{
		{name: "no limit", target: "/v1/bookings/recent", wantLimit: 0},
		{name: "explicit limit", target: "/v1/bookings/recent?limit=5", wantLimit: 5},
		{name: "capped limit", target: "/v1/bookings/recent?limit=1000", wantLimit: 50},
		{name: "garbage limit", target: "/v1/bookings/recent?limit=abc", wantLimit: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := setup(t)
			svc.EXPECT().Recent(gomock.Any(), gDto.QueryParams{Limit: tt.wantLimit}).Return([]dto.BookingResponse{}, nil)

			rec := serve(router, http.MethodGet, tt.target, "")

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestCancelBooking(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "cancelled", wantCode: http.StatusOK},
		{name: "not found", err: failure.NotFound("booking not found"), wantCode: http.StatusNotFound},
		{name: "storage failure", err: errors.New("timeout"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := setup(t)
			svc.EXPECT().Cancel(gomock.Any(), "b1").Return(tt.err)

			rec := serve(router, http.MethodDelete, "/v1/bookings/b1", "")

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestGetCalendarAndAvailability(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().Calendar(gomock.Any(), "2024-03").Return(dto.CalendarResponse{
		"2024-03-10": {{ID: "b1"}},
	}, nil)
	svc.EXPECT().
		Availability(gomock.Any(), dto.AvailabilityRequest{Date: "2024-03-10", Location: model.LocationQuimica}).
		Return(dto.AvailabilityResponse{Date: "2024-03-10", Location: "Química"}, nil)

	rec := serve(router, http.MethodGet, "/v1/bookings/calendar?month=2024-03", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"2024-03-10"`)

	rec = serve(router, http.MethodGet, "/v1/bookings/availability?date=2024-03-10&location=Qu%C3%ADmica", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetCatalog(t *testing.T) {
	svc, router := setup(t)
	svc.EXPECT().Catalog(gomock.Any()).Return(dto.CatalogResponse{
		TimeSlots: []string{"07:10/08:00"},
		Locations: []string{"Química"},
	})

	rec := serve(router, http.MethodGet, "/v1/catalog", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"time_slots":["07:10/08:00"],"locations":["Química"]}}`, rec.Body.String())
}
