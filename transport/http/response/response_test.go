package response_test

import (
	"agenda/shared/failure"
	"agenda/transport/http/response"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body["error"]
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "conflict",
			err:      failure.Conflict("time slot already booked for this location"),
			wantCode: http.StatusConflict,
			wantMsg:  "time slot already booked for this location",
		},
		{
			name:     "wrapped not found",
			err:      fmt.Errorf("cancel: %w", failure.NotFound("booking not found")),
			wantCode: http.StatusNotFound,
			wantMsg:  "booking not found",
		},
		{
			name:     "wrapped bad request keeps only its own message",
			err:      fmt.Errorf("create booking: validate: %w", failure.BadRequestFromString("date is required")),
			wantCode: http.StatusBadRequest,
			wantMsg:  "date is required",
		},
		{
			name:     "storage error is hidden",
			err:      errors.New("pq: password authentication failed for user \"agenda\""),
			wantCode: http.StatusInternalServerError,
			wantMsg:  "internal server error",
		},
		{
			name:     "server-side failure is hidden",
			err:      &failure.Failure{Code: http.StatusServiceUnavailable, Message: "disk full"},
			wantCode: http.StatusServiceUnavailable,
			wantMsg:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantMsg, decodeError(t, rec))
		})
	}
}

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusOK, []string{})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[]}`, rec.Body.String())
}
