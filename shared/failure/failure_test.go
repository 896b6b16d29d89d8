package failure_test

import (
	"agenda/shared/failure"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{Code: http.StatusBadRequest, Message: "date is required"}

	assert.Equal(t, "date is required", f.Error())
}

func TestInternalServerError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, failure.InternalServerError.Code)
	assert.Equal(t, "internal server error", failure.InternalServerError.Message)
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "bad request",
			err:     failure.BadRequest(errors.New("invalid date")),
			code:    http.StatusBadRequest,
			message: "invalid date",
		},
		{
			name:    "bad request from string",
			err:     failure.BadRequestFromString("time_slot must be valid"),
			code:    http.StatusBadRequest,
			message: "time_slot must be valid",
		},
		{
			name:    "not found",
			err:     failure.NotFound("booking not found"),
			code:    http.StatusNotFound,
			message: "booking not found",
		},
		{
			name:    "conflict",
			err:     failure.Conflict("time slot already booked for this location"),
			code:    http.StatusConflict,
			message: "time slot already booked for this location",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f *failure.Failure

			assert.ErrorAs(t, tt.err, &f)
			assert.Equal(t, tt.code, f.Code)
			assert.Equal(t, tt.message, f.Message)
		})
	}
}

func TestNilInputs(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{name: "failure error", input: failure.Conflict("taken"), expected: http.StatusConflict},
		{name: "wrapped failure error", input: fmt.Errorf("create: %w", failure.NotFound("gone")), expected: http.StatusNotFound},
		{name: "regular error", input: errors.New("regular error"), expected: http.StatusInternalServerError},
		{name: "nil error", input: nil, expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, failure.GetCode(tt.input))
		})
	}
}

func TestIsFailure(t *testing.T) {
	assert.True(t, failure.IsFailure(fmt.Errorf("wrap: %w", failure.BadRequestFromString("x"))))
	assert.False(t, failure.IsFailure(errors.New("pq: connection refused")))
}
