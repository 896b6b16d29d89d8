package validator_test

import (
	"agenda/config"
	"agenda/shared/failure"
	"agenda/shared/validator"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type room string

func (r room) Validate(_ *config.Config) error {
	if r != "lab" && r != "hall" {
		return errors.New("unknown room")
	}

	return nil
}

type request struct {
	Name string `json:"name" validate:"required,notblank,max=10"`
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
	Room room   `json:"room" validate:"required,agenda"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		data    request
		wantErr string
	}{
		{
			name: "valid",
			data: request{Name: "Ana", Date: "2024-03-10", Room: "lab"},
		},
		{
			name:    "missing name",
			data:    request{Date: "2024-03-10", Room: "lab"},
			wantErr: "name is required",
		},
		{
			name:    "blank name",
			data:    request{Name: "   ", Date: "2024-03-10", Room: "lab"},
			wantErr: "name must not be blank",
		},
		{
			name:    "name too long",
			data:    request{Name: "abcdefghijk", Date: "2024-03-10", Room: "lab"},
			wantErr: "name must be less than or equal to 10",
		},
		{
			name:    "malformed date",
			data:    request{Name: "Ana", Date: "10/03/2024", Room: "lab"},
			wantErr: "date must match the format 2006-01-02",
		},
		{
			name:    "unknown room",
			data:    request{Name: "Ana", Date: "2024-03-10", Room: "garage"},
			wantErr: "room is not an accepted value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name    string
		field   any
		tag     string
		wantErr bool
	}{
		{name: "uuid", field: "3f1c6f5e-2a9b-4c1e-9b0a-2f4d2d0f8c11", tag: "uuid"},
		{name: "not uuid", field: "42", tag: "uuid", wantErr: true},
		{name: "month", field: "2024-03", tag: "datetime=2006-01"},
		{name: "bad month", field: "2024-13", tag: "datetime=2006-01", wantErr: true},
		{name: "empty required", field: "", tag: "required", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, failure.IsFailure(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid body", body: `{"name":"Ana","date":"2024-03-10","room":"hall"}`},
		{name: "invalid field", body: `{"name":"Ana","date":"2024-03-10","room":"attic"}`, wantErr: true},
		{name: "malformed json", body: `{"name":"Ana",`, wantErr: true},
		{name: "empty object", body: `{}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data request

			err := validator.Validate(strings.NewReader(tt.body), &data)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, room("hall"), data.Room)
		})
	}
}
