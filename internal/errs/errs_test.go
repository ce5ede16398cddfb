package errs_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/UnknownOlympus/hestia/internal/errs"
	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     *errs.HTTPError
		status  int
		code    string
		message string
	}{
		{"not found", errs.NewNotFoundError("Employee not found"), http.StatusNotFound, "NOT_FOUND", "Employee not found"},
		{
			"validation", errs.NewValidationError("Validation failed", nil),
			http.StatusUnprocessableEntity, "UNPROCESSABLE_ENTITY", "Validation failed",
		},
		{
			"internal", errs.NewInternalServerError(),
			http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Internal Server Error",
		},
		{
			"from status", errs.FromStatus(http.StatusMethodNotAllowed),
			http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method Not Allowed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.status, tt.err.Status)
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.message, tt.err.Message)
			assert.Equal(t, tt.message, tt.err.Error())
		})
	}
}

func TestHTTPError_Is(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("handler: %w", errs.NewNotFoundError("Employee not found"))

	assert.ErrorIs(t, wrapped, errs.NewNotFoundError("anything"))
	assert.NotErrorIs(t, wrapped, errs.NewInternalServerError())

	var httpErr *errs.HTTPError
	assert.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestNewValidationError_CarriesFields(t *testing.T) {
	t.Parallel()

	fields := []errs.FieldError{{Field: "name", Error: "is required"}}

	err := errs.NewValidationError("Validation failed", fields)

	assert.Equal(t, fields, err.Errors)
}
