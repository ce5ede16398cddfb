// Package errs defines the JSON error shape returned to API clients
// and constructors for the statuses the service produces.
package errs

import (
	"net/http"
	"strings"
)

// FieldError represents a field-level validation error.
//
//	{ "field": "name", "error": "is required" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// HTTPError is the error body written by the global error handler.
type HTTPError struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Status  int          `json:"status"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is an *HTTPError with the same status.
func (e *HTTPError) Is(target error) bool {
	other, ok := target.(*HTTPError)
	return ok && other.Status == e.Status
}

// MakeUpperCaseWithUnderscores converts "Not Found" into "NOT_FOUND".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}

func newHTTPError(status int, message string) *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(status)),
		Message: message,
		Status:  status,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string) *HTTPError {
	return newHTTPError(http.StatusNotFound, message)
}

// NewValidationError creates a 422 Unprocessable Entity HTTPError carrying per-field errors.
// It is used for bodies and path parameters that do not match the expected shape.
func NewValidationError(message string, fieldErrors []FieldError) *HTTPError {
	err := newHTTPError(http.StatusUnprocessableEntity, message)
	err.Errors = fieldErrors

	return err
}

// NewInternalServerError creates a 500 HTTPError whose message is the generic status text,
// so storage details never reach the client.
func NewInternalServerError() *HTTPError {
	return newHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

// FromStatus creates an HTTPError for any status using its standard text as the message.
func FromStatus(status int) *HTTPError {
	return newHTTPError(status, http.StatusText(status))
}
