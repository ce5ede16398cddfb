// Package validation binds request bodies and checks them against the
// struct tags of the request types, producing client-facing field errors.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/UnknownOlympus/hestia/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const failedMessage = "Validation failed"

// Validatable is implemented by request payload types that know how to validate themselves.
type Validatable interface {
	Validate() error
}

var validate = newValidator()

func newValidator() *validator.Validate {
	vld := validator.New(validator.WithRequiredStructEnabled())

	// report fields by their JSON names
	vld.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return vld
}

// Struct validates a struct using its `validate` tags.
func Struct(payload any) error {
	return validate.Struct(payload)
}

// BindAndValidate binds the request body into payload and validates it.
// Shape errors are returned as a 422 *errs.HTTPError with field-level details.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return bindError(err)
	}

	if err := payload.Validate(); err != nil {
		return errs.NewValidationError(failedMessage, extractFieldErrors(err))
	}

	return nil
}

func bindError(err error) error {
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) && echoErr.Code == http.StatusUnsupportedMediaType {
		return err
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return errs.NewValidationError(failedMessage, []errs.FieldError{{
			Field: typeErr.Field,
			Error: "must be a " + typeErr.Type.String(),
		}})
	}

	message := "Malformed request body"
	if echoErr != nil {
		if msg, ok := echoErr.Message.(string); ok {
			message = msg
		}
	}

	return errs.NewValidationError(message, nil)
}

func extractFieldErrors(err error) []errs.FieldError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []errs.FieldError{{Field: "body", Error: err.Error()}}
	}

	fieldErrors := make([]errs.FieldError, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		var msg string

		switch fieldErr.Tag() {
		case "required":
			msg = "is required"
		default:
			if fieldErr.Param() != "" {
				msg = fmt.Sprintf("%s: %s", fieldErr.Tag(), fieldErr.Param())
			} else {
				msg = fieldErr.Tag()
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{Field: fieldErr.Field(), Error: msg})
	}

	return fieldErrors
}
