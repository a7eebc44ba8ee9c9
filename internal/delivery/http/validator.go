package http

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RequestValidator adapts go-playground/validator to echo's Validator
// interface so `validate` struct tags on DTOs are enforced at bind time
type RequestValidator struct {
	validator *validator.Validate
}

// NewRequestValidator creates the shared request validator
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validator: validator.New()}
}

// Validate implements echo.Validator. Field-level failures surface as a
// 400 with per-field detail.
func (v *RequestValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		var details []map[string]string
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			for _, fieldErr := range validationErrors {
				details = append(details, map[string]string{
					"field": fieldErr.Field(),
					"rule":  fieldErr.Tag(),
				})
			}
		}
		return echo.NewHTTPError(http.StatusBadRequest, map[string]interface{}{
			"message": "Invalid input",
			"details": details,
		})
	}
	return nil
}
