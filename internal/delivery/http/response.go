package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"sellerhub/internal/calc"
	"sellerhub/internal/domain"
)

// Response represents a standardized API response
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

// SuccessResponse sends a success response
func SuccessResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, Response{
		Status: "success",
		Data:   data,
	})
}

// SuccessMessageResponse sends a success response with a message
func SuccessMessageResponse(c echo.Context, message string, data interface{}) error {
	return c.JSON(http.StatusOK, Response{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

// CreatedResponse sends a 201 Created response
func CreatedResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, Response{
		Status: "success",
		Data:   data,
	})
}

// ErrorResponse sends an error response
func ErrorResponse(c echo.Context, statusCode int, message string, err interface{}) error {
	return c.JSON(statusCode, Response{
		Status:  "error",
		Message: message,
		Error:   err,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, message string) error {
	return ErrorResponse(c, http.StatusBadRequest, message, nil)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, message string) error {
	return ErrorResponse(c, http.StatusUnauthorized, message, nil)
}

// ForbiddenResponse sends a 403 Forbidden response
func ForbiddenResponse(c echo.Context, message string) error {
	return ErrorResponse(c, http.StatusForbidden, message, nil)
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, message string) error {
	return ErrorResponse(c, http.StatusNotFound, message, nil)
}

// ConflictResponse sends a 409 Conflict response
func ConflictResponse(c echo.Context, message string) error {
	return ErrorResponse(c, http.StatusConflict, message, nil)
}

// UnprocessableResponse sends a 422 Unprocessable Entity response
func UnprocessableResponse(c echo.Context, message string) error {
	return ErrorResponse(c, http.StatusUnprocessableEntity, message, nil)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, message string, err error) error {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	return ErrorResponse(c, http.StatusInternalServerError, message, errMsg)
}

// FailureResponse maps a service error to the matching HTTP response.
// Unknown errors become a generic 500 without leaking internals.
func FailureResponse(c echo.Context, err error) error {
	var insufficient *domain.InsufficientPlanError
	var dependency *domain.DependencyError

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return NotFoundResponse(c, "Record not found")
	case errors.Is(err, domain.ErrEmailTaken):
		return ConflictResponse(c, "Email already in use")
	case errors.Is(err, domain.ErrConnectionExists):
		return ConflictResponse(c, "An active connection for this store type already exists")
	case errors.Is(err, domain.ErrInvalidCredentials):
		return UnauthorizedResponse(c, "Invalid credentials")
	case errors.Is(err, domain.ErrUserNotFound):
		return UnauthorizedResponse(c, "User not found")
	case errors.Is(err, domain.ErrAccountDisabled):
		return ForbiddenResponse(c, "Account disabled")
	case errors.Is(err, domain.ErrInvalidStoreCredentials):
		return BadRequestResponse(c, "Invalid store API credentials")
	case errors.Is(err, calc.ErrZeroCostPrice),
		errors.Is(err, calc.ErrMarginTooHigh),
		errors.Is(err, calc.ErrFeesExceedRevenue):
		return UnprocessableResponse(c, err.Error())
	case errors.As(err, &insufficient):
		return ForbiddenResponse(c, insufficient.Error())
	case errors.As(err, &dependency):
		return ErrorResponse(c, http.StatusBadGateway, "External service unavailable", nil)
	default:
		return InternalServerErrorResponse(c, "Internal server error", nil)
	}
}
