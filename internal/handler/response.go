package handler

import (
	"errors"
	"net/http"

	"github.com/dafibh/nivesh/nivesh-backend/internal/domain"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ProblemDetails represents an RFC 7807 Problem Details response
type ProblemDetails struct {
	Type     string            `json:"type"`
	Title    string            `json:"title"`
	Status   int               `json:"status"`
	Detail   string            `json:"detail,omitempty"`
	Instance string            `json:"instance,omitempty"`
	Errors   []ValidationError `json:"errors,omitempty"`
}

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error types
const (
	ErrorTypeValidation         = "https://nivesh.app/errors/validation"
	ErrorTypeNotFound           = "https://nivesh.app/errors/not-found"
	ErrorTypeUnauthorized       = "https://nivesh.app/errors/unauthorized"
	ErrorTypeInternal           = "https://nivesh.app/errors/internal"
	ErrorTypeServiceUnavailable = "https://nivesh.app/errors/service-unavailable"
	ErrorTypeRateLimit          = "https://nivesh.app/errors/rate-limit"
)

// NewValidationError creates a validation error response
func NewValidationError(c echo.Context, detail string, errors []ValidationError) error {
	return c.JSON(http.StatusBadRequest, ProblemDetails{
		Type:     ErrorTypeValidation,
		Title:    "Validation Error",
		Status:   http.StatusBadRequest,
		Detail:   detail,
		Instance: c.Request().URL.Path,
		Errors:   errors,
	})
}

// NewNotFoundError creates a not found error response
func NewNotFoundError(c echo.Context, detail string) error {
	return c.JSON(http.StatusNotFound, ProblemDetails{
		Type:     ErrorTypeNotFound,
		Title:    "Not Found",
		Status:   http.StatusNotFound,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// NewUnauthorizedError creates an unauthorized error response
func NewUnauthorizedError(c echo.Context, detail string) error {
	return c.JSON(http.StatusUnauthorized, ProblemDetails{
		Type:     ErrorTypeUnauthorized,
		Title:    "Unauthorized",
		Status:   http.StatusUnauthorized,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// NewInternalError creates an internal error response
func NewInternalError(c echo.Context, detail string) error {
	return c.JSON(http.StatusInternalServerError, ProblemDetails{
		Type:     ErrorTypeInternal,
		Title:    "Internal Server Error",
		Status:   http.StatusInternalServerError,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// NewServiceUnavailableError creates a service unavailable error response
func NewServiceUnavailableError(c echo.Context, detail string) error {
	return c.JSON(http.StatusServiceUnavailable, ProblemDetails{
		Type:     ErrorTypeServiceUnavailable,
		Title:    "Service Unavailable",
		Status:   http.StatusServiceUnavailable,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// planValidationErrors maps domain validation errors onto a field and message
var planValidationErrors = []struct {
	err     error
	field   string
	message string
}{
	{domain.ErrNameRequired, "name", "Name is required"},
	{domain.ErrNameTooLong, "name", "Name must be 255 characters or less"},
	{domain.ErrNegativeAmount, "amount", "Amounts must not be negative"},
	{domain.ErrAmountTooLarge, "amount", "Amounts must be less than 10,000,000,000,000"},
	{domain.ErrInvalidRate, "rate", "Rates must be between -100 and 100"},
	{domain.ErrInvalidDeadline, "deadlineYear", "Deadline year must be between 2000 and 2200"},
	{domain.ErrDerivedTarget, "targetAmount", "The emergency fund target is six months of expenses and cannot be set"},
	{domain.ErrInvalidInput, "", "Invalid input"},
}

// planError writes the response for an error returned by the plan or projection services.
// Unknown errors are logged and reported as internal errors with the given detail.
func planError(c echo.Context, err error, workspaceID int32, detail string) error {
	switch {
	case errors.Is(err, domain.ErrGoalNotFound):
		return NewNotFoundError(c, "Goal not found")
	case errors.Is(err, domain.ErrPlanNotFound), errors.Is(err, domain.ErrWorkspaceNotFound):
		return NewNotFoundError(c, "Plan not found")
	}

	for _, v := range planValidationErrors {
		if errors.Is(err, v.err) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: v.field, Message: v.message},
			})
		}
	}

	log.Error().Err(err).Int32("workspace_id", workspaceID).Msg(detail)
	return NewInternalError(c, detail)
}
