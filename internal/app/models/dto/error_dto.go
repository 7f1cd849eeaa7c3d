package dto

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the uniform error envelope returned by every endpoint
type ErrorResponse struct {
	Error      string `json:"error" example:"Event is full"`
	Details    string `json:"details,omitempty" example:"capacity 10 reached"`
	StatusCode int    `json:"statusCode" example:"400"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(statusCode int, message, details string) *ErrorResponse {
	return &ErrorResponse{
		Error:      message,
		Details:    details,
		StatusCode: statusCode,
	}
}

// ValidationErrorDetails converts a gin binding error into a readable details string.
func ValidationErrorDetails(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, formatFieldError(fe))
	}
	return strings.Join(parts, "; ")
}

// formatFieldError creates a human-readable validation error message
func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
