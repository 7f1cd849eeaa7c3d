// Package middleware provides HTTP middleware components
package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yalcin/gatherly/internal/app/models/dto"
	"github.com/yalcin/gatherly/internal/pkg/apperrors"
	"github.com/yalcin/gatherly/internal/pkg/logger"
)

// HandleAPIError translates service and repository errors into the uniform
// error envelope. Unrecognized errors become a generic 500 so internal detail
// never leaks to clients.
func HandleAPIError(ctx *gin.Context, err error) {
	statusCode := http.StatusInternalServerError
	message := "An unexpected error occurred"

	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrEventNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrNotParticipant):
		statusCode = http.StatusNotFound
		message = err.Error()

	case errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, apperrors.ErrAlreadyParticipant):
		statusCode = http.StatusConflict
		message = err.Error()

	case errors.Is(err, apperrors.ErrPermissionDenied):
		statusCode = http.StatusForbidden
		message = err.Error()

	case errors.Is(err, apperrors.ErrBadRequest),
		errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrEventFull),
		errors.Is(err, apperrors.ErrInvalidCredentials):
		statusCode = http.StatusBadRequest
		message = err.Error()

	case errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrInvalidFormat):
		statusCode = http.StatusUnauthorized
		message = err.Error()

	default:
		logger.Error().Err(err).Str("path", ctx.FullPath()).Msg("Unhandled API error")
	}

	ctx.JSON(statusCode, dto.NewErrorResponse(statusCode, message, ""))
}
