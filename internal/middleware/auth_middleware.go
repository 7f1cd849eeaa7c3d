package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yalcin/gatherly/internal/app/models/dto"
	"github.com/yalcin/gatherly/internal/pkg/auth"
	"github.com/yalcin/gatherly/internal/pkg/logger"
)

// Context keys set by JWTAuth
const (
	ContextUserID = "userID"
	ContextName   = "name"
	ContextEmail  = "email"
)

// AuthMiddleware verifies access tokens on protected routes
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// JWTAuth validates the Authorization header and stores the authenticated
// user's identity in the request context
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(ctx.GetHeader("Authorization"))
		if err != nil {
			abortUnauthorized(ctx, "Authorization header is missing or malformed")
			return
		}

		claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			if err == auth.ErrExpiredToken {
				abortUnauthorized(ctx, "Token has expired")
				return
			}
			logger.Debug().Err(err).Msg("Token validation failed")
			abortUnauthorized(ctx, "Invalid or expired token")
			return
		}

		ctx.Set(ContextUserID, claims.UserID)
		ctx.Set(ContextName, claims.Name)
		ctx.Set(ContextEmail, claims.Email)

		ctx.Next()
	}
}

// GetUserID returns the authenticated user's ID from the request context.
// It reports false when the request did not pass through JWTAuth.
func GetUserID(ctx *gin.Context) (int64, bool) {
	value, exists := ctx.Get(ContextUserID)
	if !exists {
		return 0, false
	}
	userID, ok := value.(int64)
	return userID, ok
}

func abortUnauthorized(ctx *gin.Context, message string) {
	ctx.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponse(http.StatusUnauthorized, message, ""))
}
