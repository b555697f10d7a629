package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AdityaRaghav22/GYM-SAAS/internal/auth"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/logger"
	"github.com/AdityaRaghav22/GYM-SAAS/pkg/apperrors"
	"github.com/AdityaRaghav22/GYM-SAAS/pkg/contextkeys"
)

// AuthMiddleware verifies the bearer token and scopes the request to the
// gym named in its claims.
func AuthMiddleware(cfg auth.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			apperrors.HandleError(c, apperrors.ErrMissingToken)
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(strings.TrimPrefix(header, "Bearer "), cfg)
		if err != nil {
			if errors.Is(err, auth.ErrMissingToken) {
				apperrors.HandleError(c, apperrors.ErrMissingToken)
			} else {
				logger.CtxWarn(c.Request.Context(), "rejected bearer token", "error", err)
				apperrors.HandleError(c, apperrors.ErrInvalidToken.WithError(err))
			}
			c.Abort()
			return
		}

		ctx := auth.WithClaims(c.Request.Context(), claims)
		ctx = logger.WithTenantID(ctx, claims.GymID)
		c.Request = c.Request.WithContext(ctx)
		c.Set(string(contextkeys.ClaimsContextKey), claims)
		c.Next()
	}
}

// RequirePermission must run after AuthMiddleware.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			apperrors.HandleError(c, apperrors.ErrMissingToken)
			c.Abort()
			return
		}
		if !auth.CanPerformAction(claims, permission) {
			apperrors.HandleError(c, apperrors.NewForbiddenError("Access denied: insufficient permissions"))
			c.Abort()
			return
		}
		c.Next()
	}
}

func GetClaims(c *gin.Context) *auth.Claims {
	val, exists := c.Get(string(contextkeys.ClaimsContextKey))
	if !exists {
		return nil
	}
	claims, _ := val.(*auth.Claims)
	return claims
}

// GetGymID returns the tenant of the authenticated request, or "".
func GetGymID(c *gin.Context) string {
	if claims := GetClaims(c); claims != nil {
		return claims.GymID
	}
	return ""
}
