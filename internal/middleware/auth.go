package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"shop_backend/internal/apperrors"
	"shop_backend/internal/models"
	"shop_backend/internal/services"
)

const principalKey = "principal"

// RequireAuth validates the bearer token and stores the principal in the
// request context.
func RequireAuth(auth services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			apperrors.Respond(c, apperrors.Unauthorized("Authorization header is required."))
			c.Abort()
			return
		}

		principal, err := auth.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			apperrors.Respond(c, err)
			c.Abort()
			return
		}

		c.Set(principalKey, *principal)
		c.Next()
	}
}

// RequireAdmin allows only admin principals. Must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := CurrentUser(c)
		if !ok || !principal.IsAdmin {
			apperrors.Respond(c, apperrors.Forbidden("Admin access required."))
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated principal set by RequireAuth.
func CurrentUser(c *gin.Context) (models.Principal, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return models.Principal{}, false
	}
	principal, ok := value.(models.Principal)
	return principal, ok
}
