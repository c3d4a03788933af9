package middleware

import (
	"github.com/hgarciaospina/backend-cafe-management-system/internal/auth"
	appErrors "github.com/hgarciaospina/backend-cafe-management-system/pkg/errors"

	"github.com/gin-gonic/gin"
)

// RequireAuthenticated aborts with 401 unless AuthMiddleware installed a principal.
// Role checks are left to the services.
func RequireAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := auth.PrincipalFrom(c.Request.Context()); !ok {
			reject(c, "unauthenticated", appErrors.ErrUnauthorized.Message)
			return
		}
		c.Next()
	}
}
