package middleware

import (
	"net/http"
	"strings"

	"github.com/hgarciaospina/backend-cafe-management-system/internal/auth"
	domainUser "github.com/hgarciaospina/backend-cafe-management-system/internal/domain/user"
	"github.com/hgarciaospina/backend-cafe-management-system/internal/logger"
	"github.com/hgarciaospina/backend-cafe-management-system/internal/metrics"
	appErrors "github.com/hgarciaospina/backend-cafe-management-system/pkg/errors"
	"github.com/hgarciaospina/backend-cafe-management-system/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	PrincipalKey = "principal"
	APIPrefix    = "/api/v1"
	bearerPrefix = "Bearer "
)

var publicPaths = map[string]struct{}{
	"/user/login":          {},
	"/user/signup":         {},
	"/user/forgotPassword": {},
	"/health":              {},
	"/metrics":             {},
}

// IsPublicPath reports whether path bypasses token checks. The optional API
// prefix is ignored.
func IsPublicPath(path string) bool {
	_, ok := publicPaths[strings.TrimPrefix(path, APIPrefix)]
	return ok
}

// AuthMiddleware resolves the bearer token into an auth.Principal on the
// request context. Requests without a bearer header pass through
// unauthenticated; RequireAuthenticated decides whether that is acceptable.
func AuthMiddleware(tokens *auth.TokenService, users domainUser.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if IsPublicPath(c.Request.URL.Path) {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			c.Next()
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))

		log := logger.WithRequestID(GetRequestID(c))

		claims, err := tokens.ParseClaims(token)
		if err != nil {
			log.Warn("Rejected token with invalid signature",
				zap.String("path", c.Request.URL.Path),
				zap.String("event", "token_invalid_signature"),
			)
			reject(c, "invalid_signature", appErrors.ErrInvalidSignature.Message)
			return
		}

		u, err := users.GetByEmail(c.Request.Context(), claims.Subject)
		if err != nil {
			log.Warn("Token subject could not be resolved",
				zap.String("email", claims.Subject),
				zap.String("event", "token_unknown_subject"),
				zap.Error(err),
			)
			reject(c, "unknown_subject", appErrors.ErrUnauthorized.Message)
			return
		}

		if !tokens.Validate(token, u.Email) {
			log.Warn("Rejected expired or mismatched token",
				zap.String("email", u.Email),
				zap.String("event", "token_rejected"),
			)
			reject(c, "expired", appErrors.ErrUnauthorized.Message)
			return
		}

		principal := &auth.Principal{
			UserID: u.ID,
			Email:  u.Email,
			Role:   claims.Role,
		}
		c.Request = c.Request.WithContext(auth.WithPrincipal(c.Request.Context(), principal))
		c.Set(PrincipalKey, principal)

		c.Next()
	}
}

func reject(c *gin.Context, reason, message string) {
	metrics.AuthRejectionsTotal.WithLabelValues(reason).Inc()
	utils.ErrorResponse(c, http.StatusUnauthorized, message)
	c.Abort()
}
