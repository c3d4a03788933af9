package middleware

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/hgarciaospina/backend-cafe-management-system/internal/logger"
	"github.com/hgarciaospina/backend-cafe-management-system/internal/metrics"
	"github.com/hgarciaospina/backend-cafe-management-system/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Throttle hands out tokens per client key.
type Throttle interface {
	Allow(ctx context.Context, key string) (bool, time.Duration, error)
}

// ThrottleMiddleware limits each client IP through a shared throttle. Errors
// from the throttle fail open.
func ThrottleMiddleware(name string, throttle Throttle) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		allowed, wait, err := throttle.Allow(c.Request.Context(), name+":"+ip)
		if err != nil {
			logger.Warn("Throttle unavailable, allowing request",
				zap.String("request_id", GetRequestID(c)),
				zap.String("limiter", name),
				zap.Error(err),
			)
			c.Next()
			return
		}

		if !allowed {
			metrics.RateLimitedTotal.WithLabelValues(name).Inc()
			logger.Warn("Throttle limit exceeded",
				zap.String("request_id", GetRequestID(c)),
				zap.String("limiter", name),
				zap.String("ip", ip),
				zap.String("path", c.Request.URL.Path),
			)
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
			utils.ErrorResponse(c, http.StatusTooManyRequests, "Too many attempts, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
