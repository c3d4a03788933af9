package routes

import (
	"context"
	"net/http"

	"github.com/hgarciaospina/backend-cafe-management-system/internal/auth"
	"github.com/hgarciaospina/backend-cafe-management-system/internal/config"
	"github.com/hgarciaospina/backend-cafe-management-system/internal/delivery/http/handler"
	"github.com/hgarciaospina/backend-cafe-management-system/internal/infrastructure/database/postgres"
	"github.com/hgarciaospina/backend-cafe-management-system/internal/logger"
	"github.com/hgarciaospina/backend-cafe-management-system/internal/middleware"
	"github.com/hgarciaospina/backend-cafe-management-system/internal/notify"
	"github.com/hgarciaospina/backend-cafe-management-system/internal/ratelimit"
	"github.com/hgarciaospina/backend-cafe-management-system/internal/usecase/category"
	"github.com/hgarciaospina/backend-cafe-management-system/internal/usecase/product"
	"github.com/hgarciaospina/backend-cafe-management-system/internal/usecase/user"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const loginThrottleKeyPrefix = "cafe:login"

// Dependencies are the shared resources the router wires into handlers.
// Redis is optional; without it the login throttle is kept in process.
type Dependencies struct {
	Config *config.Config
	DB     *postgres.DB
	Tokens *auth.TokenService
	Mailer notify.Mailer
	Redis  *redis.Client
}

// SetupRoutes builds the engine. Background goroutines started here stop when ctx is done.
func SetupRoutes(ctx context.Context, deps Dependencies) *gin.Engine {
	cfg := deps.Config
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware(cfg.Server.Environment == "production"))
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(middleware.DefaultMaxRequestSize))
	router.Use(middleware.RateLimitMiddleware(ctx, cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

	userRepository := postgres.NewUserRepository(deps.DB)
	categoryRepository := postgres.NewCategoryRepository(deps.DB)
	productRepository := postgres.NewProductRepository(deps.DB)

	router.Use(middleware.AuthMiddleware(deps.Tokens, userRepository))

	router.GET("/health", healthHandler(deps))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	userHandler := handler.NewUserHandler(user.NewService(userRepository, deps.Tokens, deps.Mailer))
	categoryHandler := handler.NewCategoryHandler(category.NewService(categoryRepository))
	productHandler := handler.NewProductHandler(product.NewService(productRepository, categoryRepository))

	public := router.Group("")
	public.Use(middleware.ThrottleMiddleware("login", loginThrottle(ctx, deps)))
	{
		userHandler.RegisterRoutes(public)
	}

	protected := router.Group("")
	protected.Use(middleware.RequireAuthenticated())
	{
		userHandler.RegisterProtectedRoutes(protected)
		categoryHandler.RegisterRoutes(protected)
		productHandler.RegisterRoutes(protected)
	}

	logger.Info("All routes initialized",
		zap.Bool("redis_throttle", deps.Redis != nil),
	)
	return router
}

func loginThrottle(ctx context.Context, deps Dependencies) middleware.Throttle {
	limits := deps.Config.RateLimit
	if deps.Redis != nil {
		return ratelimit.NewRedisLimiter(deps.Redis, loginThrottleKeyPrefix, limits.LoginRPS, limits.LoginBurst)
	}

	limiter := middleware.NewRateLimiter(limits.LoginRPS, limits.LoginBurst)
	go limiter.Run(ctx)
	return limiter
}

func healthHandler(deps Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.DB.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Database connection failed",
			})
			return
		}

		if deps.Redis != nil {
			if err := deps.Redis.Ping(c.Request.Context()).Err(); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status":  "unhealthy",
					"message": "Redis connection failed",
				})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	}
}
