package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hgarciaospina/backend-cafe-management-system/internal/auth"
	"github.com/hgarciaospina/backend-cafe-management-system/internal/config"
	"github.com/hgarciaospina/backend-cafe-management-system/internal/infrastructure/database/postgres"
	"github.com/hgarciaospina/backend-cafe-management-system/internal/logger"
	"github.com/hgarciaospina/backend-cafe-management-system/internal/notify"
	"github.com/hgarciaospina/backend-cafe-management-system/internal/routes"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("Failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	env := cfg.Server.Environment
	if env == "" {
		env = "development"
	}
	if err := logger.Init(env); err != nil {
		os.Stderr.WriteString("Failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting application")

	if cfg.Database.Host == "" || cfg.Database.DBName == "" {
		logger.Fatal("Database configuration is missing. Please set DB_HOST and DB_NAME environment variables.")
	}

	db, err := postgres.NewDB(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := db.Migrate(); err != nil {
			logger.Fatal("Failed to migrate database", zap.Error(err))
		}
		logger.Info("Database schema migrated")
	}

	tokens, err := newTokenService(&cfg.JWT)
	if err != nil {
		logger.Fatal("Failed to initialize token service", zap.Error(err))
	}

	mailer := notify.NewEmailNotifier(&cfg.SMTP)
	if !cfg.SMTP.Enabled() {
		logger.Warn("SMTP is not configured; approval notices are skipped and password recovery will fail")
	}

	rdb := newRedisClient(&cfg.Redis)
	if rdb != nil {
		defer func() {
			if err := rdb.Close(); err != nil {
				logger.Error("Failed to close redis client", zap.Error(err))
			}
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	router := routes.SetupRoutes(ctx, routes.Dependencies{
		Config: cfg,
		DB:     db,
		Tokens: tokens,
		Mailer: mailer,
		Redis:  rdb,
	})

	host := cfg.Server.Host
	if host == "" {
		host = "0.0.0.0"
	}
	port := cfg.Server.Port
	if port == "" {
		port = "8080"
	}
	addr := net.JoinHostPort(host, port)

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Server starting",
			zap.String("address", addr),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shutdown server", zap.Error(err))
		return
	}

	logger.Info("Server exited properly")
}

// newTokenService signs with JWT_SECRET, or with a random key when none is
// configured. A random key does not survive a restart.
func newTokenService(cfg *config.JWTConfig) (*auth.TokenService, error) {
	key := []byte(cfg.Secret)
	if len(key) == 0 {
		generated, err := auth.GenerateKey()
		if err != nil {
			return nil, err
		}
		key = generated
		logger.Warn("JWT_SECRET is not set; using a random signing key. Tokens will be invalid after a restart.")
	}
	return auth.NewTokenService(key, cfg.TokenTTL())
}

func newRedisClient(cfg *config.RedisConfig) *redis.Client {
	if cfg.Addr == "" {
		return nil
	}
	logger.Info("Redis login throttle enabled", zap.String("addr", cfg.Addr))
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}
