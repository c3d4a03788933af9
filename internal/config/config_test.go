package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ReadsEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "cafe")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_EXPIRY_HOURS", "2")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "cafe", cfg.Database.DBName)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.Equal(t, 2*time.Hour, cfg.JWT.TokenTTL())
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestJWTConfig_TokenTTLDefaultsToTenHours(t *testing.T) {
	cfg := JWTConfig{}
	assert.Equal(t, 10*time.Hour, cfg.TokenTTL())
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     "5432",
		User:     "cafe",
		Password: "pw",
		DBName:   "cafe",
		SSLMode:  "disable",
	}
	assert.Equal(t, "host=localhost port=5432 user=cafe password=pw dbname=cafe sslmode=disable", cfg.DSN())
}

func TestSMTPConfig_Enabled(t *testing.T) {
	assert.False(t, (&SMTPConfig{}).Enabled())
	assert.True(t, (&SMTPConfig{Host: "smtp.example.com", From: "cafe@example.com"}).Enabled())
}
