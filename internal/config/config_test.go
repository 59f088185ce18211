package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.False(t, cfg.RedisTLS)
	assert.Empty(t, cfg.AdminJWTSecret)
	assert.Equal(t, "+91 90037 82966", cfg.WhatsAppNumber)
	assert.Nil(t, cfg.CORSAllowedOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("REDIS_TLS", "true")
	t.Setenv("SMTP_FROM_EMAIL", "bookings@example.com")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://example.com, https://admin.example.com,")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "test-secret", cfg.AdminJWTSecret)
	assert.True(t, cfg.RedisTLS)
	assert.Equal(t, "bookings@example.com", cfg.SMTPFromEmail)
	assert.Equal(t, []string{"https://example.com", "https://admin.example.com"}, cfg.CORSAllowedOrigins)
}
