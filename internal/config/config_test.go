package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, "no-reply@pitstopservix.com", cfg.Mail.From)
	assert.Equal(t, 587, cfg.Mail.Port)
	assert.Empty(t, cfg.Mail.Host)
	assert.Empty(t, cfg.RedisAddr)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", "file:pitstop.db")
	t.Setenv("JWT_TTL", "90m")
	t.Setenv("MAIL_HOST", "smtp.example.com")
	t.Setenv("MAIL_PORT", "2525")
	t.Setenv("RATE_LIMIT_RPS", "0.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "file:pitstop.db", cfg.DBUrl)
	assert.Equal(t, 90*time.Minute, cfg.JWTTTL)
	assert.Equal(t, "smtp.example.com", cfg.Mail.Host)
	assert.Equal(t, 2525, cfg.Mail.Port)
	assert.InDelta(t, 0.5, cfg.RateLimitRPS, 1e-9)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "mysql")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_DRIVER")
}
