package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_DSN", "postgres://localhost/authtest?sslmode=disable")
	t.Setenv("APP_PORT", "")
	t.Setenv("SESSION_TTL", "")
	t.Setenv("SESSION_STORE", "")

	cfg := Load()

	require.Equal(t, "8080", cfg.AppPort)
	require.Equal(t, "redis", cfg.SessionStore)
	require.Equal(t, 24*time.Hour, cfg.SessionTTL)
}

func TestLoadSessionTTL(t *testing.T) {
	t.Setenv("DATABASE_DSN", "postgres://localhost/authtest?sslmode=disable")

	t.Setenv("SESSION_TTL", "30m")
	require.Equal(t, 30*time.Minute, Load().SessionTTL)

	// Invalid or non-positive values fall back to the default.
	t.Setenv("SESSION_TTL", "garbage")
	require.Equal(t, 24*time.Hour, Load().SessionTTL)

	t.Setenv("SESSION_TTL", "-1h")
	require.Equal(t, 24*time.Hour, Load().SessionTTL)
}
