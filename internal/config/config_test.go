package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, "development", cfg.Server.Env)
	require.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
	require.Equal(t, "localhost", cfg.Database.Host)
	require.Equal(t, "5432", cfg.Database.Port)
	require.Equal(t, "public", cfg.Database.Schema)
	require.Equal(t, 10, cfg.RateLimit.RequestsPerWindow)
	require.Equal(t, 60, cfg.RateLimit.WindowSeconds)
	require.Equal(t, 15, cfg.JWT.AccessExpiry)
	require.Equal(t, 7, cfg.JWT.RefreshExpiry)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://shop.example.com,https://admin.example.com")
	t.Setenv("RATE_LIMIT_REQUESTS", "3")

	cfg := Load()

	require.Equal(t, "9090", cfg.Server.Port)
	require.Equal(t, []string{"https://shop.example.com", "https://admin.example.com"}, cfg.Server.AllowedOrigins)
	require.Equal(t, 3, cfg.RateLimit.RequestsPerWindow)
}
