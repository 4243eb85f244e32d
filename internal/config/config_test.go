package config_test

import (
	"os"
	"path/filepath"
	"sattva/internal/config"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "environment: production\n"))
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, "https://sattva.io", cfg.HTTP.PublicBaseURL)
	require.Equal(t, "sattva", cfg.Database.DatabaseName)
	require.Equal(t, uint(5), cfg.Database.ConnectAttempts)
	require.Equal(t, 24*time.Hour, cfg.JWT.TTL)
	require.True(t, cfg.Auth.PerUserSalt)
	require.Equal(t, "a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4", cfg.Auth.FarmerSalt)
	require.Equal(t, config.QualityProviderStub, cfg.Quality.Provider)
	require.Equal(t, int64(4), cfg.Worker.LedgerConcurrency)
	require.Equal(t, 1500*time.Millisecond, cfg.Stubs.LedgerWriteDelay)
}

func TestLoad_YAMLAndEnv(t *testing.T) {
	path := writeConfig(t, `
http:
  addr: ":9000"
  allowedOrigins: ["https://app.sattva.io"]
worker:
  maxWorkers: 3
`)
	t.Setenv("HTTP_ADDR", ":9100")
	t.Setenv("STUBS_AI_VERIFY_DELAY", "0s")
	// zero values in yaml fall back to env-default, booleans are switched off through env
	t.Setenv("AUTH_PER_USER_SALT", "false")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, ":9100", cfg.HTTP.Addr, "env overrides yaml")
	require.Equal(t, []string{"https://app.sattva.io"}, cfg.HTTP.AllowedOrigins)
	require.False(t, cfg.Auth.PerUserSalt)
	require.Equal(t, 3, cfg.Worker.MaxWorkers)
	require.Zero(t, cfg.Stubs.AIVerifyDelay)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "unknown provider", yaml: "quality:\n  provider: oracle\n"},
		{name: "remote without endpoint", yaml: "quality:\n  provider: remote\n"},
		{name: "negative ledger concurrency", yaml: "worker:\n  ledgerConcurrency: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tt.yaml))
			require.Error(t, err)
		})
	}

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}
