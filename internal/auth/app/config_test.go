package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

const goodSecret = "0123456789abcdef0123456789abcdef"

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"ENV", "PORT", "JWT_SECRET", "DATABASE_DRIVER", "DATABASE_URL", "APP_URL", "NEXTAUTH_URL", "SESSION_TTL"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, 3000, cfg.Port)
	require.Equal(t, DriverSQLite, cfg.DatabaseDriver)
	require.Equal(t, "file:planner.db", cfg.DatabaseURL)
	require.Equal(t, "http://localhost:3000", cfg.AppURL)
	require.Equal(t, 24*time.Hour, cfg.SessionTTL)
	require.Equal(t, time.Hour, cfg.ResetTokenTTL)
	require.Equal(t, 10, cfg.BcryptCost)
	require.True(t, cfg.IsDev())
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("PORT", "8081")
	t.Setenv("JWT_SECRET", goodSecret)
	t.Setenv("APP_URL", "")
	t.Setenv("NEXTAUTH_URL", "https://planner.example.com")
	t.Setenv("SESSION_TTL", "90") // integer minutes
	t.Setenv("RESET_TOKEN_TTL", "30m")

	cfg := LoadConfig()
	require.False(t, cfg.IsDev())
	require.Equal(t, 8081, cfg.Port)
	require.Equal(t, "https://planner.example.com", cfg.AppURL)
	require.Equal(t, 90*time.Minute, cfg.SessionTTL)
	require.Equal(t, 30*time.Minute, cfg.ResetTokenTTL)
	require.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	base := Config{
		Env:            "prod",
		LogFormat:      "json",
		Port:           3000,
		JWTSecret:      goodSecret,
		SessionTTL:     time.Hour,
		ResetTokenTTL:  time.Hour,
		DatabaseDriver: DriverSQLite,
		DatabaseURL:    "planner.db",
	}
	require.NoError(t, base.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing secret in prod", func(c *Config) { c.JWTSecret = "" }},
		{"short secret", func(c *Config) { c.JWTSecret = "short" }},
		{"unknown driver", func(c *Config) { c.DatabaseDriver = "mysql" }},
		{"empty dsn", func(c *Config) { c.DatabaseURL = "" }},
		{"bad port", func(c *Config) { c.Port = 70000 }},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }},
		{"zero session ttl", func(c *Config) { c.SessionTTL = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}

	t.Run("dev tolerates missing secret", func(t *testing.T) {
		cfg := base
		cfg.Env = "development"
		cfg.JWTSecret = ""
		require.NoError(t, cfg.Validate())
	})
}

func TestOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: 4000
database_driver: postgres
database_url: postgres://planner@localhost/planner
session_ttl: 2h
`), 0o600))

	base := Config{Port: 3000, DatabaseDriver: DriverSQLite, DatabaseURL: "planner.db", LogLevel: "info"}

	t.Run("file over env", func(t *testing.T) {
		cfg, err := Overlay(base, path, nil)
		require.NoError(t, err)
		require.Equal(t, 4000, cfg.Port)
		require.Equal(t, DriverPostgres, cfg.DatabaseDriver)
		require.Equal(t, 2*time.Hour, cfg.SessionTTL)
		require.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("flags over file", func(t *testing.T) {
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		RegisterFlags(fs)
		require.NoError(t, fs.Parse([]string{"--port", "5000"}))

		cfg, err := Overlay(base, path, fs)
		require.NoError(t, err)
		require.Equal(t, 5000, cfg.Port)
		require.Equal(t, DriverPostgres, cfg.DatabaseDriver)
	})

	t.Run("unset flags keep env", func(t *testing.T) {
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		RegisterFlags(fs)
		require.NoError(t, fs.Parse(nil))

		cfg, err := Overlay(base, "", fs)
		require.NoError(t, err)
		require.Equal(t, base, cfg)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Overlay(base, filepath.Join(t.TempDir(), "nope.yaml"), nil)
		require.Error(t, err)
	})
}
