package app

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNew_SQLite(t *testing.T) {
	cfg := Config{
		Env:                  "dev",
		LogLevel:             "error",
		LogFormat:            "json",
		Port:                 3000,
		SessionTTL:           time.Hour,
		ResetTokenTTL:        time.Hour,
		BcryptCost:           4,
		DatabaseDriver:       DriverSQLite,
		DatabaseURL:          filepath.Join(t.TempDir(), "planner.db"),
		AppURL:               "http://localhost:3000",
		RequestTimeout:       5 * time.Second,
		ShutdownGracePeriod:  time.Second,
		HousekeepingInterval: time.Hour,
	}

	app, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.db.Close() })

	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/livez", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	// Dev mode echoes the reset token, even for a fresh database with no users
	// the response shape is the generic one.
	body := bytes.NewBufferString(`{"email":"nobody@example.com"}`)
	rec = httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/forgot-password", body))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotContains(t, rec.Body.String(), "resetToken")

	rec = httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestShutdown_WithoutRun(t *testing.T) {
	cfg := Config{
		Env:                  "dev",
		LogLevel:             "error",
		LogFormat:            "json",
		Port:                 3000,
		SessionTTL:           time.Hour,
		ResetTokenTTL:        time.Hour,
		BcryptCost:           4,
		DatabaseDriver:       DriverSQLite,
		DatabaseURL:          filepath.Join(t.TempDir(), "planner.db"),
		AppURL:               "http://localhost:3000",
		RequestTimeout:       5 * time.Second,
		ShutdownGracePeriod:  time.Second,
		HousekeepingInterval: time.Hour,
	}

	app, err := New(cfg)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- app.Shutdown() }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("Shutdown blocked without Run")
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(Config{Env: "prod", DatabaseDriver: "mysql"})
	require.Error(t, err)
}
