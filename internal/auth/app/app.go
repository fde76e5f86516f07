package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	httpapi "github.com/aussiebroadwan/planner/internal/auth/http"
	"github.com/aussiebroadwan/planner/internal/auth/service"
	"github.com/aussiebroadwan/planner/internal/auth/store"
	"github.com/aussiebroadwan/planner/internal/auth/store/drivers/postgres"
	"github.com/aussiebroadwan/planner/internal/auth/store/drivers/sqlite"
	"github.com/aussiebroadwan/planner/pkg/cryptox"
	"github.com/aussiebroadwan/planner/pkg/jwtx"
	"github.com/aussiebroadwan/planner/pkg/slogx"
)

// BuildVersion is overridden at build time via -ldflags.
var BuildVersion = "v0.1.0"

// Application encapsulates the planner auth service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	signer   *jwtx.HS256Signer
	registry *prometheus.Registry

	// Services
	authService         *service.AuthService
	resetService        *service.PasswordResetService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "planner-auth",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
		registry: prometheus.NewRegistry(),
	}

	if err := app.initSigner(); err != nil {
		return nil, err
	}

	if err := app.initDatabase(context.Background()); err != nil {
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler exposes the routed handler, mainly for tests.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("planner auth service starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"driver", app.cfg.DatabaseDriver,
	)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		app.housekeepingService.Stop()
		_ = app.db.Close()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down planner auth service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("planner auth service stopped")
	return nil
}

// initSigner builds the session signer. Development falls back to a random
// secret, so sessions do not survive a restart there.
func (app *Application) initSigner() error {
	secret := app.cfg.JWTSecret
	if secret == "" {
		generated, err := cryptox.GenerateToken(jwtx.MinSecretBytes)
		if err != nil {
			return fmt.Errorf("failed to generate development secret: %w", err)
		}
		secret = generated
		app.logger.Warn("JWT_SECRET not set, using a random development secret")
	}

	signer, err := jwtx.NewSignerHS256([]byte(secret))
	if err != nil {
		return fmt.Errorf("failed to initialize session signer: %w", err)
	}
	app.signer = signer
	return nil
}

// OpenStore connects to the configured database driver.
func OpenStore(ctx context.Context, cfg Config) (store.Store, error) {
	switch cfg.DatabaseDriver {
	case DriverPostgres:
		return postgres.NewStore(ctx, cfg.DatabaseURL)
	case DriverSQLite:
		return sqlite.NewStore(cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.DatabaseDriver)
	}
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase(ctx context.Context) error {
	db, err := OpenStore(ctx, app.cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "driver", app.cfg.DatabaseDriver)
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := service.NewMetrics(app.registry)
	hasher := cryptox.NewBcryptHasher(app.cfg.BcryptCost)

	app.authService = &service.AuthService{
		Store:      app.db,
		Hasher:     hasher,
		Signer:     app.signer,
		Verifier:   app.signer.Verifier(),
		SessionTTL: app.cfg.SessionTTL,
		Metrics:    metrics,
	}

	app.resetService = &service.PasswordResetService{
		Store:    app.db,
		Hasher:   hasher,
		Notifier: service.LogNotifier{},
		TokenTTL: app.cfg.ResetTokenTTL,
		AppURL:   app.cfg.AppURL,
		Metrics:  metrics,
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.signer.Verifier(),
		BuildVersion,
		app.db,
		app.logger,
	)

	router.AuthService = app.authService
	router.ResetService = app.resetService
	router.Gatherer = app.registry
	router.EchoResetToken = app.cfg.IsDev()
	router.RequestTimeout = app.cfg.RequestTimeout
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      app.cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
