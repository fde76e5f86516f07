package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/aussiebroadwan/planner/pkg/cryptox"
	"github.com/aussiebroadwan/planner/pkg/jwtx"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Env       string `koanf:"env"`        // Environment (dev, development, staging, prod) (default: dev)
	LogLevel  string `koanf:"log_level"`  // Log level (debug, info, warn, error) (default: info)
	LogFormat string `koanf:"log_format"` // Log format (json, text) (default: json)
	Port      int    `koanf:"port"`       // HTTP server port (default: 3000)

	JWTSecret     string        `koanf:"jwt_secret"`      // Required outside dev: HS256 session secret, at least 32 bytes
	SessionTTL    time.Duration `koanf:"session_ttl"`     // Session validity (default: 24h)
	ResetTokenTTL time.Duration `koanf:"reset_token_ttl"` // Reset token validity (default: 1h)
	BcryptCost    int           `koanf:"bcrypt_cost"`     // bcrypt work factor (default: 10)

	DatabaseDriver string `koanf:"database_driver"` // sqlite or postgres (default: sqlite)
	DatabaseURL    string `koanf:"database_url"`    // DSN (default: file:planner.db)

	AppURL string `koanf:"app_url"` // Base URL for reset links (default: http://localhost:3000)

	RequestTimeout       time.Duration `koanf:"request_timeout"`       // Per-request deadline (default: 10s)
	ShutdownGracePeriod  time.Duration `koanf:"shutdown_grace_period"` // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration `koanf:"housekeeping_interval"` // Expired reset token sweep (default: 1h)
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() Config {
	return Config{
		Env:       getEnvOrDefault("ENV", "dev"),
		LogLevel:  getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "json"),
		Port:      getEnvIntOrDefault("PORT", 3000),

		JWTSecret:     os.Getenv("JWT_SECRET"),
		SessionTTL:    getEnvDurationOrDefault("SESSION_TTL", jwtx.DefaultSessionTTL),
		ResetTokenTTL: getEnvDurationOrDefault("RESET_TOKEN_TTL", time.Hour),
		BcryptCost:    getEnvIntOrDefault("BCRYPT_COST", cryptox.DefaultBcryptCost),

		DatabaseDriver: getEnvOrDefault("DATABASE_DRIVER", DriverSQLite),
		DatabaseURL:    getEnvOrDefault("DATABASE_URL", "file:planner.db"),

		// NEXTAUTH_URL is what the web frontend already exports.
		AppURL: getEnvOrDefault("APP_URL", getEnvOrDefault("NEXTAUTH_URL", "http://localhost:3000")),

		RequestTimeout:       getEnvDurationOrDefault("REQUEST_TIMEOUT", 10*time.Second),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}
}

// RegisterFlags adds the command-line overrides to fs. Only flags the user
// actually sets take effect in Overlay.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("env", "", "environment (dev, prod)")
	fs.String("log-level", "", "log level (debug, info, warn, error)")
	fs.String("log-format", "", "log format (json or text)")
	fs.Int("port", 0, "HTTP listen port")
	fs.String("database-driver", "", "database driver (sqlite or postgres)")
	fs.String("database-url", "", "database connection string")
	fs.String("app-url", "", "public base URL used in reset links")
}

// Overlay applies an optional YAML file and then the changed flags on top of
// cfg. Flags win over the file, the file wins over the environment.
func Overlay(cfg Config, path string, fs *pflag.FlagSet) (Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return cfg, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if fs != nil {
		provider := posflag.ProviderWithFlag(fs, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(fs, f)
		})
		if err := k.Load(provider, nil); err != nil {
			return cfg, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// IsDev reports whether the service runs in development mode, which echoes
// reset tokens and tolerates a missing session secret.
func (c Config) IsDev() bool {
	switch strings.ToLower(c.Env) {
	case "dev", "development":
		return true
	}
	return false
}

func (c Config) Validate() error {
	var errs []error

	switch c.DatabaseDriver {
	case DriverSQLite, DriverPostgres:
	default:
		errs = append(errs, fmt.Errorf("unknown database driver %q", c.DatabaseDriver))
	}
	if c.DatabaseURL == "" {
		errs = append(errs, errors.New("database url is required"))
	}

	if c.JWTSecret == "" {
		if !c.IsDev() {
			errs = append(errs, errors.New("JWT_SECRET is required outside development"))
		}
	} else if len(c.JWTSecret) < jwtx.MinSecretBytes {
		errs = append(errs, fmt.Errorf("JWT_SECRET must be at least %d bytes", jwtx.MinSecretBytes))
	}

	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid port %d", c.Port))
	}
	if c.LogFormat != "json" && c.LogFormat != "text" {
		errs = append(errs, fmt.Errorf("log format must be 'json' or 'text', got %q", c.LogFormat))
	}
	if c.SessionTTL <= 0 || c.ResetTokenTTL <= 0 {
		errs = append(errs, errors.New("token lifetimes must be positive"))
	}

	return errors.Join(errs...)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
