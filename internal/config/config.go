// Package config reads process settings from the environment, an optional
// .env file and command line flags, in increasing order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Port           string
	StoreDriver    string
	DatabaseURL    string
	SQLitePath     string
	RedisAddr      string
	RedisPassword  string
	AuthorCacheTTL time.Duration
	JWTSecret      string
	CORSOrigins    []string
	LogLevel       zapcore.Level
}

// Load parses args (without the program name). A missing .env file is not an error.
func Load(args []string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	fs := flag.NewFlagSet("manifesto", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg := &Config{}
	var origins, level, ttl string
	fs.StringVar(&cfg.Port, "port", env("PORT", "8080"), "HTTP port")
	fs.StringVar(&cfg.StoreDriver, "driver", env("STORE_DRIVER", "postgres"), "store driver: postgres or sqlite")
	fs.StringVar(&cfg.DatabaseURL, "database-url", env("DATABASE_URL", ""), "PostgreSQL connection string")
	fs.StringVar(&cfg.SQLitePath, "sqlite-path", env("SQLITE_PATH", "manifesto.db"), "SQLite database file")
	fs.StringVar(&cfg.RedisAddr, "redis-addr", env("REDIS_ADDR", ""), "Redis address; empty disables the author cache")
	fs.StringVar(&cfg.RedisPassword, "redis-password", env("REDIS_PASSWORD", ""), "Redis password")
	fs.StringVar(&ttl, "author-cache-ttl", env("AUTHOR_CACHE_TTL", "10m"), "how long author snapshots are cached")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", env("JWT_SECRET", ""), "HS256 secret for access tokens")
	fs.StringVar(&origins, "cors-origins", env("CORS_ORIGINS", "*"), "comma separated allowed origins")
	fs.StringVar(&level, "log-level", env("LOG_LEVEL", "info"), "debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	var err error
	if cfg.AuthorCacheTTL, err = time.ParseDuration(ttl); err != nil {
		return nil, fmt.Errorf("invalid author cache ttl: %w", err)
	}
	if cfg.AuthorCacheTTL <= 0 {
		return nil, fmt.Errorf("author cache ttl must be positive, got %s", cfg.AuthorCacheTTL)
	}
	if cfg.LogLevel, err = zapcore.ParseLevel(level); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	switch cfg.StoreDriver {
	case "postgres":
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = postgresURL()
		}
	case "sqlite", "sqlite3":
		cfg.StoreDriver = "sqlite"
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}

	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}
	return cfg, nil
}

// DSN is the data source name for the configured driver.
func (c *Config) DSN() string {
	if c.StoreDriver == "sqlite" {
		return c.SQLitePath
	}
	return c.DatabaseURL
}

// RequireSecret fails when no token secret is configured. Only the server needs one.
func (c *Config) RequireSecret() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	return nil
}

// Logger builds a production logger, or a development one at debug level.
func (c *Config) Logger() (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if c.LogLevel == zapcore.DebugLevel {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(c.LogLevel)
	return zc.Build()
}

func postgresURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		os.Getenv("POSTGRES_USER"),
		os.Getenv("POSTGRES_PASSWORD"),
		env("POSTGRES_HOST", "localhost"),
		env("POSTGRES_PORT", "5432"),
		os.Getenv("POSTGRES_DB"),
	)
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
