package config

import (
	"errors"
	"os"
	"time"

	"github.com/PedroCamargo-dev/core-bank-ledger-service/internal/platform/telemetry"
)

const ServiceName = "core-bank-ledger-service"

var (
	ErrMissingHTTPAddr        = errors.New("config: http address is required")
	ErrInvalidShutdownTimeout = errors.New("config: shutdown timeout must be > 0")
	ErrInvalidLogLevel        = errors.New("config: invalid log level")
)

type Config struct {
	HTTPAddr        string
	LogLevel        string
	ShutdownTimeout time.Duration
}

// Load reads the environment, falling back to defaults for unset keys.
func Load() Config {
	return Config{
		HTTPAddr:        getEnv("HTTP_ADDR", ":8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func (c Config) Validate() error {
	if c.HTTPAddr == "" {
		return ErrMissingHTTPAddr
	}

	if c.ShutdownTimeout <= 0 {
		return ErrInvalidShutdownTimeout
	}

	if _, err := telemetry.ParseLevel(c.LogLevel); err != nil {
		return errors.Join(ErrInvalidLogLevel, err)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
