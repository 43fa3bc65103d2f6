// Package cli provides common CLI initialization utilities.
// This package consolidates the bootstrap steps of cmd/expensechart.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"expensechart/internal/config"
	applog "expensechart/internal/log"
)

// SetupLogger initializes structured logging at the given level and tags
// every line with a fresh run ID. The logger becomes the slog default.
func SetupLogger(level string) *applog.Logger {
	cfg := applog.DefaultConfig()
	cfg.Level = applog.ParseLevel(level)
	logger := applog.New(cfg).With(applog.FieldRunID, NewRunID())
	applog.SetDefault(logger)
	return logger
}

// NewRunID returns an identifier for one command invocation.
func NewRunID() string {
	return uuid.NewString()
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadConfig loads configuration from the environment, after .env.
func LoadConfig() *config.Config {
	LoadEnvFile()
	return config.Load()
}

// ValidateConfig validates cfg and logs the failure.
func ValidateConfig(logger *applog.Logger, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed",
			applog.FieldOperation, applog.OpValidate,
			applog.FieldError, err)
		return fmt.Errorf("validate config: %w", err)
	}
	return nil
}

// SignalContext returns a context cancelled on SIGINT or SIGTERM.
func SignalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
