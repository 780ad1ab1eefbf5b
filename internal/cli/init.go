// Package cli provides common CLI initialization utilities shared by
// cmd/fintrack and cmd/fintrack-worker.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"fintrack/internal/config"
	applog "fintrack/internal/log"
)

// ShutdownTimeout bounds graceful shutdown of servers and consumers.
const ShutdownTimeout = 30 * time.Second

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// SetupLogger builds the logger described by cfg and installs it as the
// slog default.
func SetupLogger(cfg *config.Config, component string) (*applog.Logger, error) {
	level, err := applog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	logger := applog.New(applog.Config{
		Level:     level,
		Format:    applog.Format(cfg.LogFormat),
		Component: component,
		Output:    os.Stdout,
	})
	applog.SetDefault(logger)
	return logger, nil
}

// LoadAndValidateConfig loads configuration, validates it and sets up
// logging. Exits the process on failure.
func LoadAndValidateConfig(component string) (*config.Config, *applog.Logger) {
	cfg := config.Load()

	if err := cfg.Validate(); err != nil {
		fallback := applog.New(applog.DefaultConfig())
		fallback.Error("Configuration validation failed", applog.FieldError, err)
		os.Exit(1)
	}

	logger, err := SetupLogger(cfg, component)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger setup failed: %v\n", err)
		os.Exit(1)
	}
	return cfg, logger
}

// GracefulShutdown returns a context cancelled on SIGINT or SIGTERM. The
// returned stop function releases the signal handler.
func GracefulShutdown(logger *applog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			logger.Info("Shutdown signal received", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(sigChan)
		cancel()
	}
}
