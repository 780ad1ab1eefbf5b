package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"fintrack/internal/backend"
	"fintrack/internal/cli"
	apphttp "fintrack/internal/http"
	applog "fintrack/internal/log"
	"fintrack/internal/metrics"
	"fintrack/internal/services"
)

func main() {
	cli.LoadEnvFile()
	cfg, logger := cli.LoadAndValidateConfig(applog.ComponentApp)

	ctx, stop := cli.GracefulShutdown(logger)
	defer stop()

	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		logger.Error("Invalid backend configuration", applog.FieldError, err)
		os.Exit(1)
	}

	result, err := backend.NewFactory(logger.Logger).CreateBackend(ctx, backendCfg)
	if err != nil {
		logger.Error("Failed to initialize backend", applog.FieldError, err, "backend", backendCfg.Type)
		os.Exit(1)
	}
	defer func() {
		if err := result.Cleanup(); err != nil {
			logger.Error("Backend cleanup failed", applog.FieldError, err)
		}
	}()

	var collector *metrics.Collector
	if cfg.MetricsEnabled {
		collector = metrics.New()
	}

	opts := []services.Option{}
	if result.Publisher != nil {
		opts = append(opts, services.WithPublisher(result.Publisher))
	}
	var observer services.DashboardObserver
	if collector != nil {
		opts = append(opts, services.WithCounter(collector))
		observer = collector
	}

	records := services.NewRecordService(result.Store, opts...)
	dashboard := services.NewDashboardService(result.Store, observer)

	srv := apphttp.NewServer(apphttp.Options{
		Addr:           ":" + cfg.Port,
		APIPrefix:      cfg.APIPrefix,
		CORSOrigins:    cfg.CORSOrigins,
		RequestTimeout: cfg.RequestTimeout,
		Logger:         logger,
		Metrics:        collector,
	}, records, dashboard, result.Store)

	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = cfg.RequestTimeout + 5*time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Starting fintrack server",
			applog.FieldOperation, applog.OpStartup,
			"port", cfg.Port,
			"prefix", cfg.APIPrefix,
			"backend", backendCfg.Type,
			"events_enabled", result.Publisher != nil,
			"metrics_enabled", collector != nil)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			logger.Error("Server error", applog.FieldError, err, "port", cfg.Port)
			os.Exit(1)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cli.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", applog.FieldOperation, applog.OpShutdown, applog.FieldError, err)
	}
	logger.Info("Server stopped gracefully", applog.FieldOperation, applog.OpShutdown)
}
