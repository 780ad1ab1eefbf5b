package main

import (
	"context"
	"errors"
	"os"

	"fintrack/internal/amqp"
	"fintrack/internal/cli"
	applog "fintrack/internal/log"
	gsheet "fintrack/internal/sheets/google"
	"fintrack/internal/worker"
)

const dialAttempts = 8

func main() {
	cli.LoadEnvFile()
	cfg, logger := cli.LoadAndValidateConfig(applog.ComponentWorker)

	if err := cfg.ValidateExport(); err != nil {
		logger.Error("Export configuration validation failed", applog.FieldError, err)
		os.Exit(1)
	}

	ctx, stop := cli.GracefulShutdown(logger)
	defer stop()

	logger.Info("Starting fintrack-worker", applog.FieldOperation, applog.OpStartup)

	sheetsClient, err := gsheet.New(ctx, gsheet.Config{
		SpreadsheetID:   cfg.GoogleSpreadsheetID,
		SheetName:       cfg.GoogleSheetName,
		CredentialsJSON: cfg.GoogleServiceAccountJSON,
		CredentialsFile: cfg.GoogleServiceAccountFile,
	})
	if err != nil {
		logger.Error("Failed to initialize Google Sheets client", applog.FieldError, err)
		os.Exit(1)
	}
	logger.Info("Google Sheets client initialized", "spreadsheet_id", cfg.GoogleSpreadsheetID, "sheet", cfg.GoogleSheetName)

	amqpClient, err := amqp.DialWithRetry(ctx, cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue, dialAttempts)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", applog.FieldError, err)
		os.Exit(1)
	}
	defer amqpClient.Close()

	exportWorker := worker.NewExportWorker(sheetsClient)

	err = amqpClient.ConsumeRecordEvents(ctx, exportWorker.HandleRecordEvent)
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Message consumption failed", applog.FieldError, err)
		os.Exit(1)
	}

	logger.Info("Worker shutdown complete", applog.FieldOperation, applog.OpShutdown)
}
