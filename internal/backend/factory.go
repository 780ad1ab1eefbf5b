package backend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fintrack/internal/amqp"
	applog "fintrack/internal/log"
	"fintrack/internal/storage"
	"fintrack/internal/storage/memory"
	"fintrack/internal/storage/postgres"
)

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *slog.Logger
}

// NewFactory creates a new backend factory
func NewFactory(logger *slog.Logger) Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultFactory{
		logger: logger.With(applog.FieldComponent, applog.ComponentBackend),
	}
}

// CreateBackend implements Factory.CreateBackend
func (f *DefaultFactory) CreateBackend(ctx context.Context, config Config) (*BackendResult, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	var (
		store storage.RecordStore
		err   error
	)
	switch config.Type {
	case SQLiteBackend:
		store, err = f.createSQLiteStore(config)
	case PostgresBackend:
		store, err = f.createPostgresStore(ctx, config)
	case MemoryBackend:
		store = f.createMemoryStore()
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
	if err != nil {
		return nil, err
	}

	result := &BackendResult{Store: store}

	// A broker outage must not keep the API from serving records.
	var amqpClient *amqp.Client
	if config.AMQPURL != "" {
		amqpClient, err = amqp.NewClient(config.AMQPURL, config.AMQPExchange, config.AMQPQueue)
		if err != nil {
			f.logger.Warn("Failed to initialize AMQP client, continuing without record events", "error", err)
		} else {
			f.logger.Info("Initialized AMQP client",
				"exchange", config.AMQPExchange,
				"queue", config.AMQPQueue)
			result.Publisher = amqpClient
		}
	}

	result.Cleanup = func() error {
		var errs []error
		if amqpClient != nil {
			if err := amqpClient.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close AMQP client: %w", err))
			}
		}
		if err := store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close store: %w", err))
		}
		return errors.Join(errs...)
	}

	return result, nil
}

func (f *DefaultFactory) createSQLiteStore(config Config) (storage.RecordStore, error) {
	repo, err := storage.NewSQLiteRepository(config.SQLiteDBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SQLite repository: %w", err)
	}

	f.logger.Info("Initialized SQLite backend", "db_path", config.SQLiteDBPath)
	return repo, nil
}

func (f *DefaultFactory) createPostgresStore(ctx context.Context, config Config) (storage.RecordStore, error) {
	repo, err := postgres.Connect(ctx, config.DatabaseURL, config.DBName)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize PostgreSQL repository: %w", err)
	}

	f.logger.Info("Initialized PostgreSQL backend", "database_override", config.DBName)
	return repo, nil
}

func (f *DefaultFactory) createMemoryStore() storage.RecordStore {
	f.logger.Info("Initialized memory backend")
	return memory.New()
}
