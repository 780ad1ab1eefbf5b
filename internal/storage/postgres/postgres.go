package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"fintrack/internal/core"
	applog "fintrack/internal/log"
	"fintrack/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ storage.RecordStore = (*Repository)(nil)

// Repository stores records in PostgreSQL through a pgx connection pool.
type Repository struct {
	pool *pgxpool.Pool
}

// Connect parses databaseURL, optionally overrides the database name, runs
// migrations and returns a ready repository.
func Connect(ctx context.Context, databaseURL, dbName string) (*Repository, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	if dbName != "" {
		cfg.ConnConfig.Database = dbName
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(cfg.ConnConfig); err != nil {
		pool.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	slog.InfoContext(ctx, "Connected to PostgreSQL",
		applog.FieldComponent, applog.ComponentStorage,
		"database", cfg.ConnConfig.Database, "host", cfg.ConnConfig.Host)
	return &Repository{pool: pool}, nil
}

func (r *Repository) Close() error {
	r.pool.Close()
	return nil
}

func (r *Repository) Ping(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("ping postgres: %w", err)
	}
	return nil
}

func (r *Repository) InsertIncome(ctx context.Context, in core.Income) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO incomes (id, title, amount, category, description, date, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		in.ID, in.Title, in.Amount, in.Category, in.Description, in.Date, in.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert income: %w", err)
	}
	return nil
}

func (r *Repository) ListIncomes(ctx context.Context) ([]core.Income, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, amount, category, description, date, created_at
		 FROM incomes ORDER BY created_at DESC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query incomes: %w", err)
	}

	incomes, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (core.Income, error) {
		var in core.Income
		err := row.Scan(&in.ID, &in.Title, &in.Amount, &in.Category, &in.Description, &in.Date, &in.CreatedAt)
		in.CreatedAt = in.CreatedAt.UTC()
		return in, err
	})
	if err != nil {
		return nil, fmt.Errorf("collect incomes: %w", err)
	}
	return incomes, nil
}

func (r *Repository) DeleteIncome(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM incomes WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete income: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) InsertExpense(ctx context.Context, e core.Expense) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO expenses (id, title, amount, category, description, date, icon, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		e.ID, e.Title, e.Amount, e.Category, e.Description, e.Date, e.Icon, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

func (r *Repository) ListExpenses(ctx context.Context) ([]core.Expense, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, amount, category, description, date, icon, created_at
		 FROM expenses ORDER BY created_at DESC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}

	expenses, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (core.Expense, error) {
		var e core.Expense
		err := row.Scan(&e.ID, &e.Title, &e.Amount, &e.Category, &e.Description, &e.Date, &e.Icon, &e.CreatedAt)
		e.CreatedAt = e.CreatedAt.UTC()
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("collect expenses: %w", err)
	}
	return expenses, nil
}

func (r *Repository) DeleteExpense(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete expense: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
