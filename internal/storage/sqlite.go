package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"fintrack/internal/core"
	applog "fintrack/internal/log"

	_ "modernc.org/sqlite"
)

// timeLayout is fixed-width so that lexical order of the stored text matches
// chronological order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

var _ RecordStore = (*SQLiteRepository)(nil)

// sqliteDSN waits on locks instead of failing with SQLITE_BUSY and enables
// WAL so readers do not block the writer.
func sqliteDSN(dbPath string) string {
	return dbPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", sqliteDSN(dbPath))
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// SQLite has a single writer; one connection serializes writes in-process.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

func (r *SQLiteRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping sqlite: %w", err)
	}
	return nil
}

// InsertIncome implements IncomeStore
func (r *SQLiteRepository) InsertIncome(ctx context.Context, in core.Income) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO incomes (id, title, amount, category, description, date, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		in.ID, in.Title, in.Amount, in.Category, in.Description, in.Date, formatTime(in.CreatedAt))
	if err != nil {
		return fmt.Errorf("insert income: %w", err)
	}

	slog.DebugContext(ctx, "Income saved to SQLite",
		applog.FieldComponent, applog.ComponentStorage, applog.FieldRecordID, in.ID)
	return nil
}

// ListIncomes implements IncomeStore
func (r *SQLiteRepository) ListIncomes(ctx context.Context) ([]core.Income, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, amount, category, description, date, created_at
		 FROM incomes ORDER BY created_at DESC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query incomes: %w", err)
	}
	defer rows.Close()

	incomes := []core.Income{}
	for rows.Next() {
		var (
			in      core.Income
			created string
		)
		if err := rows.Scan(&in.ID, &in.Title, &in.Amount, &in.Category, &in.Description, &in.Date, &created); err != nil {
			return nil, fmt.Errorf("scan income: %w", err)
		}
		if in.CreatedAt, err = parseTime(created); err != nil {
			return nil, fmt.Errorf("income %s: %w", in.ID, err)
		}
		incomes = append(incomes, in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate incomes: %w", err)
	}

	return incomes, nil
}

// DeleteIncome implements IncomeStore
func (r *SQLiteRepository) DeleteIncome(ctx context.Context, id string) (bool, error) {
	return r.deleteByID(ctx, "incomes", id)
}

// InsertExpense implements ExpenseStore
func (r *SQLiteRepository) InsertExpense(ctx context.Context, e core.Expense) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO expenses (id, title, amount, category, description, date, icon, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Title, e.Amount, e.Category, e.Description, e.Date, e.Icon, formatTime(e.CreatedAt))
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}

	slog.DebugContext(ctx, "Expense saved to SQLite",
		applog.FieldComponent, applog.ComponentStorage, applog.FieldRecordID, e.ID)
	return nil
}

// ListExpenses implements ExpenseStore
func (r *SQLiteRepository) ListExpenses(ctx context.Context) ([]core.Expense, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, amount, category, description, date, icon, created_at
		 FROM expenses ORDER BY created_at DESC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}
	defer rows.Close()

	expenses := []core.Expense{}
	for rows.Next() {
		var (
			e       core.Expense
			created string
		)
		if err := rows.Scan(&e.ID, &e.Title, &e.Amount, &e.Category, &e.Description, &e.Date, &e.Icon, &created); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		if e.CreatedAt, err = parseTime(created); err != nil {
			return nil, fmt.Errorf("expense %s: %w", e.ID, err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %w", err)
	}

	return expenses, nil
}

// DeleteExpense implements ExpenseStore
func (r *SQLiteRepository) DeleteExpense(ctx context.Context, id string) (bool, error) {
	return r.deleteByID(ctx, "expenses", id)
}

func (r *SQLiteRepository) deleteByID(ctx context.Context, table, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM "+table+" WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("delete from %s: %w", table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected on %s: %w", table, err)
	}

	if n > 0 {
		slog.InfoContext(ctx, "Record deleted from SQLite",
			applog.FieldComponent, applog.ComponentStorage, "table", table, applog.FieldRecordID, id)
	}
	return n > 0, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// parseTime accepts the fixed layout as well as any RFC 3339 value written by
// older rows or external tools.
func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse created_at %q: %w", s, err)
	}
	return t.UTC(), nil
}
