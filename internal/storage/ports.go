package storage

import (
	"context"

	"fintrack/internal/core"
)

// Ports implemented by every record store backend.
type (
	IncomeStore interface {
		InsertIncome(ctx context.Context, in core.Income) error
		// ListIncomes returns every income in no guaranteed order.
		ListIncomes(ctx context.Context) ([]core.Income, error)
		// DeleteIncome removes at most one income and reports whether one was removed.
		DeleteIncome(ctx context.Context, id string) (bool, error)
	}

	ExpenseStore interface {
		InsertExpense(ctx context.Context, e core.Expense) error
		ListExpenses(ctx context.Context) ([]core.Expense, error)
		DeleteExpense(ctx context.Context, id string) (bool, error)
	}

	// RecordStore is the single store handle shared by services and handlers.
	RecordStore interface {
		IncomeStore
		ExpenseStore
		Ping(ctx context.Context) error
		Close() error
	}
)
