package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"fintrack/internal/amqp"
	"fintrack/internal/core"
	applog "fintrack/internal/log"
	"fintrack/internal/storage"
)

// EventPublisher receives record change events. It is optional.
type EventPublisher interface {
	PublishRecordEvent(ctx context.Context, evt *amqp.RecordEvent) error
}

// RecordCounter counts record lifecycle changes. It is optional.
type RecordCounter interface {
	RecordCreated(kind string)
	RecordDeleted(kind string)
}

// RecordService orchestrates income and expense operations across the store
// and the event publisher.
type RecordService struct {
	store     storage.RecordStore
	publisher EventPublisher
	counter   RecordCounter
	now       func() time.Time
	newID     func() string
}

// Option customizes a RecordService
type Option func(*RecordService)

// WithPublisher announces created and deleted records on p.
func WithPublisher(p EventPublisher) Option {
	return func(s *RecordService) { s.publisher = p }
}

// WithCounter counts created and deleted records on c.
func WithCounter(c RecordCounter) Option {
	return func(s *RecordService) { s.counter = c }
}

// WithClock replaces time.Now for created_at assignment.
func WithClock(now func() time.Time) Option {
	return func(s *RecordService) { s.now = now }
}

// WithIDGenerator replaces uuid generation.
func WithIDGenerator(gen func() string) Option {
	return func(s *RecordService) { s.newID = gen }
}

func NewRecordService(store storage.RecordStore, opts ...Option) *RecordService {
	s := &RecordService{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateIncome validates, stores and announces a new income.
func (s *RecordService) CreateIncome(ctx context.Context, in core.IncomeInput) (core.Income, error) {
	if err := in.Validate(); err != nil {
		return core.Income{}, err
	}

	income := core.NewIncome(s.newID(), s.now(), in)
	if err := s.store.InsertIncome(ctx, income); err != nil {
		return core.Income{}, fmt.Errorf("%w: insert income: %v", core.ErrStoreUnavailable, err)
	}

	slog.InfoContext(ctx, "Income created",
		applog.FieldOperation, applog.OpCreate,
		applog.FieldRecordID, income.ID,
		applog.FieldCategory, income.Category,
		applog.FieldAmount, income.Amount)
	s.count(core.KindIncome, true)
	s.publish(ctx, amqp.NewIncomeCreated(income))
	return income, nil
}

// CreateExpense validates, stores and announces a new expense.
func (s *RecordService) CreateExpense(ctx context.Context, in core.ExpenseInput) (core.Expense, error) {
	if err := in.Validate(); err != nil {
		return core.Expense{}, err
	}

	expense := core.NewExpense(s.newID(), s.now(), in)
	if err := s.store.InsertExpense(ctx, expense); err != nil {
		return core.Expense{}, fmt.Errorf("%w: insert expense: %v", core.ErrStoreUnavailable, err)
	}

	slog.InfoContext(ctx, "Expense created",
		applog.FieldOperation, applog.OpCreate,
		applog.FieldRecordID, expense.ID,
		applog.FieldCategory, expense.Category,
		applog.FieldAmount, expense.Amount)
	s.count(core.KindExpense, true)
	s.publish(ctx, amqp.NewExpenseCreated(expense))
	return expense, nil
}

// ListIncomes returns every income, newest first.
func (s *RecordService) ListIncomes(ctx context.Context) ([]core.Income, error) {
	items, err := s.store.ListIncomes(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list incomes: %v", core.ErrStoreUnavailable, err)
	}
	core.SortIncomes(items)
	slog.DebugContext(ctx, "Listed incomes", applog.FieldOperation, applog.OpList, "count", len(items))
	return items, nil
}

// ListExpenses returns every expense, newest first.
func (s *RecordService) ListExpenses(ctx context.Context) ([]core.Expense, error) {
	items, err := s.store.ListExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list expenses: %v", core.ErrStoreUnavailable, err)
	}
	core.SortExpenses(items)
	slog.DebugContext(ctx, "Listed expenses", applog.FieldOperation, applog.OpList, "count", len(items))
	return items, nil
}

// DeleteIncome removes the income with the given id or returns core.ErrNotFound.
func (s *RecordService) DeleteIncome(ctx context.Context, id string) error {
	removed, err := s.store.DeleteIncome(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: delete income: %v", core.ErrStoreUnavailable, err)
	}
	if !removed {
		return fmt.Errorf("income %q: %w", id, core.ErrNotFound)
	}

	slog.InfoContext(ctx, "Income deleted", applog.FieldOperation, applog.OpDelete, applog.FieldRecordID, id)
	s.count(core.KindIncome, false)
	s.publish(ctx, amqp.NewRecordDeleted(core.KindIncome, id))
	return nil
}

// DeleteExpense removes the expense with the given id or returns core.ErrNotFound.
func (s *RecordService) DeleteExpense(ctx context.Context, id string) error {
	removed, err := s.store.DeleteExpense(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: delete expense: %v", core.ErrStoreUnavailable, err)
	}
	if !removed {
		return fmt.Errorf("expense %q: %w", id, core.ErrNotFound)
	}

	slog.InfoContext(ctx, "Expense deleted", applog.FieldOperation, applog.OpDelete, applog.FieldRecordID, id)
	s.count(core.KindExpense, false)
	s.publish(ctx, amqp.NewRecordDeleted(core.KindExpense, id))
	return nil
}

// publish never fails the caller; the record is already stored.
func (s *RecordService) publish(ctx context.Context, evt *amqp.RecordEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishRecordEvent(ctx, evt); err != nil {
		slog.ErrorContext(ctx, "Failed to publish record event",
			"action", evt.Action,
			"kind", evt.Kind,
			"id", evt.ID,
			"error", err)
	}
}

func (s *RecordService) count(kind core.Kind, created bool) {
	if s.counter == nil {
		return
	}
	if created {
		s.counter.RecordCreated(kind.String())
	} else {
		s.counter.RecordDeleted(kind.String())
	}
}
