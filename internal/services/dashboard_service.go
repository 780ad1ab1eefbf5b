package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"fintrack/internal/core"
	applog "fintrack/internal/log"
	"fintrack/internal/storage"
)

// DashboardObserver records aggregation latency. It is optional.
type DashboardObserver interface {
	ObserveDashboard(d time.Duration, err error)
}

// DashboardService builds the dashboard summary from a full scan of both
// record collections.
type DashboardService struct {
	store    storage.RecordStore
	observer DashboardObserver
}

func NewDashboardService(store storage.RecordStore, observer DashboardObserver) *DashboardService {
	return &DashboardService{store: store, observer: observer}
}

// Summary reads both collections concurrently and aggregates them. A failed
// read cancels the other and no partial summary is returned.
func (s *DashboardService) Summary(ctx context.Context) (summary core.DashboardSummary, err error) {
	start := time.Now()
	if s.observer != nil {
		defer func() { s.observer.ObserveDashboard(time.Since(start), err) }()
	}

	var (
		incomes  []core.Income
		expenses []core.Expense
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		incomes, err = s.store.ListIncomes(gctx)
		if err != nil {
			return fmt.Errorf("list incomes: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		expenses, err = s.store.ListExpenses(gctx)
		if err != nil {
			return fmt.Errorf("list expenses: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return core.DashboardSummary{}, fmt.Errorf("%w: %v", core.ErrStoreUnavailable, err)
	}

	summary = core.Summarize(incomes, expenses)
	slog.DebugContext(ctx, "Dashboard aggregated",
		applog.FieldOperation, applog.OpDashboard,
		"incomes", len(incomes),
		"expenses", len(expenses),
		"balance", summary.Balance)
	return summary, nil
}
