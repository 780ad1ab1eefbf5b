package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"fintrack/internal/core"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "nested", "fintrack.db"))
	if err != nil {
		t.Fatalf("NewSQLiteRepository: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestSQLiteIncomeRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created := time.Date(2024, 1, 1, 9, 30, 0, 123456789, time.UTC)
	in := core.Income{ID: "inc-1", Title: "Salary", Amount: 5000, Category: "Job", Date: "2024-01-01", CreatedAt: created}
	if err := repo.InsertIncome(ctx, in); err != nil {
		t.Fatalf("InsertIncome: %v", err)
	}

	got, err := repo.ListIncomes(ctx)
	if err != nil {
		t.Fatalf("ListIncomes: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 income, got %d", len(got))
	}
	if got[0] != in {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got[0], in)
	}
}

func TestSQLiteExpenseOrderingAndDelete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	base := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	// 100ms and 1s produce different text lengths under RFC3339Nano; the fixed
	// layout must still order them chronologically.
	expenses := []core.Expense{
		{ID: "b", Title: "Rent", Amount: 1200, Category: "Housing", Date: "2024-01-02", Icon: "🏠", CreatedAt: base.Add(100 * time.Millisecond)},
		{ID: "a", Title: "Food", Amount: 40, Category: "Groceries", Date: "2024-01-02", Icon: core.DefaultExpenseIcon, CreatedAt: base.Add(time.Second)},
		{ID: "c", Title: "Bus", Amount: 2, Category: "Transport", Date: "2024-01-02", Icon: core.DefaultExpenseIcon, CreatedAt: base},
	}
	for _, e := range expenses {
		if err := repo.InsertExpense(ctx, e); err != nil {
			t.Fatalf("InsertExpense(%s): %v", e.ID, err)
		}
	}

	got, err := repo.ListExpenses(ctx)
	if err != nil {
		t.Fatalf("ListExpenses: %v", err)
	}
	order := ""
	for _, e := range got {
		order += e.ID
	}
	if order != "abc" {
		t.Errorf("order = %s, want abc", order)
	}

	removed, err := repo.DeleteExpense(ctx, "b")
	if err != nil || !removed {
		t.Fatalf("DeleteExpense(b) = %v, %v", removed, err)
	}
	removed, err = repo.DeleteExpense(ctx, "b")
	if err != nil || removed {
		t.Fatalf("second DeleteExpense(b) = %v, %v; want false, nil", removed, err)
	}

	got, _ = repo.ListExpenses(ctx)
	if len(got) != 2 {
		t.Fatalf("expected 2 expenses after delete, got %d", len(got))
	}
	for _, e := range got {
		if e.ID == "b" {
			t.Fatal("deleted expense still listed")
		}
	}
}

func TestSQLiteEmptyListsAreNotNil(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	incomes, err := repo.ListIncomes(ctx)
	if err != nil || incomes == nil {
		t.Fatalf("ListIncomes = %v, %v", incomes, err)
	}
	if err := repo.Ping(ctx); err != nil {
		t.Fatalf("Ping: %v", err)
	}
}

func TestSQLiteReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fintrack.db")
	ctx := context.Background()

	repo, err := NewSQLiteRepository(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := repo.InsertIncome(ctx, core.Income{ID: "x", Title: "t", Category: "c", Date: "d", CreatedAt: time.Now()}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	repo.Close()

	// Migrations must be idempotent on an existing database.
	repo, err = NewSQLiteRepository(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer repo.Close()

	incomes, err := repo.ListIncomes(ctx)
	if err != nil || len(incomes) != 1 {
		t.Fatalf("ListIncomes after reopen = %d, %v", len(incomes), err)
	}
}

func TestSQLiteConcurrentWritesAndReads(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	const workers = 64
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	created := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			in := core.Income{
				ID:        fmt.Sprintf("inc-%02d", i),
				Title:     "Salary",
				Amount:    1,
				Category:  "Job",
				Date:      "2024-03-01",
				CreatedAt: created.Add(time.Duration(i) * time.Millisecond),
			}
			if err := repo.InsertIncome(ctx, in); err != nil {
				errs <- err
				return
			}
			if _, err := repo.ListIncomes(ctx); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent access failed: %v", err)
	}

	incomes, err := repo.ListIncomes(ctx)
	if err != nil {
		t.Fatalf("ListIncomes: %v", err)
	}
	if len(incomes) != workers {
		t.Errorf("stored %d incomes, want %d", len(incomes), workers)
	}
}
