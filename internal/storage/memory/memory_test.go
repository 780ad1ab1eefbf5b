package memory

import (
	"context"
	"testing"
	"time"

	"fintrack/internal/core"
)

func TestMemoryStoreInsertListDelete(t *testing.T) {
	s := New()
	ctx := context.Background()
	now := time.Now().UTC()

	for _, id := range []string{"a", "b", "c"} {
		if err := s.InsertIncome(ctx, core.Income{ID: id, Title: id, Amount: 1, CreatedAt: now}); err != nil {
			t.Fatalf("InsertIncome(%s): %v", id, err)
		}
	}

	removed, err := s.DeleteIncome(ctx, "b")
	if err != nil || !removed {
		t.Fatalf("DeleteIncome(b) = %v, %v", removed, err)
	}

	incomes, _ := s.ListIncomes(ctx)
	if len(incomes) != 2 {
		t.Fatalf("expected 2 incomes, got %d", len(incomes))
	}
	for _, in := range incomes {
		if in.ID == "b" {
			t.Fatal("deleted income still listed")
		}
	}
}

func TestMemoryStoreDeleteUnknownLeavesStoreUnchanged(t *testing.T) {
	s := New()
	ctx := context.Background()
	_ = s.InsertExpense(ctx, core.Expense{ID: "rent", Amount: 1200})

	removed, err := s.DeleteExpense(ctx, "missing")
	if err != nil || removed {
		t.Fatalf("DeleteExpense(missing) = %v, %v; want false, nil", removed, err)
	}
	expenses, _ := s.ListExpenses(ctx)
	if len(expenses) != 1 || expenses[0].ID != "rent" {
		t.Fatalf("store changed: %+v", expenses)
	}
}

func TestMemoryStoreKindsAreIndependent(t *testing.T) {
	s := New()
	ctx := context.Background()
	_ = s.InsertIncome(ctx, core.Income{ID: "same"})
	_ = s.InsertExpense(ctx, core.Expense{ID: "same"})

	removed, _ := s.DeleteExpense(ctx, "same")
	if !removed {
		t.Fatal("expense should have been removed")
	}
	incomes, _ := s.ListIncomes(ctx)
	if len(incomes) != 1 {
		t.Fatal("deleting an expense must not touch incomes")
	}
}
