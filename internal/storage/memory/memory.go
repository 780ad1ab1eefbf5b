package memory

import (
	"context"
	"sync"

	"fintrack/internal/core"
	"fintrack/internal/storage"
)

var _ storage.RecordStore = (*Store)(nil)

// Store keeps records in process memory. Useful for tests and local runs;
// nothing survives a restart.
type Store struct {
	mu       sync.RWMutex
	incomes  map[string]core.Income
	expenses map[string]core.Expense
}

func New() *Store {
	return &Store{
		incomes:  make(map[string]core.Income),
		expenses: make(map[string]core.Expense),
	}
}

func (s *Store) InsertIncome(_ context.Context, in core.Income) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.incomes[in.ID] = in
	return nil
}

// ListIncomes returns copies in map order.
func (s *Store) ListIncomes(_ context.Context) ([]core.Income, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.Income, 0, len(s.incomes))
	for _, in := range s.incomes {
		out = append(out, in)
	}
	return out, nil
}

func (s *Store) DeleteIncome(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.incomes[id]; !ok {
		return false, nil
	}
	delete(s.incomes, id)
	return true, nil
}

func (s *Store) InsertExpense(_ context.Context, e core.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses[e.ID] = e
	return nil
}

func (s *Store) ListExpenses(_ context.Context) ([]core.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.Expense, 0, len(s.expenses))
	for _, e := range s.expenses {
		out = append(out, e)
	}
	return out, nil
}

func (s *Store) DeleteExpense(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.expenses[id]; !ok {
		return false, nil
	}
	delete(s.expenses, id)
	return true, nil
}

func (s *Store) Ping(_ context.Context) error { return nil }

func (s *Store) Close() error { return nil }
