package core

import "time"

// Transaction is the unified view of an income or expense used by the
// recent-activity feed. It is never persisted.
type Transaction struct {
	ID        string    `json:"id"`
	Type      Kind      `json:"type"`
	Title     string    `json:"title"`
	Amount    float64   `json:"amount"`
	Category  string    `json:"category"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
	Icon      string    `json:"icon,omitempty"`
}

// IncomeTransaction normalizes an income.
func IncomeTransaction(in Income) Transaction {
	return Transaction{
		ID:        in.ID,
		Type:      KindIncome,
		Title:     in.Title,
		Amount:    in.Amount,
		Category:  in.Category,
		Date:      in.Date,
		CreatedAt: in.CreatedAt,
	}
}

// ExpenseTransaction normalizes an expense, falling back to the default icon.
func ExpenseTransaction(e Expense) Transaction {
	icon := e.Icon
	if icon == "" {
		icon = DefaultExpenseIcon
	}
	return Transaction{
		ID:        e.ID,
		Type:      KindExpense,
		Title:     e.Title,
		Amount:    e.Amount,
		Category:  e.Category,
		Date:      e.Date,
		CreatedAt: e.CreatedAt,
		Icon:      icon,
	}
}

// newerFirst orders by creation time descending, then id and type ascending
// so that equal timestamps still sort deterministically.
func newerFirst(a, b Transaction) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	if a.ID != b.ID {
		return a.ID < b.ID
	}
	return a.Type < b.Type
}
