package core

import (
	"fmt"
	"time"
)

// Kind identifies which record collection a record belongs to.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

const (
	// DefaultExpenseIcon is assigned to expenses created without an icon.
	DefaultExpenseIcon = "💰"
	// DefaultDescription is assigned to records created without a description.
	DefaultDescription = ""
)

// String implements fmt.Stringer
func (k Kind) String() string {
	return string(k)
}

// IsValid returns true if the kind is a known record collection
func (k Kind) IsValid() bool {
	switch k {
	case KindIncome, KindExpense:
		return true
	default:
		return false
	}
}

type (
	// Income is a persisted incoming amount.
	Income struct {
		ID          string    `json:"id"`
		Title       string    `json:"title"`
		Amount      float64   `json:"amount"`
		Category    string    `json:"category"`
		Description string    `json:"description"`
		Date        string    `json:"date"`
		CreatedAt   time.Time `json:"created_at"`
	}

	// Expense is a persisted outgoing amount.
	Expense struct {
		ID          string    `json:"id"`
		Title       string    `json:"title"`
		Amount      float64   `json:"amount"`
		Category    string    `json:"category"`
		Description string    `json:"description"`
		Date        string    `json:"date"`
		Icon        string    `json:"icon"`
		CreatedAt   time.Time `json:"created_at"`
	}

	// IncomeInput carries the caller-supplied fields of a new income.
	// Pointers distinguish a missing field from its zero value.
	IncomeInput struct {
		Title       *string  `json:"title"`
		Amount      *float64 `json:"amount"`
		Category    *string  `json:"category"`
		Description *string  `json:"description"`
		Date        *string  `json:"date"`
	}

	// ExpenseInput carries the caller-supplied fields of a new expense.
	ExpenseInput struct {
		Title       *string  `json:"title"`
		Amount      *float64 `json:"amount"`
		Category    *string  `json:"category"`
		Description *string  `json:"description"`
		Date        *string  `json:"date"`
		Icon        *string  `json:"icon"`
	}
)

// Validate reports the first missing required field.
func (in IncomeInput) Validate() error {
	return validateRequired(in.Title, in.Amount, in.Category, in.Date)
}

// Validate reports the first missing required field.
func (in ExpenseInput) Validate() error {
	return validateRequired(in.Title, in.Amount, in.Category, in.Date)
}

func validateRequired(title *string, amount *float64, category, date *string) error {
	switch {
	case title == nil:
		return fmt.Errorf("%w: field 'title' is required", ErrValidation)
	case amount == nil:
		return fmt.Errorf("%w: field 'amount' is required", ErrValidation)
	case category == nil:
		return fmt.Errorf("%w: field 'category' is required", ErrValidation)
	case date == nil:
		return fmt.Errorf("%w: field 'date' is required", ErrValidation)
	}
	return nil
}

// NewIncome builds a full income from validated input. The caller assigns
// id and creation time.
func NewIncome(id string, createdAt time.Time, in IncomeInput) Income {
	return Income{
		ID:          id,
		Title:       *in.Title,
		Amount:      *in.Amount,
		Category:    *in.Category,
		Description: valueOr(in.Description, DefaultDescription),
		Date:        *in.Date,
		CreatedAt:   stamp(createdAt),
	}
}

// NewExpense builds a full expense from validated input.
func NewExpense(id string, createdAt time.Time, in ExpenseInput) Expense {
	return Expense{
		ID:          id,
		Title:       *in.Title,
		Amount:      *in.Amount,
		Category:    *in.Category,
		Description: valueOr(in.Description, DefaultDescription),
		Date:        *in.Date,
		Icon:        valueOr(in.Icon, DefaultExpenseIcon),
		CreatedAt:   stamp(createdAt),
	}
}

// CreatedAtPrecision is the finest creation-time resolution every store can
// hold; PostgreSQL TIMESTAMPTZ keeps microseconds.
const CreatedAtPrecision = time.Microsecond

func stamp(t time.Time) time.Time {
	return t.UTC().Truncate(CreatedAtPrecision)
}

func valueOr(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}
