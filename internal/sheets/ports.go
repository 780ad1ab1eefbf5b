package sheets

import (
	"context"
	"strconv"
	"time"

	"fintrack/internal/core"
)

// Header is the first row written to an empty export sheet.
var Header = []string{"ID", "Type", "Title", "Amount", "Category", "Description", "Date", "Icon", "Created At"}

// Row is one exported record. The first column is the record id and is the
// key used for deletion.
type Row struct {
	ID          string
	Kind        core.Kind
	Title       string
	Amount      float64
	Category    string
	Description string
	Date        string
	Icon        string
	CreatedAt   time.Time
}

// RowFromTransaction builds an export row from a normalized record.
func RowFromTransaction(tx core.Transaction, description string) Row {
	return Row{
		ID:          tx.ID,
		Kind:        tx.Type,
		Title:       tx.Title,
		Amount:      tx.Amount,
		Category:    tx.Category,
		Description: description,
		Date:        tx.Date,
		Icon:        tx.Icon,
		CreatedAt:   tx.CreatedAt,
	}
}

// Values renders the row in Header order.
func (r Row) Values() []interface{} {
	return []interface{}{
		r.ID,
		string(r.Kind),
		r.Title,
		strconv.FormatFloat(r.Amount, 'f', -1, 64),
		r.Category,
		r.Description,
		r.Date,
		r.Icon,
		r.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// Ports for outbound adapters.
type (
	// RecordExporter mirrors records into an external spreadsheet.
	RecordExporter interface {
		// AppendRecord adds the row unless a row with the same id exists.
		AppendRecord(ctx context.Context, row Row) error
		// DeleteRecord removes the row with the given id and reports whether
		// one was found.
		DeleteRecord(ctx context.Context, id string) (bool, error)
	}
)
