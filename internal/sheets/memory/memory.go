package memory

import (
	"context"
	"sync"

	ports "fintrack/internal/sheets"
)

var _ ports.RecordExporter = (*Exporter)(nil)

// Exporter keeps exported rows in insertion order. Used for local runs and
// tests of the export worker.
type Exporter struct {
	mu   sync.Mutex
	rows []ports.Row
}

func New() *Exporter {
	return &Exporter{}
}

func (e *Exporter) AppendRecord(_ context.Context, row ports.Row) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.indexOf(row.ID) >= 0 {
		return nil
	}
	e.rows = append(e.rows, row)
	return nil
}

func (e *Exporter) DeleteRecord(_ context.Context, id string) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	idx := e.indexOf(id)
	if idx < 0 {
		return false, nil
	}
	e.rows = append(e.rows[:idx], e.rows[idx+1:]...)
	return true, nil
}

// Rows returns a copy of the exported rows.
func (e *Exporter) Rows() []ports.Row {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]ports.Row, len(e.rows))
	copy(out, e.rows)
	return out
}

func (e *Exporter) indexOf(id string) int {
	for i, r := range e.rows {
		if r.ID == id {
			return i
		}
	}
	return -1
}
