package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"fintrack/internal/amqp"
	"fintrack/internal/core"
	"fintrack/internal/sheets"
	"fintrack/internal/sheets/memory"
)

type failingExporter struct{}

var errSheets = errors.New("quota exceeded")

func (failingExporter) AppendRecord(context.Context, sheets.Row) error { return errSheets }
func (failingExporter) DeleteRecord(context.Context, string) (bool, error) {
	return false, errSheets
}

func TestCreatedThenDeleted(t *testing.T) {
	exporter := memory.New()
	w := NewExportWorker(exporter)
	ctx := context.Background()

	income := core.Income{ID: "i1", Title: "Salary", Amount: 5000, Category: "Job", Description: "monthly", Date: "2024-01-01", CreatedAt: time.Now().UTC()}
	if err := w.HandleRecordEvent(ctx, amqp.NewIncomeCreated(income)); err != nil {
		t.Fatalf("created: %v", err)
	}

	rows := exporter.Rows()
	if len(rows) != 1 || rows[0].ID != "i1" || rows[0].Kind != core.KindIncome || rows[0].Description != "monthly" {
		t.Fatalf("unexpected rows %+v", rows)
	}

	if err := w.HandleRecordEvent(ctx, amqp.NewRecordDeleted(core.KindIncome, "i1")); err != nil {
		t.Fatalf("deleted: %v", err)
	}
	if rows := exporter.Rows(); len(rows) != 0 {
		t.Errorf("row should be removed, got %+v", rows)
	}

	// Deleting a record that was never exported is not an error.
	if err := w.HandleRecordEvent(ctx, amqp.NewRecordDeleted(core.KindExpense, "never")); err != nil {
		t.Errorf("unknown delete: %v", err)
	}
}

func TestMalformedEventsAreDropped(t *testing.T) {
	w := NewExportWorker(failingExporter{})
	ctx := context.Background()

	events := []*amqp.RecordEvent{
		{Action: amqp.ActionCreated, Kind: core.KindIncome, ID: "x"},
		{Action: "updated", Kind: core.KindIncome, ID: "x"},
		{Action: amqp.ActionDeleted, Kind: "transfer", ID: "x"},
		{Action: amqp.ActionDeleted, Kind: core.KindIncome},
	}
	for _, evt := range events {
		if err := w.HandleRecordEvent(ctx, evt); err != nil {
			t.Errorf("event %+v should be dropped, got %v", evt, err)
		}
	}
}

func TestExporterErrorsRequeue(t *testing.T) {
	w := NewExportWorker(failingExporter{})
	ctx := context.Background()

	expense := core.Expense{ID: "e1", Title: "Rent", Amount: 1200, Category: "Housing", Date: "2024-01-02", CreatedAt: time.Now()}
	if err := w.HandleRecordEvent(ctx, amqp.NewExpenseCreated(expense)); !errors.Is(err, errSheets) {
		t.Errorf("created: expected exporter error, got %v", err)
	}
	if err := w.HandleRecordEvent(ctx, amqp.NewRecordDeleted(core.KindExpense, "e1")); !errors.Is(err, errSheets) {
		t.Errorf("deleted: expected exporter error, got %v", err)
	}
}
