package worker

import (
	"context"
	"fmt"
	"log/slog"

	"fintrack/internal/amqp"
	applog "fintrack/internal/log"
	"fintrack/internal/sheets"
)

// ExportWorker mirrors record events into a spreadsheet.
type ExportWorker struct {
	exporter sheets.RecordExporter
}

func NewExportWorker(exporter sheets.RecordExporter) *ExportWorker {
	return &ExportWorker{exporter: exporter}
}

// HandleRecordEvent processes one event from AMQP. A returned error requeues
// the delivery; events that can never succeed are logged and dropped.
func (w *ExportWorker) HandleRecordEvent(ctx context.Context, evt *amqp.RecordEvent) error {
	slog.InfoContext(ctx, "Processing record event",
		"action", evt.Action,
		"kind", evt.Kind,
		"id", evt.ID)

	if evt.ID == "" || !evt.Kind.IsValid() {
		slog.WarnContext(ctx, "Dropping malformed record event", "action", evt.Action, "kind", evt.Kind, "id", evt.ID)
		return nil
	}

	switch evt.Action {
	case amqp.ActionCreated:
		return w.handleCreated(ctx, evt)
	case amqp.ActionDeleted:
		return w.handleDeleted(ctx, evt)
	default:
		slog.WarnContext(ctx, "Dropping record event with unknown action", "action", evt.Action, "id", evt.ID)
		return nil
	}
}

func (w *ExportWorker) handleCreated(ctx context.Context, evt *amqp.RecordEvent) error {
	if evt.Transaction == nil {
		slog.WarnContext(ctx, "Dropping created event without record payload", "id", evt.ID)
		return nil
	}

	row := sheets.RowFromTransaction(*evt.Transaction, evt.Description)
	if err := w.exporter.AppendRecord(ctx, row); err != nil {
		logExportError(ctx, "Failed to append exported row", err, evt)
		return fmt.Errorf("export %s %s: %w", evt.Kind, evt.ID, err)
	}
	return nil
}

func (w *ExportWorker) handleDeleted(ctx context.Context, evt *amqp.RecordEvent) error {
	removed, err := w.exporter.DeleteRecord(ctx, evt.ID)
	if err != nil {
		logExportError(ctx, "Failed to remove exported row", err, evt)
		return fmt.Errorf("remove exported %s %s: %w", evt.Kind, evt.ID, err)
	}
	if !removed {
		slog.InfoContext(ctx, "No exported row for deleted record", "kind", evt.Kind, "id", evt.ID)
	}
	return nil
}

func logExportError(ctx context.Context, msg string, err error, evt *amqp.RecordEvent) {
	applog.NewStructuredLogger(applog.FromContext(ctx)).LogError(ctx, msg, err,
		applog.ComponentSheets, applog.OpExport,
		applog.NewFields().WithRecord(string(evt.Kind), evt.ID))
}
