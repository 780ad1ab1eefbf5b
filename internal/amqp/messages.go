package amqp

import (
	"encoding/json"
	"time"

	"fintrack/internal/core"
)

// EventAction describes what happened to a record.
type EventAction string

const (
	ActionCreated EventAction = "created"
	ActionDeleted EventAction = "deleted"
)

// RecordEvent announces a record change to downstream consumers. Created
// events carry the full record so consumers never need to read the store.
type RecordEvent struct {
	Action      EventAction       `json:"action"`
	Kind        core.Kind         `json:"kind"`
	ID          string            `json:"id"`
	Transaction *core.Transaction `json:"transaction,omitempty"`
	Description string            `json:"description,omitempty"`
	Timestamp   time.Time         `json:"timestamp"`
}

// NewIncomeCreated builds the created event for an income.
func NewIncomeCreated(in core.Income) *RecordEvent {
	tx := core.IncomeTransaction(in)
	return &RecordEvent{
		Action:      ActionCreated,
		Kind:        core.KindIncome,
		ID:          in.ID,
		Transaction: &tx,
		Description: in.Description,
		Timestamp:   time.Now(),
	}
}

// NewExpenseCreated builds the created event for an expense.
func NewExpenseCreated(e core.Expense) *RecordEvent {
	tx := core.ExpenseTransaction(e)
	return &RecordEvent{
		Action:      ActionCreated,
		Kind:        core.KindExpense,
		ID:          e.ID,
		Transaction: &tx,
		Description: e.Description,
		Timestamp:   time.Now(),
	}
}

// NewRecordDeleted builds the deleted event for a record of the given kind.
func NewRecordDeleted(kind core.Kind, id string) *RecordEvent {
	return &RecordEvent{
		Action:    ActionDeleted,
		Kind:      kind,
		ID:        id,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the event to JSON bytes
func (e *RecordEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// RecordEventFromJSON decodes an event. Unknown fields are ignored.
func RecordEventFromJSON(data []byte) (*RecordEvent, error) {
	var evt RecordEvent
	if err := json.Unmarshal(data, &evt); err != nil {
		return nil, err
	}
	return &evt, nil
}
