package amqp

import (
	"encoding/json"
	"time"

	"wallet/internal/core"
)

// Event actions.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// EntityEvent is a lightweight change notification for an income or an
// expense. Consumers fetch the full record from the API if they need it.
type EntityEvent struct {
	Kind      core.TransactionKind `json:"kind"`
	Action    string               `json:"action"`
	ID        int64                `json:"id"`
	Timestamp time.Time            `json:"timestamp"`
}

// NewEntityEvent creates a change event stamped with the current time.
func NewEntityEvent(kind core.TransactionKind, action string, id int64) *EntityEvent {
	return &EntityEvent{
		Kind:      kind,
		Action:    action,
		ID:        id,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the event to JSON bytes.
func (e *EntityEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// EntityEventFromJSON creates an event from JSON bytes.
func EntityEventFromJSON(data []byte) (*EntityEvent, error) {
	var e EntityEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
