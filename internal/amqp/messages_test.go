package amqp

import (
	"context"
	"testing"
	"time"

	"wallet/internal/core"
)

func TestNewEntityEvent(t *testing.T) {
	event := NewEntityEvent(core.KindIncome, ActionCreated, 42)

	if event.Kind != core.KindIncome {
		t.Errorf("Kind = %v, want %v", event.Kind, core.KindIncome)
	}
	if event.Action != ActionCreated {
		t.Errorf("Action = %v, want %v", event.Action, ActionCreated)
	}
	if event.ID != 42 {
		t.Errorf("ID = %v, want 42", event.ID)
	}
	if event.Timestamp.IsZero() {
		t.Error("Timestamp should not be zero")
	}
	if time.Since(event.Timestamp) > time.Second {
		t.Error("Timestamp should be recent")
	}
}

func TestEntityEvent_JSON(t *testing.T) {
	timestamp := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	event := &EntityEvent{
		Kind:      core.KindExpense,
		Action:    ActionDeleted,
		ID:        7,
		Timestamp: timestamp,
	}

	jsonBytes, err := event.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	parsed, err := EntityEventFromJSON(jsonBytes)
	if err != nil {
		t.Fatalf("EntityEventFromJSON() error = %v", err)
	}

	if parsed.Kind != event.Kind || parsed.Action != event.Action || parsed.ID != event.ID {
		t.Errorf("parsed event = %+v, want %+v", parsed, event)
	}
	if !parsed.Timestamp.Equal(event.Timestamp) {
		t.Errorf("parsed Timestamp = %v, want %v", parsed.Timestamp, event.Timestamp)
	}
}

func TestEntityEvent_InvalidJSON(t *testing.T) {
	invalidJSON := []byte(`{"id": "not_a_number", "kind": "income"}`)

	if _, err := EntityEventFromJSON(invalidJSON); err == nil {
		t.Error("EntityEventFromJSON() should fail with invalid JSON")
	}
}

func TestNilClientPublishIsNoop(t *testing.T) {
	var client *Client
	if err := client.PublishEntityEvent(context.Background(), core.KindIncome, ActionCreated, 1); err != nil {
		t.Errorf("nil client publish should be a no-op, got %v", err)
	}
	if err := client.Close(); err != nil {
		t.Errorf("nil client close should be a no-op, got %v", err)
	}
}
