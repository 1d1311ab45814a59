package events

import (
	"testing"
)

func TestAppendEvent_AssignsVersionsPerStream(t *testing.T) {
	store := NewInMemoryEventStore()

	for i := 0; i < 3; i++ {
		e := NewSupplierEvaluatedEvent("SUP00001", "ECN-0001", "time", 7.5, "Implement")
		if err := store.AppendEvent("SUP00001", e); err != nil {
			t.Fatalf("AppendEvent failed: %v", err)
		}
	}
	if err := store.AppendEvent("SUP00002", NewSupplierEvaluatedEvent("SUP00002", "ECN-0001", "time", 3.1, "Wait")); err != nil {
		t.Fatalf("AppendEvent failed: %v", err)
	}

	events, err := store.ReadEvents("SUP00001", 0)
	if err != nil {
		t.Fatalf("ReadEvents failed: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("stream length = %d, want 3", len(events))
	}
	for i, e := range events {
		if e.Version() != i+1 {
			t.Errorf("event %d version = %d, want %d", i, e.Version(), i+1)
		}
		if e.StreamID() != "SUP00001" {
			t.Errorf("event %d stream = %s, want SUP00001", i, e.StreamID())
		}
		if e.Type() != SupplierEvaluatedEvent {
			t.Errorf("event %d type = %s, want %s", i, e.Type(), SupplierEvaluatedEvent)
		}
	}

	other, err := store.ReadEvents("SUP00002", 0)
	if err != nil {
		t.Fatalf("ReadEvents failed: %v", err)
	}
	if len(other) != 1 || other[0].Version() != 1 {
		t.Errorf("second stream versions independently, got %v", other)
	}
}

func TestReadEvents_FromVersion(t *testing.T) {
	store := NewInMemoryEventStore()
	for i := 0; i < 4; i++ {
		if err := store.AppendEvent("ECN-0001", NewSimulationCompletedEvent("HVAC-NPI-1", 1, 3, 30)); err != nil {
			t.Fatalf("AppendEvent failed: %v", err)
		}
	}

	tail, err := store.ReadEvents("ECN-0001", 3)
	if err != nil {
		t.Fatalf("ReadEvents failed: %v", err)
	}
	if len(tail) != 2 {
		t.Fatalf("tail length = %d, want 2", len(tail))
	}
	if tail[0].Version() != 3 || tail[1].Version() != 4 {
		t.Errorf("tail versions = %d, %d, want 3, 4", tail[0].Version(), tail[1].Version())
	}

	past, err := store.ReadEvents("ECN-0001", 10)
	if err != nil {
		t.Fatalf("ReadEvents failed: %v", err)
	}
	if len(past) != 0 {
		t.Errorf("reading past the stream end returned %d events, want 0", len(past))
	}
}

func TestReadEvents_UnknownStreamIsEmpty(t *testing.T) {
	store := NewInMemoryEventStore()

	events, err := store.ReadEvents("ECN-NOPE", 0)
	if err != nil {
		t.Fatalf("ReadEvents failed: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("unknown stream returned %d events, want 0", len(events))
	}
}

func TestAppendEvent_RejectsEmptyStreamID(t *testing.T) {
	store := NewInMemoryEventStore()

	err := store.AppendEvent("", NewSupplierEvaluatedEvent("SUP00001", "ECN-0001", "time", 5, "Wait"))
	if err == nil {
		t.Fatal("expected an error for an empty stream ID")
	}
}
