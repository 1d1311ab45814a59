package events

import (
	"fmt"
	"sync"
)

// InMemoryEventStore keeps per-stream event logs in memory. Versions are
// assigned on append, starting at 1 within each stream.
type InMemoryEventStore struct {
	mu      sync.RWMutex
	streams map[string][]Event
}

var _ EventStore = (*InMemoryEventStore)(nil)

func NewInMemoryEventStore() *InMemoryEventStore {
	return &InMemoryEventStore{streams: make(map[string][]Event)}
}

// AppendEvent stores the event at the next version of the stream.
func (s *InMemoryEventStore) AppendEvent(streamID string, event Event) error {
	if streamID == "" {
		return fmt.Errorf("stream ID cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	versioned := sourcingEvent{
		eventType: event.Type(),
		streamID:  streamID,
		data:      event.Data(),
		at:        event.Timestamp(),
		version:   len(s.streams[streamID]) + 1,
	}
	s.streams[streamID] = append(s.streams[streamID], versioned)

	return nil
}

// ReadEvents returns the stream's events from the given version onward.
// Versions below 1 read the whole stream; an unknown stream is empty.
func (s *InMemoryEventStore) ReadEvents(streamID string, fromVersion int) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stream := s.streams[streamID]
	if fromVersion < 1 {
		fromVersion = 1
	}
	if fromVersion > len(stream) {
		return []Event{}, nil
	}

	out := make([]Event, len(stream)-fromVersion+1)
	copy(out, stream[fromVersion-1:])
	return out, nil
}
