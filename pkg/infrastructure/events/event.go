package events

import "time"

// Event is one recorded fact of the sourcing process: an RFQ going out, a
// quotation arriving, business being awarded, a supplier being scored.
// Events are grouped into streams keyed by the entity they concern (an
// ECN, a project, a supplier ID).
type Event interface {
	Type() string
	StreamID() string
	Data() interface{}
	Timestamp() time.Time
	Version() int
}

// EventStore is an append-only log of sourcing events, ordered and
// versioned per stream.
type EventStore interface {
	AppendEvent(streamID string, event Event) error
	ReadEvents(streamID string, fromVersion int) ([]Event, error)
}

// sourcingEvent is the stored form of an event. Versions start at 0 until
// the store assigns the stream position on append.
type sourcingEvent struct {
	eventType string
	streamID  string
	data      interface{}
	at        time.Time
	version   int
}

func (e sourcingEvent) Type() string         { return e.eventType }
func (e sourcingEvent) StreamID() string     { return e.streamID }
func (e sourcingEvent) Data() interface{}    { return e.data }
func (e sourcingEvent) Timestamp() time.Time { return e.at }
func (e sourcingEvent) Version() int         { return e.version }

// NewEvent wraps a payload as an unversioned event, timestamped now.
func NewEvent(eventType, streamID string, data interface{}) Event {
	return sourcingEvent{
		eventType: eventType,
		streamID:  streamID,
		data:      data,
		at:        time.Now(),
	}
}
