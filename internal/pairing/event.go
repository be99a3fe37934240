package pairing

import (
	"fmt"
	"strings"
)

// EventKind tells which side of the board an event targets.
type EventKind string

const (
	EventKey   EventKind = "key"
	EventValue EventKind = "value"
)

// Event is a single user selection.
type Event struct {
	Kind EventKind `yaml:"kind"`
	ID   string    `yaml:"id"`
}

// KeyEvent selects the key id.
func KeyEvent(id string) Event {
	return Event{Kind: EventKey, ID: id}
}

// ValueEvent selects the value id.
func ValueEvent(id string) Event {
	return Event{Kind: EventValue, ID: id}
}

// String returns the "kind:id" form accepted by ParseEvent.
func (e Event) String() string {
	return string(e.Kind) + ":" + e.ID
}

// ParseEvent parses "key:ID" or "value:ID". The short prefixes "k" and "v"
// are accepted too. Everything after the first colon is the id.
func ParseEvent(s string) (Event, error) {
	kind, id, ok := strings.Cut(s, ":")
	if !ok {
		return Event{}, fmt.Errorf("%w: %q has no kind prefix", ErrUnknownEvent, s)
	}

	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "key", "k":
		return KeyEvent(id), nil
	case "value", "v":
		return ValueEvent(id), nil
	default:
		return Event{}, fmt.Errorf("%w: %q", ErrUnknownEvent, kind)
	}
}
