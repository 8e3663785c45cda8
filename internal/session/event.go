package session

import (
	"discgolf-session-service/internal/domain"
	"fmt"
)

// EventType classifies domain events emitted by the reducer.
type EventType int

const (
	EventTargetSet         EventType = iota + 1 // a new target replaced the old one
	EventThrowRecorded                          // a throw was appended and classified
	EventAllThrowsPickedUp                      // the last throw was confirmed picked up
	EventRouteUpdated                           // the pickup route was recomputed
)

var eventTypeNames = [...]string{
	EventTargetSet:         "TargetSet",
	EventThrowRecorded:     "ThrowRecorded",
	EventAllThrowsPickedUp: "AllThrowsPickedUp",
	EventRouteUpdated:      "RouteUpdated",
}

func (t EventType) String() string {
	if t >= EventTargetSet && t <= EventRouteUpdated {
		return eventTypeNames[t]
	}
	return fmt.Sprintf("EventType(%d)", int(t))
}

// MarshalText implements encoding.TextMarshaler.
func (t EventType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *EventType) UnmarshalText(text []byte) error {
	for i := EventTargetSet; i <= EventRouteUpdated; i++ {
		if eventTypeNames[i] == string(text) {
			*t = i
			return nil
		}
	}
	return fmt.Errorf("session: invalid event type: %q", text)
}

// Event carries the facts of one state change to observers.
// Only the fields relevant to Type are set.
type Event struct {
	Type      EventType          `json:"type"`
	Target    *domain.Coordinate `json:"target,omitempty"`
	Throw     *domain.Throw      `json:"throw,omitempty"`
	Feedback  []domain.Tag       `json:"feedback,omitempty"`
	LineColor string             `json:"lineColor,omitempty"`
	Route     *domain.Route      `json:"route,omitempty"`
}
