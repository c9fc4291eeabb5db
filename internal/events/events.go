package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event types emitted by the activity service.
const (
	TypeParticipantSignedUp     = "participant.signed_up"
	TypeParticipantUnregistered = "participant.unregistered"
)

// ActivityEvent records a change to an activity's participant list.
type ActivityEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Type is one of the Type* constants
	Type string `json:"type"`

	// Activity is the name of the activity whose participants changed
	Activity string `json:"activity"`

	// Email is the participant that was added or removed
	Email string `json:"email"`

	// Participants is the participant count after the change
	Participants int `json:"participants"`

	// CreatedAt is the timestamp when the event was created
	CreatedAt time.Time `json:"created_at"`
}

// NewActivityEvent creates a new ActivityEvent with a fresh ID.
func NewActivityEvent(eventType, activity, email string, participants int) *ActivityEvent {
	return &ActivityEvent{
		ID:           uuid.New(),
		Type:         eventType,
		Activity:     activity,
		Email:        email,
		Participants: participants,
		CreatedAt:    time.Now().UTC(),
	}
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *ActivityEvent) error
}

// EventEmitter defines an interface for components that can emit events.
// This allows services to publish events without direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	// Returns an error if the event cannot be emitted.
	EmitEvent(ctx context.Context, event *ActivityEvent) error
}

// EventHandlerFunc adapts an ordinary function to EventHandler.
type EventHandlerFunc func(ctx context.Context, event *ActivityEvent) error

// HandleEvent calls f(ctx, event).
func (f EventHandlerFunc) HandleEvent(ctx context.Context, event *ActivityEvent) error {
	return f(ctx, event)
}
