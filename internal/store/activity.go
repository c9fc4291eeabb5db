package store

import (
	"context"

	"github.com/phrazzld/mergington-activities/internal/domain"
)

// ActivityStore defines the interface for the activity registry.
// The set of activities is fixed when the store is created; only the
// participant lists change afterwards.
type ActivityStore interface {
	// List returns a snapshot of every activity in registration order.
	// The returned activities are copies and may be modified freely.
	List(ctx context.Context) ([]*domain.Activity, error)

	// Get returns a snapshot of the named activity.
	// Returns ErrActivityNotFound if no activity has that name.
	Get(ctx context.Context, name string) (*domain.Activity, error)

	// AddParticipant appends email to the named activity's participant list
	// and returns a snapshot of the updated activity.
	// Returns ErrActivityNotFound if no activity has that name.
	// Returns domain.ErrAlreadySignedUp if email is already a participant.
	AddParticipant(ctx context.Context, name, email string) (*domain.Activity, error)

	// RemoveParticipant removes email from the named activity's participant
	// list and returns a snapshot of the updated activity.
	// Returns ErrActivityNotFound if no activity has that name.
	// Returns domain.ErrNotRegistered if email is not a participant.
	RemoveParticipant(ctx context.Context, name, email string) (*domain.Activity, error)
}
