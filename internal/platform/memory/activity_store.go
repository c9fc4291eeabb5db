package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/phrazzld/mergington-activities/internal/domain"
	"github.com/phrazzld/mergington-activities/internal/redact"
	"github.com/phrazzld/mergington-activities/internal/store"
)

// ActivityStore implements store.ActivityStore on top of an in-memory map.
type ActivityStore struct {
	mu         sync.RWMutex
	activities map[string]*domain.Activity
	order      []string
	logger     *slog.Logger
}

// Compile-time check to ensure ActivityStore implements store.ActivityStore
var _ store.ActivityStore = (*ActivityStore)(nil)

// NewActivityStore creates a registry holding the given activities.
// Each activity is validated and copied; names must be unique.
func NewActivityStore(seed []*domain.Activity, logger *slog.Logger) (*ActivityStore, error) {
	if logger == nil {
		logger = slog.Default()
	}

	s := &ActivityStore{
		activities: make(map[string]*domain.Activity, len(seed)),
		order:      make([]string, 0, len(seed)),
		logger:     logger.With(slog.String("component", "activity_store")),
	}

	for _, activity := range seed {
		if activity == nil {
			return nil, store.NewStoreError("activity", "seed", "nil activity", store.ErrInvalidEntity)
		}
		if err := activity.Validate(); err != nil {
			return nil, store.NewStoreError(
				"activity",
				"seed",
				fmt.Sprintf("invalid activity %q", activity.Name),
				fmt.Errorf("%w: %w", store.ErrInvalidEntity, err),
			)
		}
		if _, exists := s.activities[activity.Name]; exists {
			return nil, store.NewStoreError(
				"activity",
				"seed",
				fmt.Sprintf("activity %q registered twice", activity.Name),
				store.ErrActivityExists,
			)
		}

		s.activities[activity.Name] = activity.Clone()
		s.order = append(s.order, activity.Name)
	}

	s.logger.Info("activity registry seeded", slog.Int("activity_count", len(s.order)))
	return s, nil
}

// List returns a snapshot of every activity in registration order.
func (s *ActivityStore) List(ctx context.Context) ([]*domain.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Activity, 0, len(s.order))
	for _, name := range s.order {
		result = append(result, s.activities[name].Clone())
	}
	return result, nil
}

// Get returns a snapshot of the named activity.
func (s *ActivityStore) Get(ctx context.Context, name string) (*domain.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	activity, ok := s.activities[name]
	if !ok {
		return nil, store.ErrActivityNotFound
	}
	return activity.Clone(), nil
}

// AddParticipant appends email to the named activity's participants.
func (s *ActivityStore) AddParticipant(
	ctx context.Context,
	name, email string,
) (*domain.Activity, error) {
	return s.mutate(ctx, "add_participant", name, email, (*domain.Activity).AddParticipant)
}

// RemoveParticipant removes email from the named activity's participants.
func (s *ActivityStore) RemoveParticipant(
	ctx context.Context,
	name, email string,
) (*domain.Activity, error) {
	return s.mutate(ctx, "remove_participant", name, email, (*domain.Activity).RemoveParticipant)
}

// mutate runs op against the named activity under the write lock.
// op either succeeds or leaves the activity untouched.
func (s *ActivityStore) mutate(
	ctx context.Context,
	operation, name, email string,
	op func(*domain.Activity, string) error,
) (*domain.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[name]
	if !ok {
		return nil, store.ErrActivityNotFound
	}

	if err := op(activity, email); err != nil {
		return nil, err
	}

	s.logger.DebugContext(ctx, "participant list updated",
		slog.String("operation", operation),
		slog.String("activity", name),
		slog.String("email", redact.Email(email)),
		slog.Int("participant_count", len(activity.Participants)))

	return activity.Clone(), nil
}
