package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/mergington-activities/internal/domain"
	"github.com/phrazzld/mergington-activities/internal/events"
	"github.com/phrazzld/mergington-activities/internal/platform/logger"
	"github.com/phrazzld/mergington-activities/internal/redact"
	"github.com/phrazzld/mergington-activities/internal/store"
)

// Confirmation is the result of a successful signup or unregistration.
type Confirmation struct {
	Activity string
	Email    string
	Message  string
}

// ActivityService provides activity signup operations
type ActivityService interface {
	// ListActivities returns every activity in registration order
	ListActivities(ctx context.Context) ([]*domain.Activity, error)

	// GetActivity returns a single activity by name
	GetActivity(ctx context.Context, name string) (*domain.Activity, error)

	// Signup adds email to the named activity
	Signup(ctx context.Context, activityName, email string) (*Confirmation, error)

	// Unregister removes email from the named activity
	Unregister(ctx context.Context, activityName, email string) (*Confirmation, error)
}

// activityServiceImpl implements the ActivityService interface
type activityServiceImpl struct {
	activityStore store.ActivityStore
	eventEmitter  events.EventEmitter
	logger        *slog.Logger
}

// NewActivityService creates a new ActivityService
// It returns an error if any of the required dependencies are nil.
func NewActivityService(
	activityStore store.ActivityStore,
	eventEmitter events.EventEmitter,
	logger *slog.Logger,
) (ActivityService, error) {
	if activityStore == nil {
		return nil, &ActivityServiceError{
			Operation: "create_service",
			Message:   "activityStore cannot be nil",
		}
	}
	if eventEmitter == nil {
		return nil, &ActivityServiceError{
			Operation: "create_service",
			Message:   "eventEmitter cannot be nil",
		}
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &activityServiceImpl{
		activityStore: activityStore,
		eventEmitter:  eventEmitter,
		logger:        logger.With("component", "activity_service"),
	}, nil
}

// ListActivities returns every activity in registration order
func (s *activityServiceImpl) ListActivities(ctx context.Context) ([]*domain.Activity, error) {
	activities, err := s.activityStore.List(ctx)
	if err != nil {
		s.log(ctx).Error("failed to list activities", "error", redact.Error(err))
		return nil, NewActivityServiceError("list_activities", "failed to list activities", err)
	}
	return activities, nil
}

// GetActivity returns a single activity by name
func (s *activityServiceImpl) GetActivity(ctx context.Context, name string) (*domain.Activity, error) {
	activity, err := s.activityStore.Get(ctx, name)
	if err != nil {
		return nil, NewActivityServiceError("get_activity", "failed to retrieve activity", err)
	}
	return activity, nil
}

// Signup adds email to the named activity's participants
func (s *activityServiceImpl) Signup(
	ctx context.Context,
	activityName, email string,
) (*Confirmation, error) {
	log := s.log(ctx).With("activity", activityName, "email", redact.Email(email))

	activity, err := s.activityStore.AddParticipant(ctx, activityName, email)
	if err != nil {
		err = NewActivityServiceError("signup", "failed to add participant", err)
		log.Debug("signup rejected", "error", redact.Error(err))
		return nil, err
	}

	log.Info("student signed up", "participant_count", len(activity.Participants))
	s.emit(ctx, events.TypeParticipantSignedUp, activity, email)

	return &Confirmation{
		Activity: activityName,
		Email:    email,
		Message:  fmt.Sprintf("Signed up %s for %s", email, activityName),
	}, nil
}

// Unregister removes email from the named activity's participants
func (s *activityServiceImpl) Unregister(
	ctx context.Context,
	activityName, email string,
) (*Confirmation, error) {
	log := s.log(ctx).With("activity", activityName, "email", redact.Email(email))

	activity, err := s.activityStore.RemoveParticipant(ctx, activityName, email)
	if err != nil {
		err = NewActivityServiceError("unregister", "failed to remove participant", err)
		log.Debug("unregister rejected", "error", redact.Error(err))
		return nil, err
	}

	log.Info("student unregistered", "participant_count", len(activity.Participants))
	s.emit(ctx, events.TypeParticipantUnregistered, activity, email)

	return &Confirmation{
		Activity: activityName,
		Email:    email,
		Message:  fmt.Sprintf("Unregistered %s from %s", email, activityName),
	}, nil
}

// emit publishes a participant change. The change is already committed, so
// handler failures are logged and not returned.
func (s *activityServiceImpl) emit(
	ctx context.Context,
	eventType string,
	activity *domain.Activity,
	email string,
) {
	event := events.NewActivityEvent(eventType, activity.Name, email, len(activity.Participants))
	if err := s.eventEmitter.EmitEvent(ctx, event); err != nil {
		s.log(ctx).Warn("failed to emit activity event",
			"error", redact.Error(err),
			"event_id", event.ID,
			"event_type", eventType,
			"activity", activity.Name)
	}
}

// log returns the request-scoped logger when present.
func (s *activityServiceImpl) log(ctx context.Context) *slog.Logger {
	return logger.FromContextOrDefault(ctx, s.logger)
}
