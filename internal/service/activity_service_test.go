package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/phrazzld/mergington-activities/internal/domain"
	"github.com/phrazzld/mergington-activities/internal/events"
	"github.com/phrazzld/mergington-activities/internal/platform/memory"
	"github.com/phrazzld/mergington-activities/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestService wires the service to a freshly seeded in-memory registry.
func newTestService(t *testing.T) (ActivityService, *MockEventEmitter) {
	t.Helper()
	activityStore, err := memory.NewActivityStore(memory.DefaultSeed(), discardLogger())
	require.NoError(t, err)

	emitter := &MockEventEmitter{}
	svc, err := NewActivityService(activityStore, emitter, discardLogger())
	require.NoError(t, err)
	return svc, emitter
}

func participants(t *testing.T, svc ActivityService, name string) []string {
	t.Helper()
	activity, err := svc.GetActivity(context.Background(), name)
	require.NoError(t, err)
	return activity.Participants
}

func TestNewActivityService(t *testing.T) {
	t.Parallel()

	_, err := NewActivityService(nil, &MockEventEmitter{}, nil)
	var svcErr *ActivityServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "create_service", svcErr.Operation)

	_, err = NewActivityService(&MockActivityStore{}, nil, nil)
	assert.Error(t, err)

	svc, err := NewActivityService(&MockActivityStore{}, &MockEventEmitter{}, nil)
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestActivityService_ListActivities(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	activities, err := svc.ListActivities(context.Background())
	require.NoError(t, err)

	names := make([]string, 0, len(activities))
	for _, a := range activities {
		names = append(names, a.Name)
	}
	assert.Subset(t, names, []string{
		"Debate Team", "Math Olympiad", "Basketball",
		"Chess Club", "Digital Art", "Programming Class", "Volleyball",
	})
}

func TestActivityService_Signup(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("success emits event", func(t *testing.T) {
		t.Parallel()
		svc, emitter := newTestService(t)

		confirmation, err := svc.Signup(ctx, "Chess Club", "newstudent@mergington.edu")
		require.NoError(t, err)
		assert.Equal(t, "Signed up newstudent@mergington.edu for Chess Club", confirmation.Message)
		assert.Equal(t, "Chess Club", confirmation.Activity)
		assert.Equal(t, "newstudent@mergington.edu", confirmation.Email)
		assert.Contains(t, participants(t, svc, "Chess Club"), "newstudent@mergington.edu")

		require.Len(t, emitter.Events, 1)
		event := emitter.Events[0]
		assert.Equal(t, events.TypeParticipantSignedUp, event.Type)
		assert.Equal(t, "Chess Club", event.Activity)
		assert.Equal(t, "newstudent@mergington.edu", event.Email)
		assert.Equal(t, len(participants(t, svc, "Chess Club")), event.Participants)
	})

	t.Run("duplicate signup", func(t *testing.T) {
		t.Parallel()
		svc, emitter := newTestService(t)

		_, err := svc.Signup(ctx, "Digital Art", "duplicate@mergington.edu")
		require.NoError(t, err)
		_, err = svc.Signup(ctx, "Digital Art", "duplicate@mergington.edu")
		assert.ErrorIs(t, err, ErrAlreadySignedUp)
		assert.Len(t, emitter.Events, 1, "rejected signup must not emit")
	})

	t.Run("unknown activity", func(t *testing.T) {
		t.Parallel()
		svc, emitter := newTestService(t)

		for _, email := range []string{"test@mergington.edu", "alex@mergington.edu", ""} {
			_, err := svc.Signup(ctx, "Nonexistent Activity", email)
			assert.ErrorIs(t, err, ErrActivityNotFound, "email %q", email)
		}
		assert.Empty(t, emitter.Events)
	})

	t.Run("empty email", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t)

		_, err := svc.Signup(ctx, "Chess Club", "")
		assert.ErrorIs(t, err, ErrInvalidEmail)
	})

	t.Run("emitter failure does not fail signup", func(t *testing.T) {
		t.Parallel()
		svc, emitter := newTestService(t)
		emitter.Err = errors.New("metrics unavailable")

		_, err := svc.Signup(ctx, "Volleyball", "late@mergington.edu")
		require.NoError(t, err)
		assert.Contains(t, participants(t, svc, "Volleyball"), "late@mergington.edu")
	})
}

func TestActivityService_Unregister(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		svc, emitter := newTestService(t)
		before := participants(t, svc, "Programming Class")

		_, err := svc.Signup(ctx, "Programming Class", "unregister_test@mergington.edu")
		require.NoError(t, err)

		confirmation, err := svc.Unregister(ctx, "Programming Class", "unregister_test@mergington.edu")
		require.NoError(t, err)
		assert.Equal(t, "Unregistered unregister_test@mergington.edu from Programming Class", confirmation.Message)
		assert.Equal(t, before, participants(t, svc, "Programming Class"))

		require.Len(t, emitter.Events, 2)
		assert.Equal(t, events.TypeParticipantUnregistered, emitter.Events[1].Type)
		assert.Equal(t, len(before), emitter.Events[1].Participants)
	})

	t.Run("not registered", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t)
		before := participants(t, svc, "Volleyball")

		_, err := svc.Unregister(ctx, "Volleyball", "doesnotexist@mergington.edu")
		assert.ErrorIs(t, err, ErrNotRegistered)
		assert.Equal(t, before, participants(t, svc, "Volleyball"))
	})

	t.Run("unknown activity", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t)

		_, err := svc.Unregister(ctx, "Nonexistent Activity", "test@mergington.edu")
		assert.ErrorIs(t, err, ErrActivityNotFound)
	})
}

func TestActivityService_UnexpectedStoreError(t *testing.T) {
	t.Parallel()
	storeErr := errors.New("registry unavailable")
	mockStore := &MockActivityStore{
		ListFn: func(ctx context.Context) ([]*domain.Activity, error) {
			return nil, storeErr
		},
		AddParticipantFn: func(ctx context.Context, name, email string) (*domain.Activity, error) {
			return nil, storeErr
		},
	}

	svc, err := NewActivityService(mockStore, &MockEventEmitter{}, discardLogger())
	require.NoError(t, err)

	_, err = svc.ListActivities(context.Background())
	var svcErr *ActivityServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "list_activities", svcErr.Operation)
	assert.ErrorIs(t, err, storeErr)

	_, err = svc.Signup(context.Background(), "Chess Club", "a@mergington.edu")
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "signup", svcErr.Operation)
}

func TestNewActivityServiceError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"store not found", store.ErrActivityNotFound, ErrActivityNotFound},
		{"generic store not found", store.ErrNotFound, ErrActivityNotFound},
		{"store error wrapping not found", store.NewStoreError("activity", "get", "lookup failed", store.ErrNotFound), ErrActivityNotFound},
		{"domain already signed up", domain.ErrAlreadySignedUp, ErrAlreadySignedUp},
		{"domain not registered", domain.ErrNotRegistered, ErrNotRegistered},
		{"service sentinel", ErrNotRegistered, ErrNotRegistered},
		{"domain empty email", domain.ErrEmptyEmail, ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewActivityServiceError("op", "msg", tt.err))
		})
	}

	assert.Nil(t, NewActivityServiceError("op", "msg", nil))

	wrapped := NewActivityServiceError("signup", "failed", errors.New("boom"))
	assert.EqualError(t, wrapped, "activity service signup failed: failed: boom")
}
