package service

import (
	"context"
	"sync"

	"github.com/phrazzld/mergington-activities/internal/domain"
	"github.com/phrazzld/mergington-activities/internal/events"
)

// MockActivityStore is a mock implementation of store.ActivityStore for testing
type MockActivityStore struct {
	ListFn              func(ctx context.Context) ([]*domain.Activity, error)
	GetFn               func(ctx context.Context, name string) (*domain.Activity, error)
	AddParticipantFn    func(ctx context.Context, name, email string) (*domain.Activity, error)
	RemoveParticipantFn func(ctx context.Context, name, email string) (*domain.Activity, error)
}

// List implements store.ActivityStore
func (m *MockActivityStore) List(ctx context.Context) ([]*domain.Activity, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

// Get implements store.ActivityStore
func (m *MockActivityStore) Get(ctx context.Context, name string) (*domain.Activity, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, name)
	}
	return nil, nil
}

// AddParticipant implements store.ActivityStore
func (m *MockActivityStore) AddParticipant(ctx context.Context, name, email string) (*domain.Activity, error) {
	if m.AddParticipantFn != nil {
		return m.AddParticipantFn(ctx, name, email)
	}
	return nil, nil
}

// RemoveParticipant implements store.ActivityStore
func (m *MockActivityStore) RemoveParticipant(ctx context.Context, name, email string) (*domain.Activity, error) {
	if m.RemoveParticipantFn != nil {
		return m.RemoveParticipantFn(ctx, name, email)
	}
	return nil, nil
}

// MockEventEmitter records emitted events
type MockEventEmitter struct {
	mu     sync.Mutex
	Events []*events.ActivityEvent
	Err    error
}

// EmitEvent implements events.EventEmitter
func (m *MockEventEmitter) EmitEvent(ctx context.Context, event *events.ActivityEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, event)
	return m.Err
}
