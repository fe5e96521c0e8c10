package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/task-api/internal/events"
)

// MockEventEmitter implements events.EventEmitter and records every event
// it receives.
type MockEventEmitter struct {
	EmitEventFn func(ctx context.Context, event *events.TaskEvent) error

	// DefaultError is returned when EmitEventFn is nil.
	DefaultError error

	mu     sync.Mutex
	events []*events.TaskEvent
}

// EmitEvent implements the EventEmitter.EmitEvent method
func (m *MockEventEmitter) EmitEvent(ctx context.Context, event *events.TaskEvent) error {
	m.mu.Lock()
	m.events = append(m.events, event)
	m.mu.Unlock()

	if m.EmitEventFn != nil {
		return m.EmitEventFn(ctx, event)
	}
	return m.DefaultError
}

// Events returns a copy of the recorded events.
func (m *MockEventEmitter) Events() []*events.TaskEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*events.TaskEvent, len(m.events))
	copy(out, m.events)
	return out
}

// EventTypes returns the types of the recorded events in emission order.
func (m *MockEventEmitter) EventTypes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.events))
	for _, e := range m.events {
		out = append(out, e.Type)
	}
	return out
}
