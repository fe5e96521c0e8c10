package events

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

// subscription pairs a handler with the event types it wants.
// An empty type set matches every event.
type subscription struct {
	handler EventHandler
	types   map[string]struct{}
}

func (s subscription) matches(eventType string) bool {
	if len(s.types) == 0 {
		return true
	}
	_, ok := s.types[eventType]
	return ok
}

// InMemoryEventEmitter dispatches task events to subscribed handlers
// synchronously, on the goroutine that emits them.
type InMemoryEventEmitter struct {
	mu     sync.RWMutex
	subs   []subscription
	logger *slog.Logger
}

// NewInMemoryEventEmitter creates an emitter with no subscribers.
func NewInMemoryEventEmitter(logger *slog.Logger) *InMemoryEventEmitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &InMemoryEventEmitter{
		logger: logger.With("component", "task_event_emitter"),
	}
}

// RegisterHandler subscribes handler to the given event types, or to every
// event type when none are given.
func (e *InMemoryEventEmitter) RegisterHandler(handler EventHandler, eventTypes ...string) {
	sub := subscription{handler: handler}
	if len(eventTypes) > 0 {
		sub.types = make(map[string]struct{}, len(eventTypes))
		for _, t := range eventTypes {
			sub.types[t] = struct{}{}
		}
	}

	e.mu.Lock()
	e.subs = append(e.subs, sub)
	count := len(e.subs)
	e.mu.Unlock()

	e.logger.Debug("event handler subscribed",
		"event_types", eventTypes,
		"subscriber_count", count)
}

// EmitEvent hands event to every matching subscriber in registration order.
// A failing handler does not stop the others; all failures are returned
// joined into one error.
func (e *InMemoryEventEmitter) EmitEvent(ctx context.Context, event *TaskEvent) error {
	e.mu.RLock()
	subs := make([]subscription, len(e.subs))
	copy(subs, e.subs)
	e.mu.RUnlock()

	var errs []error
	delivered := 0
	for _, sub := range subs {
		if !sub.matches(event.Type) {
			continue
		}
		delivered++
		if err := sub.handler.HandleEvent(ctx, event); err != nil {
			e.logger.Error("task event handler failed",
				"error", err,
				"event_id", event.ID,
				"event_type", event.Type,
				"task_id", event.TaskID)
			errs = append(errs, err)
		}
	}

	e.logger.Debug("task event dispatched",
		"event_id", event.ID,
		"event_type", event.Type,
		"delivered", delivered)

	return errors.Join(errs...)
}
