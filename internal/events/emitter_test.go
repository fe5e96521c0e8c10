package events

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockEventHandler records the events it receives.
type MockEventHandler struct {
	mu           sync.Mutex
	HandledCount int
	LastEvent    *TaskEvent
	HandlerError error
}

// HandleEvent implements EventHandler.
func (m *MockEventHandler) HandleEvent(ctx context.Context, event *TaskEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.HandledCount++
	m.LastEvent = event
	return m.HandlerError
}

func TestNewTaskEvent(t *testing.T) {
	payload := map[string]interface{}{"id": 1, "title": "Buy milk"}

	event, err := NewTaskEvent(TaskCreated, 1, payload)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, TaskCreated, event.Type)
	assert.Equal(t, int64(1), event.TaskID)
	assert.False(t, event.CreatedAt.IsZero())

	var decoded struct {
		ID    int64  `json:"id"`
		Title string `json:"title"`
	}
	require.NoError(t, event.UnmarshalPayload(&decoded))
	assert.Equal(t, int64(1), decoded.ID)
	assert.Equal(t, "Buy milk", decoded.Title)

	deleted, err := NewTaskEvent(TaskDeleted, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, json.RawMessage("null"), deleted.Payload)

	_, err = NewTaskEvent(TaskUpdated, 1, make(chan int))
	assert.Error(t, err, "unmarshalable payload should fail")
}

func TestInMemoryEventEmitter(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("emit event with no handlers", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(logger)
		event, err := NewTaskEvent(TaskCreated, 1, nil)
		require.NoError(t, err)

		assert.NoError(t, emitter.EmitEvent(context.Background(), event))
	})

	t.Run("emit event with successful handlers", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(logger)

		handler1 := &MockEventHandler{}
		handler2 := &MockEventHandler{}
		emitter.RegisterHandler(handler1)
		emitter.RegisterHandler(handler2)

		event, err := NewTaskEvent(TaskUpdated, 4, map[string]string{"title": "x"})
		require.NoError(t, err)

		assert.NoError(t, emitter.EmitEvent(context.Background(), event))

		assert.Equal(t, 1, handler1.HandledCount)
		assert.Equal(t, 1, handler2.HandledCount)
		assert.Equal(t, event, handler1.LastEvent)
		assert.Equal(t, event, handler2.LastEvent)
	})

	t.Run("emit event with failing handlers", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(logger)

		errFirst := errors.New("handler error")
		errSecond := errors.New("second error")
		failingHandler := &MockEventHandler{HandlerError: errFirst}
		secondFailing := &MockEventHandler{HandlerError: errSecond}
		successHandler := &MockEventHandler{}
		emitter.RegisterHandler(failingHandler)
		emitter.RegisterHandler(secondFailing)
		emitter.RegisterHandler(successHandler)

		event, err := NewTaskEvent(TaskDeleted, 2, nil)
		require.NoError(t, err)

		err = emitter.EmitEvent(context.Background(), event)
		assert.ErrorIs(t, err, errFirst)
		assert.ErrorIs(t, err, errSecond)
		assert.Equal(t, 1, successHandler.HandledCount, "later handlers still run")
	})

	t.Run("handlers only see subscribed types", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(nil)

		all := &MockEventHandler{}
		deletions := &MockEventHandler{}
		changes := &MockEventHandler{}
		emitter.RegisterHandler(all)
		emitter.RegisterHandler(deletions, TaskDeleted)
		emitter.RegisterHandler(changes, TaskCreated, TaskUpdated)

		for _, typ := range []string{TaskCreated, TaskUpdated, TaskDeleted, TaskUpdated} {
			event, err := NewTaskEvent(typ, 1, nil)
			require.NoError(t, err)
			require.NoError(t, emitter.EmitEvent(context.Background(), event))
		}

		assert.Equal(t, 4, all.HandledCount)
		assert.Equal(t, 1, deletions.HandledCount)
		assert.Equal(t, TaskDeleted, deletions.LastEvent.Type)
		assert.Equal(t, 3, changes.HandledCount)
		assert.Equal(t, TaskUpdated, changes.LastEvent.Type)
	})

	t.Run("concurrent registration and emission", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(logger)
		handler := &MockEventHandler{}
		emitter.RegisterHandler(handler)

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				emitter.RegisterHandler(&MockEventHandler{})
			}()
			go func(id int64) {
				defer wg.Done()
				event, _ := NewTaskEvent(TaskCreated, id, nil)
				_ = emitter.EmitEvent(context.Background(), event)
			}(int64(i))
		}
		wg.Wait()

		assert.Equal(t, 20, handler.HandledCount)
	})
}

func TestAuditLogHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	handler := NewAuditLogHandler(logger)

	event, err := NewTaskEvent(TaskCreated, 9, map[string]string{"title": "secret plans"})
	require.NoError(t, err)
	require.NoError(t, handler.HandleEvent(context.Background(), event))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "task changed", entry["msg"])
	assert.Equal(t, "task_audit", entry["component"])
	assert.Equal(t, TaskCreated, entry["event_type"])
	assert.Equal(t, float64(9), entry["task_id"])
	assert.Equal(t, event.ID.String(), entry["event_id"])
	assert.NotContains(t, buf.String(), "secret plans", "payload content is not logged")
}
