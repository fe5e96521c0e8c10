package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/phrazzld/task-api/internal/store"
)

// TaskStore implements store.TaskStore on top of an id-keyed map.
// The order slice keeps insertion order for List.
// All access goes through mu; nextID is only read and bumped under the write lock.
type TaskStore struct {
	mu     sync.RWMutex
	tasks  map[int64]*domain.Task
	order  []int64
	nextID int64
	logger *slog.Logger
}

var _ store.TaskStore = (*TaskStore)(nil)

// NewTaskStore creates an empty TaskStore. The first task created gets ID 1.
func NewTaskStore(logger *slog.Logger) *TaskStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskStore{
		tasks:  make(map[int64]*domain.Task),
		order:  make([]int64, 0, 16),
		nextID: 1,
		logger: logger.With(slog.String("component", "memory_task_store")),
	}
}

// List returns copies of all live tasks in insertion order.
func (s *TaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Task, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.tasks[id].Clone())
	}
	return out, nil
}

// GetByID returns a copy of the task with the given id.
func (s *TaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	task, ok := s.tasks[id]
	s.mu.RUnlock()

	if !ok {
		logger.FromContextOrDefault(ctx, s.logger).Debug("task not found", slog.Int64("task_id", id))
		return nil, store.ErrTaskNotFound
	}
	return task.Clone(), nil
}

// Create validates task, assigns it the next id and stores a copy.
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	stored := task.Clone()
	stored.ID = id
	s.tasks[id] = stored
	s.order = append(s.order, id)
	s.mu.Unlock()

	task.ID = id
	logger.FromContextOrDefault(ctx, s.logger).Debug("task stored", slog.Int64("task_id", id))
	return nil
}

// Update replaces every mutable field of the stored task with the values in task.
func (s *TaskStore) Update(ctx context.Context, task *domain.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[task.ID]; !ok {
		return store.NewStoreError("task", "update", "task does not exist", store.ErrTaskNotFound)
	}
	s.tasks[task.ID] = task.Clone()
	return nil
}

// Delete removes the task with the given id. It reports false when no such task existed.
func (s *TaskStore) Delete(ctx context.Context, id int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return false, nil
	}
	delete(s.tasks, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true, nil
}
