package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/events"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/phrazzld/task-api/internal/store"
)

// TaskInput carries the client-supplied fields of a task. Update applies all
// of them; there is no partial update.
type TaskInput struct {
	Title       string
	Description *string
	Status      bool
}

// TaskService provides task-related operations.
type TaskService interface {
	// ListTasks returns every task in creation order.
	ListTasks(ctx context.Context) ([]*domain.Task, error)

	// GetTask returns the task with the given id or ErrTaskNotFound.
	GetTask(ctx context.Context, id int64) (*domain.Task, error)

	// CreateTask stores a new task and returns it with its assigned id.
	CreateTask(ctx context.Context, input TaskInput) (*domain.Task, error)

	// UpdateTask replaces title, description and status of an existing task.
	// Returns ErrTaskNotFound if the task does not exist.
	UpdateTask(ctx context.Context, id int64, input TaskInput) (*domain.Task, error)

	// DeleteTask removes a task. Deleting a missing id is not an error;
	// the boolean reports whether anything was removed.
	DeleteTask(ctx context.Context, id int64) (bool, error)
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	tasks        store.TaskStore
	eventEmitter events.EventEmitter
	logger       *slog.Logger
}

// NewTaskService creates a new TaskService.
// It returns an error if any of the required dependencies are nil.
func NewTaskService(
	tasks store.TaskStore,
	eventEmitter events.EventEmitter,
	logger *slog.Logger,
) (TaskService, error) {
	if tasks == nil {
		return nil, &TaskServiceError{
			Operation: "create_service",
			Message:   "task store cannot be nil",
		}
	}
	if eventEmitter == nil {
		return nil, &TaskServiceError{
			Operation: "create_service",
			Message:   "eventEmitter cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		tasks:        tasks,
		eventEmitter: eventEmitter,
		logger:       logger.With("component", "task_service"),
	}, nil
}

func (s *taskServiceImpl) log(ctx context.Context) *slog.Logger {
	return logger.FromContextOrDefault(ctx, s.logger)
}

// ListTasks returns every task in creation order.
func (s *taskServiceImpl) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		s.log(ctx).Error("failed to list tasks", "error", err)
		return nil, NewTaskServiceError("list_tasks", "failed to list tasks", err)
	}

	s.log(ctx).Debug("tasks listed", "count", len(tasks))
	return tasks, nil
}

// GetTask returns the task with the given id.
func (s *taskServiceImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			s.log(ctx).Debug("task not found", "task_id", id)
		} else {
			s.log(ctx).Error("failed to retrieve task", "error", err, "task_id", id)
		}
		return nil, NewTaskServiceError("get_task", "failed to retrieve task", err)
	}
	return task, nil
}

// CreateTask stores a new task and emits task.created.
func (s *taskServiceImpl) CreateTask(ctx context.Context, input TaskInput) (*domain.Task, error) {
	task, err := domain.NewTask(input.Title, input.Description, input.Status)
	if err != nil {
		s.log(ctx).Warn("rejected invalid task", "error", err)
		return nil, NewTaskServiceError("create_task", "invalid task", err)
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		s.log(ctx).Error("failed to save task", "error", err)
		return nil, NewTaskServiceError("create_task", "failed to save task", err)
	}

	s.log(ctx).Info("task created", "task_id", task.ID)
	s.emit(ctx, events.TaskCreated, task.ID, task)
	return task, nil
}

// UpdateTask replaces the task's fields and emits task.updated.
func (s *taskServiceImpl) UpdateTask(ctx context.Context, id int64, input TaskInput) (*domain.Task, error) {
	task := &domain.Task{
		ID:          id,
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
	}

	if err := s.tasks.Update(ctx, task); err != nil {
		if store.IsNotFoundError(err) {
			s.log(ctx).Debug("task not found for update", "task_id", id)
		} else {
			s.log(ctx).Error("failed to update task", "error", err, "task_id", id)
		}
		return nil, NewTaskServiceError("update_task", "failed to update task", err)
	}

	s.log(ctx).Info("task updated", "task_id", id)
	s.emit(ctx, events.TaskUpdated, id, task)
	return task, nil
}

// DeleteTask removes the task and emits task.deleted when something was removed.
func (s *taskServiceImpl) DeleteTask(ctx context.Context, id int64) (bool, error) {
	removed, err := s.tasks.Delete(ctx, id)
	if err != nil {
		s.log(ctx).Error("failed to delete task", "error", err, "task_id", id)
		return false, NewTaskServiceError("delete_task", "failed to delete task", err)
	}

	if !removed {
		s.log(ctx).Debug("delete of missing task ignored", "task_id", id)
		return false, nil
	}

	s.log(ctx).Info("task deleted", "task_id", id)
	s.emit(ctx, events.TaskDeleted, id, nil)
	return true, nil
}

// emit publishes a lifecycle event. Failures are logged, never returned.
func (s *taskServiceImpl) emit(ctx context.Context, eventType string, id int64, payload interface{}) {
	event, err := events.NewTaskEvent(eventType, id, payload)
	if err != nil {
		s.log(ctx).Error("failed to build task event",
			"error", err,
			"event_type", eventType,
			"task_id", id)
		return
	}

	if err := s.eventEmitter.EmitEvent(ctx, event); err != nil {
		s.log(ctx).Error("failed to emit task event",
			"error", err,
			"event_type", eventType,
			"event_id", event.ID,
			"task_id", id)
	}
}
