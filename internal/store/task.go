package store

import (
	"context"

	"github.com/phrazzld/task-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// List returns every live task in insertion order.
	List(ctx context.Context) ([]*domain.Task, error)

	// GetByID retrieves a task by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// Create assigns the next ID to task and saves it.
	// The assigned ID is written back into task.
	// Returns ErrInvalidEntity (wrapping the validation error) if the task is invalid.
	Create(ctx context.Context, task *domain.Task) error

	// Update replaces title, description and status of the task with task.ID.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes the task with the given ID and reports whether a task was removed.
	// A missing ID is not an error.
	Delete(ctx context.Context, id int64) (bool, error)
}
