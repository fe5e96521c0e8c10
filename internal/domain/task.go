package domain

import "fmt"

// Task is the single record managed by the service.
// ID is assigned by the store and never changes afterwards.
type Task struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      bool    `json:"status"`
}

// NewTask builds an unsaved task (ID 0) and validates it.
func NewTask(title string, description *string, status bool) (*Task, error) {
	task := &Task{
		Title:       title,
		Description: description,
		Status:      status,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data. The title must be non-empty;
// its content is otherwise unconstrained.
func (t *Task) Validate() error {
	if t.Title == "" {
		return NewValidationError("title", "cannot be empty", fmt.Errorf("%w: %w", ErrValidation, ErrEmptyTitle))
	}

	return nil
}

// Clone returns a deep copy of the task, including the description value.
func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	clone := *t
	if t.Description != nil {
		description := *t.Description
		clone.Description = &description
	}
	return &clone
}
