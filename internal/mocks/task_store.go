package mocks

import (
	"context"

	"github.com/phrazzld/task-api/internal/domain"
)

// MockTaskStore implements store.TaskStore for testing
type MockTaskStore struct {
	// Custom behavior functions
	ListFn    func(ctx context.Context) ([]*domain.Task, error)
	GetByIDFn func(ctx context.Context, id int64) (*domain.Task, error)
	CreateFn  func(ctx context.Context, task *domain.Task) error
	UpdateFn  func(ctx context.Context, task *domain.Task) error
	DeleteFn  func(ctx context.Context, id int64) (bool, error)

	// Default return values
	Task         *domain.Task
	DefaultError error
}

// List implements the TaskStore.List method
func (m *MockTaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	if m.Task != nil {
		return []*domain.Task{m.Task}, m.DefaultError
	}
	return nil, m.DefaultError
}

// GetByID implements the TaskStore.GetByID method
func (m *MockTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.Task, m.DefaultError
}

// Create implements the TaskStore.Create method
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}
	return m.DefaultError
}

// Update implements the TaskStore.Update method
func (m *MockTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, task)
	}
	return m.DefaultError
}

// Delete implements the TaskStore.Delete method
func (m *MockTaskStore) Delete(ctx context.Context, id int64) (bool, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return false, m.DefaultError
}
