package api

import (
	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/service"
)

// TaskRequest defines the payload for creating or replacing a task.
// A missing status means false; a missing description means null.
type TaskRequest struct {
	Title       string  `json:"title"       validate:"required"`
	Description *string `json:"description"`
	Status      *bool   `json:"status"`
}

// toInput converts the request into service input, applying defaults.
func (r *TaskRequest) toInput() service.TaskInput {
	input := service.TaskInput{
		Title:       r.Title,
		Description: r.Description,
	}
	if r.Status != nil {
		input.Status = *r.Status
	}
	return input
}

// TaskResponse is the wire form of a task. Description is always present,
// null when unset.
type TaskResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      bool    `json:"status"`
}

func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
	}
}

func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, taskToResponse(task))
	}
	return out
}
