package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/task-api/internal/api/shared"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/phrazzld/task-api/internal/service"
)

const taskIDParam = "id"

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskService service.TaskService
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService service.TaskService, logger *slog.Logger) *TaskHandler {
	if taskService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("taskService cannot be nil for TaskHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskHandler{
		taskService: taskService,
		logger:      logger.With(slog.String("component", "task_handler")),
	}
}

// ListTasks handles GET /tasks requests.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.ListTasks(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// GetTask handles GET /tasks/{id} requests.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, fieldErr := getPathID(r, taskIDParam)
	if fieldErr != nil {
		shared.RespondWithValidationErrors(w, r, []shared.FieldError{*fieldErr})
		return
	}

	task, err := h.taskService.GetTask(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// CreateTask handles POST /tasks requests.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	req, ok := decodeTaskRequest(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), req.toInput())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Debug("task created via API", slog.Int64("task_id", task.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// UpdateTask handles PUT /tasks/{id} requests. The body replaces the task
// wholesale; omitted optional fields reset to their defaults.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, fieldErr := getPathID(r, taskIDParam)
	if fieldErr != nil {
		shared.RespondWithValidationErrors(w, r, []shared.FieldError{*fieldErr})
		return
	}

	req, ok := decodeTaskRequest(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.UpdateTask(r.Context(), id, req.toInput())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Debug("task updated via API", slog.Int64("task_id", task.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// DeleteTask handles DELETE /tasks/{id} requests. Deleting an id that does
// not exist still answers 200.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, fieldErr := getPathID(r, taskIDParam)
	if fieldErr != nil {
		shared.RespondWithValidationErrors(w, r, []shared.FieldError{*fieldErr})
		return
	}

	removed, err := h.taskService.DeleteTask(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Debug("task delete handled", slog.Int64("task_id", id), slog.Bool("removed", removed))
	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{Message: "Task deleted"})
}
