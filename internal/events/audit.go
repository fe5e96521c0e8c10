package events

import (
	"context"
	"log/slog"
)

// AuditLogHandler writes one info-level log line per task event.
type AuditLogHandler struct {
	logger *slog.Logger
}

// NewAuditLogHandler creates an AuditLogHandler writing to logger.
func NewAuditLogHandler(logger *slog.Logger) *AuditLogHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditLogHandler{logger: logger.With("component", "task_audit")}
}

// HandleEvent implements EventHandler.
func (h *AuditLogHandler) HandleEvent(ctx context.Context, event *TaskEvent) error {
	h.logger.LogAttrs(ctx, slog.LevelInfo, "task changed",
		slog.String("event_id", event.ID.String()),
		slog.String("event_type", event.Type),
		slog.Int64("task_id", event.TaskID),
		slog.Time("at", event.CreatedAt),
	)
	return nil
}
