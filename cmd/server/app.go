package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/task-api/internal/api"
	"github.com/phrazzld/task-api/internal/config"
	"github.com/phrazzld/task-api/internal/events"
	"github.com/phrazzld/task-api/internal/platform/memory"
	"github.com/phrazzld/task-api/internal/service"
	"github.com/phrazzld/task-api/internal/store"
)

// application holds all the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	taskStore    store.TaskStore
	eventEmitter *events.InMemoryEventEmitter
	taskService  service.TaskService
	docsHandler  *api.DocsHandler
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	app := &application{
		config: cfg,
		logger: logger,
	}

	app.taskStore = memory.NewTaskStore(logger)

	app.eventEmitter = events.NewInMemoryEventEmitter(logger)
	app.eventEmitter.RegisterHandler(events.NewAuditLogHandler(logger))

	var err error
	app.taskService, err = service.NewTaskService(app.taskStore, app.eventEmitter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	app.docsHandler, err = api.NewDocsHandler(cfg.Docs.Title, cfg.Docs.Enabled, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create docs handler: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the HTTP server and blocks until ctx is canceled or the
// server fails.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
