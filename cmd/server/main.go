// Package main implements the entry point for the Task API server, which
// keeps a list of tasks in memory and serves create, read, update and
// delete operations over HTTP.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
)

// main is the entry point for the task-api server.
// It loads configuration, sets up logging, wires the application and
// serves HTTP until SIGINT or SIGTERM.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Printf("Task API server failed: %v", err)
		os.Exit(1)
	}
}

// run performs the startup sequence and blocks until ctx is canceled.
func run(ctx context.Context) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	app, err := newApplication(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
