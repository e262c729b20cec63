// Package main implements the entry point for the taskdesk API server,
// a single-user task-management backend holding all state in memory.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/mariana977/taskdesk-api/internal/config"
	"github.com/mariana977/taskdesk-api/internal/platform/logger"
)

// main initializes configuration and logging, wires the in-memory stores
// and services, and runs the HTTP server until a shutdown signal arrives.
func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	router := app.setupRouter()
	if err := app.startHTTPServer(context.Background(), router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up application components.
// Returns the wired application and any initialization error.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	return newApplication(cfg, appLogger), nil
}
