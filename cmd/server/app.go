package main

import (
	"log/slog"

	"github.com/mariana977/taskdesk-api/internal/config"
	"github.com/mariana977/taskdesk-api/internal/platform/memory"
	"github.com/mariana977/taskdesk-api/internal/service"
	"github.com/mariana977/taskdesk-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and wiring.
type application struct {
	// Configuration
	config *config.Config

	// Logger
	logger *slog.Logger

	// Stores
	userStore     store.UserStore
	categoryStore store.CategoryStore
	taskStore     store.TaskStore

	// Services
	userService     service.UserService
	categoryService service.CategoryService
	taskService     service.TaskService
	statsService    service.StatsService
}

// newApplication wires the in-memory stores and the services on top of
// them. All state is process-local and lost on shutdown.
func newApplication(cfg *config.Config, logger *slog.Logger) *application {
	userStore := memory.NewUserStore()
	categoryStore := memory.NewCategoryStore()
	taskStore := memory.NewTaskStore()

	return &application{
		config:          cfg,
		logger:          logger,
		userStore:       userStore,
		categoryStore:   categoryStore,
		taskStore:       taskStore,
		userService:     service.NewUserService(userStore, logger),
		categoryService: service.NewCategoryService(categoryStore, logger),
		taskService:     service.NewTaskService(taskStore, logger),
		statsService:    service.NewStatsService(taskStore, logger),
	}
}
