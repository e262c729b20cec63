package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mariana977/taskdesk-api/internal/api"
	apiMiddleware "github.com/mariana977/taskdesk-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
// It accepts the application dependencies to create handlers and register routes.
// Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// Resolve the acting user on every request; handlers decide how to
	// answer when no identity is present.
	identity := apiMiddleware.NewIdentityMiddleware(app.userStore, app.logger)
	r.Use(identity.Resolve)

	// Create API handlers using the application's services
	userHandler := api.NewUserHandler(app.userService, app.logger)
	categoryHandler := api.NewCategoryHandler(app.categoryService, app.logger)
	taskHandler := api.NewTaskHandler(app.taskService, app.logger)
	statsHandler := api.NewStatsHandler(app.statsService, app.logger)

	// Register routes
	r.Route("/users", func(r chi.Router) {
		r.Post("/", userHandler.CreateUser)
		r.Get("/me", userHandler.GetCurrentUser)
		r.Put("/me", userHandler.UpdateCurrentUser)
		r.Delete("/me", userHandler.DeleteCurrentUser)
	})

	r.Route("/categories", func(r chi.Router) {
		r.Post("/", categoryHandler.CreateCategory)
		r.Get("/", categoryHandler.ListCategories)
		r.Put("/{id}", categoryHandler.UpdateCategory)
		r.Delete("/{id}", categoryHandler.DeleteCategory)
	})

	r.Route("/tasks", func(r chi.Router) {
		r.Post("/", taskHandler.CreateTask)
		r.Get("/", taskHandler.ListTasks)
		r.Get("/{id}", taskHandler.GetTask)
		r.Put("/{id}", taskHandler.UpdateTask)
		r.Delete("/{id}", taskHandler.DeleteTask)
		r.Patch("/{id}/status", taskHandler.ChangeTaskStatus)
	})

	r.Route("/stats", func(r chi.Router) {
		r.Get("/summary", statsHandler.GetSummary)
		r.Get("/productivity", statsHandler.GetProductivity)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
