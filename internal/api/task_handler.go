package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/mariana977/taskdesk-api/internal/api/shared"
	"github.com/mariana977/taskdesk-api/internal/domain"
	"github.com/mariana977/taskdesk-api/internal/service"
	"github.com/mariana977/taskdesk-api/internal/store"
)

// UpsertTaskRequest represents the request body for creating and updating
// a task. category_id and user_id are stored verbatim; dangling
// references are allowed.
type UpsertTaskRequest struct {
	Title       string       `json:"title"       validate:"required"`
	Description *string      `json:"description"`
	Priority    string       `json:"priority"    validate:"required,oneof=low medium high urgent"`
	Status      string       `json:"status"      validate:"required,oneof=pending in_progress completed cancelled"`
	CategoryID  int64        `json:"category_id"`
	UserID      int64        `json:"user_id"`
	DueDate     *domain.Date `json:"due_date"`
	Tags        []string     `json:"tags"`
}

// attrs converts the request into domain task attributes.
func (req UpsertTaskRequest) attrs() domain.TaskAttrs {
	return domain.TaskAttrs{
		Title:       req.Title,
		Description: req.Description,
		Priority:    domain.TaskPriority(req.Priority),
		Status:      domain.TaskStatus(req.Status),
		CategoryID:  req.CategoryID,
		UserID:      req.UserID,
		DueDate:     req.DueDate,
		Tags:        req.Tags,
	}
}

// TaskResponse represents the response data for a task
type TaskResponse struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Description *string      `json:"description"`
	Priority    string       `json:"priority"`
	Status      string       `json:"status"`
	CategoryID  int64        `json:"category_id"`
	UserID      int64        `json:"user_id"`
	DueDate     *domain.Date `json:"due_date"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	Tags        []string     `json:"tags"`
}

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskService service.TaskService
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService service.TaskService, logger *slog.Logger) *TaskHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskHandler")
	}

	return &TaskHandler{
		taskService: taskService,
		logger:      logger.With(slog.String("component", "task_handler")),
	}
}

// CreateTask handles POST /tasks requests. With no user registered the
// request fails with 400 and no side effect.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req UpsertTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("invalid request format", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	actorID, _ := shared.GetUserID(r.Context())

	task, err := h.taskService.CreateTask(r.Context(), actorID, req.attrs())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	h.logger.Debug("task created", slog.Int64("task_id", task.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// ListTasks handles GET /tasks?status=&priority= requests. Both query
// parameters are optional strict-equality filters combined with AND; with
// neither present every task is returned in insertion order. Values
// outside the enums simply match nothing.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	var filter store.TaskFilter

	if s := r.URL.Query().Get("status"); s != "" {
		status := domain.TaskStatus(s)
		filter.Status = &status
	}
	if p := r.URL.Query().Get("priority"); p != "" {
		priority := domain.TaskPriority(p)
		filter.Priority = &priority
	}

	tasks, err := h.taskService.ListTasks(r.Context(), filter)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	response := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		response = append(response, taskToResponse(task))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// GetTask handles GET /tasks/{id} requests
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	task, err := h.taskService.GetTask(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// UpdateTask handles PUT /tasks/{id} requests
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	var req UpsertTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("invalid request format", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	task, err := h.taskService.UpdateTask(r.Context(), id, req.attrs())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	h.logger.Debug("task updated", slog.Int64("task_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// DeleteTask handles DELETE /tasks/{id} requests. Deleting an absent ID
// still reports success.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	h.logger.Debug("task deleted", slog.Int64("task_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{Message: "Task deleted"})
}

// ChangeTaskStatus handles PATCH /tasks/{id}/status?status= requests.
// A status value outside the enum answers 422.
func (h *TaskHandler) ChangeTaskStatus(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	status := domain.TaskStatus(r.URL.Query().Get("status"))
	if !status.IsValid() {
		h.logger.Warn("invalid status value", slog.String("status", string(status)))
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, "Invalid task status")
		return
	}

	task, err := h.taskService.ChangeTaskStatus(r.Context(), id, status)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	h.logger.Debug("task status changed",
		slog.Int64("task_id", id),
		slog.String("status", string(status)))
	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// taskToResponse converts a domain.Task to a TaskResponse
func taskToResponse(task *domain.Task) TaskResponse {
	tags := task.Tags
	if tags == nil {
		tags = []string{}
	}

	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Priority:    string(task.Priority),
		Status:      string(task.Status),
		CategoryID:  task.CategoryID,
		UserID:      task.UserID,
		DueDate:     task.DueDate,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
		Tags:        tags,
	}
}
