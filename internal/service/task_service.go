package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mariana977/taskdesk-api/internal/domain"
	"github.com/mariana977/taskdesk-api/internal/store"
)

// TaskService manages the task lifecycle.
type TaskService interface {
	// CreateTask creates a task from the given attributes. The attributes'
	// user_id and category_id are stored verbatim; they are not checked
	// against the user or category stores (dangling references are
	// allowed). Returns ErrUserRequired, with no side effect, when actorID
	// is zero (no user registered).
	CreateTask(ctx context.Context, actorID int64, attrs domain.TaskAttrs) (*domain.Task, error)

	// ListTasks returns the tasks matching the filter in insertion order.
	ListTasks(ctx context.Context, filter store.TaskFilter) ([]*domain.Task, error)

	// GetTask fetches a task by ID. Returns store.ErrTaskNotFound on miss.
	GetTask(ctx context.Context, id int64) (*domain.Task, error)

	// UpdateTask overwrites the task's caller-supplied fields wholesale
	// and refreshes its update timestamp. ID and creation time are
	// immutable. Returns store.ErrTaskNotFound on miss.
	UpdateTask(ctx context.Context, id int64, attrs domain.TaskAttrs) (*domain.Task, error)

	// ChangeTaskStatus sets only the task's status and refreshes its
	// update timestamp. Returns domain.ErrInvalidStatus for a value
	// outside the enum and store.ErrTaskNotFound on miss.
	ChangeTaskStatus(ctx context.Context, id int64, status domain.TaskStatus) (*domain.Task, error)

	// DeleteTask removes the task with the given ID. An absent ID is a
	// silent no-op, not an error.
	DeleteTask(ctx context.Context, id int64) error
}

type taskService struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskService creates a TaskService backed by the given store.
func NewTaskService(taskStore store.TaskStore, logger *slog.Logger) TaskService {
	if logger == nil {
		logger = slog.Default()
	}
	return &taskService{
		taskStore: taskStore,
		logger:    logger.With(slog.String("component", "task_service")),
	}
}

func (s *taskService) CreateTask(
	ctx context.Context,
	actorID int64,
	attrs domain.TaskAttrs,
) (*domain.Task, error) {
	if actorID <= 0 {
		return nil, ErrUserRequired
	}

	task, err := domain.NewTask(attrs)
	if err != nil {
		return nil, fmt.Errorf("invalid task: %w", err)
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Debug("task created",
		slog.Int64("task_id", task.ID),
		slog.String("priority", string(task.Priority)),
		slog.String("status", string(task.Status)))
	return task, nil
}

func (s *taskService) ListTasks(
	ctx context.Context,
	filter store.TaskFilter,
) ([]*domain.Task, error) {
	return s.taskStore.List(ctx, filter)
}

func (s *taskService) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	return s.taskStore.GetByID(ctx, id)
}

func (s *taskService) UpdateTask(
	ctx context.Context,
	id int64,
	attrs domain.TaskAttrs,
) (*domain.Task, error) {
	task, err := s.taskStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := task.Apply(attrs); err != nil {
		return nil, fmt.Errorf("invalid task: %w", err)
	}

	if err := s.taskStore.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	s.logger.Debug("task updated", slog.Int64("task_id", id))
	return task, nil
}

func (s *taskService) ChangeTaskStatus(
	ctx context.Context,
	id int64,
	status domain.TaskStatus,
) (*domain.Task, error) {
	task, err := s.taskStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := task.SetStatus(status); err != nil {
		return nil, err
	}

	if err := s.taskStore.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to change task status: %w", err)
	}

	s.logger.Debug("task status changed",
		slog.Int64("task_id", id),
		slog.String("status", string(status)))
	return task, nil
}

func (s *taskService) DeleteTask(ctx context.Context, id int64) error {
	if err := s.taskStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.logger.Debug("task deleted", slog.Int64("task_id", id))
	return nil
}
