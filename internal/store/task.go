package store

import (
	"context"

	"github.com/mariana977/taskdesk-api/internal/domain"
)

// TaskFilter narrows a task listing. Nil fields match everything; set
// fields are compared with strict equality and combined with AND.
type TaskFilter struct {
	Status   *domain.TaskStatus
	Priority *domain.TaskPriority
}

// Matches reports whether the task satisfies every set field.
func (f TaskFilter) Matches(task *domain.Task) bool {
	if f.Status != nil && task.Status != *f.Status {
		return false
	}
	if f.Priority != nil && task.Priority != *f.Priority {
		return false
	}
	return true
}

// TaskStore defines the interface for task persistence.
type TaskStore interface {
	// Create saves a new task to the store and assigns its ID from a
	// monotonically increasing counter.
	Create(ctx context.Context, task *domain.Task) error

	// List returns the tasks matching the filter in insertion order.
	// A zero filter returns every task.
	List(ctx context.Context, filter TaskFilter) ([]*domain.Task, error)

	// GetByID retrieves a task by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// Update replaces the stored task matching the given task's ID.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes the task with the given ID. Deleting an absent ID is
	// not an error; the store is simply left unchanged.
	Delete(ctx context.Context, id int64) error
}
