package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/mariana977/taskdesk-api/internal/domain"
	"github.com/mariana977/taskdesk-api/internal/store"
)

// TaskStore is an in-memory implementation of store.TaskStore.
type TaskStore struct {
	mu     sync.Mutex
	tasks  []*domain.Task
	nextID int64
}

var _ store.TaskStore = (*TaskStore)(nil)

// NewTaskStore creates an empty in-memory task store.
func NewTaskStore() *TaskStore {
	return &TaskStore{nextID: 1}
}

// Create implements store.TaskStore.
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task.ID = s.nextID
	s.nextID++
	s.tasks = append(s.tasks, cloneTask(task))
	return nil
}

// List implements store.TaskStore.
func (s *TaskStore) List(ctx context.Context, filter store.TaskFilter) ([]*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]*domain.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if filter.Matches(t) {
			result = append(result, cloneTask(t))
		}
	}
	return result, nil
}

// GetByID implements store.TaskStore.
func (s *TaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.tasks {
		if t.ID == id {
			return cloneTask(t), nil
		}
	}
	return nil, store.ErrTaskNotFound
}

// Update implements store.TaskStore.
func (s *TaskStore) Update(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.tasks {
		if existing.ID == task.ID {
			s.tasks[i] = cloneTask(task)
			return nil
		}
	}
	return store.ErrTaskNotFound
}

// Delete implements store.TaskStore. Absent IDs are a silent no-op.
func (s *TaskStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.tasks = kept
	return nil
}

// cloneTask copies a task so callers never hold a live alias into the store.
func cloneTask(t *domain.Task) *domain.Task {
	clone := *t
	if t.Description != nil {
		description := *t.Description
		clone.Description = &description
	}
	if t.DueDate != nil {
		due := *t.DueDate
		clone.DueDate = &due
	}
	clone.Tags = make([]string, len(t.Tags))
	copy(clone.Tags, t.Tags)
	return &clone
}
