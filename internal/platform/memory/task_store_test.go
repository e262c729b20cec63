package memory

import (
	"context"
	"testing"

	"github.com/mariana977/taskdesk-api/internal/domain"
	"github.com/mariana977/taskdesk-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTask(t *testing.T, title string, priority domain.TaskPriority, status domain.TaskStatus) *domain.Task {
	t.Helper()
	task, err := domain.NewTask(domain.TaskAttrs{
		Title:      title,
		Priority:   priority,
		Status:     status,
		CategoryID: 1,
		UserID:     1,
	})
	require.NoError(t, err)
	return task
}

func seedTasks(t *testing.T, s *TaskStore) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, s.Create(ctx, newTask(t, "a", domain.PriorityHigh, domain.StatusCompleted)))
	require.NoError(t, s.Create(ctx, newTask(t, "b", domain.PriorityLow, domain.StatusCompleted)))
	require.NoError(t, s.Create(ctx, newTask(t, "c", domain.PriorityHigh, domain.StatusPending)))
}

func TestTaskStoreCreateAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	s := NewTaskStore()

	first := newTask(t, "a", domain.PriorityLow, domain.StatusPending)
	require.NoError(t, s.Create(ctx, first))
	assert.Equal(t, int64(1), first.ID)

	second := newTask(t, "b", domain.PriorityLow, domain.StatusPending)
	require.NoError(t, s.Create(ctx, second))
	assert.Equal(t, int64(2), second.ID)

	require.NoError(t, s.Delete(ctx, 2))
	third := newTask(t, "c", domain.PriorityLow, domain.StatusPending)
	require.NoError(t, s.Create(ctx, third))
	assert.Equal(t, int64(3), third.ID, "IDs are never reused after deletion")
}

func TestTaskStoreListFilter(t *testing.T) {
	completed := domain.StatusCompleted
	high := domain.PriorityHigh

	tests := []struct {
		name       string
		filter     store.TaskFilter
		wantTitles []string
	}{
		{
			name:       "no_filter_returns_all_in_insertion_order",
			filter:     store.TaskFilter{},
			wantTitles: []string{"a", "b", "c"},
		},
		{
			name:       "status_only",
			filter:     store.TaskFilter{Status: &completed},
			wantTitles: []string{"a", "b"},
		},
		{
			name:       "priority_only",
			filter:     store.TaskFilter{Priority: &high},
			wantTitles: []string{"a", "c"},
		},
		{
			name:       "status_and_priority_combined_with_and",
			filter:     store.TaskFilter{Status: &completed, Priority: &high},
			wantTitles: []string{"a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewTaskStore()
			seedTasks(t, s)

			tasks, err := s.List(context.Background(), tt.filter)
			require.NoError(t, err)

			titles := make([]string, 0, len(tasks))
			for _, task := range tasks {
				titles = append(titles, task.Title)
			}
			assert.Equal(t, tt.wantTitles, titles)
		})
	}
}

func TestTaskStoreGetByID(t *testing.T) {
	ctx := context.Background()
	s := NewTaskStore()
	seedTasks(t, s)

	task, err := s.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "b", task.Title)

	_, err = s.GetByID(ctx, 99)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
}

func TestTaskStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewTaskStore()
	seedTasks(t, s)

	task, err := s.GetByID(ctx, 1)
	require.NoError(t, err)
	task.Title = "mutated"
	task.Tags = append(task.Tags, "sneaky")

	again, err := s.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "a", again.Title, "callers must not hold live aliases")
	assert.Empty(t, again.Tags)
}

func TestTaskStoreDeleteAbsentIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	s := NewTaskStore()
	seedTasks(t, s)

	require.NoError(t, s.Delete(ctx, 99))
	tasks, err := s.List(ctx, store.TaskFilter{})
	require.NoError(t, err)
	assert.Len(t, tasks, 3, "store unchanged by absent-ID delete")

	require.NoError(t, s.Delete(ctx, 2))
	tasks, err = s.List(ctx, store.TaskFilter{})
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "a", tasks[0].Title)
	assert.Equal(t, "c", tasks[1].Title)
}
