package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mariana977/taskdesk-api/internal/domain"
	"github.com/mariana977/taskdesk-api/internal/store"
)

// TaskSummary aggregates counts over the task store.
type TaskSummary struct {
	TotalTasks   int
	ByStatus     map[domain.TaskStatus]int
	OverdueTasks int
}

// ProductivityReport reports completion as a count and a percentage.
type ProductivityReport struct {
	CompletedTasks   int
	WeekProductivity string
}

// StatsService derives read-only statistics from the task store.
type StatsService interface {
	// Summary returns the total task count, a per-status breakdown with
	// every status present even at zero, and the number of overdue tasks.
	// A task is overdue only when its due date is strictly before today;
	// tasks without a due date are never overdue.
	Summary(ctx context.Context) (*TaskSummary, error)

	// Productivity returns the completed-task count and the completion
	// percentage formatted with two decimals and a "%" suffix. An empty
	// task store yields "0.00%".
	Productivity(ctx context.Context) (*ProductivityReport, error)
}

type statsService struct {
	taskStore store.TaskStore
	logger    *slog.Logger
	// today is overridable in tests to pin the overdue boundary.
	today func() domain.Date
}

// NewStatsService creates a StatsService backed by the given task store.
func NewStatsService(taskStore store.TaskStore, logger *slog.Logger) StatsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &statsService{
		taskStore: taskStore,
		logger:    logger.With(slog.String("component", "stats_service")),
		today:     domain.Today,
	}
}

func (s *statsService) Summary(ctx context.Context) (*TaskSummary, error) {
	tasks, err := s.taskStore.List(ctx, store.TaskFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	summary := &TaskSummary{
		TotalTasks: len(tasks),
		ByStatus:   make(map[domain.TaskStatus]int, 4),
	}
	for _, status := range domain.AllStatuses() {
		summary.ByStatus[status] = 0
	}

	today := s.today()
	for _, task := range tasks {
		summary.ByStatus[task.Status]++
		if task.IsOverdue(today) {
			summary.OverdueTasks++
		}
	}

	return summary, nil
}

func (s *statsService) Productivity(ctx context.Context) (*ProductivityReport, error) {
	tasks, err := s.taskStore.List(ctx, store.TaskFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	completed := 0
	for _, task := range tasks {
		if task.Status == domain.StatusCompleted {
			completed++
		}
	}

	// Short-circuit the empty store to avoid dividing by zero.
	percentage := "0.00%"
	if len(tasks) > 0 {
		percentage = fmt.Sprintf("%.2f%%", float64(completed)/float64(len(tasks))*100)
	}

	return &ProductivityReport{
		CompletedTasks:   completed,
		WeekProductivity: percentage,
	}, nil
}
