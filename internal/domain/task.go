package domain

import (
	"fmt"
	"time"
)

// Task-specific validation errors
var (
	// ErrEmptyTaskTitle is returned when a task title is empty. It wraps
	// ErrValidation so callers can classify it without matching the
	// sentinel itself.
	ErrEmptyTaskTitle = fmt.Errorf("%w: task title cannot be empty", ErrValidation)
)

// TaskPriority indicates how urgent a task is.
type TaskPriority string

// Allowed task priorities.
const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

// IsValid reports whether the priority is one of the allowed values.
func (p TaskPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// TaskStatus tracks where a task is in its lifecycle.
type TaskStatus string

// Allowed task statuses.
const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
	StatusCancelled  TaskStatus = "cancelled"
)

// IsValid reports whether the status is one of the allowed values.
func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// AllStatuses lists every task status in a fixed order, for aggregation.
func AllStatuses() []TaskStatus {
	return []TaskStatus{StatusPending, StatusInProgress, StatusCompleted, StatusCancelled}
}

// Task is a unit of work owned by a user and optionally grouped under a
// category. Both references are taken as given; they are not checked
// against the user or category stores.
type Task struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Description *string      `json:"description"`
	Priority    TaskPriority `json:"priority"`
	Status      TaskStatus   `json:"status"`
	CategoryID  int64        `json:"category_id"`
	UserID      int64        `json:"user_id"`
	DueDate     *Date        `json:"due_date"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	Tags        []string     `json:"tags"`
}

// TaskAttrs carries the caller-supplied fields of a task, used for both
// creation and wholesale update.
type TaskAttrs struct {
	Title       string
	Description *string
	Priority    TaskPriority
	Status      TaskStatus
	CategoryID  int64
	UserID      int64
	DueDate     *Date
	Tags        []string
}

// NewTask creates a Task from the given attributes with creation and
// update timestamps set to now. The ID is zero until the store assigns
// one. Returns an error if validation fails.
func NewTask(attrs TaskAttrs) (*Task, error) {
	now := time.Now().UTC()
	task := &Task{
		Title:       attrs.Title,
		Description: attrs.Description,
		Priority:    attrs.Priority,
		Status:      attrs.Status,
		CategoryID:  attrs.CategoryID,
		UserID:      attrs.UserID,
		DueDate:     attrs.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
		Tags:        attrs.Tags,
	}
	if task.Tags == nil {
		task.Tags = []string{}
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.Title == "" {
		return ErrEmptyTaskTitle
	}

	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}

	if !t.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, t.Status)
	}

	return nil
}

// Apply overwrites the task's caller-supplied fields and refreshes the
// update timestamp. ID and CreatedAt are left untouched. Returns an
// error, leaving the task unchanged, if the new attributes are invalid.
func (t *Task) Apply(attrs TaskAttrs) error {
	updated := *t
	updated.Title = attrs.Title
	updated.Description = attrs.Description
	updated.Priority = attrs.Priority
	updated.Status = attrs.Status
	updated.CategoryID = attrs.CategoryID
	updated.UserID = attrs.UserID
	updated.DueDate = attrs.DueDate
	updated.Tags = attrs.Tags
	if updated.Tags == nil {
		updated.Tags = []string{}
	}

	if err := updated.Validate(); err != nil {
		return err
	}

	updated.UpdatedAt = time.Now().UTC()
	*t = updated
	return nil
}

// SetStatus changes only the task's status and refreshes the update
// timestamp. Returns ErrInvalidStatus if the value is outside the enum.
func (t *Task) SetStatus(status TaskStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	t.Status = status
	t.UpdatedAt = time.Now().UTC()
	return nil
}

// IsOverdue reports whether the task's due date is strictly before the
// given day. Tasks without a due date are never overdue.
func (t *Task) IsOverdue(today Date) bool {
	return t.DueDate != nil && t.DueDate.Before(today)
}
