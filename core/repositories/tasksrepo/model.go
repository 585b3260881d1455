package tasksrepo

import (
	"fmt"
	"time"

	"github.com/rsalas/taskdeck/core/repositories/tagsrepo"
)

// Priority is the task priority level.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// ParsePriority validates a priority value from the outside world.
func ParsePriority(s string) (Priority, error) {
	switch p := Priority(s); p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return p, nil
	}
	return "", fmt.Errorf("unknown priority %q", s)
}

// Status is the task progress state.
type Status string

const (
	StatusNotStarted Status = "NOT_STARTED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

// ParseStatus validates a status value from the outside world.
func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return st, nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// Task is a single item on a user's list, including its resolved tags.
type Task struct {
	TaskID      string         `db:"task_id" json:"id"`
	UserID      string         `db:"user_id" json:"-"`
	Title       string         `db:"title" json:"title"`
	Description *string        `db:"description" json:"description"`
	Priority    Priority       `db:"priority" json:"priority"`
	Status      Status         `db:"status" json:"status"`
	DueDate     *time.Time     `db:"due_date" json:"dueDate"`
	CreatedAt   time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updatedAt"`
	Tags        []tagsrepo.Tag `db:"-" json:"tags"`
}

// CreateTask contains fields for creating a new task. Priority, Status and
// DueDate are optional; when nil the store's column defaults apply.
type CreateTask struct {
	Title       string
	Description *string
	Priority    *Priority
	Status      *Status
	DueDate     *time.Time
	TagIDs      []string
}

// UpdateTask contains fields for updating an existing task. All fields are
// pointers to support partial updates: a nil field is left untouched.
//
// TagIDs is deliberately a *[]string so the three states a request can be
// in stay distinct: nil means the tag set is untouched, a pointer to an
// empty slice clears every association, and a pointer to a non-empty slice
// replaces the set wholesale.
type UpdateTask struct {
	Title       *string
	Description *string
	Priority    *Priority
	Status      *Status
	DueDate     *time.Time
	TagIDs      *[]string
}

// TaskFilter holds the available fields a search can be filtered on. Each
// nil field leaves that dimension unfiltered; present fields combine with
// AND. Text matches title or description case-insensitively.
type TaskFilter struct {
	Text      *string
	Priority  *Priority
	Status    *Status
	DueBefore *time.Time
}
