// Package tasksrepo owns task persistence and the task/tag association.
// Every operation is scoped to the owning user: a task that exists but
// belongs to someone else is reported as ErrNotFound, the same signal as a
// task that does not exist at all.
package tasksrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rsalas/taskdeck/sdk/logger"
)

// Set of error values for CRUD operations on the task resource.
var (
	ErrNotFound      = errors.New("task not found")
	ErrTagNotFound   = errors.New("tag not found")
	ErrTitleRequired = errors.New("title is required")
)

// Storer defines the data storage interface for tasks. The create and
// update operations persist the task row and its tag associations as one
// transaction; a concurrent reader never sees a partially reconciled tag
// set.
type Storer interface {
	List(ctx context.Context, userID string) ([]Task, error)
	GetByID(ctx context.Context, userID string, taskID string) (Task, error)
	Create(ctx context.Context, userID string, ct CreateTask) (Task, error)
	Update(ctx context.Context, userID string, taskID string, ut UpdateTask) (Task, error)
	Delete(ctx context.Context, userID string, taskID string) error
	Search(ctx context.Context, userID string, filter TaskFilter) ([]Task, error)
}

// Repository provides access to task storage.
type Repository struct {
	log    *logger.Logger
	storer Storer
}

// NewRepository creates a new task repository.
func NewRepository(log *logger.Logger, storer Storer) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
	}
}

// List returns every task owned by userID, in creation order, with resolved
// tags.
func (r *Repository) List(ctx context.Context, userID string) ([]Task, error) {
	records, err := r.storer.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("task repository list: %w", err)
	}

	return records, nil
}

// GetByID returns a single task owned by userID.
func (r *Repository) GetByID(ctx context.Context, userID string, taskID string) (Task, error) {
	record, err := r.storer.GetByID(ctx, userID, taskID)
	if err != nil {
		return Task{}, fmt.Errorf("task repository get by id: %w", err)
	}

	return record, nil
}

// Create persists a new task for userID. When TagIDs is non-empty one
// association per id is created in the same transaction; a tag id that does
// not exist in the catalog fails the whole creation with ErrTagNotFound and
// nothing is persisted.
func (r *Repository) Create(ctx context.Context, userID string, ct CreateTask) (Task, error) {
	if strings.TrimSpace(ct.Title) == "" {
		return Task{}, ErrTitleRequired
	}

	record, err := r.storer.Create(ctx, userID, ct)
	if err != nil {
		return Task{}, fmt.Errorf("task repository create: %w", err)
	}

	r.log.InfoContext(ctx, "created task", "task_id", record.TaskID)
	return record, nil
}

// Update applies a partial update to a task owned by userID. A provided
// TagIDs value (even empty) replaces the association set wholesale; nil
// leaves it untouched. ErrNotFound covers both a missing task and a task
// owned by a different user.
func (r *Repository) Update(ctx context.Context, userID string, taskID string, ut UpdateTask) (Task, error) {
	if ut.Title != nil && strings.TrimSpace(*ut.Title) == "" {
		return Task{}, ErrTitleRequired
	}

	record, err := r.storer.Update(ctx, userID, taskID, ut)
	if err != nil {
		return Task{}, fmt.Errorf("task repository update: %w", err)
	}

	return record, nil
}

// Complete marks a task COMPLETED. Shorthand for Update with only the
// status set; the tag set is untouched.
func (r *Repository) Complete(ctx context.Context, userID string, taskID string) (Task, error) {
	status := StatusCompleted
	record, err := r.storer.Update(ctx, userID, taskID, UpdateTask{Status: &status})
	if err != nil {
		return Task{}, fmt.Errorf("task repository complete: %w", err)
	}

	return record, nil
}

// Delete removes a task owned by userID. Tag associations go with it.
func (r *Repository) Delete(ctx context.Context, userID string, taskID string) error {
	if err := r.storer.Delete(ctx, userID, taskID); err != nil {
		return fmt.Errorf("task repository delete: %w", err)
	}

	r.log.InfoContext(ctx, "deleted task", "task_id", taskID)
	return nil
}

// Search returns the tasks owned by userID that match every present
// criterion in filter, in the same deterministic order as List.
func (r *Repository) Search(ctx context.Context, userID string, filter TaskFilter) ([]Task, error) {
	records, err := r.storer.Search(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("task repository search: %w", err)
	}

	return records, nil
}
