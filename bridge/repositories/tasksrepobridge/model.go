package tasksrepobridge

import (
	"errors"
	"strings"
)

// Tag is the embedded tag shape on task responses.
type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Task is the HTTP response shape for a task.
type Task struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Priority    string  `json:"priority"`
	Status      string  `json:"status"`
	DueDate     *string `json:"dueDate"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
	Tags        []Tag   `json:"tags"`
}

// CreateTaskInput is the request shape for creating a task.
type CreateTaskInput struct {
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Priority    *string  `json:"priority"`
	Status      *string  `json:"status"`
	DueDate     *string  `json:"dueDate"`
	Tags        []string `json:"tags"`
}

// Validate checks the input for required fields.
func (i CreateTaskInput) Validate() error {
	if strings.TrimSpace(i.Title) == "" {
		return errors.New("title is required")
	}

	return nil
}

// UpdateTaskInput is the request shape for updating a task. Absent fields
// leave the stored value untouched. Tags follows the same rule: omitting
// the field keeps the current associations while sending an array, even an
// empty one, replaces them.
type UpdateTaskInput struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Priority    *string   `json:"priority"`
	Status      *string   `json:"status"`
	DueDate     *string   `json:"dueDate"`
	Tags        *[]string `json:"tags"`
}

// Validate rejects an explicit empty title.
func (i UpdateTaskInput) Validate() error {
	if i.Title != nil && strings.TrimSpace(*i.Title) == "" {
		return errors.New("title cannot be empty")
	}

	return nil
}
