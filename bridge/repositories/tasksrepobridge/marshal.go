package tasksrepobridge

import (
	"fmt"
	"time"

	"github.com/rsalas/taskdeck/core/repositories/tasksrepo"
	"github.com/rsalas/taskdeck/sdk/validation"
)

// MarshalToBridge converts a core task to the HTTP response shape.
func MarshalToBridge(task tasksrepo.Task) Task {
	tags := make([]Tag, len(task.Tags))
	for i, t := range task.Tags {
		tags[i] = Tag{
			ID:   t.TagID,
			Name: t.Name,
		}
	}

	var dueDate *string
	if task.DueDate != nil {
		dueDate = validation.StringPtr(task.DueDate.UTC().Format(time.RFC3339))
	}

	return Task{
		ID:          task.TaskID,
		Title:       task.Title,
		Description: task.Description,
		Priority:    string(task.Priority),
		Status:      string(task.Status),
		DueDate:     dueDate,
		CreatedAt:   task.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   task.UpdatedAt.UTC().Format(time.RFC3339),
		Tags:        tags,
	}
}

// MarshalListToBridge converts a list of core models to bridge models.
func MarshalListToBridge(tasks []tasksrepo.Task) []Task {
	bridgeTasks := make([]Task, len(tasks))
	for i, task := range tasks {
		bridgeTasks[i] = MarshalToBridge(task)
	}
	return bridgeTasks
}

// MarshalCreateToRepository converts bridge create input to repository input.
func MarshalCreateToRepository(input CreateTaskInput) (tasksrepo.CreateTask, error) {
	ct := tasksrepo.CreateTask{
		Title:       input.Title,
		Description: input.Description,
		TagIDs:      input.Tags,
	}

	if input.Priority != nil {
		priority, err := tasksrepo.ParsePriority(*input.Priority)
		if err != nil {
			return tasksrepo.CreateTask{}, err
		}
		ct.Priority = &priority
	}

	if input.Status != nil {
		status, err := tasksrepo.ParseStatus(*input.Status)
		if err != nil {
			return tasksrepo.CreateTask{}, err
		}
		ct.Status = &status
	}

	if input.DueDate != nil {
		dueDate, err := validation.ParseFlexibleDate(*input.DueDate)
		if err != nil {
			return tasksrepo.CreateTask{}, fmt.Errorf("invalid dueDate: %w", err)
		}
		ct.DueDate = &dueDate
	}

	return ct, nil
}

// MarshalUpdateToRepository converts bridge update input to repository input.
func MarshalUpdateToRepository(input UpdateTaskInput) (tasksrepo.UpdateTask, error) {
	ut := tasksrepo.UpdateTask{
		Title:       input.Title,
		Description: input.Description,
		TagIDs:      input.Tags,
	}

	if input.Priority != nil {
		priority, err := tasksrepo.ParsePriority(*input.Priority)
		if err != nil {
			return tasksrepo.UpdateTask{}, err
		}
		ut.Priority = &priority
	}

	if input.Status != nil {
		status, err := tasksrepo.ParseStatus(*input.Status)
		if err != nil {
			return tasksrepo.UpdateTask{}, err
		}
		ut.Status = &status
	}

	if input.DueDate != nil {
		dueDate, err := validation.ParseFlexibleDate(*input.DueDate)
		if err != nil {
			return tasksrepo.UpdateTask{}, fmt.Errorf("invalid dueDate: %w", err)
		}
		ut.DueDate = &dueDate
	}

	return ut, nil
}
