package taskspgxstore

import (
	"bytes"

	"github.com/jackc/pgx/v5"

	"github.com/rsalas/taskdeck/core/repositories/tasksrepo"
)

// buildTaskUpdate renders an UPDATE with a SET clause containing only the
// fields present in ut. updated_at always moves so the statement is never
// empty and the row records the touch even for a tag-only change.
func buildTaskUpdate(userID string, taskID string, ut tasksrepo.UpdateTask) (string, pgx.NamedArgs) {
	var buf bytes.Buffer
	buf.WriteString(`UPDATE tasks SET updated_at = now()`)

	args := pgx.NamedArgs{
		"task_id": taskID,
		"user_id": userID,
	}

	if ut.Title != nil {
		buf.WriteString(`, title = @title`)
		args["title"] = *ut.Title
	}

	if ut.Description != nil {
		buf.WriteString(`, description = @description`)
		args["description"] = *ut.Description
	}

	if ut.Priority != nil {
		buf.WriteString(`, priority = @priority`)
		args["priority"] = string(*ut.Priority)
	}

	if ut.Status != nil {
		buf.WriteString(`, status = @status`)
		args["status"] = string(*ut.Status)
	}

	if ut.DueDate != nil {
		buf.WriteString(`, due_date = @due_date`)
		args["due_date"] = *ut.DueDate
	}

	buf.WriteString(`
		WHERE task_id = @task_id AND user_id = @user_id
		RETURNING ` + taskColumns)

	return buf.String(), args
}

// buildTaskSearch renders the filtered SELECT. Every condition is ANDed,
// and absent filter fields contribute nothing to the WHERE clause.
func buildTaskSearch(userID string, filter tasksrepo.TaskFilter) (string, pgx.NamedArgs) {
	var buf bytes.Buffer
	buf.WriteString(`SELECT ` + taskColumns + `
		FROM tasks
		WHERE user_id = @user_id`)

	args := pgx.NamedArgs{"user_id": userID}

	if filter.Text != nil {
		buf.WriteString(`
		AND (title ILIKE @text OR description ILIKE @text)`)
		args["text"] = "%" + escapeLike(*filter.Text) + "%"
	}

	if filter.Priority != nil {
		buf.WriteString(`
		AND priority = @priority`)
		args["priority"] = string(*filter.Priority)
	}

	if filter.Status != nil {
		buf.WriteString(`
		AND status = @status`)
		args["status"] = string(*filter.Status)
	}

	if filter.DueBefore != nil {
		buf.WriteString(`
		AND due_date <= @due_before`)
		args["due_before"] = *filter.DueBefore
	}

	buf.WriteString(`
		ORDER BY created_at, task_id`)

	return buf.String(), args
}

// escapeLike neutralizes LIKE metacharacters so user text matches literally.
func escapeLike(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '%', '_', '\\':
			buf.WriteByte('\\')
		}
		buf.WriteRune(r)
	}
	return buf.String()
}
