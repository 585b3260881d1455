package taskspgxstore

import (
	"strings"
	"testing"
	"time"

	"github.com/rsalas/taskdeck/core/repositories/tasksrepo"
)

func TestBuildTaskUpdateOnlySetsProvidedFields(t *testing.T) {
	title := "new title"
	query, args := buildTaskUpdate("user-1", "task-1", tasksrepo.UpdateTask{Title: &title})

	if !strings.Contains(query, "title = @title") {
		t.Error("expected title assignment")
	}

	for _, absent := range []string{"description =", "priority =", "status =", "due_date ="} {
		if strings.Contains(query, absent) {
			t.Errorf("unexpected assignment %q in query", absent)
		}
	}

	if !strings.Contains(query, "WHERE task_id = @task_id AND user_id = @user_id") {
		t.Error("update must be scoped to both task and owner")
	}

	if args["title"] != "new title" {
		t.Errorf("expected title arg, got %v", args["title"])
	}

	if args["user_id"] != "user-1" {
		t.Errorf("expected user arg, got %v", args["user_id"])
	}
}

func TestBuildTaskUpdateAlwaysTouchesUpdatedAt(t *testing.T) {
	query, _ := buildTaskUpdate("user-1", "task-1", tasksrepo.UpdateTask{})

	if !strings.Contains(query, "updated_at = now()") {
		t.Error("updated_at must move on every update")
	}

	if !strings.Contains(query, "RETURNING") {
		t.Error("update must return the new row")
	}
}

func TestBuildTaskSearchNoFilters(t *testing.T) {
	query, args := buildTaskSearch("user-1", tasksrepo.TaskFilter{})

	if strings.Contains(query, "ILIKE") {
		t.Error("no text filter expected")
	}

	if !strings.Contains(query, "WHERE user_id = @user_id") {
		t.Error("search must always scope to the owner")
	}

	if !strings.Contains(query, "ORDER BY created_at, task_id") {
		t.Error("search must keep creation order")
	}

	if len(args) != 1 {
		t.Errorf("expected only the user arg, got %v", args)
	}
}

func TestBuildTaskSearchAllFilters(t *testing.T) {
	text := "report"
	priority := tasksrepo.PriorityHigh
	status := tasksrepo.StatusInProgress
	due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	query, args := buildTaskSearch("user-1", tasksrepo.TaskFilter{
		Text:      &text,
		Priority:  &priority,
		Status:    &status,
		DueBefore: &due,
	})

	if !strings.Contains(query, "(title ILIKE @text OR description ILIKE @text)") {
		t.Error("text must match either title or description")
	}

	if !strings.Contains(query, "priority = @priority") || !strings.Contains(query, "status = @status") {
		t.Error("expected exact enum matches")
	}

	if !strings.Contains(query, "due_date <= @due_before") {
		t.Error("due filter must be inclusive upper bound")
	}

	if args["text"] != "%report%" {
		t.Errorf("expected wrapped pattern, got %v", args["text"])
	}

	if args["priority"] != "HIGH" || args["status"] != "IN_PROGRESS" {
		t.Errorf("expected plain enum args, got %v / %v", args["priority"], args["status"])
	}
}

func TestEscapeLike(t *testing.T) {
	cases := map[string]string{
		"plain":     "plain",
		"50%":       `50\%`,
		"under_bar": `under\_bar`,
		`back\`:     `back\\`,
	}

	for in, want := range cases {
		if got := escapeLike(in); got != want {
			t.Errorf("escapeLike(%q) = %q, want %q", in, got, want)
		}
	}
}
