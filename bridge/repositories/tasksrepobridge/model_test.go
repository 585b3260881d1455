package tasksrepobridge

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/rsalas/taskdeck/core/repositories/tagsrepo"
	"github.com/rsalas/taskdeck/core/repositories/tasksrepo"
)

func TestUpdateInputTagsTriState(t *testing.T) {
	var absent UpdateTaskInput
	if err := json.Unmarshal([]byte(`{"title":"x"}`), &absent); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if absent.Tags != nil {
		t.Error("absent tags field must decode to nil")
	}

	var cleared UpdateTaskInput
	if err := json.Unmarshal([]byte(`{"tags":[]}`), &cleared); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if cleared.Tags == nil {
		t.Fatal("explicit empty array must decode to a non-nil pointer")
	}
	if len(*cleared.Tags) != 0 {
		t.Errorf("expected empty set, got %v", *cleared.Tags)
	}

	var replaced UpdateTaskInput
	if err := json.Unmarshal([]byte(`{"tags":["a","b"]}`), &replaced); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if replaced.Tags == nil || len(*replaced.Tags) != 2 {
		t.Fatalf("expected two tags, got %v", replaced.Tags)
	}
}

func TestCreateInputValidate(t *testing.T) {
	if err := (CreateTaskInput{Title: "  "}).Validate(); err == nil {
		t.Error("whitespace title must not validate")
	}

	if err := (CreateTaskInput{Title: "ok"}).Validate(); err != nil {
		t.Errorf("valid input rejected: %v", err)
	}
}

func TestUpdateInputValidate(t *testing.T) {
	empty := ""
	if err := (UpdateTaskInput{Title: &empty}).Validate(); err == nil {
		t.Error("explicit empty title must not validate")
	}

	if err := (UpdateTaskInput{}).Validate(); err != nil {
		t.Errorf("empty update rejected: %v", err)
	}
}

func TestMarshalCreateToRepository(t *testing.T) {
	priority := "HIGH"
	due := "2026-03-01T00:00:00Z"

	ct, err := MarshalCreateToRepository(CreateTaskInput{
		Title:    "write report",
		Priority: &priority,
		DueDate:  &due,
		Tags:     []string{"tag-1"},
	})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	if ct.Priority == nil || *ct.Priority != tasksrepo.PriorityHigh {
		t.Error("priority not carried over")
	}

	if ct.Status != nil {
		t.Error("absent status must remain nil so the store default applies")
	}

	if ct.DueDate == nil || !ct.DueDate.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("due date parsed wrong: %v", ct.DueDate)
	}
}

func TestMarshalCreateRejectsBadEnum(t *testing.T) {
	bad := "SOMEDAY"
	if _, err := MarshalCreateToRepository(CreateTaskInput{Title: "x", Priority: &bad}); err == nil {
		t.Error("unknown priority must fail")
	}
}

func TestMarshalCreateRejectsBadDate(t *testing.T) {
	bad := "not-a-date"
	if _, err := MarshalCreateToRepository(CreateTaskInput{Title: "x", DueDate: &bad}); err == nil {
		t.Error("unparseable date must fail")
	}
}

func TestMarshalToBridge(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	task := MarshalToBridge(tasksrepo.Task{
		TaskID:    "task-1",
		Title:     "write report",
		Priority:  tasksrepo.PriorityMedium,
		Status:    tasksrepo.StatusNotStarted,
		CreatedAt: created,
		UpdatedAt: created,
		Tags: []tagsrepo.Tag{
			{TagID: "tag-1", Name: "work"},
		},
	})

	if task.ID != "task-1" || task.Priority != "MEDIUM" || task.Status != "NOT_STARTED" {
		t.Errorf("unexpected task shape: %+v", task)
	}

	if task.CreatedAt != "2026-01-02T03:04:05Z" {
		t.Errorf("unexpected createdAt: %s", task.CreatedAt)
	}

	if task.DueDate != nil {
		t.Error("nil due date must stay nil")
	}

	if len(task.Tags) != 1 || task.Tags[0].Name != "work" {
		t.Errorf("tags not carried over: %+v", task.Tags)
	}
}

func TestMarshalToBridgeEmptyTags(t *testing.T) {
	task := MarshalToBridge(tasksrepo.Task{TaskID: "task-1", Tags: []tagsrepo.Tag{}})

	data, err := json.Marshal(task)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	// Clients rely on tags always being an array, never null.
	if !json.Valid(data) {
		t.Fatal("invalid json")
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := decoded["tags"].([]any); !ok {
		t.Errorf("tags must serialize as an array, got %T", decoded["tags"])
	}
}
