package tasksrepobridge

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rsalas/taskdeck/bridge/scaffolding/mid"
	"github.com/rsalas/taskdeck/core/repositories/tagsrepo"
	"github.com/rsalas/taskdeck/core/repositories/tasksrepo"
	"github.com/rsalas/taskdeck/infrastructure/web"
	"github.com/rsalas/taskdeck/sdk/logger"
	"github.com/rsalas/taskdeck/sdk/tokens"
)

// memStore is an in-memory task storer backing the handler tests.
type memStore struct {
	seq     int
	tasks   map[string]tasksrepo.Task
	tagSets map[string][]string
	catalog map[string]tagsrepo.Tag
}

func newMemStore() *memStore {
	return &memStore{
		tasks:   make(map[string]tasksrepo.Task),
		tagSets: make(map[string][]string),
		catalog: map[string]tagsrepo.Tag{
			"tag-work":   {TagID: "tag-work", Name: "work"},
			"tag-urgent": {TagID: "tag-urgent", Name: "urgent"},
		},
	}
}

func (m *memStore) resolve(task tasksrepo.Task) tasksrepo.Task {
	task.Tags = []tagsrepo.Tag{}
	for _, id := range m.tagSets[task.TaskID] {
		task.Tags = append(task.Tags, m.catalog[id])
	}
	return task
}

func (m *memStore) checkTags(ids []string) error {
	for _, id := range ids {
		if _, ok := m.catalog[id]; !ok {
			return tasksrepo.ErrTagNotFound
		}
	}
	return nil
}

func (m *memStore) List(ctx context.Context, userID string) ([]tasksrepo.Task, error) {
	out := []tasksrepo.Task{}
	for _, task := range m.tasks {
		if task.UserID == userID {
			out = append(out, m.resolve(task))
		}
	}
	return out, nil
}

func (m *memStore) GetByID(ctx context.Context, userID string, taskID string) (tasksrepo.Task, error) {
	task, ok := m.tasks[taskID]
	if !ok || task.UserID != userID {
		return tasksrepo.Task{}, tasksrepo.ErrNotFound
	}
	return m.resolve(task), nil
}

func (m *memStore) Create(ctx context.Context, userID string, ct tasksrepo.CreateTask) (tasksrepo.Task, error) {
	if err := m.checkTags(ct.TagIDs); err != nil {
		return tasksrepo.Task{}, err
	}

	m.seq++
	now := time.Now().UTC()
	task := tasksrepo.Task{
		TaskID:      fmt.Sprintf("task-%d", m.seq),
		UserID:      userID,
		Title:       ct.Title,
		Description: ct.Description,
		Priority:    tasksrepo.PriorityMedium,
		Status:      tasksrepo.StatusNotStarted,
		DueDate:     ct.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if ct.Priority != nil {
		task.Priority = *ct.Priority
	}
	if ct.Status != nil {
		task.Status = *ct.Status
	}

	m.tasks[task.TaskID] = task
	m.tagSets[task.TaskID] = append([]string{}, ct.TagIDs...)
	return m.resolve(task), nil
}

func (m *memStore) Update(ctx context.Context, userID string, taskID string, ut tasksrepo.UpdateTask) (tasksrepo.Task, error) {
	task, ok := m.tasks[taskID]
	if !ok || task.UserID != userID {
		return tasksrepo.Task{}, tasksrepo.ErrNotFound
	}

	if ut.TagIDs != nil {
		if err := m.checkTags(*ut.TagIDs); err != nil {
			return tasksrepo.Task{}, err
		}
		m.tagSets[taskID] = append([]string{}, (*ut.TagIDs)...)
	}

	if ut.Title != nil {
		task.Title = *ut.Title
	}
	if ut.Description != nil {
		task.Description = ut.Description
	}
	if ut.Priority != nil {
		task.Priority = *ut.Priority
	}
	if ut.Status != nil {
		task.Status = *ut.Status
	}
	if ut.DueDate != nil {
		task.DueDate = ut.DueDate
	}
	task.UpdatedAt = time.Now().UTC()

	m.tasks[taskID] = task
	return m.resolve(task), nil
}

func (m *memStore) Delete(ctx context.Context, userID string, taskID string) error {
	task, ok := m.tasks[taskID]
	if !ok || task.UserID != userID {
		return tasksrepo.ErrNotFound
	}
	delete(m.tasks, taskID)
	delete(m.tagSets, taskID)
	return nil
}

func (m *memStore) Search(ctx context.Context, userID string, filter tasksrepo.TaskFilter) ([]tasksrepo.Task, error) {
	out := []tasksrepo.Task{}
	for _, task := range m.tasks {
		if task.UserID != userID {
			continue
		}
		if filter.Text != nil {
			text := strings.ToLower(*filter.Text)
			title := strings.ToLower(task.Title)
			desc := ""
			if task.Description != nil {
				desc = strings.ToLower(*task.Description)
			}
			if !strings.Contains(title, text) && !strings.Contains(desc, text) {
				continue
			}
		}
		if filter.Priority != nil && task.Priority != *filter.Priority {
			continue
		}
		if filter.Status != nil && task.Status != *filter.Status {
			continue
		}
		if filter.DueBefore != nil && (task.DueDate == nil || task.DueDate.After(*filter.DueBefore)) {
			continue
		}
		out = append(out, m.resolve(task))
	}
	return out, nil
}

// newTestServer wires the bridge behind the real middleware chain.
func newTestServer(t *testing.T) (*httptest.Server, *tokens.Tokens, *memStore) {
	t.Helper()

	log := logger.NewDefault()
	tkn := tokens.New(tokens.Options{SigningKey: "test-key", Issuer: "taskdeck", TTL: time.Hour})
	store := newMemStore()

	handler := web.NewWebHandler(web.HandlerOptions{},
		web.WithGlobalMiddleware(
			mid.Errors(log),
			mid.Panics(),
		),
	)

	api := handler.Group("/api/v1")
	AddHttpRoutes(api, Config{
		Log:        log,
		Repository: tasksrepo.NewRepository(log, store),
		Middleware: []web.Middleware{mid.Authenticate(tkn)},
	})

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return server, tkn, store
}

func doRequest(t *testing.T, method, url, token, body string) *http.Response {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	return resp
}

func decodeTask(t *testing.T, resp *http.Response) Task {
	t.Helper()
	defer resp.Body.Close()

	var task Task
	if err := json.NewDecoder(resp.Body).Decode(&task); err != nil {
		t.Fatalf("decode task: %v", err)
	}
	return task
}

func TestHandlersRequireAuth(t *testing.T) {
	server, _, _ := newTestServer(t)

	resp := doRequest(t, http.MethodGet, server.URL+"/api/v1/tasks", "", "")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestCreateAndListTasks(t *testing.T) {
	server, tkn, _ := newTestServer(t)

	token, err := tkn.Generate("user-1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	resp := doRequest(t, http.MethodPost, server.URL+"/api/v1/tasks", token,
		`{"title":"write report","priority":"HIGH","tags":["tag-work"]}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	task := decodeTask(t, resp)
	if task.Title != "write report" || task.Priority != "HIGH" {
		t.Errorf("unexpected task: %+v", task)
	}
	if task.Status != "NOT_STARTED" {
		t.Errorf("expected default status, got %s", task.Status)
	}
	if len(task.Tags) != 1 || task.Tags[0].Name != "work" {
		t.Errorf("tags not resolved: %+v", task.Tags)
	}

	listResp := doRequest(t, http.MethodGet, server.URL+"/api/v1/tasks", token, "")
	defer listResp.Body.Close()
	if listResp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", listResp.StatusCode)
	}

	var tasks []Task
	if err := json.NewDecoder(listResp.Body).Decode(&tasks); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
}

func TestCreateUnknownTagFails(t *testing.T) {
	server, tkn, _ := newTestServer(t)

	token, _ := tkn.Generate("user-1")

	resp := doRequest(t, http.MethodPost, server.URL+"/api/v1/tasks", token,
		`{"title":"x","tags":["tag-missing"]}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.StatusCode)
	}
}

func TestCrossUserAccessIsNotFound(t *testing.T) {
	server, tkn, _ := newTestServer(t)

	owner, _ := tkn.Generate("user-1")
	other, _ := tkn.Generate("user-2")

	created := decodeTask(t, doRequest(t, http.MethodPost, server.URL+"/api/v1/tasks", owner, `{"title":"mine"}`))

	resp := doRequest(t, http.MethodPut, server.URL+"/api/v1/tasks/"+created.ID, other, `{"title":"stolen"}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for another user's task, got %d", resp.StatusCode)
	}
}

func TestUpdateReplacesTags(t *testing.T) {
	server, tkn, _ := newTestServer(t)

	token, _ := tkn.Generate("user-1")

	created := decodeTask(t, doRequest(t, http.MethodPost, server.URL+"/api/v1/tasks", token,
		`{"title":"x","tags":["tag-work"]}`))

	updated := decodeTask(t, doRequest(t, http.MethodPut, server.URL+"/api/v1/tasks/"+created.ID, token,
		`{"tags":["tag-urgent"]}`))
	if len(updated.Tags) != 1 || updated.Tags[0].ID != "tag-urgent" {
		t.Errorf("tags not replaced: %+v", updated.Tags)
	}

	cleared := decodeTask(t, doRequest(t, http.MethodPut, server.URL+"/api/v1/tasks/"+created.ID, token,
		`{"tags":[]}`))
	if len(cleared.Tags) != 0 {
		t.Errorf("tags not cleared: %+v", cleared.Tags)
	}

	untouched := decodeTask(t, doRequest(t, http.MethodPut, server.URL+"/api/v1/tasks/"+created.ID, token,
		`{"title":"renamed"}`))
	if untouched.Title != "renamed" || len(untouched.Tags) != 0 {
		t.Errorf("update without tags field must leave associations alone: %+v", untouched)
	}
}

func TestCompleteEndpoint(t *testing.T) {
	server, tkn, _ := newTestServer(t)

	token, _ := tkn.Generate("user-1")

	created := decodeTask(t, doRequest(t, http.MethodPost, server.URL+"/api/v1/tasks", token, `{"title":"x"}`))

	resp := doRequest(t, http.MethodPut, server.URL+"/api/v1/tasks/"+created.ID+"/complete", token, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	completed := decodeTask(t, resp)
	if completed.Status != "COMPLETED" {
		t.Errorf("expected COMPLETED, got %s", completed.Status)
	}
}

func TestDeleteReturnsNoContent(t *testing.T) {
	server, tkn, store := newTestServer(t)

	token, _ := tkn.Generate("user-1")

	created := decodeTask(t, doRequest(t, http.MethodPost, server.URL+"/api/v1/tasks", token, `{"title":"x"}`))

	resp := doRequest(t, http.MethodDelete, server.URL+"/api/v1/tasks/"+created.ID, token, "")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.StatusCode)
	}

	if len(store.tasks) != 0 {
		t.Error("task not deleted from the store")
	}

	again := doRequest(t, http.MethodDelete, server.URL+"/api/v1/tasks/"+created.ID, token, "")
	defer again.Body.Close()
	if again.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", again.StatusCode)
	}
}

func TestSearchFilters(t *testing.T) {
	server, tkn, _ := newTestServer(t)

	token, _ := tkn.Generate("user-1")

	decodeTask(t, doRequest(t, http.MethodPost, server.URL+"/api/v1/tasks", token,
		`{"title":"quarterly report","priority":"HIGH"}`))
	decodeTask(t, doRequest(t, http.MethodPost, server.URL+"/api/v1/tasks", token,
		`{"title":"grocery run","priority":"LOW"}`))

	resp := doRequest(t, http.MethodGet, server.URL+"/api/v1/tasks/search?query=report&priority=HIGH", token, "")
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var tasks []Task
	if err := json.NewDecoder(resp.Body).Decode(&tasks); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if len(tasks) != 1 || tasks[0].Title != "quarterly report" {
		t.Errorf("unexpected search result: %+v", tasks)
	}

	badResp := doRequest(t, http.MethodGet, server.URL+"/api/v1/tasks/search?priority=WHENEVER", token, "")
	defer badResp.Body.Close()
	if badResp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad enum, got %d", badResp.StatusCode)
	}
}
