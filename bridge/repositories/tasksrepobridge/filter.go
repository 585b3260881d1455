package tasksrepobridge

import (
	"fmt"
	"net/http"

	"github.com/rsalas/taskdeck/core/repositories/tasksrepo"
	"github.com/rsalas/taskdeck/infrastructure/web"
	"github.com/rsalas/taskdeck/sdk/validation"
)

// parseTaskFilter builds a repository filter from the search query string.
// Supported parameters: query, priority, status, dueDate.
func parseTaskFilter(r *http.Request) (tasksrepo.TaskFilter, error) {
	var filter tasksrepo.TaskFilter

	if text := web.QueryParam(r, "query"); text != "" {
		filter.Text = validation.StringPtr(text)
	}

	if p := web.QueryParam(r, "priority"); p != "" {
		priority, err := tasksrepo.ParsePriority(p)
		if err != nil {
			return tasksrepo.TaskFilter{}, err
		}
		filter.Priority = &priority
	}

	if s := web.QueryParam(r, "status"); s != "" {
		status, err := tasksrepo.ParseStatus(s)
		if err != nil {
			return tasksrepo.TaskFilter{}, err
		}
		filter.Status = &status
	}

	// dueDate is an inclusive upper bound: tasks due on or before the date.
	if d := web.QueryParam(r, "dueDate"); d != "" {
		dueBefore, err := validation.ParseFlexibleDate(d)
		if err != nil {
			return tasksrepo.TaskFilter{}, fmt.Errorf("invalid dueDate: %w", err)
		}
		filter.DueBefore = &dueBefore
	}

	return filter, nil
}
