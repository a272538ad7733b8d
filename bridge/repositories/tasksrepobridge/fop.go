package tasksrepobridge

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/jrazmi/taskboard/core/repositories/tasksrepo"
	"github.com/jrazmi/taskboard/infrastructure/web"
)

// QueryParams are the raw listing parameters.
type QueryParams struct {
	Status     string
	SearchTerm string
}

func parseQueryParams(r *http.Request) QueryParams {
	q := r.URL.Query()
	return QueryParams{
		Status:     q.Get("status"),
		SearchTerm: q.Get("searchTerm"),
	}
}

// parseFilter turns query params into a repository filter. An empty status
// selects every status.
func parseFilter(qp QueryParams) (tasksrepo.QueryFilter, error) {
	filter := tasksrepo.QueryFilter{SearchTerm: qp.SearchTerm}

	if qp.Status != "" {
		status, err := tasksrepo.ParseStatus(qp.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

func parseTaskID(r *http.Request) (int, error) {
	raw := web.Param(r, "task_id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid task_id %q", raw)
	}
	return id, nil
}
