package ui

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/jrazmi/taskboard/bridge/scaffolding/errs"
	"github.com/jrazmi/taskboard/core/repositories/tasksrepo"
	"github.com/jrazmi/taskboard/infrastructure/web"
	"github.com/jrazmi/taskboard/sdk/logger"
)

const (
	noticeAdded   = "Task added successfully!"
	noticeStatus  = "Task status updated!"
	noticeDetails = "Task updated!"
	noticeDeleted = "Task deleted successfully!"

	errRequired = "Both Title and Description are required!"
)

type handlers struct {
	log      *logger.Logger
	repo     *tasksrepo.Repository
	views    *renderer
	apiRoute string
}

func (h *handlers) board(ctx context.Context, r *http.Request) web.Encoder {
	notice := readFlash(r)
	v := boardView{
		Filter: parseFilter(web.QueryParam(r, "status"), web.QueryParam(r, "search")),
		Notice: notice,
	}
	return h.renderBoard(ctx, http.StatusOK, v, notice != "")
}

// table renders only the task rows so the page can refresh them while the
// filter changes.
func (h *handlers) table(ctx context.Context, r *http.Request) web.Encoder {
	f := parseFilter(web.QueryParam(r, "status"), web.QueryParam(r, "search"))
	v := boardView{
		Tasks:    h.repo.Query(ctx, f.query()),
		Statuses: tasksrepo.Statuses,
		Filter:   f,
	}

	body, err := h.views.render("table", v)
	if err != nil {
		return errs.New(errs.Internal, err)
	}
	return web.NewHTMLResponse(body, http.StatusOK)
}

func (h *handlers) add(ctx context.Context, r *http.Request) web.Encoder {
	f := formFilter(r)
	input := tasksrepo.CreateTask{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
	}

	_, err := h.repo.Add(ctx, input)
	var verr *tasksrepo.ValidationError
	switch {
	case errors.As(err, &verr):
		h.log.InfoContext(ctx, "add rejected", "fields", verr.Fields.Error())
		v := boardView{
			Filter: f,
			Error:  errRequired,
			Form: formView{
				Title:       input.Title,
				Description: input.Description,
				Invalid:     verr.Fields.Fields(),
			},
		}
		return h.renderBoard(ctx, http.StatusUnprocessableEntity, v, false)
	case err != nil:
		return errs.New(errs.Internal, err)
	}

	return redirectWithNotice(f.boardURL(), noticeAdded)
}

func (h *handlers) updateStatus(ctx context.Context, r *http.Request) web.Encoder {
	id, idErr := taskID(r)
	if idErr != nil {
		return idErr
	}
	f := formFilter(r)

	raw := web.FormValue(r, "status")
	status, err := tasksrepo.ParseStatus(raw)
	if err != nil {
		v := boardView{Filter: f, Error: fmt.Sprintf("Unknown status %q.", raw)}
		return h.renderBoard(ctx, http.StatusUnprocessableEntity, v, false)
	}

	if err := h.repo.UpdateStatus(ctx, id, status); err != nil {
		return errs.New(errs.Internal, err)
	}

	return redirectWithNotice(f.boardURL(), noticeStatus)
}

func (h *handlers) updateDetails(ctx context.Context, r *http.Request) web.Encoder {
	id, idErr := taskID(r)
	if idErr != nil {
		return idErr
	}
	f := formFilter(r)

	title := r.FormValue("title")
	description := r.FormValue("description")

	err := h.repo.Update(ctx, id, tasksrepo.UpdateTask{Title: &title, Description: &description})
	switch {
	case errors.Is(err, tasksrepo.ErrValidation):
		v := boardView{Filter: f, Error: fmt.Sprintf("Task %d was not changed: title and description are required.", id)}
		return h.renderBoard(ctx, http.StatusUnprocessableEntity, v, false)
	case err != nil:
		return errs.New(errs.Internal, err)
	}

	return redirectWithNotice(f.boardURL(), noticeDetails)
}

func (h *handlers) delete(ctx context.Context, r *http.Request) web.Encoder {
	id, idErr := taskID(r)
	if idErr != nil {
		return idErr
	}

	if err := h.repo.Delete(ctx, id); err != nil {
		return errs.New(errs.Internal, err)
	}

	return redirectWithNotice(formFilter(r).boardURL(), noticeDeleted)
}

// renderBoard fills the derived parts of v from the store and renders the
// full page.
func (h *handlers) renderBoard(ctx context.Context, status int, v boardView, consumed bool) web.Encoder {
	v.Counts = h.repo.Counts(ctx)
	v.Tasks = h.repo.Query(ctx, v.Filter.query())
	v.Statuses = tasksrepo.Statuses
	v.APIRoute = h.apiRoute

	body, err := h.views.render("board", v)
	if err != nil {
		return errs.New(errs.Internal, err)
	}
	return page{HTMLResponse: web.NewHTMLResponse(body, status), consumed: consumed}
}

// =============================================================================

// parseFilter turns raw query values into a filter. Unknown statuses show
// every task.
func parseFilter(status, search string) filter {
	f := filter{Search: search}
	status = strings.TrimSpace(status)
	if status == "" || strings.EqualFold(status, "all") {
		return f
	}
	if st, err := tasksrepo.ParseStatus(status); err == nil {
		f.Status = st.String()
	}
	return f
}

func formFilter(r *http.Request) filter {
	return parseFilter(web.FormValue(r, "filter_status"), web.FormValue(r, "filter_search"))
}

func taskID(r *http.Request) (int, *errs.Error) {
	raw := web.Param(r, "task_id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.Newf(errs.InvalidArgument, "invalid task id %q", raw)
	}
	return id, nil
}
