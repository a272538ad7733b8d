package ui

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/url"

	"github.com/jrazmi/taskboard/core/repositories/tasksrepo"
)

// boardView is everything the board template reads.
type boardView struct {
	Counts   tasksrepo.Counts
	Tasks    []tasksrepo.Task
	Statuses []tasksrepo.Status
	Filter   filter
	Form     formView
	Notice   string
	Error    string
	APIRoute string
}

// formView keeps the add form inputs when a submission is rejected.
type formView struct {
	Title       string
	Description string
	Invalid     map[string]string
}

// filter is the status/search pair carried in query strings and hidden
// form fields so every action returns to the same view.
type filter struct {
	Status string
	Search string
}

func (f filter) query() tasksrepo.QueryFilter {
	qf := tasksrepo.QueryFilter{SearchTerm: f.Search}
	if f.Status != "" {
		st := tasksrepo.Status(f.Status)
		qf.Status = &st
	}
	return qf
}

// boardURL is the board location showing this filter.
func (f filter) boardURL() string {
	v := url.Values{}
	if f.Status != "" {
		v.Set("status", f.Status)
	}
	if f.Search != "" {
		v.Set("search", f.Search)
	}
	if len(v) == 0 {
		return "/"
	}
	return "/?" + v.Encode()
}

// ExportURL links the API export of this filter in format.
func (v boardView) ExportURL(format string) string {
	q := url.Values{"format": {format}}
	if v.Filter.Status != "" {
		q.Set("status", v.Filter.Status)
	}
	if v.Filter.Search != "" {
		q.Set("searchTerm", v.Filter.Search)
	}
	return v.APIRoute + "/tasks/export?" + q.Encode()
}

type renderer struct {
	tmpl *template.Template
}

func newRenderer(fsys fs.FS) (*renderer, error) {
	tmpl, err := template.New("").ParseFS(fsys, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &renderer{tmpl: tmpl}, nil
}

func (r *renderer) render(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
