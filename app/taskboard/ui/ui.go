// Package ui renders the task board: the add form, the statistics and filter
// panel, and the editable task table.
package ui

import (
	"embed"
	"fmt"

	"github.com/jrazmi/taskboard/core/repositories/tasksrepo"
	"github.com/jrazmi/taskboard/infrastructure/web"
	"github.com/jrazmi/taskboard/sdk/logger"
)

//go:embed templates static
var content embed.FS

// Config holds what the board handlers need.
type Config struct {
	Log        *logger.Logger
	Repository *tasksrepo.Repository
	Middleware []web.Middleware

	// APIRoute is where the JSON API is mounted; the board links its exports there.
	APIRoute string
}

// AddHandlers registers the board pages, the form actions and the static
// assets on wh.
func AddHandlers(wh *web.WebHandler, cfg Config) error {
	views, err := newRenderer(content)
	if err != nil {
		return fmt.Errorf("ui: %w", err)
	}

	if err := wh.FileServer(content, "static", "/static/"); err != nil {
		return fmt.Errorf("ui: %w", err)
	}

	h := &handlers{
		log:      cfg.Log,
		repo:     cfg.Repository,
		views:    views,
		apiRoute: cfg.APIRoute,
	}
	mw := cfg.Middleware

	wh.GET("/{$}", h.board, mw...)
	wh.GET("/tasks/table", h.table, mw...)
	wh.POST("/tasks", h.add, mw...)
	wh.POST("/tasks/{task_id}/status", h.updateStatus, mw...)
	wh.POST("/tasks/{task_id}/details", h.updateDetails, mw...)
	wh.POST("/tasks/{task_id}/delete", h.delete, mw...)

	return nil
}
