// Package tasksrepobridge exposes the task repository as a JSON API.
package tasksrepobridge

import (
	"github.com/jrazmi/taskboard/core/repositories/tasksrepo"
	"github.com/jrazmi/taskboard/infrastructure/web"
	"github.com/jrazmi/taskboard/sdk/logger"
)

// Config holds configuration for the Task bridge
type Config struct {
	Log        *logger.Logger
	Repository *tasksrepo.Repository
	Middleware []web.Middleware
}

// AddHttpRoutes registers all HTTP routes for Task
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := newBridge(cfg.Log, cfg.Repository)
	mw := cfg.Middleware

	group.GET("/tasks", b.httpList, mw...)
	group.GET("/tasks/stats", b.httpStats, mw...)
	group.GET("/tasks/export", b.httpExport, mw...)
	group.GET("/tasks/{task_id}", b.httpGetByID, mw...)
	group.POST("/tasks", b.httpCreate, mw...)
	group.PUT("/tasks/{task_id}", b.httpUpdate, mw...)
	group.PUT("/tasks/{task_id}/status", b.httpUpdateStatus, mw...)
	group.DELETE("/tasks/{task_id}", b.httpDelete, mw...)
}
