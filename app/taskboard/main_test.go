package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jrazmi/taskboard/app/taskboard/config"
	"github.com/jrazmi/taskboard/core/repositories/tasksrepo"
	"github.com/jrazmi/taskboard/sdk/telemetry"
)

func TestWebHandlerRoutes(t *testing.T) {
	cfg, err := config.Load("TASKBOARD_ROUTES")
	if err != nil {
		t.Fatalf("config: %v", err)
	}

	repo, log := newRepo()
	if _, err := repo.Add(context.Background(), tasksrepo.CreateTask{Title: "Write report", Description: "quarterly"}); err != nil {
		t.Fatal(err)
	}

	h, err := webHandler(cfg, log, telemetry.NewTelemetry(), repo)
	if err != nil {
		t.Fatalf("webHandler: %v", err)
	}

	tests := []struct {
		name   string
		method string
		path   string
		status int
		body   string
	}{
		{"board", http.MethodGet, "/", http.StatusOK, "Write report"},
		{"board export links", http.MethodGet, "/", http.StatusOK, "/api/v1/tasks/export?"},
		{"table fragment", http.MethodGet, "/tasks/table", http.StatusOK, "Write report"},
		{"static", http.MethodGet, "/static/board.js", http.StatusOK, "currentFilter"},
		{"api list", http.MethodGet, "/api/v1/tasks", http.StatusOK, `"title":"Write report"`},
		{"api stats", http.MethodGet, "/api/v1/tasks/stats", http.StatusOK, `"total":1`},
		{"api preflight", http.MethodOptions, "/api/v1/tasks", http.StatusNoContent, ""},
		{"debug vars", http.MethodGet, "/debug/vars", http.StatusOK, "requests"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set("Origin", "http://board.test")
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d", rec.Code, tt.status)
			}
			if !strings.Contains(rec.Body.String(), tt.body) {
				t.Errorf("body does not contain %q:\n%s", tt.body, rec.Body)
			}
		})
	}
}
