package tasksrepobridge

import (
	"github.com/jrazmi/taskboard/core/repositories/tasksrepo"
)

// Task is the API representation of a task.
type Task struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	StatusLabel string `json:"statusLabel"`
}

// CreateTaskInput is the body of POST /tasks.
type CreateTaskInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Validate implements the web decode validator.
func (c CreateTaskInput) Validate() error {
	return tasksrepo.CreateTask{Title: c.Title, Description: c.Description}.Validate()
}

// UpdateTaskInput is the body of PUT /tasks/{task_id}. Absent fields are left alone.
type UpdateTaskInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// UpdateStatusInput is the body of PUT /tasks/{task_id}/status.
type UpdateStatusInput struct {
	Status string `json:"status"`
}

// Stats is the body of GET /tasks/stats.
type Stats struct {
	Total      int `json:"total"`
	ToDo       int `json:"toDo"`
	InProgress int `json:"inProgress"`
	Done       int `json:"done"`
}
