package tasksrepo

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jrazmi/taskboard/sdk/validation"
)

// Status is the progress state of a task.
type Status string

const (
	StatusToDo       Status = "ToDo"
	StatusInProgress Status = "InProgress"
	StatusDone       Status = "Done"
)

// Statuses lists every status in board order.
var Statuses = []Status{StatusToDo, StatusInProgress, StatusDone}

// ParseStatus accepts a status token ("InProgress") or its label
// ("In Progress"), case-insensitively.
func ParseStatus(s string) (Status, error) {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	for _, st := range Statuses {
		if strings.ToLower(string(st)) == key {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	for _, st := range Statuses {
		if s == st {
			return true
		}
	}
	return false
}

// Label is the human readable form shown on the board.
func (s Status) Label() string {
	return validation.CamelCaseToTitleCase(string(s))
}

func (s Status) String() string {
	return string(s)
}

func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	st, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = st
	return nil
}

// Task is the unit tracked by the board.
type Task struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      Status `json:"status"`
}

// CreateTask contains fields for creating a new task.
type CreateTask struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Validate rejects blank titles and descriptions.
func (c CreateTask) Validate() error {
	var fe validation.FieldErrors
	fe.Required("title", c.Title)
	fe.Required("description", c.Description)
	if !fe.Empty() {
		return &ValidationError{Fields: fe}
	}
	return nil
}

// UpdateTask contains fields for updating an existing task.
// All fields are optional (pointers) to support partial updates.
type UpdateTask struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *Status `json:"status,omitempty"`
}

// Validate checks only the fields that are set.
func (u UpdateTask) Validate() error {
	var fe validation.FieldErrors
	if u.Title != nil {
		fe.Required("title", *u.Title)
	}
	if u.Description != nil {
		fe.Required("description", *u.Description)
	}
	if !fe.Empty() {
		return &ValidationError{Fields: fe}
	}
	if u.Status != nil && !u.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, *u.Status)
	}
	return nil
}

// QueryFilter narrows a listing. A nil Status matches every status; an empty
// SearchTerm matches every task.
type QueryFilter struct {
	Status     *Status
	SearchTerm string
}

// Matches reports whether t passes the filter. The search term is compared
// case-insensitively against the title and the description.
func (f QueryFilter) Matches(t Task) bool {
	if f.Status != nil && t.Status != *f.Status {
		return false
	}
	if f.SearchTerm == "" {
		return true
	}
	term := strings.ToLower(f.SearchTerm)
	return strings.Contains(strings.ToLower(t.Title), term) ||
		strings.Contains(strings.ToLower(t.Description), term)
}

// Counts summarises the whole collection by status.
type Counts struct {
	Total      int `json:"total"`
	ToDo       int `json:"toDo"`
	InProgress int `json:"inProgress"`
	Done       int `json:"done"`
}

// Add tallies one task with status s.
func (c *Counts) Add(s Status) {
	c.Total++
	switch s {
	case StatusToDo:
		c.ToDo++
	case StatusInProgress:
		c.InProgress++
	case StatusDone:
		c.Done++
	}
}

// SeedRecord is one entry of the initial import.
type SeedRecord struct {
	ID        int
	Title     string
	Completed bool
}
