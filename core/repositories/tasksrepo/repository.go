// Package tasksrepo holds the task model and the rules applied before the
// collection is touched: input validation, seed mapping and the idempotent
// handling of unknown ids.
package tasksrepo

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/jrazmi/taskboard/core/repositories"
	"github.com/jrazmi/taskboard/sdk/logger"
)

// Storer defines the data storage interface for Task.
type Storer interface {
	repositories.Store[Task, int, CreateTask, UpdateTask, QueryFilter]

	// Replace swaps the whole collection for tasks, keeping their ids.
	Replace(ctx context.Context, tasks []Task) error

	// Counts tallies the whole collection by status.
	Counts(ctx context.Context) Counts
}

// Repository provides access to task storage.
type Repository struct {
	log    *logger.Logger
	storer Storer
}

// NewRepository creates a new Task repository
func NewRepository(log *logger.Logger, storer Storer) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
	}
}

// Seed replaces the collection with tasks built from records. Records without
// a positive id or a title, and repeated ids, are skipped. It returns how
// many tasks were kept.
func (r *Repository) Seed(ctx context.Context, records []SeedRecord) (int, error) {
	tasks := make([]Task, 0, len(records))
	seen := make(map[int]bool, len(records))

	for _, rec := range records {
		title := strings.TrimSpace(rec.Title)
		switch {
		case rec.ID <= 0:
			r.log.WarnContext(ctx, "seed: skipping record", "reason", "non-positive id", "id", rec.ID)
			continue
		case title == "":
			r.log.WarnContext(ctx, "seed: skipping record", "reason", "empty title", "id", rec.ID)
			continue
		case seen[rec.ID]:
			r.log.WarnContext(ctx, "seed: skipping record", "reason", "duplicate id", "id", rec.ID)
			continue
		}
		seen[rec.ID] = true

		status := StatusToDo
		if rec.Completed {
			status = StatusDone
		}
		tasks = append(tasks, Task{
			ID:          rec.ID,
			Title:       title,
			Description: fmt.Sprintf("Task Description %d", rec.ID),
			Status:      status,
		})
	}

	if err := r.storer.Replace(ctx, tasks); err != nil {
		return 0, fmt.Errorf("seed: %w", err)
	}

	r.log.InfoContext(ctx, "seeded tasks", "received", len(records), "kept", len(tasks))
	return len(tasks), nil
}

// Add appends a new ToDo task. Blank input yields a *ValidationError and
// leaves the collection untouched.
func (r *Repository) Add(ctx context.Context, input CreateTask) (Task, error) {
	if err := input.Validate(); err != nil {
		return Task{}, err
	}

	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)

	task, err := r.storer.Create(ctx, input)
	if err != nil {
		return Task{}, fmt.Errorf("create task: %w", err)
	}

	r.log.InfoContext(ctx, "task added", "id", task.ID)
	return task, nil
}

// Get returns one task or ErrNotFound.
func (r *Repository) Get(ctx context.Context, id int) (Task, error) {
	task, err := r.storer.Get(ctx, id)
	if err != nil {
		return Task{}, fmt.Errorf("get task %d: %w", id, err)
	}
	return task, nil
}

// Delete removes the task with id. Unknown ids are ignored.
func (r *Repository) Delete(ctx context.Context, id int) error {
	err := r.storer.Delete(ctx, id)
	switch {
	case errors.Is(err, ErrNotFound):
		r.log.DebugContext(ctx, "delete: task not present", "id", id)
		return nil
	case err != nil:
		return fmt.Errorf("delete task %d: %w", id, err)
	}

	r.log.InfoContext(ctx, "task deleted", "id", id)
	return nil
}

// UpdateStatus sets the status of the task with id. Unknown statuses are
// rejected with ErrInvalidStatus; unknown ids are ignored.
func (r *Repository) UpdateStatus(ctx context.Context, id int, status Status) error {
	return r.Update(ctx, id, UpdateTask{Status: &status})
}

// Update applies the set fields of input to the task with id. Title and
// description follow the same rules as Add. Unknown ids are ignored.
func (r *Repository) Update(ctx context.Context, id int, input UpdateTask) error {
	if err := input.Validate(); err != nil {
		return err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		input.Title = &title
	}
	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		input.Description = &description
	}

	_, err := r.storer.Update(ctx, id, input)
	switch {
	case errors.Is(err, ErrNotFound):
		r.log.DebugContext(ctx, "update: task not present", "id", id)
		return nil
	case err != nil:
		return fmt.Errorf("update task %d: %w", id, err)
	}

	r.log.InfoContext(ctx, "task updated", "id", id)
	return nil
}

// Filtered yields the tasks matching filter in insertion order.
func (r *Repository) Filtered(ctx context.Context, filter QueryFilter) iter.Seq[Task] {
	return r.storer.List(ctx, filter)
}

// Query collects Filtered into a slice.
func (r *Repository) Query(ctx context.Context, filter QueryFilter) []Task {
	tasks := slices.Collect(r.Filtered(ctx, filter))
	if tasks == nil {
		return []Task{}
	}
	return tasks
}

// Counts tallies the whole collection, ignoring any filter.
func (r *Repository) Counts(ctx context.Context) Counts {
	return r.storer.Counts(ctx)
}
