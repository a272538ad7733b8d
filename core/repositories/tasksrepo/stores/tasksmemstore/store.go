// Package tasksmemstore keeps tasks in process memory.
package tasksmemstore

import (
	"context"
	"iter"
	"slices"
	"sync"

	"github.com/jrazmi/taskboard/core/repositories/tasksrepo"
	"github.com/jrazmi/taskboard/sdk/logger"
)

// Store holds tasks in insertion order. Every method runs under the mutex, so
// each operation is atomic with respect to concurrent requests.
type Store struct {
	log *logger.Logger

	mu     sync.Mutex
	tasks  []tasksrepo.Task
	nextID int
}

func NewStore(log *logger.Logger) *Store {
	return &Store{
		log:    log,
		nextID: 1,
	}
}

// Replace swaps the collection. The id counter continues after the largest
// id seen so later additions never reuse one.
func (s *Store) Replace(ctx context.Context, tasks []tasksrepo.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = slices.Clone(tasks)
	for _, t := range s.tasks {
		if t.ID >= s.nextID {
			s.nextID = t.ID + 1
		}
	}
	s.log.DebugContext(ctx, "tasks replaced", "count", len(s.tasks), "next_id", s.nextID)
	return nil
}

// Create appends a ToDo task with the next id.
func (s *Store) Create(ctx context.Context, input tasksrepo.CreateTask) (tasksrepo.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task := tasksrepo.Task{
		ID:          s.nextID,
		Title:       input.Title,
		Description: input.Description,
		Status:      tasksrepo.StatusToDo,
	}
	s.nextID++
	s.tasks = append(s.tasks, task)
	return task, nil
}

func (s *Store) Get(ctx context.Context, id int) (tasksrepo.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return tasksrepo.Task{}, tasksrepo.ErrNotFound
	}
	return s.tasks[i], nil
}

// List yields matching tasks from a snapshot taken when iteration starts, so
// the lock is not held while the caller consumes the sequence.
func (s *Store) List(ctx context.Context, filter tasksrepo.QueryFilter) iter.Seq[tasksrepo.Task] {
	return func(yield func(tasksrepo.Task) bool) {
		s.mu.Lock()
		snapshot := slices.Clone(s.tasks)
		s.mu.Unlock()

		for _, t := range snapshot {
			if !filter.Matches(t) {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

func (s *Store) Update(ctx context.Context, id int, updates tasksrepo.UpdateTask) (tasksrepo.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return tasksrepo.Task{}, tasksrepo.ErrNotFound
	}

	t := &s.tasks[i]
	if updates.Title != nil {
		t.Title = *updates.Title
	}
	if updates.Description != nil {
		t.Description = *updates.Description
	}
	if updates.Status != nil {
		t.Status = *updates.Status
	}
	return *t, nil
}

func (s *Store) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return tasksrepo.ErrNotFound
	}
	s.tasks = slices.Delete(s.tasks, i, i+1)
	return nil
}

func (s *Store) Counts(ctx context.Context) tasksrepo.Counts {
	s.mu.Lock()
	defer s.mu.Unlock()

	var c tasksrepo.Counts
	for _, t := range s.tasks {
		c.Add(t.Status)
	}
	return c
}

// indexOf must be called with mu held.
func (s *Store) indexOf(id int) int {
	return slices.IndexFunc(s.tasks, func(t tasksrepo.Task) bool {
		return t.ID == id
	})
}
