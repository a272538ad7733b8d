package main

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/jrazmi/taskboard/core/repositories/tasksrepo"
	"github.com/jrazmi/taskboard/core/repositories/tasksrepo/stores/tasksmemstore"
	"github.com/jrazmi/taskboard/infrastructure/todosource"
	"github.com/jrazmi/taskboard/sdk/logger"
)

type stubSource struct {
	todos []todosource.Todo
	err   error
}

func (s stubSource) Fetch(ctx context.Context) ([]todosource.Todo, error) {
	return s.todos, s.err
}

func newRepo() (*tasksrepo.Repository, *logger.Logger) {
	log := logger.NewDefault(logger.WithOutput(io.Discard))
	return tasksrepo.NewRepository(log, tasksmemstore.NewStore(log)), log
}

func TestSeedTasks(t *testing.T) {
	repo, log := newRepo()
	ctx := context.Background()

	src := stubSource{todos: []todosource.Todo{
		{ID: 1, Title: "A", Completed: false},
		{ID: 2, Title: "B", Completed: true},
		{ID: 0, Title: "broken"},
	}}

	if n := seedTasks(ctx, log, src, repo); n != 2 {
		t.Fatalf("seeded %d, want 2", n)
	}

	tasks := repo.Query(ctx, tasksrepo.QueryFilter{})
	if len(tasks) != 2 || tasks[0].Status != tasksrepo.StatusToDo || tasks[1].Status != tasksrepo.StatusDone {
		t.Fatalf("tasks = %+v", tasks)
	}
	if tasks[1].Description != "Task Description 2" {
		t.Errorf("description = %q", tasks[1].Description)
	}
	if got := repo.Counts(ctx); got != (tasksrepo.Counts{Total: 2, ToDo: 1, Done: 1}) {
		t.Errorf("counts = %+v", got)
	}
}

func TestSeedTasksFailure(t *testing.T) {
	repo, log := newRepo()
	ctx := context.Background()

	if n := seedTasks(ctx, log, stubSource{err: errors.New("unreachable")}, repo); n != 0 {
		t.Fatalf("seeded %d, want 0", n)
	}
	if got := repo.Counts(ctx).Total; got != 0 {
		t.Errorf("total = %d, want an empty board", got)
	}

	// The board stays usable after a failed seed.
	task, err := repo.Add(ctx, tasksrepo.CreateTask{Title: "first", Description: "by hand"})
	if err != nil || task.ID != 1 {
		t.Fatalf("add = %+v, %v", task, err)
	}
}
