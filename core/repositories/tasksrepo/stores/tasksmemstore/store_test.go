package tasksmemstore_test

import (
	"context"
	"errors"
	"io"
	"slices"
	"sync"
	"testing"

	"github.com/jrazmi/taskboard/core/repositories/tasksrepo"
	"github.com/jrazmi/taskboard/core/repositories/tasksrepo/stores/tasksmemstore"
	"github.com/jrazmi/taskboard/sdk/logger"
)

func newStore(t *testing.T) *tasksmemstore.Store {
	t.Helper()
	return tasksmemstore.NewStore(logger.NewDefault(logger.WithOutput(io.Discard)))
}

func ids(tasks []tasksrepo.Task) []int {
	out := make([]int, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func TestCreateAssignsMonotonicIDs(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	a, _ := s.Create(ctx, tasksrepo.CreateTask{Title: "a", Description: "a"})
	b, _ := s.Create(ctx, tasksrepo.CreateTask{Title: "b", Description: "b"})
	if err := s.Delete(ctx, b.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	c, _ := s.Create(ctx, tasksrepo.CreateTask{Title: "c", Description: "c"})

	if a.ID != 1 || b.ID != 2 || c.ID != 3 {
		t.Fatalf("ids = %d,%d,%d, want 1,2,3", a.ID, b.ID, c.ID)
	}
	if c.Status != tasksrepo.StatusToDo {
		t.Errorf("status = %s, want ToDo", c.Status)
	}
}

func TestReplaceContinuesAfterLargestID(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	s.Create(ctx, tasksrepo.CreateTask{Title: "old", Description: "old"})
	err := s.Replace(ctx, []tasksrepo.Task{
		{ID: 7, Title: "x", Description: "x", Status: tasksrepo.StatusDone},
		{ID: 3, Title: "y", Description: "y", Status: tasksrepo.StatusToDo},
	})
	if err != nil {
		t.Fatalf("replace: %v", err)
	}

	got := slices.Collect(s.List(ctx, tasksrepo.QueryFilter{}))
	if !slices.Equal(ids(got), []int{7, 3}) {
		t.Fatalf("ids after replace = %v, want [7 3]", ids(got))
	}

	next, _ := s.Create(ctx, tasksrepo.CreateTask{Title: "z", Description: "z"})
	if next.ID != 8 {
		t.Errorf("next id = %d, want 8", next.ID)
	}
}

func TestUpdateAndDeleteMissing(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	done := tasksrepo.StatusDone
	if _, err := s.Update(ctx, 42, tasksrepo.UpdateTask{Status: &done}); !errors.Is(err, tasksrepo.ErrNotFound) {
		t.Errorf("update missing: err = %v, want ErrNotFound", err)
	}
	if err := s.Delete(ctx, 42); !errors.Is(err, tasksrepo.ErrNotFound) {
		t.Errorf("delete missing: err = %v, want ErrNotFound", err)
	}
	if _, err := s.Get(ctx, 42); !errors.Is(err, tasksrepo.ErrNotFound) {
		t.Errorf("get missing: err = %v, want ErrNotFound", err)
	}
}

func TestListFiltersInOrder(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	s.Replace(ctx, []tasksrepo.Task{
		{ID: 1, Title: "Write report", Description: "q3", Status: tasksrepo.StatusDone},
		{ID: 2, Title: "Call bank", Description: "about the REPORT", Status: tasksrepo.StatusToDo},
		{ID: 3, Title: "Gym", Description: "legs", Status: tasksrepo.StatusDone},
	})

	done := tasksrepo.StatusDone
	tests := []struct {
		name   string
		filter tasksrepo.QueryFilter
		want   []int
	}{
		{"all", tasksrepo.QueryFilter{}, []int{1, 2, 3}},
		{"status", tasksrepo.QueryFilter{Status: &done}, []int{1, 3}},
		{"search is case insensitive", tasksrepo.QueryFilter{SearchTerm: "RePoRt"}, []int{1, 2}},
		{"status and search", tasksrepo.QueryFilter{Status: &done, SearchTerm: "report"}, []int{1}},
		{"no match", tasksrepo.QueryFilter{SearchTerm: "nothing"}, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(slices.Collect(s.List(ctx, tt.filter)))
			if !slices.Equal(got, tt.want) {
				t.Errorf("ids = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestListStopsEarly(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	for range 5 {
		s.Create(ctx, tasksrepo.CreateTask{Title: "t", Description: "d"})
	}

	n := 0
	for range s.List(ctx, tasksrepo.QueryFilter{}) {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("iterated %d, want 2", n)
	}
}

func TestConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Create(ctx, tasksrepo.CreateTask{Title: "t", Description: "d"})
		}()
	}
	wg.Wait()

	got := slices.Collect(s.List(ctx, tasksrepo.QueryFilter{}))
	seen := map[int]bool{}
	for _, task := range got {
		if seen[task.ID] {
			t.Fatalf("duplicate id %d", task.ID)
		}
		seen[task.ID] = true
	}
	if c := s.Counts(ctx); c.Total != 50 || c.ToDo != 50 {
		t.Errorf("counts = %+v, want 50 ToDo", c)
	}
}
