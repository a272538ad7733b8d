// Package commands holds the operator commands run against a freshly seeded
// board.
package commands

import (
	"context"
	"fmt"

	"github.com/jrazmi/taskboard/core/repositories/tasksrepo"
	"github.com/jrazmi/taskboard/core/repositories/tasksrepo/stores/tasksmemstore"
	"github.com/jrazmi/taskboard/infrastructure/todosource"
	"github.com/jrazmi/taskboard/sdk/logger"
)

// Fetcher returns the demo todos.
type Fetcher interface {
	Fetch(ctx context.Context) ([]todosource.Todo, error)
}

// LoadBoard builds an in-memory board from the seed source, the same way the
// server does at startup. Unlike the server it fails when the fetch fails.
func LoadBoard(ctx context.Context, log *logger.Logger, src Fetcher) (*tasksrepo.Repository, error) {
	todos, err := src.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching seed: %w", err)
	}

	records := make([]tasksrepo.SeedRecord, len(todos))
	for i, t := range todos {
		records[i] = tasksrepo.SeedRecord{ID: t.ID, Title: t.Title, Completed: t.Completed}
	}

	repo := tasksrepo.NewRepository(log, tasksmemstore.NewStore(log))
	if _, err := repo.Seed(ctx, records); err != nil {
		return nil, err
	}
	return repo, nil
}

// ParseFilter builds a query filter from command flags.
func ParseFilter(status, search string) (tasksrepo.QueryFilter, error) {
	filter := tasksrepo.QueryFilter{SearchTerm: search}
	if status == "" {
		return filter, nil
	}
	st, err := tasksrepo.ParseStatus(status)
	if err != nil {
		return filter, err
	}
	filter.Status = &st
	return filter, nil
}
