package main

import (
	"context"

	"github.com/jrazmi/taskboard/core/repositories/tasksrepo"
	"github.com/jrazmi/taskboard/infrastructure/todosource"
	"github.com/jrazmi/taskboard/sdk/logger"
)

type todoFetcher interface {
	Fetch(ctx context.Context) ([]todosource.Todo, error)
}

type seeder interface {
	Seed(ctx context.Context, records []tasksrepo.SeedRecord) (int, error)
}

// seedTasks imports the demo todos once. Any failure is logged and the board
// stays as it is.
func seedTasks(ctx context.Context, log *logger.Logger, src todoFetcher, repo seeder) int {
	log.InfoContext(ctx, "seed", "status", "fetching demo tasks")

	todos, err := src.Fetch(ctx)
	if err != nil {
		log.WarnContext(ctx, "seed", "status", "fetch failed, starting empty", "err", err)
		return 0
	}

	records := make([]tasksrepo.SeedRecord, len(todos))
	for i, t := range todos {
		records[i] = tasksrepo.SeedRecord{ID: t.ID, Title: t.Title, Completed: t.Completed}
	}

	n, err := repo.Seed(ctx, records)
	if err != nil {
		log.WarnContext(ctx, "seed", "status", "import failed, starting empty", "err", err)
		return 0
	}

	log.InfoContext(ctx, "seed", "status", "complete", "tasks", n)
	return n
}
