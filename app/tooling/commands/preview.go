package commands

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/jrazmi/taskboard/core/repositories/tasksrepo"
)

// Preview prints the board counts followed by the tasks matching filter.
func Preview(ctx context.Context, w io.Writer, repo *tasksrepo.Repository, filter tasksrepo.QueryFilter) error {
	c := repo.Counts(ctx)
	fmt.Fprintf(w, "Total: %d  To Do: %d  In Progress: %d  Done: %d\n\n", c.Total, c.ToDo, c.InProgress, c.Done)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTATUS\tTITLE\tDESCRIPTION")
	for task := range repo.Filtered(ctx, filter) {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", task.ID, task.Status.Label(), task.Title, task.Description)
	}
	return tw.Flush()
}
