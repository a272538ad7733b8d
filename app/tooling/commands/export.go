package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jrazmi/taskboard/bridge/repositories/tasksrepobridge"
	"github.com/jrazmi/taskboard/core/repositories/tasksrepo"
)

// Export writes the filtered board in format to out, or to stdout when out
// is "-".
func Export(ctx context.Context, stdout io.Writer, repo *tasksrepo.Repository, filter tasksrepo.QueryFilter, format, out string) error {
	exp, err := tasksrepobridge.NewExporter(repo).Export(ctx, filter, format)
	if err != nil {
		return err
	}

	if out == "-" {
		_, err := stdout.Write(exp.Data)
		return err
	}
	if out == "" {
		out = exp.Filename
	}

	if err := os.WriteFile(out, exp.Data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	fmt.Fprintf(stdout, "wrote %s (%d bytes)\n", out, len(exp.Data))
	return nil
}
