package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jrazmi/taskboard/app/taskboard/config"
	"github.com/jrazmi/taskboard/app/tooling/commands"
	"github.com/jrazmi/taskboard/core/repositories/tasksrepo"
	"github.com/jrazmi/taskboard/infrastructure/todosource"
	"github.com/jrazmi/taskboard/sdk/environment"
	"github.com/jrazmi/taskboard/sdk/logger"
)

var build = "develop"
var appName = "TASKBOARD"

func main() {
	if err := environment.LoadEnv(); err != nil {
		fmt.Fprintln(os.Stderr, "loading .env:", err)
		os.Exit(1)
	}

	cfg, err := config.Load(appName)
	if err != nil {
		fmt.Fprintln(os.Stderr, "loading config:", err)
		os.Exit(1)
	}

	// Results go to stdout, so logs always go to stderr.
	log := logger.New(cfg.Log, logger.WithOutput(os.Stderr), logger.WithService(appName+"_TOOLING"))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd(log, cfg).ExecuteContext(ctx); err != nil {
		log.ErrorContext(ctx, "tooling", "err", err)
		os.Exit(1)
	}
}

func rootCmd(log *logger.Logger, cfg config.Taskboard) *cobra.Command {
	root := &cobra.Command{
		Use:           "tooling",
		Short:         "Operator commands for the task board",
		Version:       build,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("seed-url", cfg.Seed.URL, "Seed source URL")
	root.PersistentFlags().Int("seed-limit", cfg.Seed.Limit, "Number of seed records to keep")
	root.PersistentFlags().String("status", "", "Only tasks with this status (ToDo, InProgress, Done)")
	root.PersistentFlags().String("search", "", "Only tasks whose title or description contains this text")

	root.AddCommand(seedPreviewCmd(log, cfg))
	root.AddCommand(exportCmd(log, cfg))

	return root
}

func seedPreviewCmd(log *logger.Logger, cfg config.Taskboard) *cobra.Command {
	return &cobra.Command{
		Use:   "seed-preview",
		Short: "Fetch the seed and print the board the server would start with",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, filter, err := loadBoard(cmd, log, cfg)
			if err != nil {
				return err
			}
			return commands.Preview(cmd.Context(), cmd.OutOrStdout(), repo, filter)
		},
	}
}

func exportCmd(log *logger.Logger, cfg config.Taskboard) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Fetch the seed and export the board as json, csv or pdf",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, filter, err := loadBoard(cmd, log, cfg)
			if err != nil {
				return err
			}
			format, _ := cmd.Flags().GetString("format")
			out, _ := cmd.Flags().GetString("out")
			return commands.Export(cmd.Context(), cmd.OutOrStdout(), repo, filter, format, out)
		},
	}

	cmd.Flags().StringP("format", "f", "csv", "Output format (json, csv, pdf)")
	cmd.Flags().StringP("out", "o", "", "Output file, - for stdout (default tasks.<format>)")

	return cmd
}

func loadBoard(cmd *cobra.Command, log *logger.Logger, cfg config.Taskboard) (*tasksrepo.Repository, tasksrepo.QueryFilter, error) {
	flags := cmd.Flags()
	status, _ := flags.GetString("status")
	search, _ := flags.GetString("search")

	filter, err := commands.ParseFilter(status, search)
	if err != nil {
		return nil, filter, err
	}

	opts := cfg.Seed.Options
	opts.URL, _ = flags.GetString("seed-url")
	opts.Limit, _ = flags.GetInt("seed-limit")

	repo, err := commands.LoadBoard(cmd.Context(), log, todosource.New(opts, todosource.WithLogger(log)))
	if err != nil {
		return nil, filter, err
	}
	return repo, filter, nil
}
