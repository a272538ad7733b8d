package main

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/jrazmi/taskboard/app/taskboard/config"
	"github.com/jrazmi/taskboard/app/taskboard/ui"
	"github.com/jrazmi/taskboard/bridge/repositories/tasksrepobridge"
	"github.com/jrazmi/taskboard/bridge/scaffolding/mid"
	"github.com/jrazmi/taskboard/core/repositories/tasksrepo"
	"github.com/jrazmi/taskboard/core/repositories/tasksrepo/stores/tasksmemstore"
	"github.com/jrazmi/taskboard/infrastructure/todosource"
	"github.com/jrazmi/taskboard/infrastructure/web"
	"github.com/jrazmi/taskboard/sdk/environment"
	"github.com/jrazmi/taskboard/sdk/logger"
	"github.com/jrazmi/taskboard/sdk/telemetry"
)

var build = "develop"
var appName = "TASKBOARD"

func main() {
	ctx := context.Background()

	if err := environment.LoadEnv(); err != nil {
		logger.NewDefault().ErrorContext(ctx, "startup", "err", err)
		os.Exit(1)
	}

	cfg, err := config.Load(appName)
	if err != nil {
		logger.NewDefault().ErrorContext(ctx, "startup", "err", err)
		os.Exit(1)
	}

	tel := telemetry.NewTelemetry()
	log := logger.New(cfg.Log,
		logger.WithService(appName),
		logger.WithTraceIDFn(tel.GetTraceID),
	)

	if err := run(ctx, log, tel, cfg); err != nil {
		log.ErrorContext(ctx, "startup", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logger.Logger, tel telemetry.Telemetry, cfg config.Taskboard) error {
	log.InfoContext(ctx, "startup", "GOMAXPROCS", runtime.GOMAXPROCS(0), "build", build)

	// REPOSITORIES //
	log.InfoContext(ctx, "startup", "status", "initializing task store")
	repo := tasksrepo.NewRepository(log, tasksmemstore.NewStore(log))
	// END REPOSITORIES //

	handler, err := webHandler(cfg, log, tel, repo)
	if err != nil {
		return fmt.Errorf("webhandler: %w", err)
	}

	server := web.NewWebServer(cfg.Server,
		web.WithHandler(handler),
		web.WithErrorLog(logger.NewStdLogger(log, slog.LevelError)),
	)

	serverErrors := make(chan error, 1)
	go func() {
		log.InfoContext(ctx, "startup", "status", "web server started", "host", server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	// The board is served empty until the seed lands.
	seedCtx, cancelSeed := context.WithCancel(ctx)
	defer cancelSeed()
	if cfg.Seed.Disabled {
		log.InfoContext(ctx, "seed", "status", "disabled")
	} else {
		go seedTasks(seedCtx, log, todosource.New(cfg.Seed.Options, todosource.WithLogger(log)), repo)
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.InfoContext(ctx, "shutdown", "status", "shutdown started", "signal", sig)
		defer log.InfoContext(ctx, "shutdown", "status", "shutdown complete", "signal", sig)

		cancelSeed()

		ctx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			server.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func webHandler(cfg config.Taskboard, log *logger.Logger, tel telemetry.Telemetry, repo *tasksrepo.Repository) (http.Handler, error) {

	// INITIALIZATION
	wh := web.NewWebHandler(cfg.Handler,
		web.WithLogging(log),
		web.WithTelemetry(tel),
		web.WithGlobalMiddleware(
			mid.Logger(log), // Request logging
			mid.Errors(log), // Error handling
			mid.Metrics(),   // Metrics collection
			mid.Panics(),    // Panic recovery
		),
	)

	// API
	// CORS is applied to the API group only; the board is same-origin.
	api := wh.Group(cfg.Server.ApiRoute, mid.APICORS(cfg.Handler.CORSOrigins...))
	api.Handle(http.MethodOptions, "/{path...}", func(ctx context.Context, r *http.Request) web.Encoder {
		return web.NewStatusResponse(http.StatusNoContent)
	})
	tasksrepobridge.AddHttpRoutes(api, tasksrepobridge.Config{Log: log, Repository: repo})

	// BOARD
	if err := ui.AddHandlers(wh, ui.Config{Log: log, Repository: repo, APIRoute: api.Prefix()}); err != nil {
		return nil, err
	}

	// MCP
	tasksrepobridge.AddMCPRoutes(wh, "/mcp", tasksrepobridge.Config{Log: log, Repository: repo}, build)

	// DEBUG
	wh.HandleRaw("GET /debug/vars", expvar.Handler())

	return wh, nil
}
