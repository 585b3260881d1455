package main

import (
	"context"
	"expvar"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/rsalas/taskdeck/app/taskdeck/config"
	"github.com/rsalas/taskdeck/bridge/repositories/tagsrepobridge"
	"github.com/rsalas/taskdeck/bridge/repositories/tasksrepobridge"
	"github.com/rsalas/taskdeck/bridge/repositories/usersrepobridge"
	"github.com/rsalas/taskdeck/bridge/scaffolding/checks"
	"github.com/rsalas/taskdeck/bridge/scaffolding/mid"
	"github.com/rsalas/taskdeck/core/repositories/tagsrepo"
	"github.com/rsalas/taskdeck/core/repositories/tagsrepo/stores/tagspgxstore"
	"github.com/rsalas/taskdeck/core/repositories/tasksrepo"
	"github.com/rsalas/taskdeck/core/repositories/tasksrepo/stores/taskspgxstore"
	"github.com/rsalas/taskdeck/core/repositories/usersrepo"
	"github.com/rsalas/taskdeck/core/repositories/usersrepo/stores/userspgxstore"
	"github.com/rsalas/taskdeck/infrastructure/postgresdb"
	"github.com/rsalas/taskdeck/infrastructure/web"
	"github.com/rsalas/taskdeck/sdk/environment"
	"github.com/rsalas/taskdeck/sdk/logger"
	"github.com/rsalas/taskdeck/sdk/telemetry"
	"github.com/rsalas/taskdeck/sdk/tokens"
)

var build = "develop"

const appName = "TASKDECK"

func main() {
	environment.LoadEnv()
	ctx := context.Background()

	log, err := logger.NewFromEnv(appName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %s\n", err)
		os.Exit(1)
	}

	if err := run(ctx, log); err != nil {
		log.ErrorContext(ctx, "startup", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logger.Logger) error {
	log.InfoContext(ctx, "startup", "GOMAXPROCS", runtime.GOMAXPROCS(0), "build", build)
	expvar.NewString("build").Set(build)

	pool, err := postgresdb.NewFromEnv(appName)
	if err != nil {
		return fmt.Errorf("configuring postgres support: %w", err)
	}
	defer func() {
		log.InfoContext(ctx, "shutdown", "status", "closing database connection")
		pool.Close()
	}()

	log.InfoContext(ctx, "startup", "status", "initializing repository support")

	tkn, err := tokens.NewFromEnv(appName)
	if err != nil {
		return fmt.Errorf("configuring token support: %w", err)
	}

	cfg := config.TaskDeck{
		Build:  build,
		Logger: log,
		Repositories: config.Repositories{
			Tasks: tasksrepo.NewRepository(log, taskspgxstore.NewStore(log, pool)),
			Tags:  tagsrepo.NewRepository(log, tagspgxstore.NewStore(log, pool)),
			Users: usersrepo.NewRepository(log, userspgxstore.NewStore(log, pool)),
		},
		Tokens:    tkn,
		Telemetry: telemetry.NewTelemetry(),
		Pool:      pool,
	}

	handler, err := webHandler(cfg)
	if err != nil {
		return fmt.Errorf("webhandler: %w", err)
	}

	server, err := web.NewServerFromEnv(appName,
		web.WithHandler(handler),
		web.WithErrorLog(logger.NewStdLogger(log, logger.LevelError)),
	)
	if err != nil {
		return fmt.Errorf("webserver: %w", err)
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.InfoContext(ctx, "startup", "status", "api router started", "host", server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.InfoContext(ctx, "shutdown", "status", "shutdown started", "signal", sig)
		defer log.InfoContext(ctx, "shutdown", "status", "shutdown complete", "signal", sig)

		ctx, cancel := context.WithTimeout(ctx, server.Config.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			server.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func webHandler(cfg config.TaskDeck) (http.Handler, error) {
	handler, err := web.NewWebHandlerFromEnv(appName,
		web.WithLogging(cfg.Logger.Logger),
		web.WithTelemetry(cfg.Telemetry),
		web.WithGlobalMiddleware(
			mid.Logger(cfg.Logger),
			mid.Errors(cfg.Logger),
			mid.Metrics(),
			mid.Panics(),
		),
	)
	if err != nil {
		return nil, err
	}

	api := handler.Group("/api/v1")

	checks.AddHttpRoutes(api, checks.Config{
		Build: cfg.Build,
		Log:   cfg.Logger,
		Pool:  cfg.Pool,
	})

	usersrepobridge.AddHttpRoutes(api, usersrepobridge.Config{
		Log:        cfg.Logger,
		Repository: cfg.Repositories.Users,
		Tokens:     cfg.Tokens,
	})

	authenticated := []web.Middleware{mid.Authenticate(cfg.Tokens)}

	tasksrepobridge.AddHttpRoutes(api, tasksrepobridge.Config{
		Log:        cfg.Logger,
		Repository: cfg.Repositories.Tasks,
		Middleware: authenticated,
	})

	tagsrepobridge.AddHttpRoutes(api, tagsrepobridge.Config{
		Log:        cfg.Logger,
		Repository: cfg.Repositories.Tags,
		Middleware: authenticated,
	})

	return handler, nil
}
