// Command tooling runs operational commands against the database.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rsalas/taskdeck/infrastructure/postgresdb"
	"github.com/rsalas/taskdeck/sdk/environment"
	"github.com/rsalas/taskdeck/sdk/logger"
)

var build = "develop"

const appName = "TASKDECK"

func main() {
	environment.LoadEnv()

	log, err := logger.NewFromEnv(appName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %s\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	if err := run(ctx, log); err != nil {
		log.ErrorContext(ctx, "tooling", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logger.Logger) error {
	log.InfoContext(ctx, "startup", "GOMAXPROCS", runtime.GOMAXPROCS(0), "build", build)

	var command string
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	if command == "help" || command == "--help" || command == "-h" {
		printHelp()
		return nil
	}

	pg, err := postgresdb.NewFromEnv(appName, postgresdb.WithTracer(postgresdb.NewLoggingQueryTracer(log.Logger)))
	if err != nil {
		return fmt.Errorf("configuring postgres support: %w", err)
	}
	defer func() {
		log.InfoContext(ctx, "shutdown", "status", "closing database connection")
		pg.Close()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan error, 1)
	go func() {
		done <- processCommands(ctx, log, command, pg)
	}()

	select {
	case err := <-done:
		return err

	case sig := <-shutdown:
		log.InfoContext(ctx, "shutdown", "status", "shutdown started", "signal", sig)

		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		select {
		case err := <-done:
			return err
		case <-shutdownCtx.Done():
			return fmt.Errorf("shutdown timeout: %w", shutdownCtx.Err())
		}
	}
}

func processCommands(ctx context.Context, log *logger.Logger, command string, pg *pgxpool.Pool) error {
	switch command {
	case "migrate":
		log.InfoContext(ctx, "running migration")
		if err := postgresdb.Migrate(ctx, pg); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		log.InfoContext(ctx, "migration completed successfully")
		return nil

	default:
		printHelp()
		return nil
	}
}

func printHelp() {
	fmt.Println("Available commands:")
	fmt.Println("  migrate - apply pending schema migrations to the database")
}
