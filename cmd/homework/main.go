package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
	"github.com/tulikamejora/homework-help/internal/cli"
	"github.com/tulikamejora/homework-help/internal/config"
	"github.com/tulikamejora/homework-help/internal/db"
	"github.com/tulikamejora/homework-help/internal/generation"
	"github.com/tulikamejora/homework-help/internal/history"
	"github.com/tulikamejora/homework-help/internal/logging"
	"github.com/tulikamejora/homework-help/internal/repository"
	"github.com/tulikamejora/homework-help/internal/service"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v; using defaults\n", err)
	}

	// The logger is built before cobra parses flags, so look for --verbose
	// up front. Unknown flags are left for cobra to report.
	early := pflag.NewFlagSet("homework", pflag.ContinueOnError)
	early.ParseErrorsWhitelist.UnknownFlags = true
	early.Usage = func() {}
	verbose := early.BoolP("verbose", "v", false, "")
	_ = early.Parse(os.Args[1:])

	log := logging.NewOrNop(cfg.Log, *verbose, os.Stderr)
	defer func() { _ = log.Sync() }()

	// Wire history storage: SQLite slot, or process memory when disabled.
	var storage history.Storage
	if cfg.Persist {
		database, err := db.OpenDB(cfg.DBPath)
		if err != nil {
			// History still works for this run, just not across runs.
			log.Warn("history persistence unavailable", zap.String("db", cfg.DBPath), zap.Error(err))
		} else {
			defer database.Close()
			storage = repository.NewSlotStorage(repository.NewSQLiteSlotRepo(database), repository.HistorySlot)
		}
	}
	store := history.NewStore(storage,
		history.WithCapacity(cfg.HistoryLimit),
		history.WithLogger(log.Named("history")),
	)

	// Wire generation and services
	observer := generation.NewZapObserver(log.Named("generation"))
	homeworkLog := log.Named("service")

	app := &cli.App{
		Homework:  service.NewHomeworkService(generation.NewGenerator(cfg.GenerationDelay(), observer), store, homeworkLog),
		Instant:   service.NewHomeworkService(generation.NewGenerator(0, observer), store, homeworkLog),
		History:   service.NewHistoryService(store, homeworkLog),
		ExportDir: cfg.ExportDir,
		Logger:    log,
	}

	// Detect interactive terminal for the TUI entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(ctx)
}
