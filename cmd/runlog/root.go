package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/raphi011/runlog/internal/config"
	"github.com/raphi011/runlog/internal/lock"
	"github.com/raphi011/runlog/internal/log"
	"github.com/raphi011/runlog/internal/output"
	"github.com/raphi011/runlog/internal/storage"
	"github.com/raphi011/runlog/internal/tui"
	"github.com/raphi011/runlog/internal/ui/styles"
)

// errNoTerminal is returned when the session is started without a TTY.
var errNoTerminal = errors.New("runlog needs an interactive terminal")

// Command group IDs for organizing help output
const (
	GroupConfig = "config"
)

// newRootCmd builds the command tree. Without a subcommand it starts the session.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runlog",
		Short: "Log runs and track your daily streak",
		Long: `runlog is a terminal app for logging runs.

It keeps every run in a local SQLite database and shows your current and
longest streak of days with at least one mile, progress toward running on
365 days this year, and weekly, monthly and yearly totals.`,
		Args:                       cobra.NoArgs,
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd.Context())
		},
	}

	cmd.Version = versionString()
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.AddGroup(&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"})

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// runSession wires config, theme, lock, logger and store, then runs the TUI.
func runSession(ctx context.Context) error {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return errNoTerminal
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	styles.Init(cfg.Theme)

	dir, err := storage.DataDir(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("data directory: %w", err)
	}

	fl := lock.New(dir)
	if err := fl.TryLock(); err != nil {
		return err
	}
	defer fl.Unlock()

	logger, err := log.Open(dir, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Close()
	ctx = log.WithLogger(ctx, logger)

	dbPath := storage.DBPath(dir)
	store, err := storage.Open(ctx, dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	logger.Info("session started", "version", version, "db", dbPath)
	defer logger.Info("session ended")

	return tui.Run(ctx, store, tui.Options{
		DataDir: dir,
		DBPath:  dbPath,
	})
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	// Add output printer (stdout for primary data)
	ctx = output.WithPrinter(ctx, os.Stdout)

	rootCmd := newRootCmd()
	rootCmd.SetContext(ctx)

	err := rootCmd.Execute()
	cancel()
	if err != nil {
		fmt.Fprintln(os.Stderr, "runlog:", err)
		os.Exit(1)
	}
}
