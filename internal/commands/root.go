package commands

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tcruz/budgetbuddy/internal/adapter/notify"
	"github.com/tcruz/budgetbuddy/internal/adapter/repository/sqlite"
	"github.com/tcruz/budgetbuddy/internal/config"
	"github.com/tcruz/budgetbuddy/internal/domain"
	"github.com/tcruz/budgetbuddy/internal/log"
	"github.com/tcruz/budgetbuddy/internal/usecase/engine"
)

// app carries the wired-up collaborators shared by every subcommand
type app struct {
	cfg    *config.Config
	logger *log.Logger
	engine *engine.Engine

	closers []func() error
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "budgetbuddy",
		Short: "Gamified personal budget tracking",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.teardown(cmd)
		},
	}

	rootCmd.AddCommand(newTrackCommand(a))
	rootCmd.AddCommand(newImportCommand(a))
	rootCmd.AddCommand(newBudgetCommand(a))
	rootCmd.AddCommand(newGoalCommand(a))
	rootCmd.AddCommand(newDashboardCommand(a))

	return rootCmd
}

// setup loads config and wires store, notifier, and engine for the session's
// user. All mutations in one process invocation are serialized by nature of
// the CLI, which satisfies the engine's single-owner contract.
func (a *app) setup(cmd *cobra.Command) error {
	a.cfg = config.Load()
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	a.logger = log.New(log.Config{
		Level:     parseLevel(a.cfg.LogLevel),
		Component: "cli",
	})

	store, err := sqlite.NewStore(a.cfg.SQLiteDBPath)
	if err != nil {
		return err
	}
	a.closers = append(a.closers, store.Close)

	var notifier domain.Notifier
	if a.cfg.AMQPURL != "" {
		amqpNotifier, err := notify.NewAMQPNotifier(a.cfg.AMQPURL, a.cfg.AMQPExchange, a.cfg.AMQPQueue)
		if err != nil {
			return err
		}
		a.closers = append(a.closers, amqpNotifier.Close)
		notifier = amqpNotifier
	} else {
		notifier = notify.NewLogNotifier(a.logger)
	}

	seed := config.DefaultSeed()
	if a.cfg.BudgetsFile != "" {
		if seed, err = config.LoadSeed(a.cfg.BudgetsFile); err != nil {
			return err
		}
	}

	a.engine, err = engine.New(cmd.Context(), a.cfg.UserID, store, notifier, seed, a.logger)
	return err
}

func (a *app) teardown(*cobra.Command) error {
	var firstErr error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// warnIfStale prints a persistence warning without failing the command:
// the mutation took effect in memory but the durable copy is stale.
func warnIfStale(cmd *cobra.Command, err error) error {
	if err == nil {
		return nil
	}
	if domain.IsPersistenceWarning(err) {
		cmd.PrintErrf("warning: %v\n", err)
		return nil
	}
	return err
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
