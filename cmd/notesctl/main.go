// Package main implements notesctl, a command-line client for the goodnotes backend.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"goodnotes/internal/client/bootstrap"
	"goodnotes/internal/client/config"
	"goodnotes/pkg/logger"
)

// Константы для сообщений об ошибках.
const (
	ErrLoadConfig      = "failed to load configuration"
	ErrInitLogger      = "failed to initialize logger"
	ErrCreateBackend   = "failed to create backend"
	ErrNothingToUpdate = "nothing to update: set at least one field flag"
)

var version = "dev"

// cli хранит флаги и зависимости команд.
type cli struct {
	envFile  string
	local    bool
	jsonOut  bool
	logLevel string

	out     io.Writer
	backend *bootstrap.Backend
	stores  bootstrap.Stores
}

func main() {
	if err := newRootCmd(&cli{}).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "notesctl",
		Short: "Command-line client for goodnotes meeting notes and action items",
		Long: `notesctl works with meeting notes and action items stored by the goodnotes backend.

Examples:
  # List today's notes
  notesctl notes today

  # Create a note with two action items
  notesctl notes create --title "Standup" --attendee ann --item "Write report" --item "Book room"

  # Toggle an action item
  notesctl items toggle 3f1c...

  # Work without a backend
  notesctl --local notes list`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd.Context())
		},
	}

	root.PersistentFlags().StringVar(&c.envFile, "env-file", config.DefaultEnvFile, "path to an optional .env file")
	root.PersistentFlags().BoolVar(&c.local, "local", false, "use the in-memory backend instead of the REST API")
	root.PersistentFlags().BoolVar(&c.jsonOut, "json", false, "print results as JSON")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "warn", "log level")

	root.AddCommand(newNotesCmd(c))
	root.AddCommand(newItemsCmd(c))
	return root
}

// setup загружает конфигурацию и собирает хранилища.
// Уже заданный backend (в тестах) не пересоздается.
func (c *cli) setup(ctx context.Context) error {
	if c.out == nil {
		c.out = os.Stdout
	}
	if ctx == nil {
		ctx = context.Background()
	}

	log, err := logger.NewLogger(logger.Development, c.logLevel)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrInitLogger, err)
	}
	logger.SetGlobalLogger(log)

	if c.backend == nil {
		cfg, err := config.Load(ctx, c.envFile)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrLoadConfig, err)
		}
		if c.local {
			cfg.API.Local = true
		}

		backend, err := bootstrap.NewBackend(ctx, &cfg.API, nil)
		if err != nil {
			log.Error(ctx, ErrCreateBackend, zap.Error(err))
			return fmt.Errorf("%s: %w", ErrCreateBackend, err)
		}
		c.backend = &backend
	}

	c.stores = bootstrap.NewStores(*c.backend)
	return nil
}
