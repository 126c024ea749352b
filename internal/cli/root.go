package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/tetris-go/internal/factory"
)

var (
	cfg *Config
	app *factory.App
)

// errEphemeralStorage is returned when a session command would run against
// storage that does not outlive the process
var errEphemeralStorage = errors.New("session commands need persistent storage: use --storage redis")

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()
	app = nil

	rootCmd := &cobra.Command{
		Use:   "tetris",
		Short: "CLI tool for the tetris playfield core",
		Long: `tetris is a CLI tool for exercising the tetris playfield core.

It can test cells for collisions against an ad-hoc playfield, print spawn
shapes, and drive sessions persisted in Redis across invocations.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Output != "text" && cfg.Output != "json" {
				return fmt.Errorf("invalid output format %q: must be text or json", cfg.Output)
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if app == nil {
				return nil
			}
			err := app.Close()
			app = nil
			return err
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.StorageType, "storage", cfg.StorageType, "Session storage: redis (env: TETRIS_STORAGE)")
	rootCmd.PersistentFlags().StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL (env: TETRIS_REDIS_URL)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newCollideCmd())
	rootCmd.AddCommand(newSpawnShapeCmd())
	rootCmd.AddCommand(newSessionCmd())

	return rootCmd
}

// getApp wires the application on first use. Commands that never touch
// sessions do not need a storage connection. Each invocation is its own
// process, so in-memory storage would lose every session on exit.
func getApp(cmd *cobra.Command) (*factory.App, error) {
	if app != nil {
		return app, nil
	}
	if cfg.StorageType == factory.StorageTypeMemory {
		return nil, errEphemeralStorage
	}
	a, err := factory.New(cfg.FactoryConfig(cfg.Logger(cmd.ErrOrStderr())))
	if err != nil {
		return nil, fmt.Errorf("failed to open %s storage: %w", cfg.StorageType, err)
	}
	app = a
	return app, nil
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
