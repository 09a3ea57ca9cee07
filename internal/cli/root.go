package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/connectfour/internal/factory"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg := DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "connectfour",
		Short: "Play Connect Four in the terminal",
		Long: `connectfour plays a game of Connect Four on the console.

Choose between playing against the computer or against another person at
the same keyboard. Players take turns typing a column number (0-6); the
first to connect four tokens in a row, column or diagonal wins.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := cfg.Level()
			if err != nil {
				return err
			}
			seed, err := cfg.ParsedSeed()
			if err != nil {
				return err
			}

			logger := newLogger(cmd.ErrOrStderr(), level, cfg.NoColor)

			app, err := factory.New(factory.Config{
				Input:  cmd.InOrStdin(),
				Output: cmd.OutOrStdout(),
				Seed:   seed,
				Logger: logger,
			})
			if err != nil {
				return err
			}

			_, err = app.GameController.Run()
			return err
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.Seed, "seed", cfg.Seed, "Random seed for the computer player, 0 for random (env: CONNECTFOUR_SEED)")
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error (env: CONNECTFOUR_LOG_LEVEL)")
	rootCmd.PersistentFlags().BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable colored log output (env: NO_COLOR)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
