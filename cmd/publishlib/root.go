package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose bool
)

// rootCmd runs the demo when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "publishlib",
	Short: "Greeting and arithmetic demonstration library",
	Long: `publishlib formats greetings and adds integers.
Run without arguments to see a short demonstration, or use the subcommands
to call each operation directly or in batches from YAML/JSON files.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if cmd, err := rootCmd.ExecuteC(); err != nil {
		fatal(cmd.CommandPath(), err)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}
