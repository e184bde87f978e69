package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aretw0/publishlib"
	"github.com/aretw0/publishlib/pkg/batch"
	"github.com/spf13/cobra"
)

var (
	runJSON     bool
	runFailFast bool
)

var errCallsFailed = errors.New("one or more calls failed")

var runCmd = &cobra.Command{
	Use:   "run [pattern...]",
	Short: "Run calls from YAML or JSON files",
	Long: `Run the calls listed in every file matching the given patterns.
Patterns support "**" for recursive matching, e.g. "calls/**/*.yaml".
Outputs one line per call by default, or a JSON array with --json.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		runner := publishlib.NewRunner(
			publishlib.WithLogger(slog.Default()),
			publishlib.WithFailFast(runFailFast),
		)

		all := []batch.FileResult{}
		var runErr error
		for _, pattern := range args {
			files, err := runner.RunGlob(cmd.Context(), pattern)
			all = append(all, files...)
			if err != nil {
				runErr = err
				break
			}
		}

		slog.Debug("run finished", "state", runner.State())

		if runJSON {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(all); err != nil {
				return fmt.Errorf("encoding JSON: %w", err)
			}
		} else {
			printResults(cmd, all)
		}

		if runErr != nil {
			return runErr
		}
		if state, ok := runner.State().(batch.RunnerState); ok && state.Failures > 0 {
			return fmt.Errorf("%w: %d of %d", errCallsFailed, state.Failures, state.CallsExecuted)
		}
		return nil
	},
}

func printResults(cmd *cobra.Command, files []batch.FileResult) {
	out := cmd.OutOrStdout()
	for _, f := range files {
		for _, r := range f.Results {
			if r.OK() {
				fmt.Fprintf(out, "%s:%d %s: %s\n", f.Path, r.Index, r.Op, r.Output)
			} else {
				fmt.Fprintf(out, "%s:%d %s: error: %v\n", f.Path, r.Index, r.Op, r.Err)
			}
		}
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&runJSON, "json", false, "Output in JSON format")
	runCmd.Flags().BoolVar(&runFailFast, "fail-fast", false, "Stop at the first failing call")
}
