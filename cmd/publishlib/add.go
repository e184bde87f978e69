package main

import (
	"fmt"

	"github.com/aretw0/publishlib"
	"github.com/aretw0/publishlib/pkg/core"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [a] [b]",
	Short: "Add two integers",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := core.ParseAddend(args[0])
		if err != nil {
			return fmt.Errorf("%q: %w", args[0], err)
		}
		b, err := core.ParseAddend(args[1])
		if err != nil {
			return fmt.Errorf("%q: %w", args[1], err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), publishlib.NewOperations().Add(a, b))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
