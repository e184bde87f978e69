package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/publishlib"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of publishlib",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "publishlib version %s\n", strings.TrimSpace(publishlib.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
