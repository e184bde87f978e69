package main

import (
	"fmt"

	"github.com/aretw0/publishlib"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Greet Gabriel and add 5 + 3",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd)
	},
}

func runDemo(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Testing greeting and operations from publishlib")

	greeter := publishlib.NewGreeting()
	hello, err := greeter.SayHello("Gabriel")
	if err != nil {
		return err
	}
	fmt.Fprintln(out, hello)

	ops := publishlib.NewOperations()
	fmt.Fprintf(out, "5 + 3 = %d\n", ops.Add(5, 3))
	return nil
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
