package main

import (
	"fmt"

	"github.com/aretw0/publishlib"
	"github.com/spf13/cobra"
)

var (
	timeOfDay string
)

var helloCmd = &cobra.Command{
	Use:   "hello [name]",
	Short: "Say hello to someone",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		msg, err := publishlib.NewGreeting().SayHello(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	},
}

var goodbyeCmd = &cobra.Command{
	Use:   "goodbye [name]",
	Short: "Say goodbye to someone",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		msg, err := publishlib.NewGreeting().SayGoodbye(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	},
}

var greetCmd = &cobra.Command{
	Use:   "greet [name]",
	Short: "Greet someone for a time of day",
	Long:  `Greet someone with "Good <time>, <name>!". The time is one of morning, afternoon or evening (case-insensitive).`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		msg, err := publishlib.NewGreeting().GreetingWithTime(args[0], timeOfDay)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(helloCmd)
	rootCmd.AddCommand(goodbyeCmd)
	rootCmd.AddCommand(greetCmd)
	greetCmd.Flags().StringVarP(&timeOfDay, "time", "t", "morning", "Time of day (morning, afternoon, evening)")
}
