package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/aretw0/publishlib"
)

// Exit codes.
const (
	exitFailure         = 1
	exitInvalidArgument = 2
)

func main() {
	Execute()
}

// fatal reports err against the command that produced it and exits.
func fatal(command string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", command, err)
	os.Exit(exitCode(err))
}

func exitCode(err error) int {
	if errors.Is(err, publishlib.ErrInvalidArgument) {
		return exitInvalidArgument
	}
	return exitFailure
}
