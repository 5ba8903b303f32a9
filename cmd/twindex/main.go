// Package main provides the twindex CLI tool for building and inspecting
// Tailwind utility-class indexes.
package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes at the process boundary: 0 success, 2 invalid or missing
// required inputs, 1 any other failure.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// usageError marks a failure caused by invalid or missing required inputs,
// detected before any work begins.
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

func usageErrorf(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "twindex: %v\n", err)

		var ue *usageError
		if errors.As(err, &ue) {
			os.Exit(exitUsage)
		}
		os.Exit(exitFailure)
	}
	os.Exit(exitOK)
}
