// Package main is the entry point for the voice-cost CLI.
package main

import (
	"os"

	"voice-cost/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
