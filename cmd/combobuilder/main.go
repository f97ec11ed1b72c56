// Package main provides the entry point for the combobuilder CLI.
package main

import (
	"fmt"
	"os"

	"github.com/merchkit/combobuilder/internal/cli"
)

// Build information set via ldflags
var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	rootCmd := cli.NewRootCmd(version, commit, buildDate)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
