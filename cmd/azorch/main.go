// Package main is the entry point for the azorch CLI.
//
// azorch is a command-line orchestrator for Azure infrastructure sessions.
// It resolves a single merged configuration from command-line flags,
// environment variables, config.yaml and built-in defaults, derives the
// flat provisioning parameter set from it, and validates the external
// tooling and Bicep definitions a deployment depends on.
//
// Validation failures are advisory: they are reported in full but never
// change the process exit status.
//
// For detailed usage information, run:
//
//	azorch --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/azorch/cmd/azorch/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
