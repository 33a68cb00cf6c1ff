// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command
// definitions in the commands package. Handlers are framework-agnostic and
// can be tested independently of the CLI framework.
package handlers

import (
	"context"
	"fmt"
	"io"

	"github.com/imamik/azorch/internal/azdenv"
	"github.com/imamik/azorch/internal/bicep"
	"github.com/imamik/azorch/internal/config"
	"github.com/imamik/azorch/internal/toolcheck"
)

// RunOptions carries the CLI inputs for one orchestrator session.
type RunOptions struct {
	Overrides config.Overrides

	// ConfigPath is the structured YAML file; empty means config.yaml.
	ConfigPath string

	// EnvFile is the dotenv file; empty means .env, then .env.example.
	EnvFile string
}

// Outcome summarizes what a run did and which advisory checks failed.
// Failures here never abort the run or change the exit status; callers
// decide whether to escalate.
type Outcome struct {
	// Action is the dispatched action: dry-run, what-if, apply, destroy or
	// report.
	Action string

	// MissingTools counts required tools that did not respond.
	MissingTools int

	// InvalidFiles counts infrastructure files that failed validation.
	InvalidFiles int
}

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// resolveConfig merges the configuration layers.
	resolveConfig = config.Resolve

	// checkTools probes the external tooling.
	checkTools = toolcheck.Check

	// validateInfra validates the infrastructure definition directory.
	validateInfra = bicep.ValidateDir

	// azdGetValues reads the current azd environment.
	azdGetValues = azdenv.GetValues

	// azdSetValue writes one key into the azd environment.
	azdSetValue = azdenv.Set
)

// Run resolves the session configuration, prints it, and dispatches the
// requested action. When several action flags are set exactly one runs,
// first match wins: dry-run, what-if, apply, destroy, then plain report.
//
// Run never fails for advisory reasons; the returned Outcome carries the
// failed-check counts.
func Run(_ context.Context, w io.Writer, opts RunOptions) (*Outcome, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = config.DefaultEnvFile()
	}
	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = config.DefaultConfigFile
	}

	cfg := resolveConfig(opts.Overrides, envFile, configPath, config.StandardDefaults())

	printConfig(w, cfg)

	outcome := &Outcome{}
	switch {
	case cfg.DryRun:
		outcome.Action = "dry-run"
		fmt.Fprintf(w, "Running in DRY-RUN mode - no changes will be made\n\n")
		runChecks(w, outcome, cfg)
	case cfg.WhatIf:
		outcome.Action = "what-if"
		fmt.Fprintf(w, "Running in WHAT-IF mode - previewing changes\n\n")
		runChecks(w, outcome, cfg)
		fmt.Fprintln(w, "Note: actual what-if analysis requires Azure provisioning (not yet implemented)")
	case cfg.Apply:
		outcome.Action = "apply"
		fmt.Fprintln(w, "APPLY mode requested")
		fmt.Fprintln(w, "Note: actual provisioning not yet implemented (configuration and validation only)")
	case cfg.Destroy:
		outcome.Action = "destroy"
		fmt.Fprintln(w, "DESTROY mode requested")
		fmt.Fprintln(w, "Note: actual resource destruction not yet implemented (configuration and validation only)")
	default:
		outcome.Action = "report"
	}

	return outcome, nil
}

// runChecks performs the tool and infrastructure validation shared by the
// dry-run and what-if paths, recording failures in the outcome.
func runChecks(w io.Writer, outcome *Outcome, cfg config.Config) {
	tools := checkTools(toolcheck.AllTools())
	printToolReport(w, tools)
	outcome.MissingTools = len(tools.MissingRequired())

	report := validateInfra(bicep.DefaultDir)
	printBicepReport(w, report)
	outcome.InvalidFiles = report.InvalidCount()

	printAzdEnv(w, cfg.EnvName, azdGetValues(cfg.EnvName))
}
