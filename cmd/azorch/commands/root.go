// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing and flag binding. Command execution is delegated to handler
// functions in the handlers package.
package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/imamik/azorch/cmd/azorch/handlers"
	"github.com/imamik/azorch/internal/config"
)

// Root returns the root command for the azorch CLI.
//
// The root command carries the orchestrator's action and configuration
// flags itself, so the everyday invocation stays flat:
//
//	azorch --dry-run --location westus2 --set modelName=gpt-4
//
// Actions are mutually triggerable; when several are requested the
// dispatcher runs exactly one, in priority order dry-run, what-if, apply,
// destroy. Every path exits zero: tool and file validation failures are
// reported, not escalated.
func Root() *cobra.Command {
	var (
		overrides     config.Overrides
		showResources bool
		configPath    string
		envFile       string
	)

	cmd := &cobra.Command{
		Use:   "azorch",
		Short: "Resolve configuration and orchestrate Azure infrastructure actions",
		Long: `azorch resolves a single session configuration from command-line flags,
environment variables, config.yaml and built-in defaults, then drives
validation of the external tooling and Bicep definitions that
provisioning depends on.

Examples:
  # Show the resolved configuration
  azorch

  # Dry run with tool and Bicep checks
  azorch --dry-run

  # Preview changes for another region
  azorch --what-if --location westus

  # Request an apply for prod with custom parameters
  azorch --apply --env prod --set modelName=gpt-4 --set capacity=10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := handlers.Run(cmd.Context(), cmd.OutOrStdout(), handlers.RunOptions{
				Overrides:  overrides,
				ConfigPath: configPath,
				EnvFile:    envFile,
			})
			return err
		},
	}

	// Action flags.
	cmd.Flags().BoolVar(&overrides.DryRun, "dry-run", false, "Validate configuration and check tools without making changes")
	cmd.Flags().BoolVar(&overrides.WhatIf, "what-if", false, "Preview what changes would be made without applying them")
	cmd.Flags().BoolVar(&overrides.Apply, "apply", false, "Apply infrastructure changes")
	cmd.Flags().BoolVar(&overrides.Destroy, "destroy", false, "Destroy infrastructure resources")

	// Configuration flags. --resources is display-only: the resources
	// section is part of every report, the flag is kept for compatibility.
	cmd.Flags().BoolVar(&showResources, "resources", false, "Show available resources")
	cmd.Flags().StringVar(&overrides.Profile, "profile", "", "Configuration profile to use")
	cmd.Flags().StringVar(&overrides.EnvName, "env", "", "Environment name (e.g. dev, staging, prod)")
	cmd.Flags().StringVar(&overrides.Location, "location", "", "Azure region for resources")
	cmd.Flags().StringVar(&overrides.Subscription, "subscription", "", "Azure subscription ID")
	cmd.Flags().StringArrayVar(&overrides.Set, "set", nil, "Set additional parameters as KEY=VALUE (repeatable)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to structured configuration file (default: config.yaml)")
	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to dotenv file (default: .env, then .env.example)")

	cmd.AddCommand(Init())
	cmd.AddCommand(Env())
	cmd.AddCommand(Version())

	cmd.SetOut(os.Stdout)

	return cmd
}
