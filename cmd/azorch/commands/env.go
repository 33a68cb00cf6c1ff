package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/azorch/cmd/azorch/handlers"
)

// Env returns the command group that bridges values into and out of azd
// environments. All subcommands degrade gracefully when the azd CLI is
// missing.
func Env() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "env",
		Short: "Inspect and update azd environment values",
	}

	cmd.AddCommand(envList())
	cmd.AddCommand(envSet())

	return cmd
}

func envList() *cobra.Command {
	var envName string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List values stored in the azd environment",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			handlers.EnvList(cmd.OutOrStdout(), envName)
		},
	}

	cmd.Flags().StringVarP(&envName, "environment", "e", "", "azd environment name (default: current)")

	return cmd
}

func envSet() *cobra.Command {
	var envName string

	cmd := &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a value in the azd environment",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.EnvSet(cmd.OutOrStdout(), args[0], args[1], envName)
		},
	}

	cmd.Flags().StringVarP(&envName, "environment", "e", "", "azd environment name (default: current)")

	return cmd
}
