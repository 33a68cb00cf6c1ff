package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/azorch/cmd/azorch/handlers"
)

// Init returns the command that scaffolds a starter configuration.
//
// It writes config.yaml and .env.example with the built-in defaults so a
// new project resolves identically with or without them, then points at
// the dry-run flow.
func Init() *cobra.Command {
	var (
		outputPath string
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a starter config.yaml and .env.example",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.OutOrStdout(), outputPath, force)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path for the configuration file (default: config.yaml)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing files")

	return cmd
}
