package main

import (
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "govdash",
		Short:         "Emission tracking admin dashboard",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to YAML config file (defaults to $GOVDASH_CONFIG_PATH)")

	cmd.AddCommand(
		newServeCommand(opts),
		newExportCommand(opts),
		newOperatorCommand(opts),
	)
	return cmd
}
