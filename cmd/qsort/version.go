package main

import (
	"github.com/amp-labs/quicksort/build"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeYAMLValue(cmd.OutOrStdout(), build.Current())
		},
	}
}
