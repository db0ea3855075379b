package cmd

import (
	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Export the committed state as genesis JSON",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			return withNode(command, func(n *node) error {
				gs, err := n.ExportGenesis()
				if err != nil {
					return err
				}
				return printJSON(command.OutOrStdout(), gs)
			})
		},
	}
}
