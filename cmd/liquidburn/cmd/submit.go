package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/celestiaorg/liquidburn/app"
)

func submitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "submit [group.yaml]",
		Short: "Deliver one atomic group from a YAML file as the next block",
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			cc, err := getCommandContext(command)
			if err != nil {
				return err
			}

			bz, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var spec app.GroupSpec
			if err := yaml.UnmarshalStrict(bz, &spec); err != nil {
				return fmt.Errorf("failed to parse %s: %w", args[0], err)
			}
			group, err := spec.Group()
			if err != nil {
				return err
			}

			n, err := openNode(cc)
			if err != nil {
				return err
			}
			defer n.Close()

			result, err := n.DeliverGroup(group)
			if err != nil {
				return err
			}
			return printJSON(command.OutOrStdout(), result)
		},
	}
}
