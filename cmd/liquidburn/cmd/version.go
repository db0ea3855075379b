package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/celestiaorg/liquidburn/app"
)

// Version is set at build time with -ldflags "-X .../cmd.Version=...".
var Version = "dev"

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of " + app.Name,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(command.OutOrStdout(), "%s version %s\n", app.Name, Version)
			return err
		},
	}
}
