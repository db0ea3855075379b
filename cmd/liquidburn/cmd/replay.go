package cmd

import (
	dbm "github.com/cosmos/cosmos-db"
	"github.com/spf13/cobra"

	"github.com/celestiaorg/liquidburn/app"
)

func replayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replay [scenario.yaml]",
		Short: "Replay a scenario against a fresh in-memory node",
		Long: `Replay a scenario against a fresh in-memory node and print the outcome of
every group. The command fails at the first group whose expectations do not
hold.`,
		Args: cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			cc, err := getCommandContext(command)
			if err != nil {
				return err
			}

			scenario, err := app.LoadScenario(args[0])
			if err != nil {
				return err
			}
			opts, err := scenario.Options()
			if err != nil {
				return err
			}
			opts.ChainID = cc.config.ChainID

			a, err := app.New(cc.logger, dbm.NewMemDB(), opts)
			if err != nil {
				return err
			}
			defer a.Close()

			outcomes, replayErr := a.Replay(scenario)
			if err := printJSON(command.OutOrStdout(), outcomes); err != nil {
				return err
			}
			return replayErr
		},
	}
}
