package cmd

import (
	"context"
	"errors"

	"cosmossdk.io/log"
	"github.com/spf13/cobra"

	"github.com/celestiaorg/liquidburn/app"
)

const (
	FlagHome        = "home"
	FlagChainID     = "chain-id"
	FlagAuthority   = "authority"
	FlagRewardDenom = "reward-denom"
	FlagDBBackend   = "db-backend"
	FlagLogLevel    = "log-level"
)

type contextKey struct{}

// commandContext carries the loaded configuration to subcommands.
type commandContext struct {
	config Config
	logger log.Logger
}

// NewRootCmd creates a new root command for liquidburn.
func NewRootCmd() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:   app.Name,
		Short: "Pooled-reward burn ledger",
		Long:  "liquidburn runs a standalone burn-for-shares ledger: participants burn an asset for shares of a reward pool funded by an admin.",
		PersistentPreRunE: func(command *cobra.Command, _ []string) error {
			command.SetOut(command.OutOrStdout())
			command.SetErr(command.ErrOrStderr())

			home, err := command.Flags().GetString(FlagHome)
			if err != nil {
				return err
			}
			cfg, err := LoadConfig(home, command.Flags())
			if err != nil {
				return err
			}
			logger, err := newLogger(command.ErrOrStderr(), cfg.LogLevel)
			if err != nil {
				return err
			}

			ctx := command.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			command.SetContext(context.WithValue(ctx, contextKey{}, &commandContext{config: cfg, logger: logger}))
			return nil
		},
		SilenceUsage: true,
	}

	flags := rootCommand.PersistentFlags()
	flags.String(FlagHome, app.DefaultNodeHome, "Directory for config and data")
	flags.String(FlagChainID, "", "Chain identifier stamped on every block")
	flags.String(FlagAuthority, "", "Account allowed to initialize the ledger (name or bech32 address)")
	flags.String(FlagRewardDenom, "", "Denomination of the reward pool")
	flags.String(FlagDBBackend, "", "Database backend (goleveldb, memdb)")
	flags.String(FlagLogLevel, "", "Log level (trace, debug, info, warn, error)")

	rootCommand.AddCommand(
		initCmd(),
		deployCmd(),
		submitCmd(),
		replayCmd(),
		queryCmd(),
		exportCmd(),
		versionCmd(),
	)
	return rootCommand
}

func getCommandContext(command *cobra.Command) (*commandContext, error) {
	if ctx := command.Context(); ctx != nil {
		if cc, ok := ctx.Value(contextKey{}).(*commandContext); ok {
			return cc, nil
		}
	}
	return nil, errors.New("command context not initialized")
}
