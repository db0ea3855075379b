package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"

	"github.com/celestiaorg/liquidburn/app"
	"github.com/celestiaorg/liquidburn/internal/bank"
)

const (
	flagOverwrite = "overwrite"
	flagFund      = "fund"
)

func initCmd() *cobra.Command {
	command := &cobra.Command{
		Use:   "init",
		Short: "Write config.toml and genesis.json to the home directory",
		Long: `Write config.toml and genesis.json to the home directory.

Genesis balances are given with --fund account=coins, for example
--fund admin=1000000utia --fund alice=500ubrn.`,
		Args: cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			cc, err := getCommandContext(command)
			if err != nil {
				return err
			}
			home := cc.config.Home()

			overwrite, err := command.Flags().GetBool(flagOverwrite)
			if err != nil {
				return err
			}
			if _, err := os.Stat(ConfigFile(home)); err == nil && !overwrite {
				return fmt.Errorf("%s already exists; use --%s to replace it", ConfigFile(home), flagOverwrite)
			}

			funds, err := command.Flags().GetStringArray(flagFund)
			if err != nil {
				return err
			}
			gs, err := genesisWithBalances(funds)
			if err != nil {
				return err
			}

			if err := WriteConfigFile(ConfigFile(home), cc.config); err != nil {
				return err
			}
			bz, err := json.MarshalIndent(gs, "", "  ")
			if err != nil {
				return err
			}
			if err := os.WriteFile(GenesisFile(home), bz, 0o644); err != nil {
				return err
			}
			if err := os.MkdirAll(DataDir(home), 0o755); err != nil {
				return err
			}

			cc.logger.Info("initialized home", "home", home, "chain_id", cc.config.ChainID)
			return nil
		},
	}
	command.Flags().Bool(flagOverwrite, false, "Replace an existing config and genesis")
	command.Flags().StringArray(flagFund, nil, "Genesis balance as account=coins (repeatable)")
	return command
}

func genesisWithBalances(funds []string) (app.GenesisState, error) {
	bankGenesis := bank.DefaultGenesis()
	for _, fund := range funds {
		ref, coinsStr, ok := strings.Cut(fund, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --%s %q: want account=coins", flagFund, fund)
		}
		addr, err := app.ResolveAccount(ref)
		if err != nil {
			return nil, err
		}
		coins, err := sdk.ParseCoinsNormalized(coinsStr)
		if err != nil {
			return nil, fmt.Errorf("invalid --%s %q: %w", flagFund, fund, err)
		}
		bankGenesis.Balances = append(bankGenesis.Balances, bank.Balance{Address: addr, Coins: coins})
	}
	if err := bankGenesis.Validate(); err != nil {
		return nil, err
	}

	bz, err := json.Marshal(bankGenesis)
	if err != nil {
		return nil, err
	}
	gs := app.NewDefaultGenesisState()
	gs[bank.ModuleName] = bz
	return gs, nil
}
