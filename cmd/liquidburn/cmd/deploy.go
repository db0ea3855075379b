package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/celestiaorg/liquidburn/app"
	"github.com/celestiaorg/liquidburn/pkg/appconsts"
)

// Environment variables read by deploy.
const (
	EnvBurnAssetID = "LIQUID_BURN_ASSET_ID"
	EnvDeployer    = "DEPLOYER"
	EnvSeedAmount  = "LIQUID_BURN_SEED_AMOUNT"
)

const (
	flagEnvFile    = "env-file"
	flagBurnAsset  = "burn-asset"
	flagSeedAmount = "seed-amount"
)

func deployCmd() *cobra.Command {
	command := &cobra.Command{
		Use:   "deploy",
		Short: "Initialize the ledger and seed its account",
		Long: fmt.Sprintf(`Initialize the ledger with the deployer as admin and seed the ledger account
with a plain payment.

Settings not given as flags are read from the environment, after loading the
optional --%s file: %s (burn asset denom), %s (deployer account, defaults to
the configured authority) and %s (seed payment, defaults to %d).`,
			flagEnvFile, EnvBurnAssetID, EnvDeployer, EnvSeedAmount, appconsts.DefaultSeedAmount),
		Args: cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			cc, err := getCommandContext(command)
			if err != nil {
				return err
			}
			if err := loadEnvFile(command); err != nil {
				return err
			}

			burnAsset, err := command.Flags().GetString(flagBurnAsset)
			if err != nil {
				return err
			}
			if burnAsset == "" {
				burnAsset = os.Getenv(EnvBurnAssetID)
			}
			if burnAsset == "" {
				return fmt.Errorf("burn asset is required: set --%s or %s", flagBurnAsset, EnvBurnAssetID)
			}

			deployerRef := os.Getenv(EnvDeployer)
			if deployerRef == "" {
				deployerRef = cc.config.Authority
			}
			deployer, err := app.ResolveAccount(deployerRef)
			if err != nil {
				return fmt.Errorf("deployer: %w", err)
			}

			seed, err := seedAmount(command)
			if err != nil {
				return err
			}

			n, err := openNode(cc)
			if err != nil {
				return err
			}
			defer n.Close()

			result, err := n.Deploy(deployer, burnAsset, seed)
			if err != nil {
				return err
			}
			cc.logger.Info("deployed ledger", "burn_asset", burnAsset, "admin", deployer.String(), "height", result.Height)
			return printJSON(command.OutOrStdout(), result)
		},
	}
	command.Flags().String(flagEnvFile, ".env", "Environment file to load before reading deploy settings")
	command.Flags().String(flagBurnAsset, "", "Denom of the asset that is burned for shares")
	command.Flags().Uint64(flagSeedAmount, appconsts.DefaultSeedAmount, "Value units paid to the ledger account on deploy")
	return command
}

// loadEnvFile loads the --env-file. A missing default file is ignored.
func loadEnvFile(command *cobra.Command) error {
	path, err := command.Flags().GetString(flagEnvFile)
	if err != nil {
		return err
	}
	err = godotenv.Load(path)
	if err == nil {
		return nil
	}
	if errors.Is(err, os.ErrNotExist) && !command.Flags().Changed(flagEnvFile) {
		return nil
	}
	return fmt.Errorf("failed to load %s: %w", path, err)
}

func seedAmount(command *cobra.Command) (uint64, error) {
	if command.Flags().Changed(flagSeedAmount) {
		return command.Flags().GetUint64(flagSeedAmount)
	}
	raw, ok := os.LookupEnv(EnvSeedAmount)
	if !ok || raw == "" {
		return appconsts.DefaultSeedAmount, nil
	}
	seed, err := cast.ToUint64E(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", EnvSeedAmount, err)
	}
	return seed, nil
}
