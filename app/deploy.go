package app

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/celestiaorg/liquidburn/x/liquidburn/types"
)

// DeployGroup returns the group that creates the ledger: the deployer
// initializes it with itself as admin and seeds the ledger account with a
// plain payment of seedAmount value units. The seed does not enter the
// reward pool.
func DeployGroup(deployer sdk.AccAddress, burnAsset string, seedAmount uint64) types.Group {
	steps := []types.Step{
		types.NewCallStep(deployer, types.InitializeCall{BurnAsset: burnAsset, Admin: deployer}),
	}
	if seedAmount > 0 {
		steps = append(steps, types.NewPaymentStep(deployer, types.ModuleAddress, seedAmount))
	}
	return types.NewGroup(steps...)
}

// Deploy delivers DeployGroup as the next block.
func (app *App) Deploy(deployer sdk.AccAddress, burnAsset string, seedAmount uint64) (*BlockResult, error) {
	return app.DeliverGroup(DeployGroup(deployer, burnAsset, seedAmount))
}
