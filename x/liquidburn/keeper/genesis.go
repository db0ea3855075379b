package keeper

import (
	"context"
	"errors"

	"github.com/celestiaorg/liquidburn/x/liquidburn/types"
)

// InitGenesis writes gs to the store. A genesis state without a ledger
// leaves the module uninitialized.
func (k *Keeper) InitGenesis(ctx context.Context, gs *types.GenesisState) error {
	if gs == nil {
		return nil
	}
	if err := gs.Validate(); err != nil {
		return err
	}
	if gs.Ledger == nil {
		return nil
	}
	if err := types.ValidateBurnAsset(gs.Ledger.BurnAsset, k.rewardDenom); err != nil {
		return types.ErrInvalidGenesis.Wrap(err.Error())
	}

	if err := k.setLedger(ctx, *gs.Ledger); err != nil {
		return err
	}
	for _, record := range gs.Shares {
		if err := k.shares.Set(ctx, record.Address, record.Shares); err != nil {
			return err
		}
	}
	return nil
}

// ExportGenesis returns the current ledger state. Share records are ordered
// by address.
func (k *Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	ledger, err := k.GetLedger(ctx)
	if errors.Is(err, types.ErrNotInitialized) {
		return types.DefaultGenesis(), nil
	}
	if err != nil {
		return nil, err
	}

	shares, err := k.Participants(ctx)
	if err != nil {
		return nil, err
	}
	return types.NewGenesisState(&ledger, shares), nil
}
