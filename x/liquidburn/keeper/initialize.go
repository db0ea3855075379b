package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/celestiaorg/liquidburn/x/liquidburn/types"
)

// Initialize creates the ledger with the given burn asset and admin. It can
// only be called once and only by the keeper's authority.
func (k *Keeper) Initialize(ctx context.Context, creator sdk.AccAddress, burnAsset string, admin sdk.AccAddress) error {
	existing, err := k.ledger.Get(ctx)
	switch {
	case err == nil && existing.Initialized:
		return types.ErrAlreadyInitialized
	case err != nil && !errors.Is(err, collections.ErrNotFound):
		return err
	}

	if !creator.Equals(k.authority) {
		return types.ErrUnauthorized.Wrap("only creator can initialize")
	}
	if len(admin) == 0 {
		return types.ErrInvalidAddress.Wrap("admin cannot be empty")
	}
	if err := types.ValidateBurnAsset(burnAsset, k.rewardDenom); err != nil {
		return err
	}

	ledger := types.NewLedger(burnAsset, admin)
	err = k.atomically(ctx, func(ctx sdk.Context) error {
		if err := k.setLedger(ctx, ledger); err != nil {
			return err
		}
		ctx.EventManager().EmitEvent(types.NewInitializeEvent(burnAsset, admin))
		return nil
	})
	if err != nil {
		return err
	}

	k.Logger(ctx).Info("ledger initialized", "burn_asset", burnAsset, "admin", admin.String())
	return nil
}
