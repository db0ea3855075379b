package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/celestiaorg/liquidburn/x/liquidburn/types"
)

// Burn converts amount units of the burn asset, already moved to the ledger
// account by xfer, into shares for caller. It returns the caller's new
// share balance.
func (k *Keeper) Burn(ctx context.Context, caller sdk.AccAddress, amount uint64, xfer *types.AssetTransfer) (uint64, error) {
	ledger, err := k.GetLedger(ctx)
	if err != nil {
		return 0, err
	}
	if amount == 0 {
		return 0, types.ErrZeroAmount
	}
	if err := types.VerifyBurnTransfer(xfer, caller, ledger.BurnAsset, amount); err != nil {
		return 0, err
	}

	current, err := k.GetShares(ctx, caller)
	if err != nil {
		return 0, err
	}
	balance := current + amount
	if balance < current {
		return 0, types.ErrOverflow.Wrapf("shares of %s", caller)
	}
	updated, err := ledger.CreditBurn(amount)
	if err != nil {
		return 0, err
	}

	err = k.atomically(ctx, func(ctx sdk.Context) error {
		if err := k.commitBurn(ctx, updated, caller, balance); err != nil {
			return err
		}
		ctx.EventManager().EmitEvent(types.NewBurnEvent(caller, amount, balance, updated.TotalShares))
		return nil
	})
	if err != nil {
		return 0, err
	}

	k.Logger(ctx).Info("burned for shares", "participant", caller.String(), "amount", amount, "shares", balance)
	return balance, nil
}
