package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/celestiaorg/liquidburn/x/liquidburn/types"
)

// Claim pays caller its proportional slice of the reward pool and retires
// all of its shares. The ledger writes and the outbound payment commit
// together; if the payment fails nothing changes.
func (k *Keeper) Claim(ctx context.Context, caller sdk.AccAddress) (uint64, error) {
	shares, err := k.GetShares(ctx, caller)
	if err != nil {
		return 0, err
	}
	if shares == 0 {
		return 0, types.ErrNoShares
	}
	ledger, err := k.GetLedger(ctx)
	if err != nil {
		return 0, err
	}

	payout, err := ledger.Payout(shares)
	if err != nil {
		return 0, err
	}
	updated, err := ledger.DebitClaim(shares, payout)
	if err != nil {
		return 0, err
	}

	err = k.atomically(ctx, func(ctx sdk.Context) error {
		if err := k.commitClaim(ctx, updated, caller); err != nil {
			return err
		}
		coins := sdk.NewCoins(sdk.NewCoin(k.rewardDenom, math.NewIntFromUint64(payout)))
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, caller, coins); err != nil {
			return fmt.Errorf("failed to pay out claim: %w", err)
		}
		ctx.EventManager().EmitEvent(types.NewClaimEvent(caller, payout, updated.RewardPool, updated.TotalShares))
		return nil
	})
	if err != nil {
		return 0, err
	}

	k.Logger(ctx).Info("rewards claimed", "participant", caller.String(), "shares", shares, "payout", payout)
	return payout, nil
}
