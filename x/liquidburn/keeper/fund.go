package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/celestiaorg/liquidburn/x/liquidburn/types"
)

// Fund adds the value carried by payment to the reward pool. caller must be
// the admin and payment must have moved value from the admin to the ledger
// account.
func (k *Keeper) Fund(ctx context.Context, caller sdk.AccAddress, payment *types.PaymentTransfer) error {
	ledger, err := k.GetLedger(ctx)
	if err != nil {
		return err
	}
	if !caller.Equals(ledger.Admin) {
		return types.ErrUnauthorized.Wrap("only admin can fund rewards")
	}
	if err := types.VerifyFundingPayment(payment, ledger.Admin); err != nil {
		return err
	}

	updated, err := ledger.CreditReward(payment.Amount)
	if err != nil {
		return err
	}

	err = k.atomically(ctx, func(ctx sdk.Context) error {
		if err := k.setLedger(ctx, updated); err != nil {
			return err
		}
		ctx.EventManager().EmitEvent(types.NewFundEvent(payment.Amount, updated.RewardPool))
		return nil
	})
	if err != nil {
		return err
	}

	k.Logger(ctx).Info("reward pool funded", "amount", payment.Amount, "reward_pool", updated.RewardPool)
	return nil
}
