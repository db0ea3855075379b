package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/celestiaorg/liquidburn/x/liquidburn/types"
)

// setLedger writes the global ledger record.
func (k *Keeper) setLedger(ctx context.Context, ledger types.Ledger) error {
	return k.ledger.Set(ctx, ledger)
}

// commitBurn stores the participant's new share balance together with the
// updated aggregates. Callers run it inside atomically.
func (k *Keeper) commitBurn(ctx context.Context, ledger types.Ledger, participant sdk.AccAddress, balance uint64) error {
	if err := k.shares.Set(ctx, participant, balance); err != nil {
		return err
	}
	return k.ledger.Set(ctx, ledger)
}

// commitClaim removes the participant's share record and stores the updated
// aggregates. Callers run it inside atomically.
func (k *Keeper) commitClaim(ctx context.Context, ledger types.Ledger, participant sdk.AccAddress) error {
	if err := k.shares.Remove(ctx, participant); err != nil {
		return err
	}
	return k.ledger.Set(ctx, ledger)
}
