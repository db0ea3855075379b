package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/celestiaorg/liquidburn/x/liquidburn/types"
)

// SetShareRecord writes a share record without touching the aggregates.
func (k *Keeper) SetShareRecord(ctx context.Context, addr sdk.AccAddress, shares uint64) error {
	return k.shares.Set(ctx, addr, shares)
}

// SetLedgerRecord writes the ledger record as is.
func (k *Keeper) SetLedgerRecord(ctx context.Context, ledger types.Ledger) error {
	return k.ledger.Set(ctx, ledger)
}
