package keeper

import (
	"context"
	"errors"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/celestiaorg/liquidburn/x/liquidburn/types"
)

// EndBlocker destroys any burn asset units held by the ledger account.
func (k *Keeper) EndBlocker(ctx context.Context) error {
	ledger, err := k.GetLedger(ctx)
	if errors.Is(err, types.ErrNotInitialized) {
		return nil
	}
	if err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	balance := k.bankKeeper.GetBalance(sdkCtx, types.ModuleAddress, ledger.BurnAsset)
	if balance.Amount.IsNil() || balance.IsZero() {
		return nil
	}

	if err := k.bankKeeper.BurnCoins(sdkCtx, types.ModuleName, sdk.NewCoins(balance)); err != nil {
		return fmt.Errorf("failed to burn coins: %w", err)
	}
	sdkCtx.EventManager().EmitEvent(types.NewSweepEvent(balance))

	k.Logger(ctx).Debug("swept burn asset", "amount", balance.String())
	return nil
}
