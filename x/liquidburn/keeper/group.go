package keeper

import (
	"context"
	"time"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/celestiaorg/liquidburn/x/liquidburn/types"
)

// ExecuteGroup runs every step of group in order. Transfers move coins
// through the bank keeper and call steps invoke the ledger with the step
// immediately before them as their companion transfer. Either every step
// succeeds and the group is committed, or nothing is.
func (k *Keeper) ExecuteGroup(ctx context.Context, group types.Group) ([]types.StepResult, error) {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), "execute_group")

	if err := group.ValidateBasic(); err != nil {
		recordRejectedGroup("invalid")
		return nil, err
	}

	results := make([]types.StepResult, 0, len(group.Steps))
	err := k.atomically(ctx, func(ctx sdk.Context) error {
		for i, step := range group.Steps {
			result, err := k.executeStep(ctx, group, i)
			if err != nil {
				return errorsmod.Wrapf(err, "step %d (%s)", i, step.Kind())
			}
			results = append(results, result)
		}
		return nil
	})
	if err != nil {
		recordRejectedGroup("failed")
		k.Logger(ctx).Debug("group rejected", "steps", len(group.Steps), "error", err)
		return nil, err
	}

	k.recordGroup(ctx, group, results)
	return results, nil
}

func (k *Keeper) executeStep(ctx sdk.Context, group types.Group, i int) (types.StepResult, error) {
	result := types.StepResult{Index: i, Kind: group.Steps[i].Kind()}

	switch step := group.Steps[i].(type) {
	case types.PaymentStep:
		coins := sdk.NewCoins(sdk.NewCoin(k.rewardDenom, math.NewIntFromUint64(step.Amount)))
		if err := k.bankKeeper.SendCoins(ctx, step.Sender, step.Receiver, coins); err != nil {
			return result, err
		}
		result.Value = step.Amount
	case types.AssetTransferStep:
		coins := sdk.NewCoins(sdk.NewCoin(step.Asset, math.NewIntFromUint64(step.Amount)))
		if err := k.bankKeeper.SendCoins(ctx, step.Sender, step.Receiver, coins); err != nil {
			return result, err
		}
		result.Value = step.Amount
	case types.CallStep:
		result.Method = step.Call.Method()
		value, err := k.dispatch(ctx, group, i, step)
		if err != nil {
			return result, err
		}
		result.Value = value
	default:
		return result, types.ErrInvalidGroup.Wrapf("unknown step type %T", step)
	}
	return result, nil
}

func (k *Keeper) dispatch(ctx sdk.Context, group types.Group, i int, step types.CallStep) (uint64, error) {
	switch call := step.Call.(type) {
	case types.InitializeCall:
		return 0, k.Initialize(ctx, step.Caller, call.BurnAsset, call.Admin)
	case types.FundCall:
		return 0, k.Fund(ctx, step.Caller, group.PrecedingPayment(i))
	case types.BurnCall:
		return k.Burn(ctx, step.Caller, call.Amount, group.PrecedingAssetTransfer(i))
	case types.ClaimCall:
		return k.Claim(ctx, step.Caller)
	default:
		return 0, types.ErrInvalidGroup.Wrapf("unknown method %q", step.Call.Method())
	}
}
