package keeper

import (
	"errors"
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/celestiaorg/liquidburn/x/liquidburn/types"
)

// RegisterInvariants registers all liquidburn invariants.
func RegisterInvariants(ir sdk.InvariantRegistry, k *Keeper) {
	ir.RegisterRoute(types.ModuleName, "total-shares", TotalSharesInvariant(k))
	ir.RegisterRoute(types.ModuleName, "nonzero-shares", NonZeroSharesInvariant(k))
	ir.RegisterRoute(types.ModuleName, "reward-solvency", RewardSolvencyInvariant(k))
}

// AllInvariants runs all invariants of the liquidburn module.
func AllInvariants(k *Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		for _, inv := range []sdk.Invariant{
			TotalSharesInvariant(k),
			NonZeroSharesInvariant(k),
			RewardSolvencyInvariant(k),
		} {
			if res, broken := inv(ctx); broken {
				return res, broken
			}
		}
		return "", false
	}
}

// TotalSharesInvariant checks that the total shares equal the sum of every
// participant's shares and never exceed the total burned.
func TotalSharesInvariant(k *Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		ledger, found, err := k.storedLedger(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "total-shares", err.Error()), true
		}

		sum := math.ZeroInt()
		count := 0
		err = k.shares.Walk(ctx, nil, func(_ sdk.AccAddress, shares uint64) (bool, error) {
			sum = sum.Add(math.NewIntFromUint64(shares))
			count++
			return false, nil
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "total-shares", err.Error()), true
		}

		total := math.NewIntFromUint64(ledger.TotalShares)
		broken := !sum.Equal(total) || ledger.TotalBurned < ledger.TotalShares
		if !found && count > 0 {
			broken = true
		}
		return sdk.FormatInvariant(types.ModuleName, "total-shares", fmt.Sprintf(
			"\tsum of %d share records: %s\n\ttotal shares: %d\n\ttotal burned: %d\n",
			count, sum, ledger.TotalShares, ledger.TotalBurned,
		)), broken
	}
}

// NonZeroSharesInvariant checks that no stored share record holds zero
// shares.
func NonZeroSharesInvariant(k *Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)
		err := k.shares.Walk(ctx, nil, func(addr sdk.AccAddress, shares uint64) (bool, error) {
			if shares == 0 {
				count++
				msg += fmt.Sprintf("\t%s has a zero share record\n", addr)
			}
			return false, nil
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "nonzero-shares", err.Error()), true
		}
		return sdk.FormatInvariant(types.ModuleName, "nonzero-shares", fmt.Sprintf(
			"found %d zero share records\n%s", count, msg,
		)), count != 0
	}
}

// RewardSolvencyInvariant checks that the ledger account holds at least the
// reward pool in the reward denom.
func RewardSolvencyInvariant(k *Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		ledger, _, err := k.storedLedger(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "reward-solvency", err.Error()), true
		}
		balance := k.bankKeeper.GetBalance(ctx, types.ModuleAddress, k.rewardDenom)
		held := math.ZeroInt()
		if !balance.Amount.IsNil() {
			held = balance.Amount
		}
		broken := held.LT(math.NewIntFromUint64(ledger.RewardPool))
		return sdk.FormatInvariant(types.ModuleName, "reward-solvency", fmt.Sprintf(
			"\treward pool: %d\n\tledger account balance: %s%s\n",
			ledger.RewardPool, held, k.rewardDenom,
		)), broken
	}
}

// storedLedger returns the raw ledger record, or a zero ledger if none is
// stored.
func (k *Keeper) storedLedger(ctx sdk.Context) (types.Ledger, bool, error) {
	ledger, err := k.ledger.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return types.Ledger{}, false, nil
	}
	if err != nil {
		return types.Ledger{}, false, err
	}
	return ledger, true, nil
}
