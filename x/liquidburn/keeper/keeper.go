// Package keeper implements the liquidburn ledger: participants burn a
// designated asset for shares, an admin funds a shared reward pool and
// participants claim their proportional slice of it.
package keeper

import (
	"context"
	"errors"
	"fmt"

	"cosmossdk.io/collections"
	corestore "cosmossdk.io/core/store"
	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/celestiaorg/liquidburn/x/liquidburn/types"
)

// Keeper owns the ledger storage. The global ledger record and the
// participant share records are only written through the methods in this
// package so that aggregates and per-participant balances move together.
type Keeper struct {
	ledger collections.Item[types.Ledger]
	shares collections.Map[sdk.AccAddress, uint64]
	schema collections.Schema

	bankKeeper  types.BankKeeper
	authority   sdk.AccAddress
	rewardDenom string
}

// NewKeeper creates a new Keeper instance. authority is the deploying
// account allowed to initialize the ledger and rewardDenom is the native
// value unit the reward pool is denominated in.
func NewKeeper(
	storeService corestore.KVStoreService,
	bankKeeper types.BankKeeper,
	authority sdk.AccAddress,
	rewardDenom string,
) *Keeper {
	if bankKeeper == nil {
		panic("bankKeeper cannot be nil")
	}
	if len(authority) == 0 {
		panic("authority cannot be empty")
	}
	if err := sdk.ValidateDenom(rewardDenom); err != nil {
		panic(fmt.Errorf("invalid reward denom %q: %w", rewardDenom, err))
	}

	sb := collections.NewSchemaBuilder(storeService)
	ledger := collections.NewItem(sb, types.LedgerKey, "ledger", types.LedgerValueCodec)
	shares := collections.NewMap(sb, types.SharesPrefix, "shares", sdk.AccAddressKey, collections.Uint64Value)

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}

	return &Keeper{
		ledger:      ledger,
		shares:      shares,
		schema:      schema,
		bankKeeper:  bankKeeper,
		authority:   authority,
		rewardDenom: rewardDenom,
	}
}

// Logger returns the module logger extracted using the sdk context.
func (k *Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}

// Authority returns the account allowed to initialize the ledger.
func (k *Keeper) Authority() sdk.AccAddress {
	return k.authority
}

// RewardDenom returns the denomination of the reward pool.
func (k *Keeper) RewardDenom() string {
	return k.rewardDenom
}

// ModuleAddress returns the ledger's own account.
func (k *Keeper) ModuleAddress() sdk.AccAddress {
	return types.ModuleAddress
}

// GetLedger returns the global ledger record. It returns ErrNotInitialized
// before Initialize has succeeded.
func (k *Keeper) GetLedger(ctx context.Context) (types.Ledger, error) {
	ledger, err := k.ledger.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return types.Ledger{}, types.ErrNotInitialized
	}
	if err != nil {
		return types.Ledger{}, err
	}
	if !ledger.Initialized {
		return types.Ledger{}, types.ErrNotInitialized
	}
	return ledger, nil
}

// GetShares returns the share balance of participant, zero if it has none.
func (k *Keeper) GetShares(ctx context.Context, participant sdk.AccAddress) (uint64, error) {
	shares, err := k.shares.Get(ctx, participant)
	if errors.Is(err, collections.ErrNotFound) {
		return 0, nil
	}
	return shares, err
}

// HasShares reports whether participant holds a share record.
func (k *Keeper) HasShares(ctx context.Context, participant sdk.AccAddress) (bool, error) {
	return k.shares.Has(ctx, participant)
}

// Participants returns every share record ordered by address bytes.
func (k *Keeper) Participants(ctx context.Context) ([]types.ShareRecord, error) {
	records := []types.ShareRecord{}
	err := k.shares.Walk(ctx, nil, func(addr sdk.AccAddress, shares uint64) (bool, error) {
		records = append(records, types.ShareRecord{Address: addr, Shares: shares})
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// EstimateClaim returns the payout participant would receive by claiming
// now. It fails with the same errors as Claim and writes nothing.
func (k *Keeper) EstimateClaim(ctx context.Context, participant sdk.AccAddress) (uint64, error) {
	shares, err := k.GetShares(ctx, participant)
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
	return ledger.Payout(shares)
}

// atomically runs fn on a cached branch of ctx and writes the branch back
// only if fn succeeds, so an operation commits all of its writes or none.
func (k *Keeper) atomically(ctx context.Context, fn func(ctx sdk.Context) error) error {
	cacheCtx, write := sdk.UnwrapSDKContext(ctx).CacheContext()
	if err := fn(cacheCtx); err != nil {
		return err
	}
	write()
	return nil
}
