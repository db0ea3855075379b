// Package bank is a minimal store-backed coin ledger. It moves native value
// and asset units between accounts for the standalone liquidburn node and
// implements the bank keeper expected by x/liquidburn.
package bank

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	corestore "cosmossdk.io/core/store"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

const (
	ModuleName = "bank"
	StoreKey   = ModuleName

	EventTypeTransfer = "transfer"
	EventTypeBurn     = "burn"
	EventTypeMint     = "mint"

	AttributeKeySender    = "sender"
	AttributeKeyRecipient = "recipient"
	AttributeKeyAmount    = "amount"
)

var (
	BalancesPrefix = collections.NewPrefix(0)
	SupplyPrefix   = collections.NewPrefix(1)
)

// Keeper stores per-account balances and the total supply of every denom.
type Keeper struct {
	balances collections.Map[collections.Pair[sdk.AccAddress, string], math.Int]
	supply   collections.Map[string, math.Int]
	schema   collections.Schema
}

// NewKeeper creates a new bank Keeper instance.
func NewKeeper(storeService corestore.KVStoreService) *Keeper {
	sb := collections.NewSchemaBuilder(storeService)
	k := &Keeper{
		balances: collections.NewMap(sb, BalancesPrefix, "balances",
			collections.PairKeyCodec(sdk.AccAddressKey, collections.StringKey), sdk.IntValue),
		supply: collections.NewMap(sb, SupplyPrefix, "supply", collections.StringKey, sdk.IntValue),
	}
	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.schema = schema
	return k
}

// GetBalance returns the balance of denom held by addr.
func (k *Keeper) GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	amount, err := k.balances.Get(ctx, collections.Join(addr, denom))
	if err != nil {
		return sdk.NewCoin(denom, math.ZeroInt())
	}
	return sdk.NewCoin(denom, amount)
}

// GetAllBalances returns every non-zero balance held by addr.
func (k *Keeper) GetAllBalances(ctx context.Context, addr sdk.AccAddress) (sdk.Coins, error) {
	coins := sdk.NewCoins()
	rng := collections.NewPrefixedPairRange[sdk.AccAddress, string](addr)
	err := k.balances.Walk(ctx, rng, func(key collections.Pair[sdk.AccAddress, string], amount math.Int) (bool, error) {
		coins = coins.Add(sdk.NewCoin(key.K2(), amount))
		return false, nil
	})
	return coins, err
}

// GetSupply returns the total supply of denom.
func (k *Keeper) GetSupply(ctx context.Context, denom string) sdk.Coin {
	amount, err := k.supply.Get(ctx, denom)
	if err != nil {
		return sdk.NewCoin(denom, math.ZeroInt())
	}
	return sdk.NewCoin(denom, amount)
}

// SendCoins moves amt from one account to another.
func (k *Keeper) SendCoins(ctx context.Context, from, to sdk.AccAddress, amt sdk.Coins) error {
	if err := amt.Validate(); err != nil {
		return errorsmod.Wrap(sdkerrors.ErrInvalidCoins, err.Error())
	}
	if err := k.subBalance(ctx, from, amt); err != nil {
		return err
	}
	if err := k.addBalance(ctx, to, amt); err != nil {
		return err
	}
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(EventTypeTransfer,
		sdk.NewAttribute(AttributeKeySender, from.String()),
		sdk.NewAttribute(AttributeKeyRecipient, to.String()),
		sdk.NewAttribute(AttributeKeyAmount, amt.String()),
	))
	return nil
}

// SendCoinsFromModuleToAccount moves amt from a module account to recipient.
func (k *Keeper) SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipient sdk.AccAddress, amt sdk.Coins) error {
	return k.SendCoins(ctx, authtypes.NewModuleAddress(senderModule), recipient, amt)
}

// SendCoinsFromAccountToModule moves amt from sender to a module account.
func (k *Keeper) SendCoinsFromAccountToModule(ctx context.Context, sender sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	return k.SendCoins(ctx, sender, authtypes.NewModuleAddress(recipientModule), amt)
}

// MintCoins creates amt in the named module account.
func (k *Keeper) MintCoins(ctx context.Context, module string, amt sdk.Coins) error {
	if err := amt.Validate(); err != nil {
		return errorsmod.Wrap(sdkerrors.ErrInvalidCoins, err.Error())
	}
	if err := k.addBalance(ctx, authtypes.NewModuleAddress(module), amt); err != nil {
		return err
	}
	for _, coin := range amt {
		if err := k.adjustSupply(ctx, coin.Denom, coin.Amount); err != nil {
			return err
		}
	}
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(EventTypeMint,
		sdk.NewAttribute(AttributeKeyRecipient, module),
		sdk.NewAttribute(AttributeKeyAmount, amt.String()),
	))
	return nil
}

// BurnCoins destroys amt held by the named module account.
func (k *Keeper) BurnCoins(ctx context.Context, module string, amt sdk.Coins) error {
	if err := amt.Validate(); err != nil {
		return errorsmod.Wrap(sdkerrors.ErrInvalidCoins, err.Error())
	}
	if err := k.subBalance(ctx, authtypes.NewModuleAddress(module), amt); err != nil {
		return err
	}
	for _, coin := range amt {
		if err := k.adjustSupply(ctx, coin.Denom, coin.Amount.Neg()); err != nil {
			return err
		}
	}
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(EventTypeBurn,
		sdk.NewAttribute(AttributeKeySender, module),
		sdk.NewAttribute(AttributeKeyAmount, amt.String()),
	))
	return nil
}

// FundAccount mints amt and sends it to addr. It is used to seed genesis
// balances and test accounts.
func (k *Keeper) FundAccount(ctx context.Context, addr sdk.AccAddress, amt sdk.Coins) error {
	if err := k.MintCoins(ctx, ModuleName, amt); err != nil {
		return err
	}
	return k.SendCoinsFromModuleToAccount(ctx, ModuleName, addr, amt)
}

func (k *Keeper) addBalance(ctx context.Context, addr sdk.AccAddress, amt sdk.Coins) error {
	for _, coin := range amt {
		balance := k.GetBalance(ctx, addr, coin.Denom)
		if err := k.balances.Set(ctx, collections.Join(addr, coin.Denom), balance.Amount.Add(coin.Amount)); err != nil {
			return err
		}
	}
	return nil
}

func (k *Keeper) subBalance(ctx context.Context, addr sdk.AccAddress, amt sdk.Coins) error {
	for _, coin := range amt {
		balance := k.GetBalance(ctx, addr, coin.Denom)
		if balance.Amount.LT(coin.Amount) {
			return errorsmod.Wrapf(sdkerrors.ErrInsufficientFunds, "%s is smaller than %s", balance, coin)
		}
		remaining := balance.Amount.Sub(coin.Amount)
		key := collections.Join(addr, coin.Denom)
		if remaining.IsZero() {
			if err := k.balances.Remove(ctx, key); err != nil {
				return err
			}
			continue
		}
		if err := k.balances.Set(ctx, key, remaining); err != nil {
			return err
		}
	}
	return nil
}

func (k *Keeper) adjustSupply(ctx context.Context, denom string, delta math.Int) error {
	current, err := k.supply.Get(ctx, denom)
	if errors.Is(err, collections.ErrNotFound) {
		current = math.ZeroInt()
	} else if err != nil {
		return err
	}
	next := current.Add(delta)
	if next.IsNegative() {
		return errorsmod.Wrapf(sdkerrors.ErrInsufficientFunds, "supply of %s would become negative", denom)
	}
	if next.IsZero() {
		return k.supply.Remove(ctx, denom)
	}
	return k.supply.Set(ctx, denom, next)
}
