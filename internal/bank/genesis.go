package bank

import (
	"context"
	"encoding/json"
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Balance is the genesis balance of one account.
type Balance struct {
	Address sdk.AccAddress `json:"address" yaml:"address"`
	Coins   sdk.Coins      `json:"coins" yaml:"coins"`
}

// GenesisState is the bank state at genesis.
type GenesisState struct {
	Balances []Balance `json:"balances"`
}

// DefaultGenesis returns a genesis with no balances.
func DefaultGenesis() *GenesisState {
	return &GenesisState{Balances: []Balance{}}
}

// Validate checks every balance for a non-empty, unique address and valid
// coins.
func (gs GenesisState) Validate() error {
	seen := make(map[string]struct{}, len(gs.Balances))
	for i, b := range gs.Balances {
		if len(b.Address) == 0 {
			return fmt.Errorf("balance %d has no address", i)
		}
		if _, ok := seen[string(b.Address)]; ok {
			return fmt.Errorf("duplicate balance for %s", b.Address)
		}
		seen[string(b.Address)] = struct{}{}
		if err := b.Coins.Validate(); err != nil {
			return fmt.Errorf("balance for %s: %w", b.Address, err)
		}
	}
	return nil
}

// InitGenesis mints every genesis balance into its account.
func (k *Keeper) InitGenesis(ctx context.Context, gs *GenesisState) error {
	if err := gs.Validate(); err != nil {
		return err
	}
	for _, b := range gs.Balances {
		if b.Coins.IsZero() {
			continue
		}
		if err := k.FundAccount(ctx, b.Address, b.Coins); err != nil {
			return fmt.Errorf("funding %s: %w", b.Address, err)
		}
	}
	return nil
}

// ExportGenesis returns every stored balance grouped by account.
func (k *Keeper) ExportGenesis(ctx context.Context) (*GenesisState, error) {
	gs := DefaultGenesis()
	err := k.balances.Walk(ctx, nil, func(key collections.Pair[sdk.AccAddress, string], amount math.Int) (bool, error) {
		coin := sdk.NewCoin(key.K2(), amount)
		if n := len(gs.Balances); n > 0 && gs.Balances[n-1].Address.Equals(key.K1()) {
			gs.Balances[n-1].Coins = gs.Balances[n-1].Coins.Add(coin)
			return false, nil
		}
		gs.Balances = append(gs.Balances, Balance{Address: key.K1(), Coins: sdk.NewCoins(coin)})
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return gs, nil
}

// UnmarshalGenesis decodes a JSON bank genesis state, defaulting when bz is
// empty.
func UnmarshalGenesis(bz json.RawMessage) (*GenesisState, error) {
	if len(bz) == 0 {
		return DefaultGenesis(), nil
	}
	var gs GenesisState
	if err := json.Unmarshal(bz, &gs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bank genesis state: %w", err)
	}
	return &gs, nil
}
