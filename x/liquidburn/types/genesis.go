package types

import (
	"encoding/json"
	"fmt"
)

// GenesisState is the liquidburn module state at genesis. A nil Ledger means
// the ledger has not been initialized yet.
type GenesisState struct {
	Ledger *Ledger       `json:"ledger,omitempty"`
	Shares []ShareRecord `json:"shares"`
}

// DefaultGenesis returns an uninitialized ledger.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Shares: []ShareRecord{},
	}
}

// NewGenesisState creates a new GenesisState instance.
func NewGenesisState(ledger *Ledger, shares []ShareRecord) *GenesisState {
	return &GenesisState{
		Ledger: ledger,
		Shares: shares,
	}
}

// Validate checks that the genesis state satisfies every ledger invariant.
func (gs GenesisState) Validate() error {
	if gs.Ledger == nil {
		if len(gs.Shares) > 0 {
			return ErrInvalidGenesis.Wrap("shares present without an initialized ledger")
		}
		return nil
	}
	if err := gs.Ledger.Validate(); err != nil {
		return ErrInvalidGenesis.Wrapf("ledger: %s", err)
	}

	seen := make(map[string]struct{}, len(gs.Shares))
	var sum uint64
	for i, record := range gs.Shares {
		if len(record.Address) == 0 {
			return ErrInvalidGenesis.Wrapf("share record %d has no address", i)
		}
		if record.Shares == 0 {
			return ErrInvalidGenesis.Wrapf("share record %d for %s has zero shares", i, record.Address)
		}
		key := string(record.Address)
		if _, ok := seen[key]; ok {
			return ErrInvalidGenesis.Wrapf("duplicate share record for %s", record.Address)
		}
		seen[key] = struct{}{}

		next, err := addUint64(sum, record.Shares)
		if err != nil {
			return ErrInvalidGenesis.Wrapf("share sum: %s", err)
		}
		sum = next
	}
	if sum != gs.Ledger.TotalShares {
		return ErrInvalidGenesis.Wrapf("sum of shares %d does not match total shares %d", sum, gs.Ledger.TotalShares)
	}
	return nil
}

// ValidateGenesis validates genesis state
func ValidateGenesis(gs *GenesisState) error {
	if gs == nil {
		return nil
	}
	return gs.Validate()
}

// MustMarshalGenesis encodes gs as JSON and panics on failure.
func MustMarshalGenesis(gs *GenesisState) json.RawMessage {
	bz, err := json.Marshal(gs)
	if err != nil {
		panic(fmt.Errorf("failed to marshal %s genesis state: %w", ModuleName, err))
	}
	return bz
}

// UnmarshalGenesis decodes a JSON genesis state.
func UnmarshalGenesis(bz json.RawMessage) (*GenesisState, error) {
	var gs GenesisState
	if err := json.Unmarshal(bz, &gs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s genesis state: %w", ModuleName, err)
	}
	return &gs, nil
}
