package app

import (
	"encoding/json"
	"fmt"

	"github.com/celestiaorg/liquidburn/internal/bank"
	"github.com/celestiaorg/liquidburn/x/liquidburn/types"
)

// GenesisState of the blockchain is represented here as a map of raw json
// messages key'd by a identifier string.
type GenesisState map[string]json.RawMessage

// NewDefaultGenesisState generates the default state for the application.
func NewDefaultGenesisState() GenesisState {
	return GenesisState{
		bank.ModuleName:  mustMarshal(bank.DefaultGenesis()),
		types.ModuleName: types.MustMarshalGenesis(types.DefaultGenesis()),
	}
}

// ValidateGenesis checks the genesis state of every module.
func (app *App) ValidateGenesis(gs GenesisState) error {
	bankGenesis, err := bank.UnmarshalGenesis(gs[bank.ModuleName])
	if err != nil {
		return err
	}
	if err := bankGenesis.Validate(); err != nil {
		return fmt.Errorf("%s: %w", bank.ModuleName, err)
	}
	return app.module.ValidateGenesis(nil, nil, gs.module(types.ModuleName))
}

// InitChain writes the genesis state and commits it as the first block. It
// can only be called on an empty database.
func (app *App) InitChain(gs GenesisState) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if height := app.LastBlockHeight(); height != 0 {
		return fmt.Errorf("chain already initialized at height %d", height)
	}
	if err := app.ValidateGenesis(gs); err != nil {
		return fmt.Errorf("invalid genesis: %w", err)
	}

	cache := app.cms.CacheMultiStore()
	ctx := app.newContext(cache, 0)

	bankGenesis, err := bank.UnmarshalGenesis(gs[bank.ModuleName])
	if err != nil {
		return err
	}
	if err := app.BankKeeper.InitGenesis(ctx, bankGenesis); err != nil {
		return fmt.Errorf("%s genesis: %w", bank.ModuleName, err)
	}
	app.module.InitGenesis(ctx, nil, gs.module(types.ModuleName))

	if msg, broken := app.invariants.assert(ctx); broken {
		return fmt.Errorf("%w at genesis: %s", ErrInvariantBroken, msg)
	}

	cache.Write()
	commitID := app.cms.Commit()
	app.logger.Info("initialized chain", "chain_id", app.chainID, "height", commitID.Version)
	return nil
}

// ExportGenesis exports the committed state of every module.
func (app *App) ExportGenesis() (GenesisState, error) {
	app.mu.Lock()
	defer app.mu.Unlock()

	ctx := app.newContext(app.cms.CacheMultiStore(), app.LastBlockHeight())
	bankGenesis, err := app.BankKeeper.ExportGenesis(ctx)
	if err != nil {
		return nil, err
	}
	return GenesisState{
		bank.ModuleName:  mustMarshal(bankGenesis),
		types.ModuleName: app.module.ExportGenesis(ctx, nil),
	}, nil
}

func (gs GenesisState) module(name string) json.RawMessage {
	if bz, ok := gs[name]; ok && len(bz) > 0 {
		return bz
	}
	return NewDefaultGenesisState()[name]
}

func mustMarshal(v any) json.RawMessage {
	bz, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return bz
}
