package app

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/celestiaorg/liquidburn/x/liquidburn/types"
)

// Snapshot is a read-only view of the ledger at the last committed height.
type Snapshot struct {
	Height       int64               `json:"height"`
	Ledger       *types.Ledger       `json:"ledger,omitempty"`
	Participants []types.ShareRecord `json:"participants"`
	PoolBalance  sdk.Coin            `json:"pool_balance"`
}

// queryContext returns a context over a throwaway branch of the committed
// state.
func (app *App) queryContext() sdk.Context {
	return app.newContext(app.cms.CacheMultiStore(), app.LastBlockHeight())
}

// Snapshot returns the committed ledger state.
func (app *App) Snapshot() (*Snapshot, error) {
	app.mu.Lock()
	defer app.mu.Unlock()

	ctx := app.queryContext()
	snapshot := &Snapshot{
		Height:      app.LastBlockHeight(),
		PoolBalance: app.BankKeeper.GetBalance(ctx, types.ModuleAddress, app.LiquidBurnKeeper.RewardDenom()),
	}
	if ledger, err := app.LiquidBurnKeeper.GetLedger(ctx); err == nil {
		snapshot.Ledger = &ledger
	}
	participants, err := app.LiquidBurnKeeper.Participants(ctx)
	if err != nil {
		return nil, err
	}
	snapshot.Participants = participants
	return snapshot, nil
}

// Balance returns the committed balance of denom held by addr.
func (app *App) Balance(addr sdk.AccAddress, denom string) sdk.Coin {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.BankKeeper.GetBalance(app.queryContext(), addr, denom)
}

// Shares returns the committed share balance of addr.
func (app *App) Shares(addr sdk.AccAddress) (uint64, error) {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.LiquidBurnKeeper.GetShares(app.queryContext(), addr)
}

// EstimateClaim returns what addr would receive by claiming now.
func (app *App) EstimateClaim(addr sdk.AccAddress) (uint64, error) {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.LiquidBurnKeeper.EstimateClaim(app.queryContext(), addr)
}
