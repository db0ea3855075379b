// Package app is a standalone liquidburn node. It mounts the bank and ledger
// stores on a cosmos-db database, delivers one atomic group per block and
// commits the result.
package app

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	tmproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/celestiaorg/liquidburn/internal/bank"
	"github.com/celestiaorg/liquidburn/pkg/appconsts"
	"github.com/celestiaorg/liquidburn/x/liquidburn"
	"github.com/celestiaorg/liquidburn/x/liquidburn/keeper"
	"github.com/celestiaorg/liquidburn/x/liquidburn/types"
)

// Name is the name of the application.
const Name = "liquidburn"

// ErrInvariantBroken is returned when a block would leave the ledger in a
// state that violates a registered invariant.
var ErrInvariantBroken = errors.New("invariant broken")

// Options configures a new App.
type Options struct {
	ChainID     string
	Authority   sdk.AccAddress
	RewardDenom string
}

// DefaultOptions returns options for a local chain denominated in the bond
// denom. Authority must still be set.
func DefaultOptions() Options {
	return Options{
		ChainID:     appconsts.LocalChainID,
		RewardDenom: appconsts.BondDenom,
	}
}

// App applies atomic groups to the ledger one at a time.
type App struct {
	mu sync.Mutex

	logger  log.Logger
	db      dbm.DB
	cms     storetypes.CommitMultiStore
	chainID string

	BankKeeper       *bank.Keeper
	LiquidBurnKeeper *keeper.Keeper
	module           liquidburn.AppModule
	invariants       *invariantRegistry
}

// New creates the application and loads the latest committed state from db.
func New(logger log.Logger, db dbm.DB, opts Options) (*App, error) {
	if len(opts.Authority) == 0 {
		return nil, errors.New("authority is required")
	}
	if opts.ChainID == "" {
		opts.ChainID = appconsts.LocalChainID
	}
	if opts.RewardDenom == "" {
		opts.RewardDenom = appconsts.BondDenom
	}
	if err := sdk.ValidateDenom(opts.RewardDenom); err != nil {
		return nil, fmt.Errorf("invalid reward denom: %w", err)
	}

	keys := storetypes.NewKVStoreKeys(bank.StoreKey, types.StoreKey)
	cms := store.NewCommitMultiStore(db, logger, metrics.NoOpMetrics{})
	for _, key := range keys {
		cms.MountStoreWithDB(key, storetypes.StoreTypeIAVL, nil)
	}
	if err := cms.LoadLatestVersion(); err != nil {
		return nil, fmt.Errorf("failed to load latest version: %w", err)
	}

	app := &App{
		logger:     logger.With("module", "app"),
		db:         db,
		cms:        cms,
		chainID:    opts.ChainID,
		invariants: newInvariantRegistry(),
	}
	app.BankKeeper = bank.NewKeeper(runtime.NewKVStoreService(keys[bank.StoreKey]))
	app.LiquidBurnKeeper = keeper.NewKeeper(
		runtime.NewKVStoreService(keys[types.StoreKey]),
		app.BankKeeper,
		opts.Authority,
		opts.RewardDenom,
	)
	app.module = liquidburn.NewAppModule(app.LiquidBurnKeeper)
	app.module.RegisterInvariants(app.invariants)

	app.logger.Info("loaded state", "chain_id", app.chainID, "height", app.LastBlockHeight())
	return app, nil
}

// ChainID returns the chain identifier stamped on every block.
func (app *App) ChainID() string {
	return app.chainID
}

// LastBlockHeight returns the height of the last committed block.
func (app *App) LastBlockHeight() int64 {
	return app.cms.LastCommitID().Version
}

// LastCommitID returns the id of the last committed block.
func (app *App) LastCommitID() storetypes.CommitID {
	return app.cms.LastCommitID()
}

// Close closes the underlying database.
func (app *App) Close() error {
	return app.db.Close()
}

func (app *App) newContext(ms storetypes.MultiStore, height int64) sdk.Context {
	header := tmproto.Header{
		ChainID: app.chainID,
		Height:  height,
		Time:    time.Now().UTC(),
	}
	return sdk.NewContext(ms, header, false, app.logger)
}
