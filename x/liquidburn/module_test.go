package liquidburn_test

import (
	"encoding/json"
	"testing"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/celestiaorg/liquidburn/internal/bank"
	"github.com/celestiaorg/liquidburn/pkg/appconsts"
	"github.com/celestiaorg/liquidburn/x/liquidburn"
	"github.com/celestiaorg/liquidburn/x/liquidburn/keeper"
	"github.com/celestiaorg/liquidburn/x/liquidburn/types"
)

var (
	creator     = sdk.AccAddress("creator_____________")
	admin       = sdk.AccAddress("admin_______________")
	participant = sdk.AccAddress("participant_________")
)

type invariantRegistry struct {
	routes map[string]sdk.Invariant
}

func (r *invariantRegistry) RegisterRoute(moduleName, route string, invar sdk.Invariant) {
	r.routes[moduleName+"/"+route] = invar
}

func setup(t *testing.T) (sdk.Context, liquidburn.AppModule, *bank.Keeper) {
	t.Helper()
	bankKey := storetypes.NewKVStoreKey(bank.StoreKey)
	ledgerKey := storetypes.NewKVStoreKey(types.StoreKey)
	ctx := testutil.DefaultContextWithKeys(
		map[string]*storetypes.KVStoreKey{bank.StoreKey: bankKey, types.StoreKey: ledgerKey},
		map[string]*storetypes.TransientStoreKey{},
		map[string]*storetypes.MemoryStoreKey{},
	)
	bankKeeper := bank.NewKeeper(runtime.NewKVStoreService(bankKey))
	k := keeper.NewKeeper(runtime.NewKVStoreService(ledgerKey), bankKeeper, creator, appconsts.BondDenom)
	return ctx, liquidburn.NewAppModule(k), bankKeeper
}

func TestDefaultGenesis(t *testing.T) {
	_, am, _ := setup(t)

	bz := am.DefaultGenesis(nil)
	require.NoError(t, am.ValidateGenesis(nil, nil, bz))
	require.Error(t, am.ValidateGenesis(nil, nil, json.RawMessage(`{"shares":[{"address":"","shares":"1"}]}`)))
}

func TestInitExportGenesis(t *testing.T) {
	ctx, am, bankKeeper := setup(t)

	ledger := types.NewLedger("ubrn", admin)
	ledger.TotalBurned = 50
	ledger.TotalShares = 40
	ledger.RewardPool = 900
	gs := types.NewGenesisState(&ledger, []types.ShareRecord{{Address: participant, Shares: 40}})
	bz := types.MustMarshalGenesis(gs)
	require.NoError(t, am.ValidateGenesis(nil, nil, bz))

	am.InitGenesis(ctx, nil, bz)
	require.JSONEq(t, string(bz), string(am.ExportGenesis(ctx, nil)))

	registry := &invariantRegistry{routes: map[string]sdk.Invariant{}}
	am.RegisterInvariants(registry)
	require.Len(t, registry.routes, 3)

	_, broken := registry.routes[types.ModuleName+"/reward-solvency"](ctx)
	require.True(t, broken, "the ledger account holds no reward funds yet")

	require.NoError(t, bankKeeper.FundAccount(ctx, types.ModuleAddress, sdk.NewCoins(sdk.NewInt64Coin(appconsts.BondDenom, 900))))
	for route, invariant := range registry.routes {
		msg, broken := invariant(ctx)
		require.False(t, broken, "%s: %s", route, msg)
	}
}

func TestInitGenesisPanicsOnInvalidState(t *testing.T) {
	ctx, am, _ := setup(t)

	require.Panics(t, func() {
		am.InitGenesis(ctx, nil, json.RawMessage(`{"shares":[{"address":"","shares":"1"}]}`))
	})
}

func TestEndBlock(t *testing.T) {
	ctx, am, bankKeeper := setup(t)
	am.InitGenesis(ctx, nil, types.MustMarshalGenesis(types.NewGenesisState(&types.Ledger{
		Initialized: true,
		BurnAsset:   "ubrn",
		Admin:       admin,
	}, nil)))

	require.NoError(t, bankKeeper.FundAccount(ctx, types.ModuleAddress, sdk.NewCoins(sdk.NewCoin("ubrn", math.NewInt(75)))))
	require.NoError(t, am.EndBlock(ctx))

	require.True(t, bankKeeper.GetBalance(ctx, types.ModuleAddress, "ubrn").IsZero())
	require.True(t, bankKeeper.GetSupply(ctx, "ubrn").IsZero())
}
