package keeper_test

import (
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"

	"github.com/celestiaorg/liquidburn/pkg/appconsts"
	"github.com/celestiaorg/liquidburn/x/liquidburn/keeper"
	"github.com/celestiaorg/liquidburn/x/liquidburn/types"
)

func (s *KeeperTestSuite) TestExportGenesisUninitialized() {
	gs, err := s.keeper.ExportGenesis(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal(types.DefaultGenesis(), gs)
}

func (s *KeeperTestSuite) TestGenesisRoundTrip() {
	s.initialize()
	s.fund(9_000)
	s.burn(alice, 100)
	s.burn(bob, 200)

	exported, err := s.keeper.ExportGenesis(s.ctx)
	s.Require().NoError(err)
	s.Require().NoError(exported.Validate())

	imported, err := types.UnmarshalGenesis(types.MustMarshalGenesis(exported))
	s.Require().NoError(err)

	key := storetypes.NewKVStoreKey(types.StoreKey)
	ctx := testutil.DefaultContext(key, storetypes.NewTransientStoreKey("transient_test"))
	fresh := keeper.NewKeeper(runtime.NewKVStoreService(key), s.bank, creator, appconsts.BondDenom)
	s.Require().NoError(fresh.InitGenesis(ctx, imported))

	ledger, err := fresh.GetLedger(ctx)
	s.Require().NoError(err)
	s.Require().Equal(s.ledger(), ledger)

	participants, err := fresh.Participants(ctx)
	s.Require().NoError(err)
	s.Require().Equal(exported.Shares, participants)

	again, err := fresh.ExportGenesis(ctx)
	s.Require().NoError(err)
	s.Require().Equal(exported, again)
}

func (s *KeeperTestSuite) TestInitGenesisRejected() {
	ledger := types.NewLedger(burnAsset, admin)
	ledger.TotalShares = 10
	ledger.TotalBurned = 10

	testCases := []struct {
		name string
		gs   *types.GenesisState
	}{
		{
			name: "share sum mismatch",
			gs:   types.NewGenesisState(&ledger, []types.ShareRecord{{Address: alice, Shares: 9}}),
		},
		{
			name: "shares without ledger",
			gs:   types.NewGenesisState(nil, []types.ShareRecord{{Address: alice, Shares: 10}}),
		},
		{
			name: "burn asset is the reward denom",
			gs: func() *types.GenesisState {
				l := ledger
				l.BurnAsset = appconsts.BondDenom
				return types.NewGenesisState(&l, []types.ShareRecord{{Address: alice, Shares: 10}})
			}(),
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := s.keeper.InitGenesis(s.ctx, tc.gs)
			s.Require().ErrorIs(err, types.ErrInvalidGenesis)

			_, err = s.keeper.GetLedger(s.ctx)
			s.Require().ErrorIs(err, types.ErrNotInitialized)
		})
	}
}
