package keeper_test

import (
	"github.com/celestiaorg/liquidburn/pkg/appconsts"
	"github.com/celestiaorg/liquidburn/x/liquidburn/types"
)

func (s *KeeperTestSuite) TestEndBlockerSweepsBurnAsset() {
	s.initialize()
	s.fund(1_000)
	s.burn(alice, 100)
	s.burn(bob, 50)
	s.Require().EqualValues(150, s.balance(types.ModuleAddress, burnAsset))
	s.Require().EqualValues(2_000, s.bank.GetSupply(s.ctx, burnAsset).Amount.Uint64())

	s.Require().NoError(s.keeper.EndBlocker(s.ctx))

	s.Require().Zero(s.balance(types.ModuleAddress, burnAsset))
	s.Require().EqualValues(1_850, s.bank.GetSupply(s.ctx, burnAsset).Amount.Uint64())
	s.Require().EqualValues(1_000, s.balance(types.ModuleAddress, appconsts.BondDenom))
	s.Require().EqualValues(150, s.ledger().TotalShares)
	s.Require().True(s.hasEvent(types.EventTypeSweep))
}

func (s *KeeperTestSuite) TestEndBlockerNoop() {
	s.Require().NoError(s.keeper.EndBlocker(s.ctx))

	s.initialize()
	s.Require().NoError(s.keeper.EndBlocker(s.ctx))
	s.Require().False(s.hasEvent(types.EventTypeSweep))
}
