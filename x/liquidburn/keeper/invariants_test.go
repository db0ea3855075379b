package keeper_test

import (
	"github.com/celestiaorg/liquidburn/x/liquidburn/keeper"
)

func (s *KeeperTestSuite) TestInvariantsHold() {
	invariant := keeper.AllInvariants(s.keeper)

	_, broken := invariant(s.ctx)
	s.Require().False(broken)

	s.initialize()
	s.fund(1_000_000)
	s.burn(alice, 100)
	s.burn(bob, 300)
	_, err := s.keeper.Claim(s.ctx, alice)
	s.Require().NoError(err)

	msg, broken := invariant(s.ctx)
	s.Require().False(broken, msg)
}

func (s *KeeperTestSuite) TestTotalSharesInvariantBroken() {
	s.initialize()
	s.burn(alice, 100)
	s.Require().NoError(s.keeper.SetShareRecord(s.ctx, bob, 5))

	msg, broken := keeper.TotalSharesInvariant(s.keeper)(s.ctx)
	s.Require().True(broken)
	s.Require().Contains(msg, "total shares: 100")
}

func (s *KeeperTestSuite) TestNonZeroSharesInvariantBroken() {
	s.initialize()
	s.Require().NoError(s.keeper.SetShareRecord(s.ctx, bob, 0))

	msg, broken := keeper.NonZeroSharesInvariant(s.keeper)(s.ctx)
	s.Require().True(broken)
	s.Require().Contains(msg, "found 1 zero share records")
}

func (s *KeeperTestSuite) TestRewardSolvencyInvariantBroken() {
	s.initialize()
	s.fund(100)
	ledger := s.ledger()
	ledger.RewardPool = 101
	s.Require().NoError(s.keeper.SetLedgerRecord(s.ctx, ledger))

	_, broken := keeper.RewardSolvencyInvariant(s.keeper)(s.ctx)
	s.Require().True(broken)

	_, broken = keeper.AllInvariants(s.keeper)(s.ctx)
	s.Require().True(broken)
}

func (s *KeeperTestSuite) TestSharesWithoutLedgerBreaksInvariant() {
	s.Require().NoError(s.keeper.SetShareRecord(s.ctx, alice, 1))

	_, broken := keeper.TotalSharesInvariant(s.keeper)(s.ctx)
	s.Require().True(broken)
}

