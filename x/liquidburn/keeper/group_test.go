package keeper_test

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/celestiaorg/liquidburn/pkg/appconsts"
	"github.com/celestiaorg/liquidburn/x/liquidburn/types"
)

func (s *KeeperTestSuite) TestExecuteGroupResults() {
	results, err := s.keeper.ExecuteGroup(s.ctx, types.NewGroup(
		types.NewCallStep(creator, types.InitializeCall{BurnAsset: burnAsset, Admin: admin}),
		types.NewPaymentStep(admin, types.ModuleAddress, 400),
		types.NewCallStep(admin, types.FundCall{}),
		types.NewAssetTransferStep(alice, types.ModuleAddress, burnAsset, 40),
		types.NewCallStep(alice, types.BurnCall{Amount: 40}),
		types.NewCallStep(alice, types.ClaimCall{}),
	))
	s.Require().NoError(err)
	s.Require().Equal([]types.StepResult{
		{Index: 0, Kind: types.StepKindCall, Method: types.MethodInitialize},
		{Index: 1, Kind: types.StepKindPayment, Value: 400},
		{Index: 2, Kind: types.StepKindCall, Method: types.MethodFund},
		{Index: 3, Kind: types.StepKindAssetTransfer, Value: 40},
		{Index: 4, Kind: types.StepKindCall, Method: types.MethodBurn, Value: 40},
		{Index: 5, Kind: types.StepKindCall, Method: types.MethodClaim, Value: 400},
	}, results)

	ledger := s.ledger()
	s.Require().Zero(ledger.RewardPool)
	s.Require().Zero(ledger.TotalShares)
	s.Require().EqualValues(40, ledger.TotalBurned)
	s.Require().EqualValues(400, s.balance(alice, appconsts.BondDenom))
}

func (s *KeeperTestSuite) TestExecuteGroupIsAtomic() {
	s.initialize()

	_, err := s.keeper.ExecuteGroup(s.ctx, types.NewGroup(
		types.NewPaymentStep(admin, types.ModuleAddress, 500),
		types.NewCallStep(alice, types.FundCall{}),
	))
	s.Require().ErrorIs(err, types.ErrUnauthorized)
	s.Require().ErrorContains(err, "step 1")

	s.Require().Zero(s.ledger().RewardPool)
	s.Require().EqualValues(10_000_000, s.balance(admin, appconsts.BondDenom))
	s.Require().Zero(s.balance(types.ModuleAddress, appconsts.BondDenom))
}

func (s *KeeperTestSuite) TestExecuteGroupRequiresAdjacentTransfer() {
	s.initialize()

	_, err := s.keeper.ExecuteGroup(s.ctx, types.NewGroup(
		types.NewAssetTransferStep(alice, types.ModuleAddress, burnAsset, 100),
		types.NewPaymentStep(admin, types.ModuleAddress, 1),
		types.NewCallStep(alice, types.BurnCall{Amount: 100}),
	))
	s.Require().ErrorIs(err, types.ErrMissingTransfer)
	s.Require().EqualValues(1_000, s.balance(alice, burnAsset))
	s.Require().Zero(s.ledger().TotalShares)

	_, err = s.keeper.ExecuteGroup(s.ctx, types.NewGroup(
		types.NewCallStep(admin, types.FundCall{}),
	))
	s.Require().ErrorIs(err, types.ErrMissingTransfer)
}

func (s *KeeperTestSuite) TestExecuteGroupTransferBacksOneCall() {
	s.initialize()

	_, err := s.keeper.ExecuteGroup(s.ctx, types.NewGroup(
		types.NewAssetTransferStep(alice, types.ModuleAddress, burnAsset, 100),
		types.NewCallStep(alice, types.BurnCall{Amount: 100}),
		types.NewCallStep(alice, types.BurnCall{Amount: 100}),
	))
	s.Require().ErrorIs(err, types.ErrMissingTransfer)
	s.Require().ErrorContains(err, "step 2")
	s.Require().Zero(s.shares(alice))
	s.Require().EqualValues(1_000, s.balance(alice, burnAsset))
}

func (s *KeeperTestSuite) TestExecuteGroupFundWithAssetTransfer() {
	s.initialize()

	_, err := s.keeper.ExecuteGroup(s.ctx, types.NewGroup(
		types.NewAssetTransferStep(alice, types.ModuleAddress, burnAsset, 100),
		types.NewCallStep(admin, types.FundCall{}),
	))
	s.Require().ErrorIs(err, types.ErrMissingTransfer)
}

func (s *KeeperTestSuite) TestExecuteGroupInsufficientFunds() {
	s.initialize()

	_, err := s.keeper.ExecuteGroup(s.ctx, types.NewGroup(
		types.NewAssetTransferStep(alice, types.ModuleAddress, burnAsset, 5_000),
		types.NewCallStep(alice, types.BurnCall{Amount: 5_000}),
	))
	s.Require().ErrorIs(err, sdkerrors.ErrInsufficientFunds)
	s.Require().ErrorContains(err, "step 0")
	s.Require().Zero(s.ledger().TotalShares)
}

func (s *KeeperTestSuite) TestExecuteGroupInvalid() {
	_, err := s.keeper.ExecuteGroup(s.ctx, types.NewGroup())
	s.Require().ErrorIs(err, types.ErrInvalidGroup)

	_, err = s.keeper.ExecuteGroup(s.ctx, types.NewGroup(types.NewCallStep(alice, nil)))
	s.Require().ErrorIs(err, types.ErrInvalidGroup)
}

func (s *KeeperTestSuite) TestExecuteGroupRejectsTransfersFromLedgerAccount() {
	s.initialize()
	_, err := s.keeper.ExecuteGroup(s.ctx, types.NewGroup(types.NewPaymentStep(admin, types.ModuleAddress, 5)))
	s.Require().NoError(err)

	_, err = s.keeper.ExecuteGroup(s.ctx, types.NewGroup(
		types.NewAssetTransferStep(alice, types.ModuleAddress, burnAsset, 100),
		types.NewCallStep(alice, types.BurnCall{Amount: 100}),
		types.NewAssetTransferStep(types.ModuleAddress, alice, burnAsset, 100),
		types.NewPaymentStep(types.ModuleAddress, alice, 5),
	))
	s.Require().ErrorIs(err, types.ErrInvalidTransfer)
	s.Require().ErrorContains(err, "ledger account can only pay out through claim")

	s.Require().Zero(s.shares(alice))
	s.Require().Zero(s.ledger().TotalShares)
	s.Require().Zero(s.ledger().TotalBurned)
	s.Require().EqualValues(1_000, s.balance(alice, burnAsset))
	s.Require().Zero(s.balance(alice, appconsts.BondDenom))
	s.Require().EqualValues(5, s.balance(types.ModuleAddress, appconsts.BondDenom))
}
