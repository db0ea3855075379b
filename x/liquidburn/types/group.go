package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/celestiaorg/liquidburn/pkg/appconsts"
)

// Step kinds.
const (
	StepKindPayment       = "payment"
	StepKindAssetTransfer = "asset_transfer"
	StepKindCall          = "call"
)

// Call methods.
const (
	MethodInitialize = "initialize"
	MethodFund       = "fund"
	MethodBurn       = "burn"
	MethodClaim      = "claim"
)

// Step is one action of an atomic group.
type Step interface {
	Kind() string
	ValidateBasic() error
}

// Call is the ledger method invoked by a CallStep.
type Call interface {
	Method() string
}

// PaymentStep transfers native value units from Sender to Receiver.
type PaymentStep struct {
	PaymentTransfer
}

// AssetTransferStep transfers units of Asset from Sender to Receiver.
type AssetTransferStep struct {
	AssetTransfer
}

// CallStep invokes a ledger method on behalf of Caller.
type CallStep struct {
	Caller sdk.AccAddress
	Call   Call
}

type (
	InitializeCall struct {
		BurnAsset string
		Admin     sdk.AccAddress
	}
	FundCall  struct{}
	BurnCall  struct{ Amount uint64 }
	ClaimCall struct{}
)

func (InitializeCall) Method() string { return MethodInitialize }
func (FundCall) Method() string       { return MethodFund }
func (BurnCall) Method() string       { return MethodBurn }
func (ClaimCall) Method() string      { return MethodClaim }

// NewPaymentStep returns a payment of amount value units.
func NewPaymentStep(sender, receiver sdk.AccAddress, amount uint64) PaymentStep {
	return PaymentStep{PaymentTransfer{Sender: sender, Receiver: receiver, Amount: amount}}
}

// NewAssetTransferStep returns a transfer of amount units of asset.
func NewAssetTransferStep(sender, receiver sdk.AccAddress, asset string, amount uint64) AssetTransferStep {
	return AssetTransferStep{AssetTransfer{Sender: sender, Receiver: receiver, Asset: asset, Amount: amount}}
}

// NewCallStep returns a call of the given method by caller.
func NewCallStep(caller sdk.AccAddress, call Call) CallStep {
	return CallStep{Caller: caller, Call: call}
}

func (PaymentStep) Kind() string       { return StepKindPayment }
func (AssetTransferStep) Kind() string { return StepKindAssetTransfer }
func (CallStep) Kind() string          { return StepKindCall }

func (s PaymentStep) ValidateBasic() error {
	if len(s.Sender) == 0 || len(s.Receiver) == 0 {
		return ErrInvalidAddress.Wrap("payment sender and receiver are required")
	}
	return validateTransferSender(s.Sender)
}

func (s AssetTransferStep) ValidateBasic() error {
	if len(s.Sender) == 0 || len(s.Receiver) == 0 {
		return ErrInvalidAddress.Wrap("asset transfer sender and receiver are required")
	}
	if err := sdk.ValidateDenom(s.Asset); err != nil {
		return ErrInvalidAsset.Wrapf("%q: %s", s.Asset, err)
	}
	return validateTransferSender(s.Sender)
}

// validateTransferSender rejects transfer steps that spend from the ledger
// account. Value leaves the ledger account only as a claim payout.
func validateTransferSender(sender sdk.AccAddress) error {
	if IsModuleAddress(sender) {
		return ErrInvalidTransfer.Wrap("ledger account can only pay out through claim")
	}
	return nil
}

func (s CallStep) ValidateBasic() error {
	if len(s.Caller) == 0 {
		return ErrInvalidAddress.Wrap("caller is required")
	}
	if s.Call == nil {
		return ErrInvalidGroup.Wrap("call step has no method")
	}
	return nil
}

// Group is an ordered list of steps that commits all together or not at all.
type Group struct {
	Steps []Step
}

// NewGroup returns a group of the given steps.
func NewGroup(steps ...Step) Group {
	return Group{Steps: steps}
}

// ValidateBasic performs stateless checks on the group and each of its steps.
func (g Group) ValidateBasic() error {
	if len(g.Steps) == 0 {
		return ErrInvalidGroup.Wrap("group is empty")
	}
	if len(g.Steps) > appconsts.MaxGroupSize {
		return ErrInvalidGroup.Wrapf("group has %d steps, max %d", len(g.Steps), appconsts.MaxGroupSize)
	}
	for i, step := range g.Steps {
		if step == nil {
			return ErrInvalidGroup.Wrapf("step %d is nil", i)
		}
		if err := step.ValidateBasic(); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	return nil
}

// PrecedingPayment returns the payment immediately before step i, or nil if
// step i is first or the preceding step is not a payment.
func (g Group) PrecedingPayment(i int) *PaymentTransfer {
	if i <= 0 || i > len(g.Steps) {
		return nil
	}
	if step, ok := g.Steps[i-1].(PaymentStep); ok {
		payment := step.PaymentTransfer
		return &payment
	}
	return nil
}

// PrecedingAssetTransfer returns the asset transfer immediately before step
// i, or nil if step i is first or the preceding step is not an asset
// transfer.
func (g Group) PrecedingAssetTransfer(i int) *AssetTransfer {
	if i <= 0 || i > len(g.Steps) {
		return nil
	}
	if step, ok := g.Steps[i-1].(AssetTransferStep); ok {
		xfer := step.AssetTransfer
		return &xfer
	}
	return nil
}

// StepResult describes the outcome of one successful step.
type StepResult struct {
	Index  int    `json:"index"`
	Kind   string `json:"kind"`
	Method string `json:"method,omitempty"`
	// Value is the new share balance for burn and the payout for claim.
	Value uint64 `json:"value,string"`
}
