package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// PaymentTransfer is a verified native value transfer that accompanies a
// Fund call.
type PaymentTransfer struct {
	Sender   sdk.AccAddress `json:"sender" yaml:"sender"`
	Receiver sdk.AccAddress `json:"receiver" yaml:"receiver"`
	Amount   uint64         `json:"amount,string" yaml:"amount"`
}

// AssetTransfer is a verified fungible asset transfer that accompanies a Burn
// call.
type AssetTransfer struct {
	Sender   sdk.AccAddress `json:"sender" yaml:"sender"`
	Receiver sdk.AccAddress `json:"receiver" yaml:"receiver"`
	Asset    string         `json:"asset" yaml:"asset"`
	Amount   uint64         `json:"amount,string" yaml:"amount"`
}

// VerifyFundingPayment checks that payment was sent by admin to the ledger
// account.
func VerifyFundingPayment(payment *PaymentTransfer, admin sdk.AccAddress) error {
	if payment == nil {
		return ErrMissingTransfer.Wrap("fund must follow a payment transfer")
	}
	if !IsModuleAddress(payment.Receiver) {
		return ErrInvalidTransfer.Wrap("funding payment must target the app account")
	}
	if !payment.Sender.Equals(admin) {
		return ErrInvalidTransfer.Wrap("funding payment must come from admin")
	}
	return nil
}

// VerifyBurnTransfer checks that xfer moved exactly amount units of
// burnAsset from caller to the ledger account.
func VerifyBurnTransfer(xfer *AssetTransfer, caller sdk.AccAddress, burnAsset string, amount uint64) error {
	if xfer == nil {
		return ErrMissingTransfer.Wrap("burn must follow an asset transfer")
	}
	if !xfer.Sender.Equals(caller) {
		return ErrInvalidTransfer.Wrap("asset sender must match app caller")
	}
	if !IsModuleAddress(xfer.Receiver) {
		return ErrInvalidTransfer.Wrap("asset must be sent to the app account")
	}
	if xfer.Asset != burnAsset {
		return ErrInvalidTransfer.Wrapf("asset id %q does not match initialized burn asset %q", xfer.Asset, burnAsset)
	}
	if xfer.Amount != amount {
		return ErrInvalidTransfer.Wrapf("asset transfer amount mismatch: transferred %d, declared %d", xfer.Amount, amount)
	}
	return nil
}
