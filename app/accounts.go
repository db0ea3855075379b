package app

import (
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"

	"github.com/celestiaorg/liquidburn/x/liquidburn/types"
)

// LedgerAccountName resolves to the ledger's own account.
const LedgerAccountName = "ledger"

// ResolveAccount turns an account reference into an address. A reference is
// either a bech32 address, the name "ledger" for the ledger account, or any
// other name, which is derived into a deterministic local account.
func ResolveAccount(ref string) (sdk.AccAddress, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, types.ErrInvalidAddress.Wrap("empty account reference")
	}
	if ref == LedgerAccountName {
		return types.ModuleAddress, nil
	}
	if strings.HasPrefix(ref, sdk.GetConfig().GetBech32AccountAddrPrefix()+"1") {
		addr, err := sdk.AccAddressFromBech32(ref)
		if err != nil {
			return nil, types.ErrInvalidAddress.Wrapf("%s: %s", ref, err)
		}
		return addr, nil
	}
	return NamedAccount(ref), nil
}

// NamedAccount derives the local account for name.
func NamedAccount(name string) sdk.AccAddress {
	return sdk.AccAddress(address.Module(Name, []byte(name)))
}
