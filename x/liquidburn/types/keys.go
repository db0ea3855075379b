package types

import (
	"cosmossdk.io/collections"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

const (
	// ModuleName is the name of the liquidburn module.
	ModuleName = "liquidburn"

	// StoreKey is the store key for the liquidburn module.
	StoreKey = ModuleName
)

var (
	LedgerKey    = collections.NewPrefix(0)
	SharesPrefix = collections.NewPrefix(1)
)

// ModuleAddress is the ledger's own account. Funding payments and burn
// transfers must target it and claims are paid out of it.
var ModuleAddress = authtypes.NewModuleAddress(ModuleName)

// IsModuleAddress reports whether addr is the ledger's own account.
func IsModuleAddress(addr sdk.AccAddress) bool {
	return ModuleAddress.Equals(addr)
}
