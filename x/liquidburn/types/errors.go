package types

import (
	"cosmossdk.io/errors"
)

// Authorization errors.
var (
	ErrUnauthorized = errors.Register(ModuleName, 2, "caller is not authorized")
)

// Lifecycle state errors.
var (
	ErrAlreadyInitialized  = errors.Register(ModuleName, 3, "already initialized")
	ErrNotInitialized      = errors.Register(ModuleName, 4, "contract not initialized")
	ErrNoShares            = errors.Register(ModuleName, 5, "no shares to claim")
	ErrNoOutstandingShares = errors.Register(ModuleName, 6, "no outstanding shares")
	ErrInconsistentLedger  = errors.Register(ModuleName, 16, "inconsistent ledger record")
)

// Validation errors.
var (
	ErrMissingTransfer = errors.Register(ModuleName, 7, "missing companion transfer")
	ErrInvalidTransfer = errors.Register(ModuleName, 8, "invalid companion transfer")
	ErrZeroAmount      = errors.Register(ModuleName, 9, "burn amount must be positive")
	ErrInvalidAsset    = errors.Register(ModuleName, 10, "invalid burn asset")
	ErrInvalidAddress  = errors.Register(ModuleName, 11, "invalid address")
	ErrInvalidGroup    = errors.Register(ModuleName, 12, "invalid atomic group")
	ErrInvalidGenesis  = errors.Register(ModuleName, 13, "invalid genesis state")
)

// Arithmetic errors.
var (
	ErrDustPayout = errors.Register(ModuleName, 14, "reward pool too small to claim")
	ErrOverflow   = errors.Register(ModuleName, 15, "arithmetic overflow")
)
