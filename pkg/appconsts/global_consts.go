package appconsts

// These constants cannot change throughout the lifetime of a ledger
// instance.
const (
	// BondDenom defines the native value unit. Reward pools are funded and
	// paid out in this denomination unless a node is configured otherwise.
	BondDenom = "utia"

	// Bech32PrefixAccAddr is the bech32 prefix used for account addresses.
	Bech32PrefixAccAddr = "celestia"

	// MaxGroupSize is the maximum number of steps an atomic group may carry.
	MaxGroupSize = 16

	// DefaultSeedAmount is the payment sent to a freshly deployed ledger
	// account so that it holds a non-zero native balance.
	DefaultSeedAmount uint64 = 1
)
