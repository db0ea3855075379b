package appconsts

const (
	// LocalChainID is used by the standalone ledger node.
	LocalChainID = "liquidburn-local"
	TestChainID  = "liquidburn-test"
)
