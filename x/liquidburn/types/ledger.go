package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Ledger is the global ledger record. It is created once by Initialize and
// mutated by every other operation afterwards.
type Ledger struct {
	Initialized bool           `json:"initialized"`
	BurnAsset   string         `json:"burn_asset"`
	Admin       sdk.AccAddress `json:"admin"`
	TotalBurned uint64         `json:"total_burned,string"`
	TotalShares uint64         `json:"total_shares,string"`
	RewardPool  uint64         `json:"reward_pool,string"`
}

// ShareRecord is a participant's share balance. Records with zero shares are
// never stored.
type ShareRecord struct {
	Address sdk.AccAddress `json:"address"`
	Shares  uint64         `json:"shares,string"`
}

// NewLedger returns an initialized ledger with all counters zeroed.
func NewLedger(burnAsset string, admin sdk.AccAddress) Ledger {
	return Ledger{
		Initialized: true,
		BurnAsset:   burnAsset,
		Admin:       admin,
	}
}

// ValidateBurnAsset checks that burnAsset is a valid denom that is distinct
// from the reward denom.
func ValidateBurnAsset(burnAsset, rewardDenom string) error {
	if err := sdk.ValidateDenom(burnAsset); err != nil {
		return ErrInvalidAsset.Wrapf("%q: %s", burnAsset, err)
	}
	if burnAsset == rewardDenom {
		return ErrInvalidAsset.Wrapf("burn asset %q cannot be the reward denom", burnAsset)
	}
	return nil
}

// Validate performs stateless checks on a stored ledger record.
func (l Ledger) Validate() error {
	if !l.Initialized {
		return ErrNotInitialized
	}
	if err := sdk.ValidateDenom(l.BurnAsset); err != nil {
		return ErrInvalidAsset.Wrapf("%q: %s", l.BurnAsset, err)
	}
	if len(l.Admin) == 0 {
		return ErrInvalidAddress.Wrap("admin cannot be empty")
	}
	if l.TotalBurned < l.TotalShares {
		return ErrInconsistentLedger.Wrapf("total burned %d is below total shares %d", l.TotalBurned, l.TotalShares)
	}
	return nil
}

// CreditBurn returns the ledger after amount units of the burn asset have
// been converted into shares.
func (l Ledger) CreditBurn(amount uint64) (Ledger, error) {
	totalShares, err := addUint64(l.TotalShares, amount)
	if err != nil {
		return l, err
	}
	totalBurned, err := addUint64(l.TotalBurned, amount)
	if err != nil {
		return l, err
	}
	l.TotalShares = totalShares
	l.TotalBurned = totalBurned
	return l, nil
}

// CreditReward returns the ledger after amount value units have been added
// to the reward pool.
func (l Ledger) CreditReward(amount uint64) (Ledger, error) {
	pool, err := addUint64(l.RewardPool, amount)
	if err != nil {
		return l, err
	}
	l.RewardPool = pool
	return l, nil
}

// DebitClaim returns the ledger after a participant holding shares has been
// paid payout and their shares retired.
func (l Ledger) DebitClaim(shares, payout uint64) (Ledger, error) {
	if shares > l.TotalShares {
		return l, ErrOverflow.Wrapf("shares %d exceed total shares %d", shares, l.TotalShares)
	}
	if payout > l.RewardPool {
		return l, ErrOverflow.Wrapf("payout %d exceeds reward pool %d", payout, l.RewardPool)
	}
	l.TotalShares -= shares
	l.RewardPool -= payout
	return l, nil
}

// Payout returns the amount a participant holding shares may claim from the
// current pool.
func (l Ledger) Payout(shares uint64) (uint64, error) {
	if shares == 0 {
		return 0, ErrNoShares
	}
	if l.TotalShares == 0 {
		return 0, ErrNoOutstandingShares
	}
	if shares > l.TotalShares {
		return 0, ErrOverflow.Wrapf("shares %d exceed total shares %d", shares, l.TotalShares)
	}
	payout := CalculatePayout(l.RewardPool, shares, l.TotalShares)
	if payout == 0 {
		return 0, ErrDustPayout.Wrapf("pool %d, shares %d of %d", l.RewardPool, shares, l.TotalShares)
	}
	return payout, nil
}

// CalculatePayout returns floor(pool * shares / totalShares). The product is
// computed at arbitrary precision so it cannot overflow. totalShares must be
// non-zero and shares must not exceed it, which bounds the result by pool.
func CalculatePayout(pool, shares, totalShares uint64) uint64 {
	product := math.NewIntFromUint64(pool).Mul(math.NewIntFromUint64(shares))
	return product.Quo(math.NewIntFromUint64(totalShares)).Uint64()
}

// String implements the Stringer interface.
func (l Ledger) String() string {
	return fmt.Sprintf("Ledger{initialized=%t asset=%s admin=%s burned=%d shares=%d pool=%d}",
		l.Initialized, l.BurnAsset, l.Admin, l.TotalBurned, l.TotalShares, l.RewardPool)
}

func addUint64(a, b uint64) (uint64, error) {
	sum := a + b
	if sum < a {
		return 0, ErrOverflow.Wrapf("%d + %d", a, b)
	}
	return sum, nil
}
