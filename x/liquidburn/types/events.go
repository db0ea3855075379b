package types

import (
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	EventTypeInitialize = ModuleName + ".initialize"
	EventTypeFund       = ModuleName + ".fund"
	EventTypeBurn       = ModuleName + ".burn"
	EventTypeClaim      = ModuleName + ".claim"
	EventTypeSweep      = ModuleName + ".sweep"

	AttributeKeyBurnAsset   = "burn_asset"
	AttributeKeyAdmin       = "admin"
	AttributeKeyParticipant = "participant"
	AttributeKeyAmount      = "amount"
	AttributeKeyNewBalance  = "new_balance"
	AttributeKeyPayout      = "payout"
	AttributeKeyRewardPool  = "reward_pool"
	AttributeKeyTotalShares = "total_shares"
)

func NewInitializeEvent(burnAsset string, admin sdk.AccAddress) sdk.Event {
	return sdk.NewEvent(EventTypeInitialize,
		sdk.NewAttribute(AttributeKeyBurnAsset, burnAsset),
		sdk.NewAttribute(AttributeKeyAdmin, admin.String()),
	)
}

func NewFundEvent(amount, rewardPool uint64) sdk.Event {
	return sdk.NewEvent(EventTypeFund,
		sdk.NewAttribute(AttributeKeyAmount, formatUint(amount)),
		sdk.NewAttribute(AttributeKeyRewardPool, formatUint(rewardPool)),
	)
}

func NewBurnEvent(participant sdk.AccAddress, amount, newBalance, totalShares uint64) sdk.Event {
	return sdk.NewEvent(EventTypeBurn,
		sdk.NewAttribute(AttributeKeyParticipant, participant.String()),
		sdk.NewAttribute(AttributeKeyAmount, formatUint(amount)),
		sdk.NewAttribute(AttributeKeyNewBalance, formatUint(newBalance)),
		sdk.NewAttribute(AttributeKeyTotalShares, formatUint(totalShares)),
	)
}

func NewClaimEvent(participant sdk.AccAddress, payout, rewardPool, totalShares uint64) sdk.Event {
	return sdk.NewEvent(EventTypeClaim,
		sdk.NewAttribute(AttributeKeyParticipant, participant.String()),
		sdk.NewAttribute(AttributeKeyPayout, formatUint(payout)),
		sdk.NewAttribute(AttributeKeyRewardPool, formatUint(rewardPool)),
		sdk.NewAttribute(AttributeKeyTotalShares, formatUint(totalShares)),
	)
}

// NewSweepEvent is emitted when held burn asset units are destroyed.
func NewSweepEvent(burned sdk.Coin) sdk.Event {
	return sdk.NewEvent(EventTypeSweep,
		sdk.NewAttribute(AttributeKeyBurnAsset, burned.Denom),
		sdk.NewAttribute(AttributeKeyAmount, burned.Amount.String()),
	)
}

func formatUint(v uint64) string {
	return strconv.FormatUint(v, 10)
}
