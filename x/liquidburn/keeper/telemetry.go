package keeper

import (
	"context"

	"github.com/cosmos/cosmos-sdk/telemetry"
	metrics "github.com/hashicorp/go-metrics"

	"github.com/celestiaorg/liquidburn/x/liquidburn/types"
)

func ledgerLabels(ledger types.Ledger) []metrics.Label {
	return []metrics.Label{telemetry.NewLabel("burn_asset", ledger.BurnAsset)}
}

func setLedgerGauges(ledger types.Ledger) {
	labels := ledgerLabels(ledger)
	telemetry.SetGaugeWithLabels([]string{types.ModuleName, "reward_pool"}, float32(ledger.RewardPool), labels)
	telemetry.SetGaugeWithLabels([]string{types.ModuleName, "total_shares"}, float32(ledger.TotalShares), labels)
}

func recordOperation(method, amountKey string, amount uint64, labels []metrics.Label) {
	telemetry.IncrCounterWithLabels([]string{types.ModuleName, method}, 1, labels)
	telemetry.IncrCounterWithLabels([]string{types.ModuleName, amountKey}, float32(amount), labels)
}

// recordGroup emits the metrics of a committed group. It must only be
// called once the group's writes are part of ctx.
func (k *Keeper) recordGroup(ctx context.Context, group types.Group, results []types.StepResult) {
	ledger, err := k.GetLedger(ctx)
	if err != nil {
		return
	}
	labels := ledgerLabels(ledger)

	for _, result := range results {
		switch result.Method {
		case types.MethodFund:
			if payment := group.PrecedingPayment(result.Index); payment != nil {
				recordOperation(types.MethodFund, "funded_amount", payment.Amount, labels)
			}
		case types.MethodBurn:
			if xfer := group.PrecedingAssetTransfer(result.Index); xfer != nil {
				recordOperation(types.MethodBurn, "burned_amount", xfer.Amount, labels)
			}
		case types.MethodClaim:
			recordOperation(types.MethodClaim, "claimed_amount", result.Value, labels)
		}
	}
	setLedgerGauges(ledger)
}

func recordRejectedGroup(reason string) {
	telemetry.IncrCounterWithLabels(
		[]string{types.ModuleName, "group", "rejected"},
		1,
		[]metrics.Label{telemetry.NewLabel("reason", reason)},
	)
}
