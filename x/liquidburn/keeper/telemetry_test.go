package keeper_test

import (
	"strings"
	"testing"
	"time"

	"github.com/cosmos/cosmos-sdk/telemetry"
	metrics "github.com/hashicorp/go-metrics"
	"github.com/stretchr/testify/require"

	"github.com/celestiaorg/liquidburn/x/liquidburn/types"
)

// enableTestMetrics turns telemetry on and routes it into an in-memory sink.
func enableTestMetrics(t *testing.T) *metrics.InmemSink {
	t.Helper()
	_, err := telemetry.New(telemetry.Config{Enabled: true, ServiceName: types.ModuleName})
	require.NoError(t, err)

	cfg := metrics.DefaultConfig("")
	cfg.EnableHostname = false
	cfg.EnableRuntimeMetrics = false
	sink := metrics.NewInmemSink(time.Hour, time.Hour)
	_, err = metrics.NewGlobal(cfg, sink)
	require.NoError(t, err)
	t.Cleanup(func() { _, _ = metrics.NewGlobal(cfg, &metrics.BlackholeSink{}) })
	return sink
}

func hasCounter(sink *metrics.InmemSink, name string) bool {
	for _, interval := range sink.Data() {
		for key := range interval.Counters {
			if strings.Contains(key, name) {
				return true
			}
		}
	}
	return false
}

func (s *KeeperTestSuite) TestTelemetryRecordsCommittedGroupsOnly() {
	sink := enableTestMetrics(s.T())
	s.initialize()

	_, err := s.keeper.ExecuteGroup(s.ctx, types.NewGroup(
		types.NewAssetTransferStep(alice, types.ModuleAddress, burnAsset, 100),
		types.NewCallStep(alice, types.BurnCall{Amount: 100}),
		types.NewCallStep(bob, types.ClaimCall{}),
	))
	s.Require().ErrorIs(err, types.ErrNoShares)
	s.Require().True(hasCounter(sink, "liquidburn.group.rejected"))
	s.Require().False(hasCounter(sink, "liquidburn.burned_amount"))

	s.burn(alice, 100)
	s.Require().True(hasCounter(sink, "liquidburn.burned_amount"))
}
