package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/celestiaorg/liquidburn/x/liquidburn/types"
)

func TestLedgerValueCodec(t *testing.T) {
	ledger := types.Ledger{
		Initialized: true,
		BurnAsset:   "ubrn",
		Admin:       testAdmin,
		TotalBurned: 400,
		TotalShares: 300,
		RewardPool:  750_000,
	}

	bz, err := types.LedgerValueCodec.Encode(ledger)
	require.NoError(t, err)
	require.Len(t, bz, 26+1+len("ubrn")+1+len(testAdmin))

	decoded, err := types.LedgerValueCodec.Decode(bz)
	require.NoError(t, err)
	require.Equal(t, ledger, decoded)

	jsonBz, err := types.LedgerValueCodec.EncodeJSON(ledger)
	require.NoError(t, err)
	fromJSON, err := types.LedgerValueCodec.DecodeJSON(jsonBz)
	require.NoError(t, err)
	require.Equal(t, ledger, fromJSON)

	require.Equal(t, "liquidburn.Ledger", types.LedgerValueCodec.ValueType())
	require.Contains(t, types.LedgerValueCodec.Stringify(ledger), "pool=750000")
}

func TestLedgerValueCodecDecodeErrors(t *testing.T) {
	bz, err := types.LedgerValueCodec.Encode(types.NewLedger("ubrn", testAdmin))
	require.NoError(t, err)

	testCases := []struct {
		name   string
		bz     []byte
		errMsg string
	}{
		{"empty", nil, "too short"},
		{"unknown version", append([]byte{9}, bz[1:]...), "unsupported ledger encoding version"},
		{"truncated admin", bz[:len(bz)-1], "admin"},
		{"trailing bytes", append(append([]byte{}, bz...), 0), "trailing bytes"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := types.LedgerValueCodec.Decode(tc.bz)
			require.ErrorContains(t, err, tc.errMsg)
		})
	}
}
