package types

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"

	collcodec "cosmossdk.io/collections/codec"
)

// LedgerValueCodec encodes the global ledger record for collections.
//
// Layout: version | flags | total_burned | total_shares | reward_pool |
// len(burn_asset) | burn_asset | len(admin) | admin. Counters are big-endian
// uint64, lengths are single bytes.
var LedgerValueCodec collcodec.ValueCodec[Ledger] = ledgerValueCodec{}

const (
	ledgerEncodingVersion byte = 1
	flagInitialized       byte = 1 << 0

	ledgerFixedLen = 1 + 1 + 3*8
)

type ledgerValueCodec struct{}

func (ledgerValueCodec) Encode(l Ledger) ([]byte, error) {
	if len(l.BurnAsset) > math.MaxUint8 {
		return nil, fmt.Errorf("burn asset too long: %d bytes", len(l.BurnAsset))
	}
	if len(l.Admin) > math.MaxUint8 {
		return nil, fmt.Errorf("admin address too long: %d bytes", len(l.Admin))
	}

	bz := make([]byte, 0, ledgerFixedLen+2+len(l.BurnAsset)+len(l.Admin))
	bz = append(bz, ledgerEncodingVersion)

	var flags byte
	if l.Initialized {
		flags |= flagInitialized
	}
	bz = append(bz, flags)
	bz = binary.BigEndian.AppendUint64(bz, l.TotalBurned)
	bz = binary.BigEndian.AppendUint64(bz, l.TotalShares)
	bz = binary.BigEndian.AppendUint64(bz, l.RewardPool)
	bz = append(bz, byte(len(l.BurnAsset)))
	bz = append(bz, l.BurnAsset...)
	bz = append(bz, byte(len(l.Admin)))
	bz = append(bz, l.Admin...)
	return bz, nil
}

func (ledgerValueCodec) Decode(bz []byte) (Ledger, error) {
	if len(bz) < ledgerFixedLen+2 {
		return Ledger{}, fmt.Errorf("ledger record too short: %d bytes", len(bz))
	}
	if bz[0] != ledgerEncodingVersion {
		return Ledger{}, fmt.Errorf("unsupported ledger encoding version %d", bz[0])
	}

	l := Ledger{
		Initialized: bz[1]&flagInitialized != 0,
		TotalBurned: binary.BigEndian.Uint64(bz[2:10]),
		TotalShares: binary.BigEndian.Uint64(bz[10:18]),
		RewardPool:  binary.BigEndian.Uint64(bz[18:26]),
	}

	rest := bz[ledgerFixedLen:]
	asset, rest, err := readLengthPrefixed(rest)
	if err != nil {
		return Ledger{}, fmt.Errorf("burn asset: %w", err)
	}
	admin, rest, err := readLengthPrefixed(rest)
	if err != nil {
		return Ledger{}, fmt.Errorf("admin: %w", err)
	}
	if len(rest) != 0 {
		return Ledger{}, fmt.Errorf("ledger record has %d trailing bytes", len(rest))
	}

	l.BurnAsset = string(asset)
	if len(admin) > 0 {
		l.Admin = append([]byte(nil), admin...)
	}
	return l, nil
}

func (ledgerValueCodec) EncodeJSON(l Ledger) ([]byte, error) {
	return json.Marshal(l)
}

func (ledgerValueCodec) DecodeJSON(bz []byte) (Ledger, error) {
	var l Ledger
	err := json.Unmarshal(bz, &l)
	return l, err
}

func (ledgerValueCodec) Stringify(l Ledger) string {
	return l.String()
}

func (ledgerValueCodec) ValueType() string {
	return "liquidburn.Ledger"
}

func readLengthPrefixed(bz []byte) (value, rest []byte, err error) {
	if len(bz) < 1 {
		return nil, nil, fmt.Errorf("missing length prefix")
	}
	n := int(bz[0])
	if len(bz) < 1+n {
		return nil, nil, fmt.Errorf("want %d bytes, have %d", n, len(bz)-1)
	}
	return bz[1 : 1+n], bz[1+n:], nil
}
