// Copyright (c) 2023-2024 The Tenebrium developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestTxFromJSON ensures decoding the source JSON form yields the
// expected transaction and that marshaling reproduces the canonical v1
// bytes.
func TestTxFromJSON(t *testing.T) {
	src := `{"version":1,"vin":[{"prevout":{"txid":` + zeroTxidJSON() +
		`,"vout":5},"script_sig":[104,105],"sequence":4294967295}],` +
		`"vout":[{"value":18446744073709551615,"script_pubkey":[106]}],` +
		`"lock_time":100}`

	tx, err := TxFromJSON([]byte(src))
	require.NoError(t, err)

	require.Equal(t, int32(1), tx.Version)
	require.Equal(t, uint32(100), tx.LockTime)
	require.Len(t, tx.TxIn, 1)
	require.Len(t, tx.TxOut, 1)
	require.Equal(t, uint32(5), tx.TxIn[0].PreviousOutPoint.Index)
	require.Equal(t, []byte("hi"), tx.TxIn[0].SignatureScript)
	require.Equal(t, MaxTxInSequenceNum, tx.TxIn[0].Sequence)
	require.Equal(t, ^uint64(0), tx.TxOut[0].Value)
	require.Equal(t, []byte{106}, tx.TxOut[0].PkScript)

	// Marshaling goes through the canonical v1 encoder, so the result
	// is the source document itself.
	out, err := tx.MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, src, string(out))

	// UnmarshalJSON round trip.
	var decoded MsgTx
	require.NoError(t, decoded.UnmarshalJSON(out))
	require.Equal(t, tx, &decoded)
}

// TestTxFromJSONErrors ensures malformed source documents are rejected
// with a MessageError.
func TestTxFromJSONErrors(t *testing.T) {
	shortTxid := "[" + strings.Repeat("0,", 30) + "0]"
	longTxid := "[" + strings.Repeat("0,", 32) + "0]"

	tests := []struct {
		name string
		src  string
	}{
		{
			name: "not json",
			src:  "to the moon",
		},
		{
			name: "txid too short",
			src: `{"version":1,"vin":[{"prevout":{"txid":` + shortTxid +
				`,"vout":0},"script_sig":[],"sequence":0}],"vout":[],"lock_time":0}`,
		},
		{
			name: "txid too long",
			src: `{"version":1,"vin":[{"prevout":{"txid":` + longTxid +
				`,"vout":0},"script_sig":[],"sequence":0}],"vout":[],"lock_time":0}`,
		},
		{
			name: "byte value out of range",
			src: `{"version":1,"vin":[{"prevout":{"txid":` + zeroTxidJSON() +
				`,"vout":0},"script_sig":[256],"sequence":0}],"vout":[],"lock_time":0}`,
		},
		{
			name: "negative output value",
			src: `{"version":1,"vin":[],"vout":[{"value":-1,"script_pubkey":[]}],"lock_time":0}`,
		},
	}

	for _, test := range tests {
		tx, err := TxFromJSON([]byte(test.src))
		require.Errorf(t, err, "%s: expected error", test.name)
		require.Nilf(t, tx, "%s: expected nil tx", test.name)
		require.IsTypef(t, &MessageError{}, err, "%s: wrong error type",
			test.name)
	}
}

// TestTxFromJSONNegativeVersion ensures the version field is signed.
func TestTxFromJSONNegativeVersion(t *testing.T) {
	src := `{"version":-2,"vin":[],"vout":[],"lock_time":0}`
	tx, err := TxFromJSON([]byte(src))
	require.NoError(t, err)
	require.Equal(t, int32(-2), tx.Version)

	out, err := tx.CanonicalBytesV1()
	require.NoError(t, err)
	require.Equal(t, `{"version":-2,"vin":[],"vout":[],"lock_time":0}`,
		string(out))

	// The v2 form encodes the version as its little-endian two's
	// complement.
	b, err := tx.CanonicalBytesV2()
	require.NoError(t, err)
	require.Equal(t, []byte{0xfe, 0xff, 0xff, 0xff}, b[:4])
}
