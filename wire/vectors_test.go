// Copyright (c) 2023-2024 The Tenebrium developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// vectorRecord mirrors one entry of the cross-language test vector
// document.
type vectorRecord struct {
	Name        string `json:"name"`
	Tx          MsgTx  `json:"tx"`
	CanonicalV1 string `json:"canonical_v1"`
	CanonicalV2 string `json:"canonical_v2"`
	TxidV1      string `json:"txid_v1"`
	TxidV2      string `json:"txid_v2"`
}

// TestCrossLanguageVectors verifies both canonical encodings and both
// identifiers against the shared vector corpus.  Any divergence here
// means this implementation no longer agrees with the other
// implementations on transaction identity.
func TestCrossLanguageVectors(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("testdata", "vectors.json"))
	require.NoError(t, err)

	// Some Windows tools write a BOM; tolerate it.
	raw = bytes.TrimPrefix(raw, []byte{0xef, 0xbb, 0xbf})

	var records []vectorRecord
	require.NoError(t, json.Unmarshal(raw, &records))
	require.NotEmpty(t, records)

	for _, rec := range records {
		rec := rec
		t.Run(rec.Name, func(t *testing.T) {
			c2, err := rec.Tx.CanonicalBytesV2()
			require.NoError(t, err)
			require.Equal(t, rec.CanonicalV2, hex.EncodeToString(c2),
				"canonical_v2 mismatch")

			txid2, err := rec.Tx.TxHashV2()
			require.NoError(t, err)
			require.Equal(t, rec.TxidV2, txid2.String(), "txid_v2 mismatch")

			c1, err := rec.Tx.CanonicalBytesV1()
			require.NoError(t, err)
			require.Equal(t, rec.CanonicalV1, hex.EncodeToString(c1),
				"canonical_v1 mismatch")

			txid1, err := rec.Tx.TxHashV1()
			require.NoError(t, err)
			require.Equal(t, rec.TxidV1, txid1.String(), "txid_v1 mismatch")
		})
	}
}
