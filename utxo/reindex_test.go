// Copyright (c) 2023-2024 The Tenebrium developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package utxo

import (
	"testing"
	"time"

	"github.com/FonsLucis/Tenebrium/wire"
	"github.com/stretchr/testify/require"
)

// TestMapOutPointsV1ToV2 ensures every output maps to a pair keyed by
// the legacy and canonical identifiers with its original index.
func TestMapOutPointsV1ToV2(t *testing.T) {
	tx := wire.NewMsgTx()
	in := wire.NewTxIn(wire.NewOutPoint(repeatHash(0x01), 0), []byte("sig"))
	in.Sequence = 1
	tx.AddTxIn(in)
	tx.AddTxOut(wire.NewTxOut(60, []byte("pk1")))
	tx.AddTxOut(wire.NewTxOut(39, []byte("pk2")))

	pairs, err := MapOutPointsV1ToV2(tx)
	require.NoError(t, err)
	require.Len(t, pairs, 2)

	txidV1, err := tx.TxHashV1()
	require.NoError(t, err)
	txidV2, err := tx.TxHashV2()
	require.NoError(t, err)
	require.False(t, txidV1.IsEqual(&txidV2))

	for i, pair := range pairs {
		require.Equal(t, txidV1, pair.V1.Hash)
		require.Equal(t, txidV2, pair.V2.Hash)
		require.Equal(t, uint32(i), pair.V1.Index)
		require.Equal(t, uint32(i), pair.V2.Index)
	}
}

// TestMapOutPointsV1ToV2Empty ensures a transaction without outputs
// maps to no pairs.
func TestMapOutPointsV1ToV2Empty(t *testing.T) {
	pairs, err := MapOutPointsV1ToV2(wire.NewMsgTx())
	require.NoError(t, err)
	require.Empty(t, pairs)
}

// TestMapOutPointsV1ToV2Invalid ensures structurally invalid
// transactions cannot be mapped.
func TestMapOutPointsV1ToV2Invalid(t *testing.T) {
	tx := wire.NewMsgTx()
	tx.AddTxOut(wire.NewTxOut(1, make([]byte, wire.MaxScriptSize+1)))

	pairs, err := MapOutPointsV1ToV2(tx)
	require.Error(t, err)
	require.IsType(t, &wire.MessageError{}, err)
	require.Nil(t, pairs)
}

// TestReindexReport exercises the report accounting helpers.
func TestReindexReport(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	report := NewReindexReport(start)
	require.Equal(t, start, report.StartedAt)
	require.Empty(t, report.Errors)

	tx := wire.NewMsgTx()
	txidV1, err := tx.TxHashV1()
	require.NoError(t, err)

	report.TotalInputs = 3
	report.TotalOutputs = 5
	report.Skipped = 1
	report.RecordError(ReindexErrorEntry{
		Kind:    ReindexErrMissingTx,
		TxidV1:  &txidV1,
		Message: "referenced transaction not found",
	})
	report.RecordError(ReindexErrorEntry{
		Kind:    ReindexErrOther,
		Message: "identifier unavailable",
	})

	finish := start.Add(2 * time.Second)
	report.Finish(finish)
	require.Equal(t, finish, report.FinishedAt)

	require.Len(t, report.Errors, 2)
	require.Equal(t, ReindexErrMissingTx, report.Errors[0].Kind)
	require.Equal(t, &txidV1, report.Errors[0].TxidV1)
	require.Equal(t, ReindexErrOther, report.Errors[1].Kind)
	require.Nil(t, report.Errors[1].TxidV1)
}
