// Copyright (c) 2023-2024 The Tenebrium developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package utxo

import (
	"time"

	"github.com/FonsLucis/Tenebrium/chainhash"
	"github.com/FonsLucis/Tenebrium/wire"
)

// ReindexErrorKind classifies an error recorded while migrating
// outpoints from v1 to v2 transaction identifiers.
type ReindexErrorKind string

// The kinds of reindex errors.
const (
	ReindexErrMissingTx         ReindexErrorKind = "missing_tx"
	ReindexErrInvalidTx         ReindexErrorKind = "invalid_tx"
	ReindexErrDuplicateOutPoint ReindexErrorKind = "duplicate_out_point"
	ReindexErrOther             ReindexErrorKind = "other"
)

// ReindexErrorEntry records one error encountered during a reindex run.
// TxidV1 is nil when the legacy identifier of the offending transaction
// could not be computed.
type ReindexErrorEntry struct {
	Kind    ReindexErrorKind `json:"kind"`
	TxidV1  *chainhash.Hash  `json:"txid_v1"`
	Message string           `json:"message"`
}

// ReindexReport accumulates the results of a reindex run.
type ReindexReport struct {
	StartedAt    time.Time           `json:"started_at"`
	FinishedAt   time.Time           `json:"finished_at"`
	TotalInputs  uint64              `json:"total_inputs"`
	TotalOutputs uint64              `json:"total_outputs"`
	Skipped      uint64              `json:"skipped"`
	Errors       []ReindexErrorEntry `json:"errors"`
}

// NewReindexReport returns a report with the provided start time and no
// recorded work.
func NewReindexReport(startedAt time.Time) *ReindexReport {
	return &ReindexReport{
		StartedAt: startedAt,
		Errors:    make([]ReindexErrorEntry, 0),
	}
}

// Finish marks the report complete.
func (r *ReindexReport) Finish(finishedAt time.Time) {
	r.FinishedAt = finishedAt
}

// RecordError appends an error entry to the report.
func (r *ReindexReport) RecordError(entry ReindexErrorEntry) {
	r.Errors = append(r.Errors, entry)
}

// OutPointPair ties an outpoint keyed by the legacy v1 transaction
// identifier to the same output keyed by the v2 identifier.
type OutPointPair struct {
	V1 wire.OutPoint
	V2 wire.OutPoint
}

// MapOutPointsV1ToV2 returns, for each output of the provided
// transaction, the outpoint under the legacy v1 identifier paired with
// the outpoint under the canonical v2 identifier.  Output order is
// preserved.
func MapOutPointsV1ToV2(tx *wire.MsgTx) ([]OutPointPair, error) {
	txidV1, err := tx.TxHashV1()
	if err != nil {
		return nil, err
	}
	txidV2, err := tx.TxHashV2()
	if err != nil {
		return nil, err
	}

	pairs := make([]OutPointPair, 0, len(tx.TxOut))
	for i := range tx.TxOut {
		index := uint32(i)
		pairs = append(pairs, OutPointPair{
			V1: wire.OutPoint{Hash: txidV1, Index: index},
			V2: wire.OutPoint{Hash: txidV2, Index: index},
		})
	}

	log.Debugf("Mapped %d outpoints for transaction %v", len(pairs),
		txidV2)
	return pairs, nil
}
