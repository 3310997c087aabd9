// Copyright (c) 2023-2024 The Tenebrium developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package utxo implements the set of unspent transaction outputs and
// the migration helpers for moving outpoints from the legacy v1
// transaction identifiers to the canonical v2 identifiers.
//
// The set performs structural checks only: missing prevouts, duplicate
// spends and outpoint collisions.  It does not interpret scripts,
// verify signatures or enforce value conservation.
package utxo

import (
	"fmt"

	"github.com/FonsLucis/Tenebrium/wire"
)

// SpentUtxo pairs a spent outpoint with the output it referenced, so a
// rollback can restore it.
type SpentUtxo struct {
	OutPoint wire.OutPoint
	TxOut    *wire.TxOut
}

// ApplyReceipt describes the changes made by ApplyTx.  Passing it to
// Rollback undoes the application.
type ApplyReceipt struct {
	Removed  []SpentUtxo
	Inserted []wire.OutPoint
}

// UtxoSet models a mutable set of unspent transaction outputs.  The
// implementations in this package are not safe for concurrent access.
type UtxoSet interface {
	// Fetch returns the output referenced by the provided outpoint
	// along with whether it exists in the set.
	Fetch(op wire.OutPoint) (*wire.TxOut, bool)

	// Insert adds the provided output to the set keyed by the provided
	// outpoint, replacing any existing entry.
	Insert(op wire.OutPoint, txOut *wire.TxOut)

	// Remove deletes the entry for the provided outpoint and returns
	// it along with whether it existed.
	Remove(op wire.OutPoint) (*wire.TxOut, bool)

	// ApplyTx atomically spends the transaction's inputs and creates
	// its outputs, returning a receipt that Rollback can reverse.  On
	// error the set is unchanged.
	ApplyTx(tx *wire.MsgTx) (*ApplyReceipt, error)

	// Rollback reverses a previous ApplyTx given its receipt.
	Rollback(receipt *ApplyReceipt)
}

// MemUtxoSet is a map-backed UtxoSet kept entirely in memory.
type MemUtxoSet struct {
	entries map[wire.OutPoint]*wire.TxOut
}

// Enforce MemUtxoSet satisfies the UtxoSet interface.
var _ UtxoSet = (*MemUtxoSet)(nil)

// NewMemUtxoSet returns a new empty in-memory UTXO set.
func NewMemUtxoSet() *MemUtxoSet {
	return &MemUtxoSet{
		entries: make(map[wire.OutPoint]*wire.TxOut),
	}
}

// Fetch returns the output referenced by the provided outpoint along
// with whether it exists in the set.
func (s *MemUtxoSet) Fetch(op wire.OutPoint) (*wire.TxOut, bool) {
	txOut, ok := s.entries[op]
	return txOut, ok
}

// Insert adds the provided output to the set keyed by the provided
// outpoint, replacing any existing entry.
func (s *MemUtxoSet) Insert(op wire.OutPoint, txOut *wire.TxOut) {
	s.entries[op] = txOut
}

// Remove deletes the entry for the provided outpoint and returns it
// along with whether it existed.
func (s *MemUtxoSet) Remove(op wire.OutPoint) (*wire.TxOut, bool) {
	txOut, ok := s.entries[op]
	if ok {
		delete(s.entries, op)
	}
	return txOut, ok
}

// Len returns the number of entries in the set.
func (s *MemUtxoSet) Len() int {
	return len(s.entries)
}

// ApplyTx atomically spends the transaction's inputs and creates its
// outputs keyed by the v2 transaction identifier.  Duplicate spends
// within the transaction, missing prevouts and outpoint collisions all
// leave the set unchanged.
func (s *MemUtxoSet) ApplyTx(tx *wire.MsgTx) (*ApplyReceipt, error) {
	if err := tx.Validate(); err != nil {
		return nil, err
	}

	// Reject duplicate spends within the transaction up front so no
	// mutation needs undoing for this case.
	seen := make(map[wire.OutPoint]struct{}, len(tx.TxIn))
	for _, ti := range tx.TxIn {
		if _, ok := seen[ti.PreviousOutPoint]; ok {
			str := fmt.Sprintf("transaction spends outpoint %v more "+
				"than once", ti.PreviousOutPoint)
			return nil, ruleError(ErrDuplicateInput, str)
		}
		seen[ti.PreviousOutPoint] = struct{}{}
	}

	receipt := &ApplyReceipt{}

	// Spend the inputs one by one, restoring any prior removals if a
	// referenced outpoint turns out to be missing.
	for _, ti := range tx.TxIn {
		txOut, ok := s.Remove(ti.PreviousOutPoint)
		if !ok {
			for i := len(receipt.Removed) - 1; i >= 0; i-- {
				s.Insert(receipt.Removed[i].OutPoint,
					receipt.Removed[i].TxOut)
			}
			str := fmt.Sprintf("missing utxo %v", ti.PreviousOutPoint)
			return nil, ruleError(ErrMissingUtxo, str)
		}
		receipt.Removed = append(receipt.Removed, SpentUtxo{
			OutPoint: ti.PreviousOutPoint,
			TxOut:    txOut,
		})
	}

	outPoints, err := tx.MakeOutPoints()
	if err != nil {
		s.Rollback(receipt)
		return nil, err
	}

	// Create the new outputs, rolling everything back on a collision.
	for i, op := range outPoints {
		if _, ok := s.entries[op]; ok {
			s.Rollback(receipt)
			str := fmt.Sprintf("duplicate output %v", op)
			return nil, ruleError(ErrDuplicateOutput, str)
		}
		s.Insert(op, tx.TxOut[i])
		receipt.Inserted = append(receipt.Inserted, op)
	}

	log.Tracef("Applied transaction: spent %d outputs, created %d",
		len(receipt.Removed), len(receipt.Inserted))
	return receipt, nil
}

// Rollback reverses a previous ApplyTx given its receipt.
func (s *MemUtxoSet) Rollback(receipt *ApplyReceipt) {
	for _, op := range receipt.Inserted {
		s.Remove(op)
	}
	for _, spent := range receipt.Removed {
		s.Insert(spent.OutPoint, spent.TxOut)
	}

	log.Tracef("Rolled back transaction: restored %d outputs, removed %d",
		len(receipt.Removed), len(receipt.Inserted))
}
