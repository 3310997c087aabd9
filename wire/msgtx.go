// Copyright (c) 2023-2024 The Tenebrium developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/FonsLucis/Tenebrium/chainhash"
)

const (
	// TxVersion is the current latest supported transaction version.
	TxVersion int32 = 1

	// MaxTxInSequenceNum is the maximum sequence number the sequence
	// field of a transaction input can be.
	MaxTxInSequenceNum uint32 = 0xffffffff

	// MaxScriptSize is the maximum allowed script size in bytes for
	// both signature scripts and public key scripts.
	MaxScriptSize = 10000

	// MaxTxInOut is the maximum allowed number of inputs or outputs in
	// a transaction.
	MaxTxInOut = 10000
)

const (
	// defaultTxInOutAlloc is the default size used for the backing
	// array for transaction inputs and outputs.  The array will
	// dynamically grow as needed, but this figure is intended to
	// provide enough space for the number of inputs and outputs in a
	// typical transaction without needing to grow the backing array
	// multiple times.
	defaultTxInOutAlloc = 15

	// minTxPayloadV2 is the size of the v2 canonical encoding of a
	// transaction with no inputs and no outputs.  Version 4 bytes +
	// input count 8 bytes + output count 8 bytes + lock time 4 bytes.
	minTxPayloadV2 = 4 + 8 + 8 + 4

	// txInOverheadV2 is the fixed per-input cost of the v2 canonical
	// encoding.  Previous outpoint hash 32 bytes + previous outpoint
	// index 4 bytes + signature script length 8 bytes + sequence 4
	// bytes.
	txInOverheadV2 = chainhash.HashSize + 4 + 8 + 4

	// txOutOverheadV2 is the fixed per-output cost of the v2 canonical
	// encoding.  Value 8 bytes + public key script length 8 bytes.
	txOutOverheadV2 = 8 + 8
)

// OutPoint defines a tenebrium data type that is used to track previous
// transaction outputs.
type OutPoint struct {
	Hash  chainhash.Hash
	Index uint32
}

// NewOutPoint returns a new tenebrium transaction outpoint point with
// the provided hash and index.
func NewOutPoint(hash *chainhash.Hash, index uint32) *OutPoint {
	return &OutPoint{
		Hash:  *hash,
		Index: index,
	}
}

// String returns the OutPoint in the human-readable form "hash:index".
func (o OutPoint) String() string {
	// Allocate enough for hash string, colon, and 10 decimal digits,
	// which will fit any uint32 index.
	buf := make([]byte, 2*chainhash.HashSize+1, 2*chainhash.HashSize+1+10)
	copy(buf, o.Hash.String())
	buf[2*chainhash.HashSize] = ':'
	buf = strconv.AppendUint(buf, uint64(o.Index), 10)
	return string(buf)
}

// TxIn defines a tenebrium transaction input.
type TxIn struct {
	PreviousOutPoint OutPoint
	SignatureScript  []byte
	Sequence         uint32
}

// NewTxIn returns a new tenebrium transaction input with the provided
// previous outpoint point and signature script with a default sequence
// of MaxTxInSequenceNum.
func NewTxIn(prevOut *OutPoint, signatureScript []byte) *TxIn {
	return &TxIn{
		PreviousOutPoint: *prevOut,
		SignatureScript:  signatureScript,
		Sequence:         MaxTxInSequenceNum,
	}
}

// TxOut defines a tenebrium transaction output.
type TxOut struct {
	Value    uint64
	PkScript []byte
}

// NewTxOut returns a new tenebrium transaction output with the provided
// transaction value and public key script.
func NewTxOut(value uint64, pkScript []byte) *TxOut {
	return &TxOut{
		Value:    value,
		PkScript: pkScript,
	}
}

// MsgTx implements the tenebrium transaction.  It is an immutable value
// as far as the encoders are concerned: every encoding and hashing
// method borrows the transaction read-only and returns freshly
// allocated output.
type MsgTx struct {
	Version  int32
	TxIn     []*TxIn
	TxOut    []*TxOut
	LockTime uint32
}

// AddTxIn adds a transaction input to the message.
func (msg *MsgTx) AddTxIn(ti *TxIn) {
	msg.TxIn = append(msg.TxIn, ti)
}

// AddTxOut adds a transaction output to the message.
func (msg *MsgTx) AddTxOut(to *TxOut) {
	msg.TxOut = append(msg.TxOut, to)
}

// Copy creates a deep copy of a transaction so that the original does
// not get modified when the copy is manipulated.
func (msg *MsgTx) Copy() *MsgTx {
	// Create new tx and start by copying primitive values and making
	// space for the transaction inputs and outputs.
	newTx := MsgTx{
		Version:  msg.Version,
		TxIn:     make([]*TxIn, 0, len(msg.TxIn)),
		TxOut:    make([]*TxOut, 0, len(msg.TxOut)),
		LockTime: msg.LockTime,
	}

	// Deep copy the old TxIn data.
	for _, oldTxIn := range msg.TxIn {
		// Deep copy the old signature script.
		var newScript []byte
		oldScript := oldTxIn.SignatureScript
		oldScriptLen := len(oldScript)
		if oldScriptLen > 0 {
			newScript = make([]byte, oldScriptLen)
			copy(newScript, oldScript[:oldScriptLen])
		}

		newTxIn := TxIn{
			PreviousOutPoint: oldTxIn.PreviousOutPoint,
			SignatureScript:  newScript,
			Sequence:         oldTxIn.Sequence,
		}
		newTx.TxIn = append(newTx.TxIn, &newTxIn)
	}

	// Deep copy the old TxOut data.
	for _, oldTxOut := range msg.TxOut {
		// Deep copy the old PkScript.
		var newScript []byte
		oldScript := oldTxOut.PkScript
		oldScriptLen := len(oldScript)
		if oldScriptLen > 0 {
			newScript = make([]byte, oldScriptLen)
			copy(newScript, oldScript[:oldScriptLen])
		}

		newTxOut := TxOut{
			Value:    oldTxOut.Value,
			PkScript: newScript,
		}
		newTx.TxOut = append(newTx.TxOut, &newTxOut)
	}

	return &newTx
}

// Validate performs the structural checks every canonical encoding
// requires: input and output counts within MaxTxInOut and every script
// within MaxScriptSize.  Encoders run it before writing any output so a
// malformed transaction never produces partial bytes.
func (msg *MsgTx) Validate() error {
	if len(msg.TxIn) > MaxTxInOut {
		str := fmt.Sprintf("too many transaction inputs [count %d, max %d]",
			len(msg.TxIn), MaxTxInOut)
		return messageError("MsgTx.Validate", str)
	}
	if len(msg.TxOut) > MaxTxInOut {
		str := fmt.Sprintf("too many transaction outputs [count %d, max %d]",
			len(msg.TxOut), MaxTxInOut)
		return messageError("MsgTx.Validate", str)
	}
	for i, ti := range msg.TxIn {
		if len(ti.SignatureScript) > MaxScriptSize {
			str := fmt.Sprintf("transaction input %d signature script is "+
				"too large [size %d, max %d]", i,
				len(ti.SignatureScript), MaxScriptSize)
			return messageError("MsgTx.Validate", str)
		}
	}
	for i, to := range msg.TxOut {
		if len(to.PkScript) > MaxScriptSize {
			str := fmt.Sprintf("transaction output %d public key script "+
				"is too large [size %d, max %d]", i,
				len(to.PkScript), MaxScriptSize)
			return messageError("MsgTx.Validate", str)
		}
	}
	return nil
}

// WriteOutPoint encodes op to the tenebrium v2 canonical encoding for
// an OutPoint to w.  The hash is written verbatim followed by the
// little-endian output index.
func WriteOutPoint(w io.Writer, op *OutPoint) error {
	_, err := w.Write(op.Hash[:])
	if err != nil {
		return err
	}

	return putUint32(w, op.Index)
}

// SerializeV2 writes the transaction to w using the v2 canonical
// encoding: all multi-byte integers little-endian, every
// variable-length field immediately preceded by its exact byte length
// as a uint64, no padding or alignment.  The transaction is validated
// first so nothing is written for a malformed transaction.
func (msg *MsgTx) SerializeV2(w io.Writer) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	err := putUint32(w, uint32(msg.Version))
	if err != nil {
		return err
	}

	err = putUint64(w, uint64(len(msg.TxIn)))
	if err != nil {
		return err
	}
	for _, ti := range msg.TxIn {
		err = WriteOutPoint(w, &ti.PreviousOutPoint)
		if err != nil {
			return err
		}

		err = putUint64(w, uint64(len(ti.SignatureScript)))
		if err != nil {
			return err
		}
		_, err = w.Write(ti.SignatureScript)
		if err != nil {
			return err
		}

		err = putUint32(w, ti.Sequence)
		if err != nil {
			return err
		}
	}

	err = putUint64(w, uint64(len(msg.TxOut)))
	if err != nil {
		return err
	}
	for _, to := range msg.TxOut {
		err = putUint64(w, to.Value)
		if err != nil {
			return err
		}

		err = putUint64(w, uint64(len(to.PkScript)))
		if err != nil {
			return err
		}
		_, err = w.Write(to.PkScript)
		if err != nil {
			return err
		}
	}

	return putUint32(w, msg.LockTime)
}

// SerializeSizeV2 returns the number of bytes it would take to
// serialize the transaction with the v2 canonical encoding.
func (msg *MsgTx) SerializeSizeV2() int {
	n := minTxPayloadV2
	for _, ti := range msg.TxIn {
		n += txInOverheadV2 + len(ti.SignatureScript)
	}
	for _, to := range msg.TxOut {
		n += txOutOverheadV2 + len(to.PkScript)
	}
	return n
}

// CanonicalBytesV2 returns the v2 canonical encoding of the transaction
// as a freshly allocated byte slice.
func (msg *MsgTx) CanonicalBytesV2() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, msg.SerializeSizeV2()))
	if err := msg.SerializeV2(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// TxHashV2 computes the transaction identifier for the v2 canonical
// encoding, the double SHA-256 of the canonical bytes.
func (msg *MsgTx) TxHashV2() (chainhash.Hash, error) {
	b, err := msg.CanonicalBytesV2()
	if err != nil {
		return chainhash.Hash{}, err
	}
	return chainhash.DoubleHashH(b), nil
}

// TxHashV1 computes the legacy transaction identifier, the double
// SHA-256 of the v1 canonical bytes.  It is retained for backward
// identity compatibility and is an independent value from TxHashV2.
func (msg *MsgTx) TxHashV1() (chainhash.Hash, error) {
	b, err := msg.CanonicalBytesV1()
	if err != nil {
		return chainhash.Hash{}, err
	}
	return chainhash.DoubleHashH(b), nil
}

// TxHash returns the default transaction identifier, which is the v2
// identifier.
func (msg *MsgTx) TxHash() (chainhash.Hash, error) {
	return msg.TxHashV2()
}

// SigHashV2 computes a signing hash over the v2 canonical encoding of
// the transaction with every signature script cleared.
func (msg *MsgTx) SigHashV2() (chainhash.Hash, error) {
	txCopy := msg.Copy()
	for _, ti := range txCopy.TxIn {
		ti.SignatureScript = nil
	}
	return txCopy.TxHashV2()
}

// MakeOutPointsV2 returns the outpoints referencing this transaction's
// outputs, keyed by the v2 transaction identifier and indexed in output
// order.
func (msg *MsgTx) MakeOutPointsV2() ([]OutPoint, error) {
	txid, err := msg.TxHashV2()
	if err != nil {
		return nil, err
	}

	outPoints := make([]OutPoint, 0, len(msg.TxOut))
	for i := range msg.TxOut {
		outPoints = append(outPoints, OutPoint{
			Hash:  txid,
			Index: uint32(i),
		})
	}
	return outPoints, nil
}

// MakeOutPoints is an alias for MakeOutPointsV2, the default since the
// v2 identifier became canonical.
func (msg *MsgTx) MakeOutPoints() ([]OutPoint, error) {
	return msg.MakeOutPointsV2()
}

// NewMsgTx returns a new tenebrium tx message.  The return instance has
// a default version of TxVersion and there are no transaction inputs or
// outputs.  Also, the lock time is set to zero to indicate the
// transaction is valid immediately as opposed to some time in future.
func NewMsgTx() *MsgTx {
	return &MsgTx{
		Version: TxVersion,
		TxIn:    make([]*TxIn, 0, defaultTxInOutAlloc),
		TxOut:   make([]*TxOut, 0, defaultTxInOutAlloc),
	}
}
