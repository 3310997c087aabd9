// Copyright (c) 2023-2024 The Tenebrium developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/json"
	"fmt"

	"github.com/FonsLucis/Tenebrium/chainhash"
)

// jsonOutPoint, jsonTxIn, jsonTxOut and jsonTx model the source JSON
// form of a transaction, the same field names the v1 canonical encoding
// uses.  Opaque byte strings arrive as JSON arrays of decimal byte
// values, which encoding/json decodes element-wise into byte slices.
type jsonOutPoint struct {
	Txid []byte `json:"txid"`
	Vout uint32 `json:"vout"`
}

type jsonTxIn struct {
	Prevout   jsonOutPoint `json:"prevout"`
	ScriptSig []byte       `json:"script_sig"`
	Sequence  uint32       `json:"sequence"`
}

type jsonTxOut struct {
	Value        uint64 `json:"value"`
	ScriptPubkey []byte `json:"script_pubkey"`
}

type jsonTx struct {
	Version  int32       `json:"version"`
	Vin      []jsonTxIn  `json:"vin"`
	Vout     []jsonTxOut `json:"vout"`
	LockTime uint32      `json:"lock_time"`
}

// TxFromJSON decodes a transaction from its source JSON form.  The
// source field order does not matter; only the field names do.  A
// prevout txid that is not exactly 32 bytes is rejected rather than
// padded or truncated, and the decoded transaction is validated before
// being returned.
func TxFromJSON(data []byte) (*MsgTx, error) {
	var jtx jsonTx
	if err := json.Unmarshal(data, &jtx); err != nil {
		return nil, messageError("TxFromJSON", err.Error())
	}

	msg := &MsgTx{
		Version:  jtx.Version,
		TxIn:     make([]*TxIn, 0, len(jtx.Vin)),
		TxOut:    make([]*TxOut, 0, len(jtx.Vout)),
		LockTime: jtx.LockTime,
	}

	for i, vin := range jtx.Vin {
		if len(vin.Prevout.Txid) != chainhash.HashSize {
			str := fmt.Sprintf("input %d: prevout txid is %d bytes, "+
				"want %d", i, len(vin.Prevout.Txid), chainhash.HashSize)
			return nil, messageError("TxFromJSON", str)
		}

		ti := &TxIn{
			SignatureScript: vin.ScriptSig,
			Sequence:        vin.Sequence,
		}
		copy(ti.PreviousOutPoint.Hash[:], vin.Prevout.Txid)
		ti.PreviousOutPoint.Index = vin.Prevout.Vout
		msg.TxIn = append(msg.TxIn, ti)
	}

	for _, vout := range jtx.Vout {
		msg.TxOut = append(msg.TxOut, &TxOut{
			Value:    vout.Value,
			PkScript: vout.ScriptPubkey,
		})
	}

	if err := msg.Validate(); err != nil {
		return nil, err
	}
	return msg, nil
}

// MarshalJSON returns the v1 canonical encoding, so a transaction
// embedded in any JSON document reproduces the pinned legacy form.
func (msg *MsgTx) MarshalJSON() ([]byte, error) {
	return msg.CanonicalBytesV1()
}

// UnmarshalJSON decodes a transaction from its source JSON form.  See
// TxFromJSON.
func (msg *MsgTx) UnmarshalJSON(data []byte) error {
	tx, err := TxFromJSON(data)
	if err != nil {
		return err
	}
	*msg = *tx
	return nil
}
