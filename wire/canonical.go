// Copyright (c) 2023-2024 The Tenebrium developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"strconv"

	"github.com/FonsLucis/Tenebrium/chainhash"
)

// The v1 canonical encoding is a structurally valid JSON document whose
// byte layout is pinned exactly: object keys appear in one fixed order,
// there is no insignificant whitespace, integers are bare decimals, and
// opaque byte strings (prevout txid, signature script, public key
// script) are arrays of decimal byte values.  A single extraneous space
// changes the legacy transaction identifier, so the document is built
// by explicit sequential writes rather than any generic JSON
// marshaler, which would impose its own field ordering and byte string
// representation.

// writeJSONUint appends the bare decimal representation of val.
func writeJSONUint(buf *bytes.Buffer, val uint64) {
	buf.WriteString(strconv.FormatUint(val, 10))
}

// writeJSONBytes appends b as a JSON array of decimal byte values,
// e.g. [171,205].  This is the representation the v1 vector corpus was
// generated with and must not be changed.
func writeJSONBytes(buf *bytes.Buffer, b []byte) {
	buf.WriteByte('[')
	for i, c := range b {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.FormatUint(uint64(c), 10))
	}
	buf.WriteByte(']')
}

// serializeSizeV1Estimate returns an upper-bound capacity estimate for
// the v1 canonical encoding so the output buffer rarely reallocates.
// Byte arrays render at up to four characters per byte ("255,").
func (msg *MsgTx) serializeSizeV1Estimate() int {
	n := 64
	for _, ti := range msg.TxIn {
		n += 72 + 4*(chainhash.HashSize+len(ti.SignatureScript))
	}
	for _, to := range msg.TxOut {
		n += 48 + 4*len(to.PkScript) + 20
	}
	return n
}

// CanonicalBytesV1 returns the legacy v1 canonical encoding of the
// transaction: the UTF-8 bytes of
//
//	{"version":V,"vin":[...],"vout":[...],"lock_time":L}
//
// with each vin rendered as
// {"prevout":{"txid":T,"vout":N},"script_sig":S,"sequence":Q} and each
// vout as {"value":V,"script_pubkey":P}.  Field order is fixed
// regardless of how the transaction was constructed.
func (msg *MsgTx) CanonicalBytesV1() ([]byte, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	buf := bytes.NewBuffer(make([]byte, 0, msg.serializeSizeV1Estimate()))

	buf.WriteString(`{"version":`)
	buf.WriteString(strconv.FormatInt(int64(msg.Version), 10))

	buf.WriteString(`,"vin":[`)
	for i, ti := range msg.TxIn {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(`{"prevout":{"txid":`)
		writeJSONBytes(buf, ti.PreviousOutPoint.Hash[:])
		buf.WriteString(`,"vout":`)
		writeJSONUint(buf, uint64(ti.PreviousOutPoint.Index))
		buf.WriteString(`},"script_sig":`)
		writeJSONBytes(buf, ti.SignatureScript)
		buf.WriteString(`,"sequence":`)
		writeJSONUint(buf, uint64(ti.Sequence))
		buf.WriteByte('}')
	}

	buf.WriteString(`],"vout":[`)
	for i, to := range msg.TxOut {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(`{"value":`)
		writeJSONUint(buf, to.Value)
		buf.WriteString(`,"script_pubkey":`)
		writeJSONBytes(buf, to.PkScript)
		buf.WriteByte('}')
	}

	buf.WriteString(`],"lock_time":`)
	writeJSONUint(buf, uint64(msg.LockTime))
	buf.WriteByte('}')

	return buf.Bytes(), nil
}
