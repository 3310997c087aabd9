// Copyright (c) 2023-2024 The Tenebrium developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// genvectors regenerates the cross-language test vector document: a
// fixed corpus of transactions together with their canonical v1/v2
// bytes and transaction identifiers, all hex encoded.  Other
// implementations verify themselves against this document.
package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/FonsLucis/Tenebrium/chainhash"
	"github.com/FonsLucis/Tenebrium/wire"
	flags "github.com/jessevdk/go-flags"
)

// config defines the configuration options for genvectors.
type config struct {
	OutFile string `short:"o" long:"outfile" description:"File to write the vector document to (- for stdout)"`
}

// vectorRecord is one entry of the generated document.  The transaction
// marshals through its canonical v1 form, so the embedded source form
// is itself byte-exact.
type vectorRecord struct {
	Name        string      `json:"name"`
	Tx          *wire.MsgTx `json:"tx"`
	CanonicalV1 string      `json:"canonical_v1"`
	CanonicalV2 string      `json:"canonical_v2"`
	TxidV1      string      `json:"txid_v1"`
	TxidV2      string      `json:"txid_v2"`
}

// repeatHash returns a hash with every byte set to b.
func repeatHash(b byte) *chainhash.Hash {
	var hash chainhash.Hash
	for i := range hash {
		hash[i] = b
	}
	return &hash
}

// corpusEntry names one corpus transaction.
type corpusEntry struct {
	name string
	tx   *wire.MsgTx
}

// corpus returns the fixed vector corpus.  The entries exercise the
// empty transaction, a typical single-input spend, multiple inputs and
// outputs, a large script, and extreme field values.
func corpus() []corpusEntry {
	empty := wire.NewMsgTx()

	simple := wire.NewMsgTx()
	simpleIn := wire.NewTxIn(wire.NewOutPoint(&chainhash.Hash{}, 0), nil)
	simpleIn.Sequence = 0
	simple.AddTxIn(simpleIn)
	simple.AddTxOut(wire.NewTxOut(50, nil))

	multi := wire.NewMsgTx()
	in1 := wire.NewTxIn(wire.NewOutPoint(repeatHash(0x01), 0), []byte("sig1"))
	in1.Sequence = 1
	in2 := wire.NewTxIn(wire.NewOutPoint(repeatHash(0x02), 1), []byte("sig2"))
	in2.Sequence = 2
	multi.AddTxIn(in1)
	multi.AddTxIn(in2)
	multi.AddTxOut(wire.NewTxOut(60, []byte("pk1")))
	multi.AddTxOut(wire.NewTxOut(39, []byte("pk2")))

	bigScript := make([]byte, 1000)
	for i := range bigScript {
		bigScript[i] = 0xab
	}
	boundary := wire.NewMsgTx()
	boundaryIn := wire.NewTxIn(wire.NewOutPoint(repeatHash(0x03), 0), bigScript)
	boundaryIn.Sequence = 0
	boundary.AddTxIn(boundaryIn)
	boundary.AddTxOut(wire.NewTxOut(1000, bigScript))

	edge := wire.NewMsgTx()
	edgeIn := wire.NewTxIn(wire.NewOutPoint(repeatHash(0x04), 0), nil)
	edgeIn.Sequence = 0
	edge.AddTxIn(edgeIn)
	edge.AddTxOut(wire.NewTxOut(^uint64(0), nil))

	return []corpusEntry{
		{name: "empty", tx: empty},
		{name: "simple", tx: simple},
		{name: "multiple_inputs", tx: multi},
		{name: "script_boundary", tx: boundary},
		{name: "edge_values", tx: edge},
	}
}

// buildRecord computes the four derived fields for one corpus entry.
func buildRecord(entry corpusEntry) (*vectorRecord, error) {
	c1, err := entry.tx.CanonicalBytesV1()
	if err != nil {
		return nil, err
	}
	c2, err := entry.tx.CanonicalBytesV2()
	if err != nil {
		return nil, err
	}
	txid1, err := entry.tx.TxHashV1()
	if err != nil {
		return nil, err
	}
	txid2, err := entry.tx.TxHashV2()
	if err != nil {
		return nil, err
	}

	return &vectorRecord{
		Name:        entry.name,
		Tx:          entry.tx,
		CanonicalV1: hex.EncodeToString(c1),
		CanonicalV2: hex.EncodeToString(c2),
		TxidV1:      txid1.String(),
		TxidV2:      txid2.String(),
	}, nil
}

func realMain() error {
	cfg := config{
		OutFile: "-",
	}
	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			return nil
		}
		return err
	}

	records := make([]*vectorRecord, 0, 5)
	for _, entry := range corpus() {
		rec, err := buildRecord(entry)
		if err != nil {
			return fmt.Errorf("vector %q: %v", entry.name, err)
		}
		records = append(records, rec)
	}

	out, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	out = append(out, '\n')

	if cfg.OutFile == "-" {
		_, err = os.Stdout.Write(out)
		return err
	}
	return os.WriteFile(cfg.OutFile, out, 0644)
}

func main() {
	if err := realMain(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
