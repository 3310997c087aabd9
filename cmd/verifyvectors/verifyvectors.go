// Copyright (c) 2023-2024 The Tenebrium developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// verifyvectors checks the cross-language test vector document against
// this implementation: for every record it recomputes both canonical
// encodings and both transaction identifiers from the source
// transaction and compares them to the expected hex values.
//
// Exit codes: 0 if the document loads and every comparison matches, 1
// if the document loads but at least one comparison fails (or the
// document is present but malformed), 2 if the document cannot be
// located.
package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/FonsLucis/Tenebrium/wire"
	"github.com/btcsuite/btclog"
)

var (
	cfg *config
	log btclog.Logger
)

// utf8BOM is tolerated at the start of the vector document since some
// Windows tools prepend one.
var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// vectorRecord is one entry of the test vector document.  The expected
// fields are lowercase hex encodings of the canonical bytes and the
// 32-byte identifiers.
type vectorRecord struct {
	Name        string     `json:"name"`
	Tx          wire.MsgTx `json:"tx"`
	CanonicalV1 string     `json:"canonical_v1"`
	CanonicalV2 string     `json:"canonical_v2"`
	TxidV1      string     `json:"txid_v1"`
	TxidV2      string     `json:"txid_v2"`
}

// verifyRecord recomputes the four derived values for one record and
// prints a diagnostic for every field that disagrees.  It returns the
// number of mismatches so the caller can keep going through the rest of
// the document.
func verifyRecord(rec *vectorRecord) int {
	mismatches := 0
	check := func(field, expected string, actual []byte) {
		if got := hex.EncodeToString(actual); got != expected {
			fmt.Printf("  %s mismatch for %s: expected %s, got %s\n",
				field, rec.Name, expected, got)
			mismatches++
		}
	}

	c2, err := rec.Tx.CanonicalBytesV2()
	if err != nil {
		fmt.Printf("  canonical_v2 failed for %s: %v\n", rec.Name, err)
		return mismatches + 1
	}
	txid2, err := rec.Tx.TxHashV2()
	if err != nil {
		fmt.Printf("  txid_v2 failed for %s: %v\n", rec.Name, err)
		return mismatches + 1
	}
	check("canonical_v2", rec.CanonicalV2, c2)
	check("txid_v2", rec.TxidV2, txid2[:])

	c1, err := rec.Tx.CanonicalBytesV1()
	if err != nil {
		fmt.Printf("  canonical_v1 failed for %s: %v\n", rec.Name, err)
		return mismatches + 1
	}
	txid1, err := rec.Tx.TxHashV1()
	if err != nil {
		fmt.Printf("  txid_v1 failed for %s: %v\n", rec.Name, err)
		return mismatches + 1
	}
	check("canonical_v1", rec.CanonicalV1, c1)
	check("txid_v1", rec.TxidV1, txid1[:])

	return mismatches
}

// realMain is the real main function for the utility.  It returns the
// process exit code so deferred functions still run before os.Exit.
func realMain() int {
	// Load configuration and parse command line.
	tcfg, _, err := loadConfig()
	if err != nil {
		return 1
	}
	cfg = tcfg

	// Setup logging.
	backendLogger := btclog.NewBackend(os.Stderr)
	log = backendLogger.Logger("VRFY")

	raw, err := os.ReadFile(cfg.Vectors)
	if err != nil {
		if os.IsNotExist(err) {
			log.Errorf("Vector document not found: %s", cfg.Vectors)
			return 2
		}
		log.Errorf("Failed to read vector document %s: %v", cfg.Vectors, err)
		return 1
	}
	raw = bytes.TrimPrefix(raw, utf8BOM)

	var records []vectorRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		log.Errorf("Failed to parse vector document %s: %v", cfg.Vectors, err)
		return 1
	}
	log.Infof("Loaded %d vectors from %s", len(records), cfg.Vectors)

	failures := 0
	for i := range records {
		rec := &records[i]
		if !cfg.Quiet {
			fmt.Printf("Checking vector: %s\n", rec.Name)
		}
		failures += verifyRecord(rec)
	}

	if failures == 0 {
		fmt.Println("All vectors match")
		return 0
	}
	fmt.Printf("%d mismatches found\n", failures)
	return 1
}

func main() {
	os.Exit(realMain())
}
