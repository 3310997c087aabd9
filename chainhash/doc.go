// Copyright (c) 2023-2024 The Tenebrium developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chainhash defines the hash functions used.
//
// This package provides a wrapper around the hash function used so the
// code that would need to change to support a different primitive is
// isolated in one place.  Tenebrium uses double SHA-256 for transaction
// identifiers.
package chainhash
