// Copyright (c) 2023-2024 The Tenebrium developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package wire implements the tenebrium transaction model and its two
canonical encodings.

A transaction has exactly two canonical byte representations: the
legacy v1 form, a pinned JSON layout kept for backward identity
compatibility, and the v2 form, a fixed little-endian binary layout in
which every variable-length field is immediately preceded by its exact
byte length.  Both encoders are pure functions of the transaction and
produce byte-identical output across conforming implementations, which
is what allows independent parties to agree on a transaction identifier
without exchanging the encoded bytes.

The transaction identifier for each version is the double SHA-256 of
that version's canonical bytes.  The two identifiers are derived from
different byte strings and are not expected to be equal.

# Errors

Errors returned by this package are either the raw underlying error or
*wire.MessageError, the latter indicating a transaction that violates a
structural invariant (malformed input).  Encoders reject malformed
transactions before writing any output.
*/
package wire
