// Copyright (c) 2023-2024 The Tenebrium developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package utxo

import "fmt"

// ErrorCode identifies a kind of rule error.
type ErrorCode int

// These constants are used to identify a specific RuleError.
const (
	// ErrMissingUtxo indicates a transaction input references an
	// outpoint that is not present in the set.
	ErrMissingUtxo ErrorCode = iota

	// ErrDuplicateInput indicates a transaction spends the same
	// outpoint more than once.
	ErrDuplicateInput

	// ErrDuplicateOutput indicates applying a transaction would create
	// an outpoint that already exists in the set.
	ErrDuplicateOutput
)

// Map of ErrorCode values back to their constant names for pretty
// printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrMissingUtxo:     "ErrMissingUtxo",
	ErrDuplicateInput:  "ErrDuplicateInput",
	ErrDuplicateOutput: "ErrDuplicateOutput",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// RuleError identifies a rule violation while mutating the UTXO set.
// The caller can use type assertions to determine the specific
// violation via the ErrorCode field.
type RuleError struct {
	ErrorCode   ErrorCode // Describes the kind of error
	Description string    // Human readable description of the issue
}

// Error satisfies the error interface and prints human readable errors.
func (e RuleError) Error() string {
	return e.Description
}

// ruleError creates a RuleError given a set of arguments.
func ruleError(c ErrorCode, desc string) RuleError {
	return RuleError{ErrorCode: c, Description: desc}
}
