// SPDX-License-Identifier: MIT
// Package qasm: sentinel error set.
//
// Decode wraps every sentinel with the one-based line number of the
// offending statement ("qasm: line 7: ..."); use errors.Is to match.
package qasm

import (
	"errors"
	"fmt"
)

var (
	// ErrNilCircuit is returned by Encode when the circuit is nil.
	ErrNilCircuit = errors.New("qasm: nil circuit")

	// ErrVersion flags an OPENQASM header other than version 2.0.
	ErrVersion = errors.New("qasm: unsupported OPENQASM version")

	// ErrNoRegister is returned when a program declares no quantum
	// register, or applies a gate before declaring one.
	ErrNoRegister = errors.New("qasm: no qreg declared")

	// ErrSyntax flags a statement the dialect cannot parse: malformed
	// operands, wrong arity for a known gate, duplicate registers, or
	// a measurement into an undeclared or out-of-range classical bit.
	ErrSyntax = errors.New("qasm: malformed statement")

	// ErrUnsupportedGate flags a syntactically valid gate whose
	// mnemonic is outside the supported set.
	ErrUnsupportedGate = errors.New("qasm: unsupported gate")

	// ErrAngle flags a gate parameter that is neither a multiple of
	// pi nor a plain decimal.
	ErrAngle = errors.New("qasm: malformed angle expression")
)

// lineErr ties err to the one-based source line n while keeping the
// sentinel reachable through errors.Is.
func lineErr(n int, err error) error {
	return fmt.Errorf("qasm: line %d: %w", n, err)
}
