// Package statevec: sentinel error set.
//
// Every public operation reports failures through these sentinels and
// callers match them with errors.Is. Nothing in the package panics on
// user input.
package statevec

import "errors"

var (
	// ErrQubitCount indicates a negative register size.
	ErrQubitCount = errors.New("statevec: negative qubit count")

	// ErrTooManyQubits indicates a register size above MaxQubits.
	ErrTooManyQubits = errors.New("statevec: register exceeds MaxQubits")

	// ErrQubitRange indicates a qubit index outside [0, Qubits()).
	ErrQubitRange = errors.New("statevec: qubit index out of range")

	// ErrSameQubit indicates a two-qubit gate whose operands coincide.
	ErrSameQubit = errors.New("statevec: qubit pair must be distinct")

	// ErrStateRange indicates a basis-state index outside [0, Dim()).
	ErrStateRange = errors.New("statevec: basis state out of range")

	// ErrSizeMismatch indicates two registers of different qubit counts
	// where matching sizes are required.
	ErrSizeMismatch = errors.New("statevec: register size mismatch")

	// ErrNilCircuit indicates a nil *circuit.Circuit argument.
	ErrNilCircuit = errors.New("statevec: nil circuit")

	// ErrNilVector indicates a nil *Vector argument.
	ErrNilVector = errors.New("statevec: nil vector")

	// ErrNilRand indicates a nil random source passed to Sample.
	ErrNilRand = errors.New("statevec: nil random source")

	// ErrShots indicates a negative shot count passed to Sample.
	ErrShots = errors.New("statevec: negative shot count")

	// ErrUnknownOp indicates a gate operation outside the supported set.
	ErrUnknownOp = errors.New("statevec: unknown gate operation")
)
