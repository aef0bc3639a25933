// Package circuit: central Gate and Op types plus the sentinel error set.
//
// This file declares the value types shared across the package; the Circuit
// container and its methods live in circuit.go and compose.go.
package circuit

import (
	"errors"
	"fmt"
)

// Sentinel errors for circuit construction and mutation.
// All appenders return these; callers branch with errors.Is.
var (
	// ErrQubitCount indicates a negative register size passed to New.
	ErrQubitCount = errors.New("circuit: negative qubit count")

	// ErrQubitRange indicates a qubit index outside [0, Qubits()).
	ErrQubitRange = errors.New("circuit: qubit index out of range")

	// ErrSameQubit indicates a two-qubit operation whose operands coincide.
	ErrSameQubit = errors.New("circuit: qubit pair must be distinct")

	// ErrGateRange indicates a gate position outside [0, Len()).
	ErrGateRange = errors.New("circuit: gate index out of range")

	// ErrNilCircuit indicates a nil *Circuit argument.
	ErrNilCircuit = errors.New("circuit: nil circuit")

	// ErrQubitMap indicates an Append qubit mapping of the wrong arity,
	// with repeated entries, or referencing the receiver out of range.
	ErrQubitMap = errors.New("circuit: invalid qubit mapping")
)

// NoQubit marks an unused Control slot on single-qubit gates.
const NoQubit = -1

// Op identifies a gate operation. The zero value is OpH.
type Op uint8

const (
	// OpH is the single-qubit basis rotation (Hadamard).
	OpH Op = iota

	// OpX is the single-qubit bit flip (NOT).
	OpX

	// OpPhase is the single-qubit phase rotation by Theta radians.
	OpPhase

	// OpCPhase is the controlled phase rotation by Theta radians.
	OpCPhase

	// OpCX is the controlled-X (CNOT).
	OpCX

	// OpSwap exchanges two qubit wires.
	OpSwap
)

// opNames maps Op values to their OpenQASM 2.0 mnemonics.
var opNames = [...]string{"h", "x", "p", "cp", "cx", "swap"}

// String returns the lowercase OpenQASM mnemonic of the operation.
func (op Op) String() string {
	if int(op) >= len(opNames) {
		return "op?"
	}

	return opNames[op]
}

// Gate is one appended operation.
//
// Target is always meaningful. Control is NoQubit for single-qubit ops;
// for OpSwap the exchanged pair is stored as (Control, Target). Theta is
// the rotation angle in radians and is zero except for OpPhase/OpCPhase.
type Gate struct {
	// Op selects the operation.
	Op Op

	// Target is the qubit the gate acts on.
	Target int

	// Control is the controlling qubit, or NoQubit when the gate has none.
	// For OpSwap it holds the first wire of the exchanged pair.
	Control int

	// Theta is the rotation angle in radians (phase ops only).
	Theta float64
}

// Controlled reports whether the gate occupies two wires.
func (g Gate) Controlled() bool {
	return g.Control != NoQubit
}

// Inverse returns the algebraic inverse of the gate: phase rotations
// negate Theta; H, X, CX and Swap are self-inverse.
func (g Gate) Inverse() Gate {
	switch g.Op {
	case OpPhase, OpCPhase:
		g.Theta = -g.Theta
	}

	return g
}

// String renders the gate compactly for logs and failure messages,
// e.g. "h(0)", "p(1,1.571)", "cp(0,2,0.7854)", "swap(0,2)".
func (g Gate) String() string {
	switch g.Op {
	case OpPhase:
		return fmt.Sprintf("%s(%d,%.4g)", g.Op, g.Target, g.Theta)
	case OpCPhase:
		return fmt.Sprintf("%s(%d,%d,%.4g)", g.Op, g.Control, g.Target, g.Theta)
	case OpCX, OpSwap:
		return fmt.Sprintf("%s(%d,%d)", g.Op, g.Control, g.Target)
	default:
		return fmt.Sprintf("%s(%d)", g.Op, g.Target)
	}
}
