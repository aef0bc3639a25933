// Package qft: the gate sink contract and the sentinel error set.
package qft

import "errors"

// Sentinel errors returned by the transform builders.
// Callers branch with errors.Is.
var (
	// ErrNilCircuit indicates a nil gate sink.
	ErrNilCircuit = errors.New("qft: nil circuit")

	// ErrQubitCount indicates a negative transform width.
	ErrQubitCount = errors.New("qft: negative qubit count")

	// ErrQubitRange indicates a transform width exceeding the register.
	ErrQubitRange = errors.New("qft: qubit count exceeds register")
)

// Circuit is the minimal surface a gate sink must expose for the
// builders to write into. Both circuit.Circuit (records gates) and
// statevec.Vector (applies them to amplitudes) satisfy it.
//
// Implementations must validate their arguments and report failures as
// errors; the builders stop at the first error and pass it through.
type Circuit interface {
	// Qubits returns the register size.
	Qubits() int

	// H appends a basis rotation (Hadamard) on qubit q.
	H(q int) error

	// CPhase appends a controlled phase rotation of theta radians
	// between the control and target qubits.
	CPhase(control, target int, theta float64) error

	// Swap appends an exchange of qubits a and b.
	Swap(a, b int) error
}
