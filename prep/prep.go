// Package prep: the preparation circuit builders.
//
// Each builder returns a fresh *circuit.Circuit whose gate list turns
// |00…0⟩ into the named state. Register-size validation is delegated to
// circuit.New, so a negative count surfaces as circuit.ErrQubitCount.
package prep

import (
	"errors"
	"math"

	"github.com/katalvlaran/qweave/circuit"
)

// Sentinel errors for preparation arguments; circuit construction
// errors pass through unwrapped.
var (
	// ErrStateRange indicates a basis state outside [0, 2ⁿ).
	ErrStateRange = errors.New("prep: basis state out of range")

	// ErrQubitCount indicates a register too small for the requested state.
	ErrQubitCount = errors.New("prep: qubit count too small")
)

// BasisState returns a circuit preparing |x⟩: one X gate per set bit of
// x, lowest qubit first.
// Returns circuit.ErrQubitCount for a negative size, ErrStateRange when
// x is outside [0, 2ⁿ).
// Complexity: O(n) gates.
func BasisState(qubits, x int) (*circuit.Circuit, error) {
	c, err := circuit.New(qubits)
	if err != nil {
		return nil, err
	}
	if x < 0 || (qubits < 63 && x >= 1<<qubits) {
		return nil, ErrStateRange
	}
	for q := 0; q < qubits; q++ {
		if x&(1<<q) != 0 {
			if err := c.X(q); err != nil {
				return nil, err
			}
		}
	}

	return c, nil
}

// Uniform returns a circuit preparing the even superposition of all 2ⁿ
// basis states: one Hadamard per wire.
// Returns circuit.ErrQubitCount for a negative size.
// Complexity: O(n) gates.
func Uniform(qubits int) (*circuit.Circuit, error) {
	c, err := circuit.New(qubits)
	if err != nil {
		return nil, err
	}
	for q := 0; q < qubits; q++ {
		if err := c.H(q); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// FourierState returns a circuit preparing the Fourier-basis image of
// |x⟩ directly: qubit j is rotated into superposition and then advanced
// by the phase 2π·x/2^(n-j), exactly the state the forward transform
// would produce from |x⟩. Appending InverseQFT decodes it back to |x⟩.
// Returns circuit.ErrQubitCount for a negative size, ErrStateRange when
// x is outside [0, 2ⁿ).
// Complexity: O(n) gates.
func FourierState(qubits, x int) (*circuit.Circuit, error) {
	c, err := circuit.New(qubits)
	if err != nil {
		return nil, err
	}
	if x < 0 || (qubits < 63 && x >= 1<<qubits) {
		return nil, ErrStateRange
	}
	for q := 0; q < qubits; q++ {
		if err := c.H(q); err != nil {
			return nil, err
		}
		// The phase of qubit q depends on x modulo 2^(qubits-q) only;
		// reduce in integers first so the angle stays inside [0, 2π).
		r := x & (1<<(qubits-q) - 1)
		theta := math.Ldexp(2*math.Pi*float64(r), q-qubits)
		if err := c.Phase(q, theta); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Bell returns the two-qubit circuit preparing (|00⟩ + |11⟩)/√2:
// a Hadamard on qubit 0 and a CX fanning out onto qubit 1.
func Bell() (*circuit.Circuit, error) {
	return GHZ(2)
}

// GHZ returns a circuit preparing (|0…0⟩ + |1…1⟩)/√2 over n qubits:
// a Hadamard on qubit 0 followed by a CX chain copying it upward.
// Returns ErrQubitCount when n is below two.
// Complexity: O(n) gates.
func GHZ(qubits int) (*circuit.Circuit, error) {
	if qubits < 2 {
		return nil, ErrQubitCount
	}
	c, err := circuit.New(qubits)
	if err != nil {
		return nil, err
	}
	if err := c.H(0); err != nil {
		return nil, err
	}
	for q := 1; q < qubits; q++ {
		if err := c.CX(q-1, q); err != nil {
			return nil, err
		}
	}

	return c, nil
}
