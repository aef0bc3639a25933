// Package statevec: the Vector type, constructors and state accessors.
package statevec

import "math/cmplx"

// MaxQubits bounds the register size New accepts. At 28 qubits the
// amplitude slice alone occupies 4 GiB; anything larger is a caller bug.
const MaxQubits = 28

// Vector is the dense state of a qubit register: one amplitude per
// basis state, indexed little-endian (bit q of the index is qubit q).
//
// The zero value is unusable; construct with New or NewBasis.
// Vector is not safe for concurrent mutation.
type Vector struct {
	qubits int
	amps   []complex128
}

// New returns a register of the given size prepared in |00…0⟩.
// Returns ErrQubitCount for a negative size, ErrTooManyQubits above
// MaxQubits. A zero-qubit register is legal: one amplitude, value 1.
// Complexity: O(2ⁿ) allocation.
func New(qubits int) (*Vector, error) {
	if qubits < 0 {
		return nil, ErrQubitCount
	}
	if qubits > MaxQubits {
		return nil, ErrTooManyQubits
	}
	v := &Vector{qubits: qubits, amps: make([]complex128, 1<<qubits)}
	v.amps[0] = 1

	return v, nil
}

// NewBasis returns a register prepared in the basis state |x⟩.
// Returns the New errors plus ErrStateRange when x is outside [0, 2ⁿ).
// Complexity: O(2ⁿ) allocation.
func NewBasis(qubits, x int) (*Vector, error) {
	v, err := New(qubits)
	if err != nil {
		return nil, err
	}
	if x < 0 || x >= len(v.amps) {
		return nil, ErrStateRange
	}
	v.amps[0] = 0
	v.amps[x] = 1

	return v, nil
}

// Qubits returns the register size. O(1).
func (v *Vector) Qubits() int {
	return v.qubits
}

// Dim returns the number of basis states, 2^Qubits(). O(1).
func (v *Vector) Dim() int {
	return len(v.amps)
}

// Amplitude returns the amplitude of basis state x.
// Returns ErrStateRange when x is outside [0, Dim()). O(1).
func (v *Vector) Amplitude(x int) (complex128, error) {
	if x < 0 || x >= len(v.amps) {
		return 0, ErrStateRange
	}

	return v.amps[x], nil
}

// Amplitudes returns a defensive copy of the full amplitude slice in
// basis-state order. Complexity: O(2ⁿ).
func (v *Vector) Amplitudes() []complex128 {
	out := make([]complex128, len(v.amps))
	copy(out, v.amps)

	return out
}

// Clone returns an independent deep copy of the register.
// Complexity: O(2ⁿ).
func (v *Vector) Clone() *Vector {
	out := &Vector{qubits: v.qubits, amps: make([]complex128, len(v.amps))}
	copy(out.amps, v.amps)

	return out
}

// EqualTo reports whether both registers have the same size and every
// amplitude agrees within tol (absolute complex distance). A nil other
// or a size mismatch is simply unequal, not an error.
// Complexity: O(2ⁿ).
func (v *Vector) EqualTo(other *Vector, tol float64) bool {
	if other == nil || v.qubits != other.qubits {
		return false
	}
	for i, a := range v.amps {
		if cmplx.Abs(a-other.amps[i]) > tol {
			return false
		}
	}

	return true
}

// Fidelity returns |⟨v|other⟩|², the overlap probability between two
// states: 1 for identical states (even under a global phase), 0 for
// orthogonal ones.
// Returns ErrNilVector when other is nil, ErrSizeMismatch when the
// registers differ in size.
// Complexity: O(2ⁿ).
func (v *Vector) Fidelity(other *Vector) (float64, error) {
	if other == nil {
		return 0, ErrNilVector
	}
	if v.qubits != other.qubits {
		return 0, ErrSizeMismatch
	}
	var inner complex128
	for i, a := range v.amps {
		inner += cmplx.Conj(a) * other.amps[i]
	}
	m := cmplx.Abs(inner)

	return m * m, nil
}

// checkQubit validates a single wire index.
func (v *Vector) checkQubit(q int) error {
	if q < 0 || q >= v.qubits {
		return ErrQubitRange
	}

	return nil
}

// checkPair validates a two-qubit operand pair: both in range, distinct.
func (v *Vector) checkPair(a, b int) error {
	if err := v.checkQubit(a); err != nil {
		return err
	}
	if err := v.checkQubit(b); err != nil {
		return err
	}
	if a == b {
		return ErrSameQubit
	}

	return nil
}
