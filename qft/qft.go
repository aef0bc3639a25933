// Package qft: the transform builders.
//
// All four builders validate the sink and the width before the first
// gate is emitted, so a failed call leaves the circuit untouched.
// Errors from the sink itself abort the emission mid-stream and are
// returned unwrapped.
package qft

import "math"

// Rotations appends the rotation ladder of the transform on qubits
// [0, n): the recursive half of the QFT, without the final reversal.
//
// Level q = n-1 receives one Hadamard and then one controlled phase
// CP(k, q, π/2^(q-k)) for each k from 0 up to q-1, after which the
// ladder recurses on the remaining n-1 qubits. The base case n = 0
// appends nothing.
//
// Returns ErrNilCircuit, ErrQubitCount for n < 0, ErrQubitRange for
// n > c.Qubits(), or the first error reported by the sink.
// Complexity: O(n²) gate appends, O(n) recursion depth.
func Rotations(c Circuit, n int) error {
	if err := validate(c, n); err != nil {
		return err
	}

	return rotations(c, n)
}

// SwapRegisters appends the wire reversal that completes the transform:
// Swap(i, n-1-i) for each i below ⌊n/2⌋. With n < 2 it appends nothing.
//
// Returns ErrNilCircuit, ErrQubitCount for n < 0, ErrQubitRange for
// n > c.Qubits(), or the first error reported by the sink.
// Complexity: O(n) gate appends.
func SwapRegisters(c Circuit, n int) error {
	if err := validate(c, n); err != nil {
		return err
	}

	return swapRegisters(c, n)
}

// QFT appends the full transform on qubits [0, n): the rotation ladder
// followed by the wire reversal. After QFT the basis state |x⟩ carries
// the Fourier phases in MSB-first wire order.
//
// Returns ErrNilCircuit, ErrQubitCount for n < 0, ErrQubitRange for
// n > c.Qubits(), or the first error reported by the sink.
// Complexity: O(n²) gate appends.
func QFT(c Circuit, n int) error {
	if err := validate(c, n); err != nil {
		return err
	}
	if err := rotations(c, n); err != nil {
		return err
	}

	return swapRegisters(c, n)
}

// InverseQFT appends the exact gate-for-gate mirror of QFT on qubits
// [0, n): the swaps in reverse order, then each ladder level unwound
// bottom-up with negated phase angles. Appending QFT and then
// InverseQFT to the same register composes to the identity.
//
// Returns ErrNilCircuit, ErrQubitCount for n < 0, ErrQubitRange for
// n > c.Qubits(), or the first error reported by the sink.
// Complexity: O(n²) gate appends.
func InverseQFT(c Circuit, n int) error {
	if err := validate(c, n); err != nil {
		return err
	}

	// Step 1: undo the wire reversal (self-inverse swaps, mirrored order).
	for i := n/2 - 1; i >= 0; i-- {
		if err := c.Swap(i, n-1-i); err != nil {
			return err
		}
	}

	// Step 2: unwind the ladder bottom-up. Level q emitted last in the
	// forward pass is undone first: its phases (mirrored, negated), then
	// its Hadamard.
	for q := 0; q < n; q++ {
		for k := q - 1; k >= 0; k-- {
			if err := c.CPhase(k, q, -dyadicPi(q-k)); err != nil {
				return err
			}
		}
		if err := c.H(q); err != nil {
			return err
		}
	}

	return nil
}

// rotations is the ladder recursion over the first n qubits; operands
// are already validated against the register.
func rotations(c Circuit, n int) error {
	// Base case: an empty prefix needs no gates.
	if n == 0 {
		return nil
	}

	// The top wire of this level.
	q := n - 1

	// Step 1: rotate qubit q into the superposition basis.
	if err := c.H(q); err != nil {
		return err
	}

	// Step 2: entangle every lower qubit k with q. The angle halves as
	// the wire distance q-k grows: π/2, π/4, π/8, …
	for k := 0; k < q; k++ {
		if err := c.CPhase(k, q, dyadicPi(q-k)); err != nil {
			return err
		}
	}

	// Step 3: recurse on the remaining n-1 qubits.
	return rotations(c, q)
}

// swapRegisters reverses wire order on the first n qubits; operands are
// already validated against the register.
func swapRegisters(c Circuit, n int) error {
	for i := 0; i < n/2; i++ {
		if err := c.Swap(i, n-1-i); err != nil {
			return err
		}
	}

	return nil
}

// dyadicPi returns π/2^d exactly (scales the float exponent, no division).
func dyadicPi(d int) float64 {
	return math.Ldexp(math.Pi, -d)
}

// validate checks the sink and the transform width shared by all builders.
func validate(c Circuit, n int) error {
	if c == nil {
		return ErrNilCircuit
	}
	if n < 0 {
		return ErrQubitCount
	}
	if n > c.Qubits() {
		return ErrQubitRange
	}

	return nil
}
