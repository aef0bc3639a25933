// Package statevec: in-place gate application.
//
// Every gate walks the amplitude slice once, pairing or filtering basis
// states by the bit masks of its operand qubits. All methods validate
// their operands before touching any amplitude, so a failed call leaves
// the state unchanged. Each method costs O(2ⁿ) time, O(1) extra space.
package statevec

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/qweave/circuit"
)

// H applies the basis rotation (Hadamard) on qubit q: amplitudes of the
// index pair differing only in bit q are replaced by their normalized
// sum and difference.
// Returns ErrQubitRange when q is outside the register.
func (v *Vector) H(q int) error {
	if err := v.checkQubit(q); err != nil {
		return err
	}
	h := complex(1/math.Sqrt2, 0)
	bit := 1 << q
	for i := range v.amps {
		if i&bit == 0 {
			j := i | bit
			a, b := v.amps[i], v.amps[j]
			v.amps[i] = h * (a + b)
			v.amps[j] = h * (a - b)
		}
	}

	return nil
}

// X applies the bit flip on qubit q: amplitudes of the index pair
// differing only in bit q are exchanged.
// Returns ErrQubitRange when q is outside the register.
func (v *Vector) X(q int) error {
	if err := v.checkQubit(q); err != nil {
		return err
	}
	bit := 1 << q
	for i := range v.amps {
		if i&bit == 0 {
			j := i | bit
			v.amps[i], v.amps[j] = v.amps[j], v.amps[i]
		}
	}

	return nil
}

// Phase multiplies every amplitude with bit q set by e^(i·theta).
// Returns ErrQubitRange when q is outside the register.
func (v *Vector) Phase(q int, theta float64) error {
	if err := v.checkQubit(q); err != nil {
		return err
	}
	ph := cmplx.Exp(complex(0, theta))
	bit := 1 << q
	for i := range v.amps {
		if i&bit != 0 {
			v.amps[i] *= ph
		}
	}

	return nil
}

// CPhase multiplies every amplitude with both operand bits set by
// e^(i·theta). The operation is symmetric in control and target.
// Returns ErrQubitRange on an out-of-range index, ErrSameQubit when
// control == target.
func (v *Vector) CPhase(control, target int, theta float64) error {
	if err := v.checkPair(control, target); err != nil {
		return err
	}
	ph := cmplx.Exp(complex(0, theta))
	mask := 1<<control | 1<<target
	for i := range v.amps {
		if i&mask == mask {
			v.amps[i] *= ph
		}
	}

	return nil
}

// CX applies the controlled bit flip: where the control bit is set, the
// amplitudes of the pair differing in the target bit are exchanged.
// Returns ErrQubitRange on an out-of-range index, ErrSameQubit when
// control == target.
func (v *Vector) CX(control, target int) error {
	if err := v.checkPair(control, target); err != nil {
		return err
	}
	cBit, tBit := 1<<control, 1<<target
	for i := range v.amps {
		if i&cBit != 0 && i&tBit == 0 {
			j := i | tBit
			v.amps[i], v.amps[j] = v.amps[j], v.amps[i]
		}
	}

	return nil
}

// Swap exchanges qubits a and b: amplitudes of index pairs whose bits a
// and b differ are exchanged.
// Returns ErrQubitRange on an out-of-range index, ErrSameQubit when
// a == b.
func (v *Vector) Swap(a, b int) error {
	if err := v.checkPair(a, b); err != nil {
		return err
	}
	aBit, bBit := 1<<a, 1<<b
	for i := range v.amps {
		if i&aBit != 0 && i&bBit == 0 {
			j := i&^aBit | bBit
			v.amps[i], v.amps[j] = v.amps[j], v.amps[i]
		}
	}

	return nil
}

// Apply dispatches one recorded gate onto the register.
// Returns the gate method's validation errors, or ErrUnknownOp for an
// operation outside the supported set.
func (v *Vector) Apply(g circuit.Gate) error {
	switch g.Op {
	case circuit.OpH:
		return v.H(g.Target)
	case circuit.OpX:
		return v.X(g.Target)
	case circuit.OpPhase:
		return v.Phase(g.Target, g.Theta)
	case circuit.OpCPhase:
		return v.CPhase(g.Control, g.Target, g.Theta)
	case circuit.OpCX:
		return v.CX(g.Control, g.Target)
	case circuit.OpSwap:
		return v.Swap(g.Control, g.Target)
	default:
		return ErrUnknownOp
	}
}

// ApplyCircuit replays a recorded circuit gate by gate.
// Returns ErrNilCircuit for a nil circuit, ErrSizeMismatch when the
// circuit register differs from the vector register, or the first gate
// error. A mid-stream gate error leaves the prior gates applied.
// Complexity: O(len·2ⁿ).
func (v *Vector) ApplyCircuit(c *circuit.Circuit) error {
	if c == nil {
		return ErrNilCircuit
	}
	if c.Qubits() != v.qubits {
		return ErrSizeMismatch
	}
	for _, g := range c.Gates() {
		if err := v.Apply(g); err != nil {
			return err
		}
	}

	return nil
}
