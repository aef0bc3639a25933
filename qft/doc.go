// Package qft appends the Quantum Fourier Transform to a circuit as an
// explicit gate sequence of Hadamards, controlled phase rotations and swaps.
//
// 🚀 What is the QFT?
//
//	The transform re-expresses a register's amplitudes in the Fourier
//	basis: the basis state |x⟩ becomes an equal-magnitude superposition
//	whose relative phases advance in proportion to x.  It is the core
//	subroutine behind:
//	  • Phase estimation & eigenvalue readout
//	  • Shor's period finding
//	  • Arithmetic in the phase domain (Draper adders)
//
// ✨ Key features:
//   - Rotations builds the Hadamard + controlled-phase ladder by the
//     textbook recursion, one wire level at a time
//   - SwapRegisters reverses wire order so the output matches the
//     conventional MSB-first reading of the register
//   - QFT chains Rotations and SwapRegisters; InverseQFT emits the exact
//     gate-for-gate mirror with negated angles
//   - Every angle is a dyadic fraction of π (π/2, π/4, π/8, …), computed
//     exactly with math.Ldexp
//   - Builders write through the narrow Circuit interface, so one code
//     path streams gates into a recorded list (circuit.Circuit) or applies
//     them directly to a simulated state (statevec.Vector)
//
// ⚙️ Usage:
//
//	import (
//	    "github.com/katalvlaran/qweave/circuit"
//	    "github.com/katalvlaran/qweave/qft"
//	)
//
//	c, _ := circuit.New(3)
//	if err := qft.QFT(c, 3); err != nil {
//	    // ErrNilCircuit / ErrQubitCount / ErrQubitRange
//	}
//	// c now records the full 3-qubit transform.
//
// Emission order for n = 3, top wire level first:
//
//	H(2)  CP(0,2, π/4)  CP(1,2, π/2)
//	H(1)  CP(0,1, π/2)
//	H(0)
//	SWAP(0,2)
//
// Performance:
//
//   - Gates:  n Hadamards, n·(n-1)/2 controlled phases, ⌊n/2⌋ swaps
//   - Time:   O(n²) appends; recursion depth O(n)
//
// See example_test.go for runnable walkthroughs and the prep package for
// states worth transforming.
package qft
