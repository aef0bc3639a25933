// Package prep builds the canonical starting states of the walkthrough
// as small recorded circuits, ready to splice onto a register.
//
// 🚀 Why preparation circuits?
//
//	Every experiment in this module starts from |00…0⟩.  The interesting
//	inputs (a chosen basis state, an even superposition, a Fourier-basis
//	state, an entangled pair) are themselves tiny gate sequences, and
//	keeping them as circuits means they compose, invert and encode to
//	QASM exactly like everything else.
//
// ✨ The catalogue:
//   - BasisState(n, x): X gates writing the binary digits of x
//   - Uniform(n): a Hadamard on every wire, the all-states superposition
//   - FourierState(n, x): the phase ladder equal to QFT applied to |x⟩,
//     without running the transform itself
//   - Bell(): the two-qubit entangled pair (|00⟩ + |11⟩)/√2
//   - GHZ(n): the n-qubit generalization (|0…0⟩ + |1…1⟩)/√2
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/qweave/prep"
//
//	c, _ := prep.FourierState(3, 5)   // the state InverseQFT turns into |101⟩
//	_ = qft.InverseQFT(c, 3)          // append the decoder
//	// simulate c and measure: "101" with probability 1
//
// FourierState is the heart of the demo: it plants the phases that the
// inverse transform converts back into plain binary, which is exactly
// how period finding reads its answer out.
//
// All builders validate before emitting and return sentinel errors;
// see each function for the precise set.
package prep
