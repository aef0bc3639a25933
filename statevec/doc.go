// Package statevec simulates a qubit register exactly, holding one
// complex amplitude per basis state and applying gates in place.
//
// 🚀 What is a statevector?
//
//	A register of n qubits lives in a 2ⁿ-dimensional complex space; the
//	statevector lists the amplitude of every basis state.  Simulating a
//	gate means updating those amplitudes directly, which keeps every
//	quantum identity exact up to float64 round-off and makes the
//	simulator the ground truth the rest of the module is tested against.
//
// ✨ Key features:
//   - dense []complex128 storage, gates applied by index bit masks
//   - the full gate set of the circuit package: H, X, Phase, CPhase,
//     CX, Swap, plus Apply/ApplyCircuit for recorded gate lists
//   - Vector satisfies the qft gate interface, so the transform
//     builders can drive the simulator without an intermediate circuit
//   - seeded measurement sampling into bitstring counts
//   - EqualTo / Fidelity for tolerance-based state comparison
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/qweave/statevec"
//
//	v, _ := statevec.NewBasis(3, 5)        // |101⟩
//	_ = v.H(0)                             // superpose qubit 0
//	p, _ := v.Probability(5)               // inspect one basis state
//	counts, _ := v.Sample(rng, 1024)       // {"100": ~512, "101": ~512}
//
// Wire convention:
//
//	Bit q of a basis-state index is qubit q, so index 5 = 0b101 means
//	qubit 0 and qubit 2 are set.  Rendered bitstrings put the highest
//	qubit first: FormatBasis(5, 3) = "101" reads q2 q1 q0.
//
// Performance:
//
//   - Each gate:  O(2ⁿ) amplitude updates
//   - Memory:     16·2ⁿ bytes; MaxQubits caps n at 28 (4 GiB)
//
// See example_test.go for a full prepare-transform-measure walkthrough.
package statevec
