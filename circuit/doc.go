// Package circuit provides an ordered, mutable gate-list representation of
// a quantum circuit over a fixed-size, zero-indexed qubit register.
//
// The Circuit is the concrete canvas every other qweave package draws on:
// builders append gates to it, the statevec simulator replays it, qasm
// serializes it, and viz draws it.
//
// Model:
//
//   - A Circuit owns a register of n qubits, indexed 0..n-1, fixed at
//     construction. No appender may reference an index outside [0, n).
//   - Gates are appended one at a time and kept in application order;
//     the circuit never reorders, merges, or optimizes them.
//   - Gate is a small value type: an Op code, a Target qubit, an optional
//     Control qubit (NoQubit when absent), and a Theta angle in radians
//     (meaningful for phase ops only).
//
// Gate set (the walkthrough's working set, mapped to OpenQASM mnemonics):
//
//	OpH      h     single-qubit basis rotation (Hadamard)
//	OpX      x     bit flip
//	OpPhase  p     single-qubit phase rotation by Theta
//	OpCPhase cp    controlled phase rotation by Theta
//	OpCX     cx    controlled-X (CNOT)
//	OpSwap   swap  exchange two qubit wires
//
// Appenders (each validates indices and returns a sentinel error):
//
//	H(q)                        // O(1)
//	X(q)                        // O(1)
//	Phase(q, theta)             // O(1)
//	CPhase(control, target, theta) // O(1)
//	CX(control, target)         // O(1)
//	Swap(a, b)                  // O(1)
//
// Transformations:
//
//	Inverse() *Circuit          // O(len): reversed order, negated phase angles
//	Append(other, qubits...)    // O(len(other)): splice onto mapped wires
//	Clone() *Circuit            // O(len)
//
// Errors:
//
//	ErrQubitCount – negative register size requested
//	ErrQubitRange – gate references an index outside [0, n)
//	ErrSameQubit  – two-qubit op with control == target (or a == b)
//	ErrGateRange  – At(i) with i outside [0, Len())
//	ErrNilCircuit – Append(nil, ...)
//	ErrQubitMap   – Append mapping wrong arity, duplicated or out-of-range
//
// A Circuit is NOT safe for concurrent mutation: callers must not append
// from multiple goroutines, and must not mutate a circuit while a builder
// or simulator is walking it. This mirrors the single-threaded contract of
// the transform walkthrough itself.
package circuit
