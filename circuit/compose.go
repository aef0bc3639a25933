// Package circuit: whole-circuit transformations (Clone, Inverse, Append).
//
// These mirror the composition features of mainstream circuit libraries:
// the walkthrough's inverse transform is literally "build forward on a
// scratch circuit, invert it, splice it onto the host register".
package circuit

// Clone returns a deep copy of the circuit (register size + gate list).
// Complexity: O(len).
func (c *Circuit) Clone() *Circuit {
	out := &Circuit{qubits: c.qubits}
	if len(c.gates) > 0 {
		out.gates = make([]Gate, len(c.gates))
		copy(out.gates, c.gates)
	}

	return out
}

// Inverse returns a new circuit that undoes the receiver exactly: gates
// appear in reverse order and each gate is replaced by Gate.Inverse
// (phase angles negated; H, X, CX and Swap unchanged).
//
// Applying c then c.Inverse() to any state restores the state up to
// floating-point round-off, since every gate is inverted algebraically
// and the order is reversed end-to-end.
// Complexity: O(len) time and space.
func (c *Circuit) Inverse() *Circuit {
	out := &Circuit{qubits: c.qubits}
	if n := len(c.gates); n > 0 {
		out.gates = make([]Gate, 0, n)
		for i := n - 1; i >= 0; i-- {
			out.gates = append(out.gates, c.gates[i].Inverse())
		}
	}

	return out
}

// Append splices every gate of other onto the receiver, remapping wire i
// of other to qubits[i]. The mapping must name exactly other.Qubits()
// distinct receiver indices.
//
// Returns ErrNilCircuit when other is nil, ErrQubitMap on a mapping of
// the wrong arity, with duplicates, or with an out-of-range entry. The
// receiver is left unchanged on any error.
// Complexity: O(len(other)) plus O(other.Qubits()) validation.
func (c *Circuit) Append(other *Circuit, qubits ...int) error {
	if other == nil {
		return ErrNilCircuit
	}
	if len(qubits) != other.qubits {
		return ErrQubitMap
	}

	// Validate the full mapping before any mutation: distinct, in range.
	seen := make(map[int]struct{}, len(qubits))
	for _, q := range qubits {
		if q < 0 || q >= c.qubits {
			return ErrQubitMap
		}
		if _, dup := seen[q]; dup {
			return ErrQubitMap
		}
		seen[q] = struct{}{}
	}

	for _, g := range other.gates {
		g.Target = qubits[g.Target]
		if g.Control != NoQubit {
			g.Control = qubits[g.Control]
		}
		c.appendGate(g)
	}

	return nil
}
