// Package circuit: Circuit container, constructor, appenders, accessors.
//
// All appenders validate their qubit indices against the fixed register
// size before mutating, so a failed call leaves the gate list untouched.
// No appender panics on user input; everything is a sentinel error.
package circuit

// Circuit is an ordered, append-only list of gates over a fixed register
// of qubits indexed 0..Qubits()-1.
//
// The zero value is an empty circuit over zero qubits; use New to size
// the register. Circuit is not safe for concurrent mutation.
type Circuit struct {
	qubits int
	gates  []Gate
}

// New creates an empty circuit over the given number of qubits.
// Returns ErrQubitCount when qubits is negative. A zero-qubit circuit is
// legal and accepts no gates.
// Complexity: O(1).
func New(qubits int) (*Circuit, error) {
	if qubits < 0 {
		return nil, ErrQubitCount
	}

	return &Circuit{qubits: qubits}, nil
}

// Qubits returns the register size. O(1).
func (c *Circuit) Qubits() int {
	return c.qubits
}

// Len returns the number of appended gates. O(1).
func (c *Circuit) Len() int {
	return len(c.gates)
}

// Gates returns a defensive copy of the gate list in application order.
// Complexity: O(len).
func (c *Circuit) Gates() []Gate {
	out := make([]Gate, len(c.gates))
	copy(out, c.gates)

	return out
}

// At returns the i-th gate in application order.
// Returns ErrGateRange when i is outside [0, Len()).
// Complexity: O(1).
func (c *Circuit) At(i int) (Gate, error) {
	if i < 0 || i >= len(c.gates) {
		return Gate{}, ErrGateRange
	}

	return c.gates[i], nil
}

// H appends a basis rotation (Hadamard) on qubit q.
// Returns ErrQubitRange when q is outside the register.
func (c *Circuit) H(q int) error {
	if err := c.checkQubit(q); err != nil {
		return err
	}
	c.gates = append(c.gates, Gate{Op: OpH, Target: q, Control: NoQubit})

	return nil
}

// X appends a bit flip on qubit q.
// Returns ErrQubitRange when q is outside the register.
func (c *Circuit) X(q int) error {
	if err := c.checkQubit(q); err != nil {
		return err
	}
	c.gates = append(c.gates, Gate{Op: OpX, Target: q, Control: NoQubit})

	return nil
}

// Phase appends a single-qubit phase rotation by theta radians on qubit q.
// Returns ErrQubitRange when q is outside the register.
func (c *Circuit) Phase(q int, theta float64) error {
	if err := c.checkQubit(q); err != nil {
		return err
	}
	c.gates = append(c.gates, Gate{Op: OpPhase, Target: q, Control: NoQubit, Theta: theta})

	return nil
}

// CPhase appends a controlled phase rotation by theta radians with the
// given control and target qubits.
// Returns ErrQubitRange on an out-of-range index, ErrSameQubit when
// control == target.
func (c *Circuit) CPhase(control, target int, theta float64) error {
	if err := c.checkPair(control, target); err != nil {
		return err
	}
	c.gates = append(c.gates, Gate{Op: OpCPhase, Target: target, Control: control, Theta: theta})

	return nil
}

// CX appends a controlled-X (CNOT) with the given control and target.
// Returns ErrQubitRange on an out-of-range index, ErrSameQubit when
// control == target.
func (c *Circuit) CX(control, target int) error {
	if err := c.checkPair(control, target); err != nil {
		return err
	}
	c.gates = append(c.gates, Gate{Op: OpCX, Target: target, Control: control})

	return nil
}

// Swap appends an exchange of qubits a and b.
// Returns ErrQubitRange on an out-of-range index, ErrSameQubit when a == b.
// The pair is stored as (Control, Target) = (a, b).
func (c *Circuit) Swap(a, b int) error {
	if err := c.checkPair(a, b); err != nil {
		return err
	}
	c.gates = append(c.gates, Gate{Op: OpSwap, Target: b, Control: a})

	return nil
}

// appendGate adds an already-validated gate; used by Append, where the
// remapped operands were checked against the receiver beforehand.
func (c *Circuit) appendGate(g Gate) {
	c.gates = append(c.gates, g)
}

// checkQubit validates a single register index.
func (c *Circuit) checkQubit(q int) error {
	if q < 0 || q >= c.qubits {
		return ErrQubitRange
	}

	return nil
}

// checkPair validates a two-qubit operand pair: both in range, distinct.
func (c *Circuit) checkPair(a, b int) error {
	if err := c.checkQubit(a); err != nil {
		return err
	}
	if err := c.checkQubit(b); err != nil {
		return err
	}
	if a == b {
		return ErrSameQubit
	}

	return nil
}
