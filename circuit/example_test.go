package circuit_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qweave/circuit"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleNew
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Record the two-gate preparation of the entangled pair (|00⟩+|11⟩)/√2:
//	a Hadamard on qubit 0 fanned out by a CX onto qubit 1.
//
// Use case:
//
//	The smallest complete build-inspect loop: append, then read the
//	recorded gates back in application order.
//
// Complexity: O(1) per append.
func ExampleNew() {
	c, _ := circuit.New(2)
	_ = c.H(0)
	_ = c.CX(0, 1)

	for _, g := range c.Gates() {
		fmt.Println(g)
	}
	// Output:
	// h(0)
	// cx(0,1)
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleCircuit_Inverse
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Build a Hadamard followed by a controlled phase, then derive the
//	circuit that undoes it: same wires, reversed order, negated angle.
//
// Use case:
//
//	Uncomputation. Appending c and c.Inverse() to a register composes
//	to the identity.
//
// Complexity: O(len) time and memory.
func ExampleCircuit_Inverse() {
	c, _ := circuit.New(2)
	_ = c.H(1)
	_ = c.CPhase(0, 1, math.Pi/2)

	for _, g := range c.Inverse().Gates() {
		fmt.Println(g)
	}
	// Output:
	// cp(0,1,-1.571)
	// h(1)
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleCircuit_Append
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Splice a two-qubit scratch circuit onto wires 1 and 3 of a wider
//	host register; every operand is remapped through the wire list.
//
// Use case:
//
//	Reusing a prepared block (here the entangling pair) at an arbitrary
//	position inside a larger experiment.
//
// Complexity: O(len(source)) appends after O(wires) validation.
func ExampleCircuit_Append() {
	pair, _ := circuit.New(2)
	_ = pair.H(0)
	_ = pair.CX(0, 1)

	host, _ := circuit.New(4)
	_ = host.Append(pair, 1, 3)

	for _, g := range host.Gates() {
		fmt.Println(g)
	}
	// Output:
	// h(1)
	// cx(1,3)
}
