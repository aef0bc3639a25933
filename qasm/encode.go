// SPDX-License-Identifier: MIT
// Package qasm: OpenQASM 2.0 emission.
package qasm

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/qweave/circuit"
)

// Option adjusts how Encode renders a program.
type Option func(*options)

type options struct {
	measure bool
}

// WithMeasurements appends a classical register sized to the circuit
// and one "measure q[i] -> c[i];" statement per wire after the gates.
func WithMeasurements() Option {
	return func(o *options) { o.measure = true }
}

// Encode renders c as an OpenQASM 2.0 program: the version header, the
// standard include, a qreg declaration, then one statement per recorded
// gate in application order. Gate parameters go through FormatAngle.
//
// Complexity: O(len(c.Gates())) statements, single pass.
func Encode(c *circuit.Circuit, opts ...Option) (string, error) {
	if c == nil {
		return "", ErrNilCircuit
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n")
	fmt.Fprintf(&sb, "qreg q[%d];\n", c.Qubits())
	if o.measure {
		fmt.Fprintf(&sb, "creg c[%d];\n", c.Qubits())
	}
	for _, g := range c.Gates() {
		if err := writeGate(&sb, g); err != nil {
			return "", err
		}
	}
	if o.measure {
		for q := 0; q < c.Qubits(); q++ {
			fmt.Fprintf(&sb, "measure q[%d] -> c[%d];\n", q, q)
		}
	}

	return sb.String(), nil
}

// EncodeTo writes the Encode output to w.
func EncodeTo(w io.Writer, c *circuit.Circuit, opts ...Option) error {
	src, err := Encode(c, opts...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, src)

	return err
}

// writeGate emits one statement. Every op the circuit package can
// record has a clause; the default guards against future additions.
func writeGate(sb *strings.Builder, g circuit.Gate) error {
	switch g.Op {
	case circuit.OpH:
		fmt.Fprintf(sb, "h q[%d];\n", g.Target)
	case circuit.OpX:
		fmt.Fprintf(sb, "x q[%d];\n", g.Target)
	case circuit.OpPhase:
		fmt.Fprintf(sb, "p(%s) q[%d];\n", FormatAngle(g.Theta), g.Target)
	case circuit.OpCPhase:
		fmt.Fprintf(sb, "cp(%s) q[%d],q[%d];\n", FormatAngle(g.Theta), g.Control, g.Target)
	case circuit.OpCX:
		fmt.Fprintf(sb, "cx q[%d],q[%d];\n", g.Control, g.Target)
	case circuit.OpSwap:
		fmt.Fprintf(sb, "swap q[%d],q[%d];\n", g.Control, g.Target)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedGate, g.Op)
	}

	return nil
}
