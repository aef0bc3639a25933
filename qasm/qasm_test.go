// SPDX-License-Identifier: MIT
// Package qasm_test: program emission, parsing and angle grammar.
package qasm_test

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qweave/circuit"
	"github.com/katalvlaran/qweave/qasm"
	"github.com/katalvlaran/qweave/qft"
)

// TestFormatAngle_Symbolic pins the symbolic forms: lowest-terms pi
// fractions for small and dyadic denominators, decimals otherwise.
func TestFormatAngle_Symbolic(t *testing.T) {
	cases := []struct {
		theta float64
		want  string
	}{
		{0, "0"},
		{math.Pi, "pi"},
		{math.Pi / 2, "pi/2"},
		{-math.Pi / 2, "-pi/2"},
		{math.Pi / 4, "pi/4"},
		{3 * math.Pi / 4, "3*pi/4"},
		{5 * math.Pi / 4, "5*pi/4"},
		{2 * math.Pi, "2*pi"},
		{math.Pi / 3, "pi/3"},
		{math.Pi / 64, "pi/64"},
		{math.Pi / 512, "pi/512"},
		{1.5, "1.5"},
		{0.25, "0.25"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, qasm.FormatAngle(tc.theta), "theta=%v", tc.theta)
	}
}

// TestParseAngle_Expressions accepts every spelling the emitter and
// common QASM sources produce.
func TestParseAngle_Expressions(t *testing.T) {
	cases := []struct {
		expr string
		want float64
	}{
		{"pi", math.Pi},
		{"PI", math.Pi},
		{"pi/2", math.Pi / 2},
		{"-pi/2", -math.Pi / 2},
		{"2pi", 2 * math.Pi},
		{"2*pi", 2 * math.Pi},
		{"3pi/4", 3 * math.Pi / 4},
		{"3*pi/4", 3 * math.Pi / 4},
		{" 3 * pi / 4 ", 3 * math.Pi / 4},
		{"0", 0},
		{"1.5708", 1.5708},
		{"-0.5", -0.5},
	}
	for _, tc := range cases {
		got, err := qasm.ParseAngle(tc.expr)
		require.NoError(t, err, "expr=%q", tc.expr)
		assert.InDelta(t, tc.want, got, 1e-12, "expr=%q", tc.expr)
	}
}

// TestParseAngle_Rejects reports ErrAngle for everything outside the
// grammar, including division by zero.
func TestParseAngle_Rejects(t *testing.T) {
	for _, expr := range []string{"", "abc", "pi/0", "pi/", "--pi", "1..5", "pi*pi"} {
		_, err := qasm.ParseAngle(expr)
		assert.ErrorIs(t, err, qasm.ErrAngle, "expr=%q", expr)
	}
}

// TestFormatAngle_RoundTrip feeds every emitted form back through the
// parser and requires the original float within tolerance.
func TestFormatAngle_RoundTrip(t *testing.T) {
	for _, theta := range []float64{
		math.Pi, math.Pi / 2, math.Pi / 8, -math.Pi / 4,
		3 * math.Pi / 4, 5 * math.Pi / 4, 2 * math.Pi,
		math.Pi / 1024, 1.5, 0.1, -2.75,
	} {
		got, err := qasm.ParseAngle(qasm.FormatAngle(theta))
		require.NoError(t, err, "theta=%v", theta)
		assert.InDelta(t, theta, got, 1e-12, "theta=%v", theta)
	}
}

// TestEncode_GoldenProgram pins the exact emission for one gate of
// each kind.
func TestEncode_GoldenProgram(t *testing.T) {
	c, err := circuit.New(3)
	require.NoError(t, err)
	require.NoError(t, c.H(2))
	require.NoError(t, c.CPhase(0, 2, math.Pi/4))
	require.NoError(t, c.CX(0, 1))
	require.NoError(t, c.Swap(0, 2))
	require.NoError(t, c.X(1))
	require.NoError(t, c.Phase(1, math.Pi/2))

	src, err := qasm.Encode(c)
	require.NoError(t, err)

	want := strings.Join([]string{
		"OPENQASM 2.0;",
		`include "qelib1.inc";`,
		"qreg q[3];",
		"h q[2];",
		"cp(pi/4) q[0],q[2];",
		"cx q[0],q[1];",
		"swap q[0],q[2];",
		"x q[1];",
		"p(pi/2) q[1];",
		"",
	}, "\n")
	assert.Equal(t, want, src)
}

// TestEncode_WithMeasurements adds the classical register up front and
// one measurement per wire after the gates.
func TestEncode_WithMeasurements(t *testing.T) {
	c, err := circuit.New(2)
	require.NoError(t, err)
	require.NoError(t, c.H(0))
	require.NoError(t, c.CX(0, 1))

	src, err := qasm.Encode(c, qasm.WithMeasurements())
	require.NoError(t, err)

	want := strings.Join([]string{
		"OPENQASM 2.0;",
		`include "qelib1.inc";`,
		"qreg q[2];",
		"creg c[2];",
		"h q[0];",
		"cx q[0],q[1];",
		"measure q[0] -> c[0];",
		"measure q[1] -> c[1];",
		"",
	}, "\n")
	assert.Equal(t, want, src)
}

// TestEncode_NilCircuit rejects a nil receiver argument.
func TestEncode_NilCircuit(t *testing.T) {
	_, err := qasm.Encode(nil)
	assert.ErrorIs(t, err, qasm.ErrNilCircuit)

	err = qasm.EncodeTo(&bytes.Buffer{}, nil)
	assert.ErrorIs(t, err, qasm.ErrNilCircuit)
}

// TestDecode_Tolerance parses a program with comments, blank lines, a
// barrier, alias mnemonics, mixed case and loose spacing, and checks
// the recorded gates gate by gate.
func TestDecode_Tolerance(t *testing.T) {
	src := strings.Join([]string{
		"// entangle, rotate, measure",
		"OPENQASM 2.0;",
		`include "qelib1.inc";`,
		"",
		"qreg reg[2];",
		"creg out[2];",
		"h   reg[0];        // superpose",
		"barrier reg;",
		"cu1(pi/2) reg[0] , reg[1];",
		"u1(3*pi/4) reg[ 1 ];",
		"CX reg[0],reg[1];",
		"measure reg[0] -> out[0];",
		"measure reg[1] -> out[1];",
	}, "\n")

	got, err := qasm.Decode(src)
	require.NoError(t, err)

	want, err := circuit.New(2)
	require.NoError(t, err)
	require.NoError(t, want.H(0))
	require.NoError(t, want.CPhase(0, 1, math.Pi/2))
	require.NoError(t, want.Phase(1, 3*math.Pi/4))
	require.NoError(t, want.CX(0, 1))

	assert.Equal(t, want.Gates(), got.Gates())
	assert.Equal(t, 2, got.Qubits())
}

// TestDecode_EmptyRegister keeps a zero-wire program legal, matching
// what the circuit package allows.
func TestDecode_EmptyRegister(t *testing.T) {
	c, err := qasm.Decode("qreg q[0];\n")
	require.NoError(t, err)
	assert.Equal(t, 0, c.Qubits())
	assert.Equal(t, 0, c.Len())
}

// TestDecode_NoRegister covers both the empty program and a gate
// applied before any qreg declaration.
func TestDecode_NoRegister(t *testing.T) {
	_, err := qasm.Decode("OPENQASM 2.0;\ninclude \"qelib1.inc\";\n")
	assert.ErrorIs(t, err, qasm.ErrNoRegister)

	_, err = qasm.Decode("OPENQASM 2.0;\nh q[0];\nqreg q[1];\n")
	require.ErrorIs(t, err, qasm.ErrNoRegister)
	assert.Contains(t, err.Error(), "line 2")
}

// TestDecode_Version rejects any OPENQASM header other than 2.0.
func TestDecode_Version(t *testing.T) {
	_, err := qasm.Decode("OPENQASM 3.0;\nqreg q[1];\n")
	require.ErrorIs(t, err, qasm.ErrVersion)
	assert.Contains(t, err.Error(), "line 1")
}

// TestDecode_SyntaxShapes sweeps malformed statements: bad structure,
// wrong arity for known gates, register misuse.
func TestDecode_SyntaxShapes(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"missing semicolon", "qreg q[2];\nh q[0]\n"},
		{"duplicate qreg", "qreg q[2];\nqreg r[2];\n"},
		{"duplicate creg", "qreg q[2];\ncreg c[2];\ncreg d[2];\n"},
		{"h with two operands", "qreg q[2];\nh q[0],q[1];\n"},
		{"p without angle", "qreg q[2];\np q[0];\n"},
		{"cx with angle", "qreg q[2];\ncx(pi) q[0],q[1];\n"},
		{"unknown qreg name", "qreg q[2];\nh r[0];\n"},
		{"measure without creg", "qreg q[2];\nmeasure q[0] -> c[0];\n"},
		{"measure unknown creg", "qreg q[2];\ncreg c[2];\nmeasure q[0] -> d[0];\n"},
		{"classical bit range", "qreg q[2];\ncreg c[1];\nmeasure q[1] -> c[1];\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := qasm.Decode(tc.src)
			assert.ErrorIs(t, err, qasm.ErrSyntax)
		})
	}
}

// TestDecode_UnsupportedGate separates well-formed statements with an
// out-of-dialect mnemonic from syntax errors.
func TestDecode_UnsupportedGate(t *testing.T) {
	for _, src := range []string{
		"qreg q[2];\nrx(pi/2) q[0];\n",
		"qreg q[2];\nreset q[0];\n",
		"qreg q[2];\ncrz(pi/4) q[0],q[1];\n",
	} {
		_, err := qasm.Decode(src)
		assert.ErrorIs(t, err, qasm.ErrUnsupportedGate, "src=%q", src)
	}
}

// TestDecode_QubitRange lets the circuit package's validation surface
// through the parser with the line number attached.
func TestDecode_QubitRange(t *testing.T) {
	_, err := qasm.Decode("qreg q[2];\nh q[5];\n")
	require.ErrorIs(t, err, circuit.ErrQubitRange)
	assert.Contains(t, err.Error(), "line 2")

	_, err = qasm.Decode("qreg q[2];\ncp(pi) q[0],q[0];\n")
	assert.ErrorIs(t, err, circuit.ErrSameQubit)

	_, err = qasm.Decode("qreg q[2];\ncreg c[2];\nmeasure q[5] -> c[0];\n")
	assert.ErrorIs(t, err, circuit.ErrQubitRange)
}

// TestDecode_BadAngle wraps ErrAngle with the offending line.
func TestDecode_BadAngle(t *testing.T) {
	_, err := qasm.Decode("qreg q[2];\np(frog) q[0];\n")
	require.ErrorIs(t, err, qasm.ErrAngle)
	assert.Contains(t, err.Error(), "line 2")

	_, err = qasm.Decode("qreg q[1];\ncreg c[1];\np(pi/0) q[0];\n")
	assert.ErrorIs(t, err, qasm.ErrAngle)
}

// TestRoundTrip_TransformProgram encodes a recorded Fourier transform,
// decodes it back and requires the identical gate list, with and
// without measurements.
func TestRoundTrip_TransformProgram(t *testing.T) {
	c, err := circuit.New(4)
	require.NoError(t, err)
	require.NoError(t, qft.QFT(c, 4))

	src, err := qasm.Encode(c)
	require.NoError(t, err)
	dec, err := qasm.Decode(src)
	require.NoError(t, err)
	assert.Equal(t, c.Gates(), dec.Gates())
	assert.Equal(t, c.Qubits(), dec.Qubits())

	src, err = qasm.Encode(c, qasm.WithMeasurements())
	require.NoError(t, err)
	dec, err = qasm.Decode(src)
	require.NoError(t, err)
	assert.Equal(t, c.Gates(), dec.Gates(), "measurements must parse and drop")
}

// TestEncodeTo_DecodeFrom runs the same round trip through the stream
// variants.
func TestEncodeTo_DecodeFrom(t *testing.T) {
	c, err := circuit.New(3)
	require.NoError(t, err)
	require.NoError(t, qft.QFT(c, 3))

	var buf bytes.Buffer
	require.NoError(t, qasm.EncodeTo(&buf, c))
	dec, err := qasm.DecodeFrom(&buf)
	require.NoError(t, err)
	assert.Equal(t, c.Gates(), dec.Gates())
}

// TestDecodeFrom_ReadError propagates reader failures.
func TestDecodeFrom_ReadError(t *testing.T) {
	_, err := qasm.DecodeFrom(failingReader{})
	require.Error(t, err)
	assert.False(t, errors.Is(err, qasm.ErrSyntax))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("closed pipe") }
