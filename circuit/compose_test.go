package circuit_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/qweave/circuit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClone_Independent verifies the copy shares nothing with the
// original: appending to one leaves the other unchanged.
func TestClone_Independent(t *testing.T) {
	orig, err := circuit.New(2)
	require.NoError(t, err)
	require.NoError(t, orig.H(0))

	clone := orig.Clone()
	assert.Equal(t, orig.Gates(), clone.Gates())
	assert.Equal(t, orig.Qubits(), clone.Qubits())

	require.NoError(t, clone.X(1))
	assert.Equal(t, 1, orig.Len(), "original must not grow with the clone")
	assert.Equal(t, 2, clone.Len())
}

// TestInverse_ReversesAndNegates checks the two halves of inversion:
// gate order flips end to end and phase angles change sign.
func TestInverse_ReversesAndNegates(t *testing.T) {
	c, err := circuit.New(2)
	require.NoError(t, err)
	require.NoError(t, c.H(0))
	require.NoError(t, c.Phase(1, math.Pi/2))
	require.NoError(t, c.CPhase(0, 1, math.Pi/4))
	require.NoError(t, c.Swap(0, 1))

	inv := c.Inverse()
	want := []circuit.Gate{
		{Op: circuit.OpSwap, Target: 1, Control: 0},
		{Op: circuit.OpCPhase, Target: 1, Control: 0, Theta: -math.Pi / 4},
		{Op: circuit.OpPhase, Target: 1, Control: circuit.NoQubit, Theta: -math.Pi / 2},
		{Op: circuit.OpH, Target: 0, Control: circuit.NoQubit},
	}
	assert.Equal(t, want, inv.Gates())
	assert.Equal(t, c.Qubits(), inv.Qubits())
	assert.Equal(t, 4, c.Len(), "inversion must not consume the source")
}

// TestInverse_Empty confirms the inverse of an empty circuit is empty.
func TestInverse_Empty(t *testing.T) {
	c, err := circuit.New(3)
	require.NoError(t, err)

	inv := c.Inverse()
	assert.Equal(t, 0, inv.Len())
	assert.Equal(t, 3, inv.Qubits())
}

// TestInverse_Involution checks that inverting twice restores the
// original gate list exactly.
func TestInverse_Involution(t *testing.T) {
	c, err := circuit.New(3)
	require.NoError(t, err)
	require.NoError(t, c.H(2))
	require.NoError(t, c.CPhase(0, 2, math.Pi/4))
	require.NoError(t, c.Swap(0, 2))

	assert.Equal(t, c.Gates(), c.Inverse().Inverse().Gates())
}

// TestAppend_Remaps splices a two-qubit scratch circuit onto wires 2,3
// of a larger host and checks every operand was translated.
func TestAppend_Remaps(t *testing.T) {
	scratch, err := circuit.New(2)
	require.NoError(t, err)
	require.NoError(t, scratch.H(0))
	require.NoError(t, scratch.CX(0, 1))
	require.NoError(t, scratch.Swap(0, 1))

	host, err := circuit.New(4)
	require.NoError(t, err)
	require.NoError(t, host.Append(scratch, 2, 3))

	want := []circuit.Gate{
		{Op: circuit.OpH, Target: 2, Control: circuit.NoQubit},
		{Op: circuit.OpCX, Target: 3, Control: 2},
		{Op: circuit.OpSwap, Target: 3, Control: 2},
	}
	assert.Equal(t, want, host.Gates())
	assert.Equal(t, 3, scratch.Len(), "splicing must not consume the source")
}

// TestAppend_Validation exercises the mapping sentinels: nil source,
// wrong arity, duplicates, out-of-range entries. The host must stay
// untouched on every failure.
func TestAppend_Validation(t *testing.T) {
	scratch, err := circuit.New(2)
	require.NoError(t, err)
	require.NoError(t, scratch.H(0))

	host, err := circuit.New(3)
	require.NoError(t, err)

	assert.ErrorIs(t, host.Append(nil), circuit.ErrNilCircuit)
	assert.ErrorIs(t, host.Append(scratch, 0), circuit.ErrQubitMap, "arity below source register")
	assert.ErrorIs(t, host.Append(scratch, 0, 1, 2), circuit.ErrQubitMap, "arity above source register")
	assert.ErrorIs(t, host.Append(scratch, 1, 1), circuit.ErrQubitMap, "duplicate wires")
	assert.ErrorIs(t, host.Append(scratch, 0, 3), circuit.ErrQubitMap, "wire outside host")
	assert.ErrorIs(t, host.Append(scratch, -1, 1), circuit.ErrQubitMap, "negative wire")

	assert.Equal(t, 0, host.Len(), "failed splices must not mutate the host")
}

// TestAppend_Identity splices with the identity mapping and reproduces
// the source gate for gate.
func TestAppend_Identity(t *testing.T) {
	src, err := circuit.New(2)
	require.NoError(t, err)
	require.NoError(t, src.H(0))
	require.NoError(t, src.CPhase(0, 1, math.Pi/2))

	dst, err := circuit.New(2)
	require.NoError(t, err)
	require.NoError(t, dst.Append(src, 0, 1))

	assert.Equal(t, src.Gates(), dst.Gates())
}
