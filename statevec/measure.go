// Package statevec: measurement probabilities and sampling.
package statevec

import (
	"fmt"
	"math/rand"
	"sort"
)

// Probability returns |amplitude(x)|², the chance of reading basis
// state x when measuring the whole register.
// Returns ErrStateRange when x is outside [0, Dim()). O(1).
func (v *Vector) Probability(x int) (float64, error) {
	if x < 0 || x >= len(v.amps) {
		return 0, ErrStateRange
	}

	return prob(v.amps[x]), nil
}

// Probabilities returns the full measurement distribution in
// basis-state order. The slice sums to 1 up to float64 round-off.
// Complexity: O(2ⁿ).
func (v *Vector) Probabilities() []float64 {
	out := make([]float64, len(v.amps))
	for i, a := range v.amps {
		out[i] = prob(a)
	}

	return out
}

// Sample measures the register shots times and tallies the outcomes as
// MSB-first bitstrings, e.g. {"101": 498, "010": 526}. The state is not
// collapsed; every shot is an independent draw from the current
// distribution, normalized against accumulated round-off.
//
// Returns ErrNilRand for a nil source, ErrShots for negative shots.
// Zero shots yields an empty, non-nil map.
// Complexity: O(2ⁿ + shots·n) time, O(2ⁿ) space for the cumulative table.
func (v *Vector) Sample(rng *rand.Rand, shots int) (map[string]int, error) {
	if rng == nil {
		return nil, ErrNilRand
	}
	if shots < 0 {
		return nil, ErrShots
	}
	counts := make(map[string]int)
	if shots == 0 {
		return counts, nil
	}

	// Cumulative distribution over basis states; zero-probability states
	// collapse to empty intervals and are never drawn.
	cum := make([]float64, len(v.amps))
	total := 0.0
	for i, a := range v.amps {
		total += prob(a)
		cum[i] = total
	}

	for s := 0; s < shots; s++ {
		r := rng.Float64() * total
		x := sort.SearchFloat64s(cum, r)
		if x == len(cum) {
			x--
		}
		counts[FormatBasis(x, v.qubits)]++
	}

	return counts, nil
}

// FormatBasis renders basis-state index x over the given qubit count as
// a fixed-width bitstring with the highest qubit first: FormatBasis(5, 3)
// is "101". A zero-qubit register renders as the empty string. Callers
// pass a non-negative x below 2^qubits.
func FormatBasis(x, qubits int) string {
	if qubits == 0 {
		return ""
	}

	return fmt.Sprintf("%0*b", qubits, x)
}

// prob is |a|² without the square root of cmplx.Abs.
func prob(a complex128) float64 {
	return real(a)*real(a) + imag(a)*imag(a)
}
