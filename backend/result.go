// SPDX-License-Identifier: MIT
// Package backend: execution results.
package backend

import "time"

// Result holds one execution's counted outcomes. Counts keys are
// MSB-first bitstrings as produced by statevec.FormatBasis.
type Result struct {
	Backend string
	Shots   int
	Counts  map[string]int
	Elapsed time.Duration
}

// Probabilities returns the counts normalized to relative frequencies.
// The divisor is Shots when set, otherwise the sum of the counts, so
// results loaded from archived files normalize too. An empty result
// yields an empty, non-nil map.
func (r *Result) Probabilities() map[string]float64 {
	out := make(map[string]float64)
	if r == nil {
		return out
	}
	total := r.Shots
	if total <= 0 {
		for _, c := range r.Counts {
			total += c
		}
	}
	if total <= 0 {
		return out
	}
	for k, c := range r.Counts {
		out[k] = float64(c) / float64(total)
	}

	return out
}
