// Package viz: statevector table rendering.
package viz

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/katalvlaran/qweave/statevec"
)

// StateTable writes one row per basis state: the ket, the amplitude in
// rectangular form, the probability and the phase in radians.
//
//	state  amplitude      prob   phase
//	|00⟩   +0.500+0.000i  0.250  +0.000
//
// WithHideZero(tol) skips rows whose probability is at or below tol,
// the usual way to keep wide registers readable. A nil vector reports
// ErrNilVector.
func StateTable(w io.Writer, v *statevec.Vector, opts ...Option) error {
	if w == nil {
		return ErrNilWriter
	}
	if v == nil {
		return ErrNilVector
	}
	o := newOptions(opts)

	// The ket column is padded by display width, not bytes; the angle
	// bracket is multibyte.
	ketW := v.Qubits() + 2
	colW := ketW
	if colW < len("state") {
		colW = len("state")
	}
	pad := func(s string, display int) string {
		if d := colW - display; d > 0 {
			return s + strings.Repeat(" ", d)
		}
		return s
	}

	if _, err := fmt.Fprintf(w, "%s  %-13s  %-5s  %s\n", pad("state", len("state")), "amplitude", "prob", "phase"); err != nil {
		return fmt.Errorf("viz: write table: %w", err)
	}
	for i, a := range v.Amplitudes() {
		p := real(a)*real(a) + imag(a)*imag(a)
		if p <= o.hideZero {
			continue
		}
		ket := "|" + statevec.FormatBasis(i, v.Qubits()) + "⟩"
		phase := math.Atan2(imag(a), real(a))
		if _, err := fmt.Fprintf(w, "%s  %+.3f%+.3fi  %.3f  %+.3f\n",
			pad(ket, ketW), real(a), imag(a), p, phase); err != nil {
			return fmt.Errorf("viz: write table: %w", err)
		}
	}

	return nil
}
