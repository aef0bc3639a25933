// SPDX-License-Identifier: MIT
// Package qasm: angle formatting and parsing.
package qasm

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// piExprRe matches "[-][k][*]pi[/d]" with optional spacing, so "pi",
// "-pi/2", "3*pi/4", "2pi" and " 3 * pi / 4 " all parse.
var piExprRe = regexp.MustCompile(`^\s*(-?)\s*(\d+(?:\.\d+)?)?\s*\*?\s*(?i:pi)\s*(?:/\s*(\d+(?:\.\d+)?))?\s*$`)

// FormatAngle renders theta for a QASM gate parameter. Multiples of pi
// with denominators up to 64, and dyadic denominators up to 2^20, come
// out symbolic ("pi/2", "3*pi/4", "2*pi"); anything else falls back to
// the shortest decimal that round-trips through ParseAngle exactly.
func FormatAngle(theta float64) string {
	if theta == 0 {
		return "0"
	}
	for d := int64(1); d <= 64; d++ {
		if s, ok := piFraction(theta, d); ok {
			return s
		}
	}
	for d := int64(128); d <= 1<<20; d <<= 1 {
		if s, ok := piFraction(theta, d); ok {
			return s
		}
	}

	return strconv.FormatFloat(theta, 'g', -1, 64)
}

// piFraction reports whether theta is k*pi/d for a small integer k and
// renders it when so. The first denominator that fits wins, which keeps
// the fraction in lowest terms without a gcd pass.
func piFraction(theta float64, d int64) (string, bool) {
	k := theta * float64(d) / math.Pi
	r := math.Round(k)
	if r == 0 || math.Abs(r) > 1<<20 || math.Abs(k-r) > 1e-12*math.Max(1, math.Abs(r)) {
		return "", false
	}

	var sb strings.Builder
	n := int64(r)
	if n < 0 {
		sb.WriteByte('-')
		n = -n
	}
	if n != 1 {
		sb.WriteString(strconv.FormatInt(n, 10))
		sb.WriteByte('*')
	}
	sb.WriteString("pi")
	if d != 1 {
		sb.WriteByte('/')
		sb.WriteString(strconv.FormatInt(d, 10))
	}

	return sb.String(), true
}

// ParseAngle evaluates a QASM gate parameter: either a multiple of pi
// ("pi", "-pi/2", "3*pi/4", "2pi") or a plain decimal ("0", "1.5708").
// Anything else, including a zero denominator, reports ErrAngle.
func ParseAngle(s string) (float64, error) {
	if m := piExprRe.FindStringSubmatch(s); m != nil {
		theta := math.Pi
		if m[2] != "" {
			coef, err := strconv.ParseFloat(m[2], 64)
			if err != nil {
				return 0, ErrAngle
			}
			theta *= coef
		}
		if m[3] != "" {
			denom, err := strconv.ParseFloat(m[3], 64)
			if err != nil || denom == 0 {
				return 0, ErrAngle
			}
			theta /= denom
		}
		if m[1] == "-" {
			theta = -theta
		}
		return theta, nil
	}
	theta, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, ErrAngle
	}

	return theta, nil
}
