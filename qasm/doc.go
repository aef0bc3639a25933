// SPDX-License-Identifier: MIT
// Package qasm encodes recorded circuits as OpenQASM 2.0 text and
// decodes the same dialect back into circuits.
//
// Scope:
//   - Emission covers the whole circuit gate set (h, x, p, cp, cx,
//     swap), with an option to close the program with a classical
//     register and one measurement per wire.
//   - Parsing accepts the emitted dialect plus light tolerance:
//     comments, blank lines, barrier statements, the u1/cu1 aliases
//     for p/cp, arbitrary register identifiers, and flexible spacing.
//
// Angles print as rational multiples of pi ("pi/2", "-pi/4", "3*pi/4",
// "2*pi") whenever a small or dyadic denominator reproduces the float
// exactly, and as shortest-form decimals otherwise. ParseAngle accepts
// both spellings plus bare coefficients like "2pi".
//
// Failures are package sentinels wrapped with the offending line
// number; match with errors.Is. Decoded gates pass through the circuit
// package's own validation, so circuit.ErrQubitRange and friends
// surface here unchanged (wrapped the same way).
//
// One qreg and at most one creg per program; measurements are checked
// for well-formedness and then dropped, since the simulator measures
// every wire anyway.
package qasm
