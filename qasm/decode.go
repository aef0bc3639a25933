// SPDX-License-Identifier: MIT
// Package qasm: OpenQASM 2.0 parsing.
package qasm

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/qweave/circuit"
)

// Statement shapes, anchored after comment stripping and trimming.
var (
	versionRe = regexp.MustCompile(`^OPENQASM\s+([\d.]+)\s*;$`)
	includeRe = regexp.MustCompile(`^include\s+"[^"]*"\s*;$`)
	barrierRe = regexp.MustCompile(`^barrier\b[^;]*;$`)
	qregRe    = regexp.MustCompile(`^qreg\s+([A-Za-z_]\w*)\s*\[\s*(\d+)\s*\]\s*;$`)
	cregRe    = regexp.MustCompile(`^creg\s+([A-Za-z_]\w*)\s*\[\s*(\d+)\s*\]\s*;$`)
	measureRe = regexp.MustCompile(`^measure\s+([A-Za-z_]\w*)\s*\[\s*(\d+)\s*\]\s*->\s*([A-Za-z_]\w*)\s*\[\s*(\d+)\s*\]\s*;$`)
	param2Re  = regexp.MustCompile(`^([A-Za-z_]\w*)\s*\(([^)]*)\)\s*([A-Za-z_]\w*)\s*\[\s*(\d+)\s*\]\s*,\s*([A-Za-z_]\w*)\s*\[\s*(\d+)\s*\]\s*;$`)
	param1Re  = regexp.MustCompile(`^([A-Za-z_]\w*)\s*\(([^)]*)\)\s*([A-Za-z_]\w*)\s*\[\s*(\d+)\s*\]\s*;$`)
	plain2Re  = regexp.MustCompile(`^([A-Za-z_]\w*)\s+([A-Za-z_]\w*)\s*\[\s*(\d+)\s*\]\s*,\s*([A-Za-z_]\w*)\s*\[\s*(\d+)\s*\]\s*;$`)
	plain1Re  = regexp.MustCompile(`^([A-Za-z_]\w*)\s+([A-Za-z_]\w*)\s*\[\s*(\d+)\s*\]\s*;$`)
)

// knownGates lists every mnemonic the dialect understands, so a known
// gate at the wrong arity reports ErrSyntax instead of
// ErrUnsupportedGate.
var knownGates = map[string]bool{
	"h": true, "x": true,
	"p": true, "u1": true,
	"cp": true, "cu1": true,
	"cx": true, "swap": true,
}

// reserved holds structural keywords that must never reach gate
// dispatch; seeing one there means the statement itself is malformed.
var reserved = map[string]bool{
	"openqasm": true, "include": true,
	"qreg": true, "creg": true,
	"measure": true, "barrier": true,
	"gate": true, "opaque": true, "if": true,
}

// decoder carries parse state across statements.
type decoder struct {
	c        *circuit.Circuit
	qreg     string
	creg     string
	cregSize int
}

// Decode parses an OpenQASM 2.0 program into a recorded circuit,
// replaying every gate through the circuit package's appenders so
// their validation applies. Errors carry the one-based line number.
//
// The version header is optional; when present it must declare 2.0.
// Comments ("// ..."), blank lines, includes and barriers are skipped.
// Measurements are validated and dropped.
func Decode(src string) (*circuit.Circuit, error) {
	var d decoder
	for i, raw := range strings.Split(src, "\n") {
		line := raw
		if at := strings.Index(line, "//"); at >= 0 {
			line = line[:at]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if err := d.statement(line); err != nil {
			return nil, lineErr(i+1, err)
		}
	}
	if d.c == nil {
		return nil, ErrNoRegister
	}

	return d.c, nil
}

// DecodeFrom reads r to the end and decodes the text. r must be
// non-nil.
func DecodeFrom(r io.Reader) (*circuit.Circuit, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("qasm: read: %w", err)
	}

	return Decode(string(src))
}

// statement dispatches one trimmed, non-empty line.
func (d *decoder) statement(line string) error {
	if m := versionRe.FindStringSubmatch(line); m != nil {
		if m[1] != "2.0" {
			return fmt.Errorf("%w: %s", ErrVersion, m[1])
		}
		return nil
	}
	if includeRe.MatchString(line) || barrierRe.MatchString(line) {
		return nil
	}
	if m := qregRe.FindStringSubmatch(line); m != nil {
		return d.declareQreg(m[1], m[2])
	}
	if m := cregRe.FindStringSubmatch(line); m != nil {
		return d.declareCreg(m[1], m[2])
	}
	if m := measureRe.FindStringSubmatch(line); m != nil {
		return d.measure(m)
	}
	if d.c == nil {
		return ErrNoRegister
	}
	if m := param2Re.FindStringSubmatch(line); m != nil {
		return d.applyParam2(m)
	}
	if m := param1Re.FindStringSubmatch(line); m != nil {
		return d.applyParam1(m)
	}
	if m := plain2Re.FindStringSubmatch(line); m != nil {
		return d.apply2(m)
	}
	if m := plain1Re.FindStringSubmatch(line); m != nil {
		return d.apply1(m)
	}

	return ErrSyntax
}

func (d *decoder) declareQreg(name, size string) error {
	if d.c != nil {
		return fmt.Errorf("%w: duplicate qreg", ErrSyntax)
	}
	n, err := strconv.Atoi(size)
	if err != nil {
		return ErrSyntax
	}
	c, err := circuit.New(n)
	if err != nil {
		return err
	}
	d.c, d.qreg = c, name

	return nil
}

func (d *decoder) declareCreg(name, size string) error {
	if d.creg != "" {
		return fmt.Errorf("%w: duplicate creg", ErrSyntax)
	}
	n, err := strconv.Atoi(size)
	if err != nil {
		return ErrSyntax
	}
	d.creg, d.cregSize = name, n

	return nil
}

// measure checks a measurement for well-formed registers and in-range
// indices, then drops it.
func (d *decoder) measure(m []string) error {
	if d.c == nil {
		return ErrNoRegister
	}
	if d.creg == "" {
		return fmt.Errorf("%w: measure without creg", ErrSyntax)
	}
	q, err := d.operand(m[1], m[2])
	if err != nil {
		return err
	}
	if q >= d.c.Qubits() {
		return circuit.ErrQubitRange
	}
	if m[3] != d.creg {
		return fmt.Errorf("%w: unknown creg %q", ErrSyntax, m[3])
	}
	b, err := strconv.Atoi(m[4])
	if err != nil || b >= d.cregSize {
		return fmt.Errorf("%w: classical bit out of range", ErrSyntax)
	}

	return nil
}

// operand resolves one "reg[idx]" pair against the declared qreg.
func (d *decoder) operand(reg, idx string) (int, error) {
	if reg != d.qreg {
		return 0, fmt.Errorf("%w: unknown qreg %q", ErrSyntax, reg)
	}
	q, err := strconv.Atoi(idx)
	if err != nil {
		return 0, ErrSyntax
	}

	return q, nil
}

func (d *decoder) apply1(m []string) error {
	q, err := d.operand(m[2], m[3])
	if err != nil {
		return err
	}
	switch strings.ToLower(m[1]) {
	case "h":
		return d.c.H(q)
	case "x":
		return d.c.X(q)
	}

	return d.unknown(m[1])
}

func (d *decoder) apply2(m []string) error {
	a, err := d.operand(m[2], m[3])
	if err != nil {
		return err
	}
	b, err := d.operand(m[4], m[5])
	if err != nil {
		return err
	}
	switch strings.ToLower(m[1]) {
	case "cx":
		return d.c.CX(a, b)
	case "swap":
		return d.c.Swap(a, b)
	}

	return d.unknown(m[1])
}

func (d *decoder) applyParam1(m []string) error {
	q, err := d.operand(m[3], m[4])
	if err != nil {
		return err
	}
	switch strings.ToLower(m[1]) {
	case "p", "u1":
		theta, err := ParseAngle(m[2])
		if err != nil {
			return err
		}
		return d.c.Phase(q, theta)
	}

	return d.unknown(m[1])
}

func (d *decoder) applyParam2(m []string) error {
	a, err := d.operand(m[3], m[4])
	if err != nil {
		return err
	}
	b, err := d.operand(m[5], m[6])
	if err != nil {
		return err
	}
	switch strings.ToLower(m[1]) {
	case "cp", "cu1":
		theta, err := ParseAngle(m[2])
		if err != nil {
			return err
		}
		return d.c.CPhase(a, b, theta)
	}

	return d.unknown(m[1])
}

// unknown classifies a mnemonic that fell through gate dispatch.
func (d *decoder) unknown(name string) error {
	lower := strings.ToLower(name)
	if knownGates[lower] || reserved[lower] {
		return fmt.Errorf("%w: %q", ErrSyntax, name)
	}

	return fmt.Errorf("%w: %q", ErrUnsupportedGate, name)
}
