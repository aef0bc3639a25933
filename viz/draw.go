// Package viz: ASCII circuit diagrams.
package viz

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/qweave/circuit"
	"github.com/katalvlaran/qweave/qasm"
)

// Draw writes the circuit as an ASCII diagram: one labeled line per
// wire (qubit 0 on top), one column per gate in application order.
// Single-qubit gates draw boxed ([H], [P(pi/2)]), controls draw ●,
// CX targets ⊕, swaps ×, with vertical connectors between the wires a
// two-qubit gate spans and ┼ where the connector crosses a
// pass-through wire.
//
//	q0: ──[H]──●─
//	           │
//	q1: ───────⊕─
//
// A nil circuit reports ErrNilCircuit; zero wires draw nothing.
func Draw(w io.Writer, c *circuit.Circuit) error {
	if w == nil {
		return ErrNilWriter
	}
	if c == nil {
		return ErrNilCircuit
	}
	n := c.Qubits()
	if n == 0 {
		return nil
	}

	labelW := len(fmt.Sprintf("q%d: ", n-1))
	lines := make([]string, 2*n-1)
	for q := 0; q < n; q++ {
		lines[2*q] = fmt.Sprintf("%-*s─", labelW, fmt.Sprintf("q%d:", q))
	}
	for r := 1; r < len(lines); r += 2 {
		lines[r] = strings.Repeat(" ", labelW+1)
	}

	for _, g := range c.Gates() {
		cells, lo, hi := gateCells(g)
		width := 0
		for _, s := range cells {
			if l := utf8.RuneCountInString(s); l > width {
				width = l
			}
		}
		width += 2

		for q := 0; q < n; q++ {
			switch {
			case cells[q] != "":
				lines[2*q] += center(cells[q], width, "─")
			case lo < q && q < hi:
				lines[2*q] += center("┼", width, "─")
			default:
				lines[2*q] += strings.Repeat("─", width)
			}
		}
		for gap := 0; gap < n-1; gap++ {
			if lo <= gap && gap+1 <= hi {
				lines[2*gap+1] += center("│", width, " ")
			} else {
				lines[2*gap+1] += strings.Repeat(" ", width)
			}
		}
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return fmt.Errorf("viz: write diagram: %w", err)
		}
	}

	return nil
}

// gateCells maps each involved wire to its glyph and reports the wire
// span the gate occupies.
func gateCells(g circuit.Gate) (cells map[int]string, lo, hi int) {
	cells = make(map[int]string, 2)
	switch g.Op {
	case circuit.OpH:
		cells[g.Target] = "[H]"
	case circuit.OpX:
		cells[g.Target] = "[X]"
	case circuit.OpPhase:
		cells[g.Target] = "[P(" + qasm.FormatAngle(g.Theta) + ")]"
	case circuit.OpCPhase:
		cells[g.Control] = "●"
		cells[g.Target] = "[P(" + qasm.FormatAngle(g.Theta) + ")]"
	case circuit.OpCX:
		cells[g.Control] = "●"
		cells[g.Target] = "⊕"
	case circuit.OpSwap:
		cells[g.Control] = "×"
		cells[g.Target] = "×"
	}
	lo, hi = g.Target, g.Target
	if g.Controlled() {
		if g.Control < lo {
			lo = g.Control
		}
		if g.Control > hi {
			hi = g.Control
		}
	}

	return cells, lo, hi
}

// center pads s to width with the fill rune on both sides, extra fill
// going right.
func center(s string, width int, fill string) string {
	pad := width - utf8.RuneCountInString(s)
	left := pad / 2

	return strings.Repeat(fill, left) + s + strings.Repeat(fill, pad-left)
}
