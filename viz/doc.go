// Package viz renders measurement counts, statevectors and recorded
// circuits for terminals and PNG files.
//
// Renderers:
//   - Histogram: ASCII bar chart of counted outcomes, scaled to the
//     tallest bar, with count and percentage columns.
//   - HistogramPNG: the same chart drawn into a PNG, labels set in the
//     fixed 7x13 bitmap face so output is byte-deterministic.
//   - StateTable: one row per basis state with amplitude, probability
//     and phase; WithHideZero culls negligible rows.
//   - Draw: circuit diagram with one column per gate, boxed
//     single-qubit gates, ● controls, ⊕ targets and ×–× swaps.
//
// All renderers write to an io.Writer and share one Option set; bars
// sort lexicographically by bitstring unless WithSortByCount is given.
// Keys follow the register convention of statevec.FormatBasis, highest
// qubit first.
package viz
