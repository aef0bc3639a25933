// Package viz: ASCII histogram rendering.
package viz

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Histogram writes counts as an ASCII bar chart, one line per outcome:
// key, count, percentage, then a bar of '#' scaled so the largest
// count fills the configured width. Nonzero counts always draw at
// least one character.
//
//	00  1   25.0%  #
//	11  3   75.0%  ####
//
// Keys sort lexicographically, or by descending count under
// WithSortByCount. Empty counts report ErrNoCounts.
func Histogram(w io.Writer, counts map[string]int, opts ...Option) error {
	if w == nil {
		return ErrNilWriter
	}
	if len(counts) == 0 {
		return ErrNoCounts
	}
	o := newOptions(opts)

	keys := sortedKeys(counts, o)
	keyW, countW, maxN, total := histogramShape(counts, keys)

	for _, key := range keys {
		n := counts[key]
		bar := strings.Repeat("#", scaleBar(n, maxN, o.barWidth))
		frac := 100 * float64(n) / float64(total)
		if _, err := fmt.Fprintf(w, "%-*s  %*d  %5.1f%%  %s\n", keyW, key, countW, n, frac, bar); err != nil {
			return fmt.Errorf("viz: write histogram: %w", err)
		}
	}

	return nil
}

// sortedKeys orders the outcome labels per the options.
func sortedKeys(counts map[string]int, o options) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if o.sortByCount {
		sort.SliceStable(keys, func(i, j int) bool {
			return counts[keys[i]] > counts[keys[j]]
		})
	}

	return keys
}

// histogramShape measures the column widths and totals in one pass.
func histogramShape(counts map[string]int, keys []string) (keyW, countW, maxN, total int) {
	for _, k := range keys {
		if len(k) > keyW {
			keyW = len(k)
		}
		n := counts[k]
		total += n
		if n > maxN {
			maxN = n
		}
	}
	countW = len(strconv.Itoa(maxN))
	if total == 0 {
		total = 1
	}

	return keyW, countW, maxN, total
}

// scaleBar maps a count onto the bar width, rounding but never
// flattening a nonzero count to nothing.
func scaleBar(n, maxN, width int) int {
	if n <= 0 || maxN <= 0 {
		return 0
	}
	l := int(math.Round(float64(n) / float64(maxN) * float64(width)))
	if l < 1 {
		l = 1
	}

	return l
}
