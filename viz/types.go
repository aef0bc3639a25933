// Package viz: sentinel errors and shared rendering options.
package viz

import "errors"

var (
	// ErrNilWriter is returned when the destination writer is nil.
	ErrNilWriter = errors.New("viz: nil writer")

	// ErrNoCounts is returned by the histogram renderers for an empty
	// or nil counts map.
	ErrNoCounts = errors.New("viz: no counts to render")

	// ErrNilVector is returned by StateTable for a nil vector.
	ErrNilVector = errors.New("viz: nil vector")

	// ErrNilCircuit is returned by Draw for a nil circuit.
	ErrNilCircuit = errors.New("viz: nil circuit")
)

// defaultBarWidth is the ASCII histogram bar scale in characters.
const defaultBarWidth = 40

// options collects the knobs shared by the renderers; each renderer
// reads the fields it understands and ignores the rest.
type options struct {
	barWidth    int
	sortByCount bool
	hideZero    float64
}

// Option adjusts a renderer call.
type Option func(*options)

// newOptions applies opts over the defaults: 40-character bars,
// lexicographic ordering, no row culling.
func newOptions(opts []Option) options {
	o := options{barWidth: defaultBarWidth, hideZero: -1}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithBarWidth sets the length of the tallest ASCII bar in characters.
// Values below 1 are ignored.
func WithBarWidth(w int) Option {
	return func(o *options) {
		if w >= 1 {
			o.barWidth = w
		}
	}
}

// WithSortByCount orders bars by descending count instead of by key;
// ties fall back to key order.
func WithSortByCount() Option {
	return func(o *options) { o.sortByCount = true }
}

// WithHideZero makes StateTable skip rows whose probability is at or
// below tol.
func WithHideZero(tol float64) Option {
	return func(o *options) { o.hideZero = tol }
}
