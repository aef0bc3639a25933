// Package qft_test provides benchmarks for the transform builders, both
// recording into a circuit and applying straight to a simulated state.
package qft_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/qweave/circuit"
	"github.com/katalvlaran/qweave/qft"
	"github.com/katalvlaran/qweave/statevec"
)

// benchWidths are the register sizes to benchmark.
var benchWidths = []int{4, 8, 16}

// sink to defeat dead-code elimination
var sinkLen int

func BenchmarkQFT_Record(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchWidths {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				c, err := circuit.New(n)
				if err != nil {
					b.Fatal(err)
				}
				if err := qft.QFT(c, n); err != nil {
					b.Fatal(err)
				}
				sinkLen = c.Len()
			}
		})
	}
}

func BenchmarkQFT_Simulate(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{4, 8, 12} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			v, err := statevec.New(n)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := qft.QFT(v, n); err != nil {
					b.Fatal(err)
				}
				if err := qft.InverseQFT(v, n); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkInverseQFT_Record(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchWidths {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				c, err := circuit.New(n)
				if err != nil {
					b.Fatal(err)
				}
				if err := qft.InverseQFT(c, n); err != nil {
					b.Fatal(err)
				}
				sinkLen = c.Len()
			}
		})
	}
}
