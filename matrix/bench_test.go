// Package matrix_test provides benchmarks for the matrix kernels used by the
// embedding loop, using deterministic random fill.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/manifold/matrix"
)

var benchSizes = []int{128, 256, 512}

// sinks to defeat dead-code elimination
var (
	sinkD *matrix.Dense
	sinkV []float64
	sinkF float64
)

func randDense(b *testing.B, n int, seed int64) *matrix.Dense {
	b.Helper()
	m, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(seed))
	data := m.RawData()
	for i := range data {
		data[i] = rng.Float64()
	}

	return m
}

func BenchmarkSymmetrize(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := randDense(b, n, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s, err := matrix.Symmetrize(m, 0.5)
				if err != nil {
					b.Fatal(err)
				}
				sinkD = s
			}
		})
	}
}

func BenchmarkRowSums(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := randDense(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s, err := matrix.RowSums(m)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = s
			}
		})
	}
}

func BenchmarkFrobeniusNorm(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := randDense(b, n, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				f, err := matrix.FrobeniusNorm(m)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = f
			}
		})
	}
}
