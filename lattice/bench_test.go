package lattice_test

import (
	"testing"

	"github.com/mikowitz/intonation/lattice"
	"github.com/mikowitz/intonation/ratio"
)

// benchmarkAt is a helper that queries a lattice of dims axes at a fixed
// index vector per iteration.
func benchmarkAt(b *testing.B, dims int, index int) {
	generators := [][2]int64{{3, 2}, {5, 4}, {7, 4}, {11, 8}}
	axes := make([]lattice.Dimension[int64], dims)
	for i := range axes {
		g := generators[i%len(generators)]
		axes[i] = lattice.NewDimension(ratio.New(g[0], g[1]), lattice.Infinite{})
	}
	l := lattice.New(axes...)

	indices := make([]int, dims)
	for i := range indices {
		indices[i] = index
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.At(indices...)
	}
}

// BenchmarkAt_TwoAxesShallow benchmarks the common 2-D unit query.
func BenchmarkAt_TwoAxesShallow(b *testing.B) {
	benchmarkAt(b, 2, 1)
}

// BenchmarkAt_FourAxesShallow benchmarks a 4-D unit query.
func BenchmarkAt_FourAxesShallow(b *testing.B) {
	benchmarkAt(b, 4, 1)
}

// BenchmarkAt_TwoAxesDeep benchmarks deep exponents on two axes.
func BenchmarkAt_TwoAxesDeep(b *testing.B) {
	benchmarkAt(b, 2, 10)
}
