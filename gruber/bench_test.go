package gruber_test

import (
	"testing"

	"github.com/katalvlaran/crystal/gruber"
	"github.com/katalvlaran/crystal/lattice"
)

// benchmarkReduce runs Reduce on a fixed basis, failing on unexpected errors.
func benchmarkReduce(b *testing.B, basis lattice.Basis) {
	opts := gruber.DefaultOptions()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gruber.Reduce(basis, &opts); err != nil {
			b.Fatalf("Reduce failed: %v", err)
		}
	}
}

// BenchmarkReduce_AlreadyReduced measures the no-op fast path.
func BenchmarkReduce_AlreadyReduced(b *testing.B) {
	benchmarkReduce(b, lattice.Basis{{1, 0, 0}, {0, 1.1, 0}, {0, 0, 1.3}})
}

// BenchmarkReduce_Skewed measures a cell needing a handful of steps.
func BenchmarkReduce_Skewed(b *testing.B) {
	benchmarkReduce(b, lattice.Basis{{1, 0, 0}, {0, 1, 0}, {5, 1, 1}})
}

// BenchmarkReduce_HeavilySkewed measures a cell with large shears.
func BenchmarkReduce_HeavilySkewed(b *testing.B) {
	benchmarkReduce(b, lattice.Basis{{1, 0, 0}, {7, 1.2, 0}, {-9, 4, 0.8}})
}
