// SPDX-License-Identifier: MIT

package connectivity_test

import (
	"testing"

	"github.com/wiepstikvoort/Nonequilibrium-asymmetry-PCI/connectivity"
)

// benchmarkStats runs Stats on an n×t random series at lag 1.
func benchmarkStats(b *testing.B, n, t int) {
	x := randomSeries(n, t, 42)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := connectivity.Stats(x, 1); err != nil {
			b.Fatalf("Stats failed: %v", err)
		}
	}
}

// BenchmarkStats_Small benchmarks a 10-region, 500-sample series.
func BenchmarkStats_Small(b *testing.B) { benchmarkStats(b, 10, 500) }

// BenchmarkStats_Atlas benchmarks a 100-region, 2000-sample series.
func BenchmarkStats_Atlas(b *testing.B) { benchmarkStats(b, 100, 2000) }
