package editdist_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/editdist"
)

// benchmarkDistance runs Distance on synthetic strings of lengths n and m
// using opts. It resets the timer before entering the loop and fails on
// unexpected errors.
func benchmarkDistance(b *testing.B, n, m int, opts editdist.Options) {
	const alphabet = "abcdefghij"

	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteByte(alphabet[i%len(alphabet)])
	}
	source := sb.String()

	sb.Reset()
	for j := 0; j < m; j++ {
		sb.WriteByte(alphabet[(j+3)%len(alphabet)]) // shifted so the strings differ
	}
	target := sb.String()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := editdist.Distance(source, target, &opts); err != nil {
			b.Fatalf("Distance failed: %v", err)
		}
	}
}

// BenchmarkDistance_SmallDistanceOnly benchmarks distance-only queries on 100×100 strings.
func BenchmarkDistance_SmallDistanceOnly(b *testing.B) {
	opts := editdist.DefaultOptions()
	opts.Mode = editdist.ModeDistance
	benchmarkDistance(b, 100, 100, opts)
}

// BenchmarkDistance_SmallBoth benchmarks distance+traceback on 100×100 strings.
func BenchmarkDistance_SmallBoth(b *testing.B) {
	opts := editdist.DefaultOptions()
	benchmarkDistance(b, 100, 100, opts)
}

// BenchmarkDistance_MediumDistanceOnly benchmarks distance-only queries on 500×500 strings.
func BenchmarkDistance_MediumDistanceOnly(b *testing.B) {
	opts := editdist.DefaultOptions()
	opts.Mode = editdist.ModeDistance
	benchmarkDistance(b, 500, 500, opts)
}

// BenchmarkDistance_MediumBoth benchmarks distance+traceback on 500×500 strings.
func BenchmarkDistance_MediumBoth(b *testing.B) {
	opts := editdist.DefaultOptions()
	benchmarkDistance(b, 500, 500, opts)
}

// BenchmarkDistance_Skewed benchmarks a short pattern against a long text.
func BenchmarkDistance_Skewed(b *testing.B) {
	opts := editdist.DefaultOptions()
	opts.Mode = editdist.ModeDistance
	benchmarkDistance(b, 20, 1000, opts)
}
