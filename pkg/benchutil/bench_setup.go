// Package benchutil provides shared helpers for benchmarks and
// randomized tests.
package benchutil

import (
	"os"
	"testing"
)

// SkipIfNoLongBench skips the benchmark if MICROBENCH_LONG_BENCH is not set.
// Use this to gate long-running benchmarks that shouldn't run by default.
func SkipIfNoLongBench(b *testing.B) {
	b.Helper()
	if os.Getenv("MICROBENCH_LONG_BENCH") == "" {
		b.Skip("set MICROBENCH_LONG_BENCH=1 to run scaling benchmarks")
	}
}
