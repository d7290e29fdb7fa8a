// Package bench implements the timing harness for benchmark targets.
//
// A target is a zero-argument callable plus the label to report it
// under. Run times the callable over a fixed iteration count, divides
// total wall time by the count, and returns the normalized result. The
// harness is synchronous and single-threaded; the context carries only
// the logger, never cancellation.
package bench

import (
	"context"
	"time"

	"github.com/eunmann/microbench/internal/logctx"
	"github.com/eunmann/microbench/pkg/humanfmt"
	"github.com/eunmann/microbench/pkg/logging"
	"github.com/eunmann/microbench/pkg/memdiag"
)

// DefaultN is the iteration count used when a target does not set one.
const DefaultN = 10000

// Target is one benchmark target.
type Target struct {
	// Label is the expression the result line reports, e.g. "fib(15)".
	Label string

	// N is how many times Fn runs. Zero or negative means DefaultN.
	N int

	// Fn is the workload. It must be non-nil and must do all its work
	// itself; the harness adds nothing per iteration.
	Fn func()
}

// Result is the measurement for one target.
type Result struct {
	Label   string        `json:"label"`
	N       int           `json:"n"`
	Elapsed time.Duration `json:"elapsed_ns"`
	PerIter float64       `json:"per_iter_sec"`
}

// Line renders the result in report form: "fib(15): 12.345 μs/iter".
func (r Result) Line() string {
	return r.Label + ": " + humanfmt.PerIter(r.PerIter)
}

// Run times t.Fn over the target's iteration count. It runs the loop
// on the calling goroutine and never returns early.
func Run(ctx context.Context, t Target) Result {
	n := t.N
	if n <= 0 {
		n = DefaultN
	}

	log := logctx.FromContext(ctx)
	logging.BenchStarted(log, t.Label, n)

	// Level the heap so allocation debt from earlier targets is not
	// collected on this target's clock.
	memdiag.ForceGC()

	memBefore := memdiag.Read()
	start := time.Now()
	for range n {
		t.Fn()
	}
	elapsed := time.Since(start)
	memDelta := memdiag.Since(memBefore)

	perIter := elapsed.Seconds() / float64(n)

	logging.BenchComplete(log, t.Label, elapsed).
		Count("n", int64(n)).
		PerIter(perIter).
		OpsRate(perIter).
		Log("benchmark finished")

	log.Debug().
		Str("target", t.Label).
		Uint64("alloc_bytes", memDelta.AllocBytes).
		Uint64("mallocs", memDelta.Mallocs).
		Uint64("frees", memDelta.Frees).
		Uint32("gc_cycles", memDelta.GCCycles).
		Uint64("heap_alloc_end", memDelta.HeapAllocEnd).
		Msg("allocation activity")

	return Result{Label: t.Label, N: n, Elapsed: elapsed, PerIter: perIter}
}
