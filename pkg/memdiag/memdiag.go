// Package memdiag reads allocation and GC statistics around benchmark runs.
package memdiag

import (
	"runtime"

	"github.com/eunmann/microbench/pkg/humanfmt"
	"github.com/eunmann/microbench/pkg/logging"
)

// Stats holds a point-in-time snapshot of runtime memory statistics.
type Stats struct {
	// HeapAlloc is bytes allocated on heap and still in use.
	HeapAlloc uint64

	// TotalAlloc is cumulative bytes allocated (even if freed).
	TotalAlloc uint64

	// Mallocs is the cumulative count of heap objects allocated.
	Mallocs uint64

	// Frees is the cumulative count of heap objects freed.
	Frees uint64

	// NumGC is the number of completed GC cycles.
	NumGC uint32

	// GCCPUFraction is the fraction of CPU used by GC.
	GCCPUFraction float64
}

// Read reads current memory statistics.
func Read() Stats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return Stats{
		HeapAlloc:     m.HeapAlloc,
		TotalAlloc:    m.TotalAlloc,
		Mallocs:       m.Mallocs,
		Frees:         m.Frees,
		NumGC:         m.NumGC,
		GCCPUFraction: m.GCCPUFraction,
	}
}

// Delta is the allocation activity between two snapshots.
type Delta struct {
	// AllocBytes is how many bytes were allocated in the interval,
	// counting allocations that have since been freed.
	AllocBytes uint64

	// Mallocs is how many heap objects were allocated.
	Mallocs uint64

	// Frees is how many heap objects were freed.
	Frees uint64

	// GCCycles is how many GC cycles completed.
	GCCycles uint32

	// HeapAllocEnd is live heap bytes at the end of the interval.
	HeapAllocEnd uint64
}

// Since returns the allocation activity between the given snapshot and now.
func Since(before Stats) Delta {
	after := Read()
	return Delta{
		AllocBytes:   after.TotalAlloc - before.TotalAlloc,
		Mallocs:      after.Mallocs - before.Mallocs,
		Frees:        after.Frees - before.Frees,
		GCCycles:     after.NumGC - before.NumGC,
		HeapAllocEnd: after.HeapAlloc,
	}
}

// ForceGC forces a garbage collection and logs the result.
func ForceGC() {
	log := logging.L()

	before := Read()
	runtime.GC()
	after := Read()

	freed := int64(before.HeapAlloc) - int64(after.HeapAlloc)

	log.Debug().
		Str("before_heap", humanfmt.BytesUint64(before.HeapAlloc)).
		Str("after_heap", humanfmt.BytesUint64(after.HeapAlloc)).
		Str("freed", humanfmt.Bytes(max(freed, 0))).
		Msg("forced GC")
}
