package logging

import (
	"time"

	"github.com/eunmann/microbench/pkg/humanfmt"
	"github.com/rs/zerolog"
)

// CompletionEvent helps build consistent completion log events.
type CompletionEvent struct {
	log     zerolog.Logger
	event   string
	target  string
	elapsed time.Duration
	fields  map[string]interface{}
}

// NewCompletionEvent creates a new completion event builder. The target
// may be empty for events that cover the whole run.
func NewCompletionEvent(log zerolog.Logger, event, target string, elapsed time.Duration) *CompletionEvent {
	return &CompletionEvent{
		log:     log,
		event:   event,
		target:  target,
		elapsed: elapsed,
		fields:  make(map[string]interface{}),
	}
}

// Str adds a string field.
func (ce *CompletionEvent) Str(key, val string) *CompletionEvent {
	ce.fields[key] = val
	return ce
}

// Int adds an int field.
func (ce *CompletionEvent) Int(key string, val int) *CompletionEvent {
	ce.fields[key] = val
	return ce
}

// Int64 adds an int64 field.
func (ce *CompletionEvent) Int64(key string, val int64) *CompletionEvent {
	ce.fields[key] = val
	return ce
}

// Uint64 adds a uint64 field.
func (ce *CompletionEvent) Uint64(key string, val uint64) *CompletionEvent {
	ce.fields[key] = val
	return ce
}

// Float64 adds a float64 field.
func (ce *CompletionEvent) Float64(key string, val float64) *CompletionEvent {
	ce.fields[key] = val
	return ce
}

// Bytes adds a byte count with optional human-readable companion.
func (ce *CompletionEvent) Bytes(key string, bytes int64) *CompletionEvent {
	ce.fields[key] = bytes
	if IsPrettyMode() {
		ce.fields[key+"_h"] = humanfmt.Bytes(bytes)
	}
	return ce
}

// BytesUint64 adds a uint64 byte count field.
func (ce *CompletionEvent) BytesUint64(key string, bytes uint64) *CompletionEvent {
	return ce.Bytes(key, int64(bytes))
}

// Count adds a count with optional human-readable companion.
func (ce *CompletionEvent) Count(key string, n int64) *CompletionEvent {
	ce.fields[key] = n
	if IsPrettyMode() {
		ce.fields[key+"_h"] = humanfmt.Count(n)
	}
	return ce
}

// CountUint64 adds a uint64 count field.
func (ce *CompletionEvent) CountUint64(key string, n uint64) *CompletionEvent {
	return ce.Count(key, int64(n))
}

// PerIter adds the normalized per-iteration time (given in seconds) as
// nanoseconds, with the unit-ladder companion in pretty mode.
func (ce *CompletionEvent) PerIter(seconds float64) *CompletionEvent {
	ce.fields["per_iter_ns"] = seconds * 1e9
	if IsPrettyMode() {
		ce.fields["per_iter_h"] = humanfmt.PerIter(seconds)
	}
	return ce
}

// OpsRate adds the call rate implied by a per-iteration time in seconds.
func (ce *CompletionEvent) OpsRate(seconds float64) *CompletionEvent {
	if seconds > 0 {
		ce.fields["ops_per_sec"] = 1 / seconds
		if IsPrettyMode() {
			ce.fields["ops_per_sec_h"] = humanfmt.OpsPerSec(seconds)
		}
	}
	return ce
}

// Log emits the completion event.
func (ce *CompletionEvent) Log(msg string) {
	e := ce.log.Info().
		Str("event", ce.event).
		Int64("duration_ms", ce.elapsed.Milliseconds())

	if ce.target != "" {
		e = e.Str("target", ce.target)
	}
	if IsPrettyMode() {
		e = e.Str("duration_h", humanfmt.Duration(ce.elapsed))
	}

	for k, v := range ce.fields {
		e = e.Interface(k, v)
	}

	e.Msg(msg)
}

// LogDebug emits the completion event at debug level.
func (ce *CompletionEvent) LogDebug(msg string) {
	e := ce.log.Debug().
		Str("event", ce.event).
		Int64("duration_ms", ce.elapsed.Milliseconds())

	if ce.target != "" {
		e = e.Str("target", ce.target)
	}
	if IsPrettyMode() {
		e = e.Str("duration_h", humanfmt.Duration(ce.elapsed))
	}

	for k, v := range ce.fields {
		e = e.Interface(k, v)
	}

	e.Msg(msg)
}

// BenchComplete logs a benchmark target completion event.
func BenchComplete(log zerolog.Logger, target string, elapsed time.Duration) *CompletionEvent {
	return NewCompletionEvent(log, "bench_completed", target, elapsed)
}

// SuiteComplete logs a whole-run completion event.
func SuiteComplete(log zerolog.Logger, elapsed time.Duration) *CompletionEvent {
	return NewCompletionEvent(log, "suite_completed", "", elapsed)
}

// BenchStarted logs a benchmark start event (no duration).
func BenchStarted(log zerolog.Logger, target string, n int) {
	log.Info().
		Str("event", "bench_started").
		Str("target", target).
		Int("n", n).
		Msg("benchmark started")
}
