package bench

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/eunmann/microbench/internal/logctx"
	"github.com/rs/zerolog"
)

func TestRun_InvokesFnExactlyNTimes(t *testing.T) {
	count := 0
	res := Run(context.Background(), Target{
		Label: "count()",
		N:     37,
		Fn:    func() { count++ },
	})

	if count != 37 {
		t.Errorf("Fn invoked %d times, want 37", count)
	}
	if res.N != 37 {
		t.Errorf("Result.N = %d, want 37", res.N)
	}
	if res.Label != "count()" {
		t.Errorf("Result.Label = %q, want %q", res.Label, "count()")
	}
}

func TestRun_DefaultN(t *testing.T) {
	tests := []struct {
		name string
		n    int
	}{
		{"zero", 0},
		{"negative", -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count := 0
			res := Run(context.Background(), Target{
				Label: "count()",
				N:     tt.n,
				Fn:    func() { count++ },
			})

			if count != DefaultN {
				t.Errorf("Fn invoked %d times, want %d", count, DefaultN)
			}
			if res.N != DefaultN {
				t.Errorf("Result.N = %d, want %d", res.N, DefaultN)
			}
		})
	}
}

func TestRun_PerIterIsElapsedOverN(t *testing.T) {
	res := Run(context.Background(), Target{
		Label: "sleep(1ms)",
		N:     5,
		Fn:    func() { time.Sleep(time.Millisecond) },
	})

	if res.Elapsed < 5*time.Millisecond {
		t.Errorf("Elapsed = %v, want at least 5ms", res.Elapsed)
	}
	want := res.Elapsed.Seconds() / float64(res.N)
	if res.PerIter != want {
		t.Errorf("PerIter = %v, want %v", res.PerIter, want)
	}
	if res.PerIter < 0.001 {
		t.Errorf("PerIter = %v, want at least 1ms for a 1ms sleep", res.PerIter)
	}
}

func TestRun_LogsCompletionEvent(t *testing.T) {
	var buf bytes.Buffer
	ctx := logctx.WithLogger(context.Background(), zerolog.New(&buf))

	Run(ctx, Target{Label: "count()", N: 3, Fn: func() {}})

	output := buf.String()
	if !strings.Contains(output, `"event":"bench_started"`) {
		t.Errorf("expected bench_started event, got: %s", output)
	}
	if !strings.Contains(output, `"event":"bench_completed"`) {
		t.Errorf("expected bench_completed event, got: %s", output)
	}
	if !strings.Contains(output, `"target":"count()"`) {
		t.Errorf("expected target field, got: %s", output)
	}
	if !strings.Contains(output, `"n":3`) {
		t.Errorf("expected n field, got: %s", output)
	}
	if !strings.Contains(output, `"per_iter_ns":`) {
		t.Errorf("expected per_iter_ns field, got: %s", output)
	}
}

func TestResultLine(t *testing.T) {
	tests := []struct {
		result Result
		want   string
	}{
		{Result{Label: "fib(15)", PerIter: 1.2345e-5}, "fib(15): 12.345 μs/iter"},
		{Result{Label: "primes(1000000)", PerIter: 0.0052}, "primes(1000000): 5.2 ms/iter"},
		{Result{Label: "slow()", PerIter: 2.0}, "slow(): 2.0 s/iter"},
	}

	for _, tt := range tests {
		got := tt.result.Line()
		if got != tt.want {
			t.Errorf("Line() = %q, want %q", got, tt.want)
		}
	}
}
