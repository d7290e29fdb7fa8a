package cli

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"github.com/eunmann/microbench/pkg/bench"
)

// runCapture runs the CLI with the given arguments and returns the
// report lines written to stdout.
func runCapture(t *testing.T, args ...string) []string {
	t.Helper()
	var buf bytes.Buffer
	if err := runWith(args, &buf); err != nil {
		t.Fatalf("runWith(%v) error: %v", args, err)
	}
	out := strings.TrimSpace(buf.String())
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

func TestRun_FibPrintsTwoLines(t *testing.T) {
	lines := runCapture(t, "fib")

	if len(lines) != 2 {
		t.Fatalf("got %d report lines, want 2: %q", len(lines), lines)
	}
	if !strings.HasPrefix(lines[0], "fib(15): ") {
		t.Errorf("line 0 = %q, want fib(15) first", lines[0])
	}
	if !strings.HasPrefix(lines[1], "fib(20): ") {
		t.Errorf("line 1 = %q, want fib(20) second", lines[1])
	}
}

func TestRun_PrimesPrintsOneLine(t *testing.T) {
	lines := runCapture(t, "primes")

	if len(lines) != 1 {
		t.Fatalf("got %d report lines, want 1: %q", len(lines), lines)
	}
	if !strings.HasPrefix(lines[0], "primes(1000000): ") {
		t.Errorf("line 0 = %q, want primes(1000000)", lines[0])
	}
}

func TestRun_BothSectionsFibThenPrimes(t *testing.T) {
	// Argument order does not matter; report order is fixed.
	lines := runCapture(t, "primes", "fib")

	if len(lines) != 3 {
		t.Fatalf("got %d report lines, want 3: %q", len(lines), lines)
	}
	wantPrefixes := []string{"fib(15): ", "fib(20): ", "primes(1000000): "}
	for i, prefix := range wantPrefixes {
		if !strings.HasPrefix(lines[i], prefix) {
			t.Errorf("line %d = %q, want prefix %q", i, lines[i], prefix)
		}
	}
}

func TestRun_NoArgsPrintsNothing(t *testing.T) {
	lines := runCapture(t)

	if len(lines) != 0 {
		t.Errorf("got %d report lines, want 0: %q", len(lines), lines)
	}
}

func TestRun_UnknownTokensIgnored(t *testing.T) {
	// Tokens match by equality: "fibonacci" does not enable "fib".
	lines := runCapture(t, "fibonacci", "prime", "nope")

	if len(lines) != 0 {
		t.Errorf("got %d report lines, want 0: %q", len(lines), lines)
	}
}

func TestRun_DuplicateTokens(t *testing.T) {
	// Selection is by presence; repeating a token runs its section once.
	lines := runCapture(t, "fib", "fib")

	if len(lines) != 2 {
		t.Errorf("got %d report lines, want 2: %q", len(lines), lines)
	}
}

func TestRun_ReportLineFormat(t *testing.T) {
	lineRE := regexp.MustCompile(`^[a-z]+\(\d+\): \d+\.\d+ (s|ms|μs|ns|ps)/iter$`)

	for _, line := range runCapture(t, "fib", "primes") {
		if !lineRE.MatchString(line) {
			t.Errorf("report line %q does not match %s", line, lineRE)
		}
	}
}

func TestRun_JSONReport(t *testing.T) {
	lines := runCapture(t, "--json", "fib")

	if len(lines) != 2 {
		t.Fatalf("got %d report lines, want 2: %q", len(lines), lines)
	}

	wantLabels := []string{"fib(15)", "fib(20)"}
	for i, line := range lines {
		var res struct {
			Label     string  `json:"label"`
			N         int     `json:"n"`
			ElapsedNS int64   `json:"elapsed_ns"`
			PerIter   float64 `json:"per_iter_sec"`
		}
		if err := json.Unmarshal([]byte(line), &res); err != nil {
			t.Fatalf("line %d is not valid JSON: %v: %q", i, err, line)
		}
		if res.Label != wantLabels[i] {
			t.Errorf("line %d label = %q, want %q", i, res.Label, wantLabels[i])
		}
		if res.N != bench.DefaultN {
			t.Errorf("line %d n = %d, want %d", i, res.N, bench.DefaultN)
		}
		if res.ElapsedNS <= 0 {
			t.Errorf("line %d elapsed_ns = %d, want positive", i, res.ElapsedNS)
		}
		if res.PerIter <= 0 {
			t.Errorf("line %d per_iter_sec = %v, want positive", i, res.PerIter)
		}
	}
}

func TestRun_InvalidFlag(t *testing.T) {
	var buf bytes.Buffer
	err := runWith([]string{"--no-such-flag"}, &buf)
	if err == nil {
		t.Fatal("expected error for unknown flag")
	}
	if buf.Len() != 0 {
		t.Errorf("expected no report output on flag error, got: %q", buf.String())
	}
}
