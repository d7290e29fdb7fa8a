package humanfmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// perIterUnits is ordered from seconds down. Scaling stops at the last
// entry, so subpicosecond values clamp to ps.
var perIterUnits = [...]string{"s", "ms", "μs", "ns", "ps"}

// PerIter formats a per-iteration wall time, given in seconds, under
// the largest unit that keeps the value at 1 or above: "12.345 μs/iter".
// The scaled value is rounded to three decimals and printed with at
// least one fractional digit, so whole numbers render as "2.0 s/iter".
func PerIter(seconds float64) string {
	v := seconds
	unit := 0
	for v < 1 && unit < len(perIterUnits)-1 {
		v *= 1000
		unit++
	}

	v = math.Round(v*1000) / 1000
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s + " " + perIterUnits[unit] + "/iter"
}

// OpsPerSec formats a per-iteration wall time, given in seconds, as a
// call rate like "81.04K ops/s".
func OpsPerSec(perIterSeconds float64) string {
	if perIterSeconds <= 0 {
		return "∞"
	}

	ops := 1 / perIterSeconds
	switch {
	case ops >= billion:
		return fmt.Sprintf("%.2fB ops/s", ops/billion)
	case ops >= million:
		return fmt.Sprintf("%.2fM ops/s", ops/million)
	case ops >= thousand:
		return fmt.Sprintf("%.2fK ops/s", ops/thousand)
	case ops >= 10:
		return fmt.Sprintf("%.1f ops/s", ops)
	default:
		return fmt.Sprintf("%.2f ops/s", ops)
	}
}
