// Package hostinfo reports the host environment a benchmark run executes on.
//
// Latency numbers only mean something next to the machine that produced
// them, so the CLI logs this snapshot at the start of every run. RAM is
// detected with platform-specific probes and falls back to a safe
// default on unsupported platforms.
package hostinfo

import (
	"os"
	"runtime"
)

// DefaultRAMBytes is the fallback RAM value (4 GB) used when
// platform-specific detection fails or is unsupported.
const DefaultRAMBytes uint64 = 4 * 1024 * 1024 * 1024

// Env is a snapshot of the host environment.
type Env struct {
	GOOS      string
	GOARCH    string
	NumCPU    int
	GoVersion string

	// Hostname is empty when the OS refuses to report one.
	Hostname string

	// TotalRAMBytes is the total system memory in bytes.
	TotalRAMBytes uint64

	// RAMReliable indicates whether TotalRAMBytes was obtained from a
	// platform-specific probe (true) or is the fallback default (false).
	RAMReliable bool
}

// Collect gathers the host environment. It never fails; values that
// cannot be determined fall back to defaults.
func Collect() Env {
	env := Env{
		GOOS:      runtime.GOOS,
		GOARCH:    runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
		GoVersion: runtime.Version(),
	}

	if hostname, err := os.Hostname(); err == nil {
		env.Hostname = hostname
	}

	ram, ok := totalRAM()
	if !ok || ram == 0 {
		env.TotalRAMBytes = DefaultRAMBytes
		env.RAMReliable = false
		return env
	}
	env.TotalRAMBytes = ram
	env.RAMReliable = true
	return env
}
