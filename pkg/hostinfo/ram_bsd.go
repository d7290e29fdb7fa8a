//go:build freebsd || openbsd || netbsd || dragonfly

package hostinfo

import "golang.org/x/sys/unix"

// totalRAM returns total system RAM on BSD variants using sysctl.
func totalRAM() (uint64, bool) {
	// hw.physmem is available on most BSDs
	mem, err := unix.SysctlUint64("hw.physmem")
	if err == nil && mem > 0 {
		return mem, true
	}

	// Fallback: hw.realmem on FreeBSD
	mem, err = unix.SysctlUint64("hw.realmem")
	if err == nil && mem > 0 {
		return mem, true
	}

	return 0, false
}
