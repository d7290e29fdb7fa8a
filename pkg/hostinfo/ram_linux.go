//go:build linux

package hostinfo

import "golang.org/x/sys/unix"

// totalRAM returns total system RAM on Linux using sysinfo.
func totalRAM() (uint64, bool) {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return 0, false
	}
	// Total RAM in bytes = Totalram * Unit
	return info.Totalram * uint64(info.Unit), true
}
