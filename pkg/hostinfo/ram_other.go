//go:build !linux && !darwin && !windows && !freebsd && !openbsd && !netbsd && !dragonfly

package hostinfo

// totalRAM returns 0 on unsupported platforms to trigger the default
// fallback.
func totalRAM() (uint64, bool) {
	return 0, false
}
