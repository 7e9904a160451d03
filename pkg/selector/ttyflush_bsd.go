//go:build !linux && !windows

package selector

// tcflush is left to the drain loop on platforms without TCFLSH.
func tcflush(int) {}
