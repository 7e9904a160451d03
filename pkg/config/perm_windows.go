//go:build windows

package config

// ensureExecutable is a no-op: Windows has no execute bit.
func ensureExecutable(string) error { return nil }
