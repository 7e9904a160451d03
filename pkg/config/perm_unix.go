//go:build !windows

package config

import "os"

// ensureExecutable sets mode 0775 when no execute bit is present.
func ensureExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.Mode().Perm()&0o111 != 0 {
		return nil
	}
	return os.Chmod(path, 0o775)
}
