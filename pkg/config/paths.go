package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultConfigFilename is the configuration file name inside the user config directory.
	DefaultConfigFilename = "sssh.toml"

	// DefaultScriptFilename is the script file name inside the user config directory.
	DefaultScriptFilename = "sssh.sh"
)

// DefaultConfigDir returns the user configuration directory, e.g. ~/.config on Linux.
// Falls back to HOME when the platform directory is unavailable.
func DefaultConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil || strings.TrimSpace(base) == "" {
		home, herr := os.UserHomeDir()
		if herr != nil || strings.TrimSpace(home) == "" {
			return "", errors.New("could not get user's configuration directory")
		}
		return filepath.Join(home, ".config"), nil
	}
	return base, nil
}

// DefaultConfigPath returns <config dir>/sssh.toml, or the bare file name when the
// directory cannot be resolved.
func DefaultConfigPath() string {
	return defaultPath(DefaultConfigFilename)
}

// DefaultScriptPath returns <config dir>/sssh.sh, or the bare file name when the
// directory cannot be resolved.
func DefaultScriptPath() string {
	return defaultPath(DefaultScriptFilename)
}

func defaultPath(name string) string {
	dir, err := DefaultConfigDir()
	if err != nil {
		return name
	}
	return filepath.Join(dir, name)
}

// ExpandPath expands environment variables and a leading "~" in p.
func ExpandPath(p string) string {
	if p == "" {
		return ""
	}
	p = os.ExpandEnv(p)
	if strings.HasPrefix(p, "~") {
		home, _ := os.UserHomeDir()
		if home != "" {
			if p == "~" {
				p = home
			} else if strings.HasPrefix(p, "~/") {
				p = filepath.Join(home, p[2:])
			}
		}
	}
	return p
}
