package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Files locates the two files sssh manages and implements the selector's
// configuration loader and script ensurer.
type Files struct {
	ConfigPath string
	ScriptPath string
}

// LoadConfig makes sure the configuration file exists and parses it.
func (f Files) LoadConfig() (*Config, error) {
	if err := EnsureConfigFile(f.ConfigPath); err != nil {
		return nil, err
	}
	return Load(f.ConfigPath)
}

// EnsureScript makes sure the script file exists and is executable.
func (f Files) EnsureScript() error {
	_, err := EnsureScript(f.ScriptPath)
	return err
}

// EnsureConfigFile writes DefaultConfiguration to path unless a file already exists there.
func EnsureConfigFile(path string) error {
	exists, err := fileExists(path)
	if err != nil {
		return &FileError{Title: "configuration", Op: "read", Path: path, Err: err}
	}
	if exists {
		return nil
	}
	if err := writeNew("configuration", path, DefaultConfiguration, 0o644); err != nil {
		return err
	}
	log.Info("Created configuration file", "file", path)
	return nil
}

// EnsureScript writes DefaultScript to path when it is missing, reads it back and
// makes it executable. It returns the script content.
func EnsureScript(path string) (string, error) {
	exists, err := fileExists(path)
	if err != nil {
		return "", &FileError{Title: "script", Op: "read", Path: path, Err: err}
	}
	if !exists {
		if err := writeNew("script", path, DefaultScript, 0o775); err != nil {
			return "", err
		}
		log.Info("Created script file", "file", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", &FileError{Title: "script", Op: "read", Path: path, Err: err}
	}
	if err := ensureExecutable(path); err != nil {
		return "", &FileError{Title: "script", Op: "chmod", Path: path, Err: err}
	}
	return string(data), nil
}

func writeNew(title, path, content string, perm os.FileMode) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &FileError{Title: title, Op: "create", Path: path, Err: err}
		}
	}
	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		return &FileError{Title: title, Op: "write", Path: path, Err: err}
	}
	return nil
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}
