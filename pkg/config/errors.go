package config

import "fmt"

// SyntaxError reports a configuration file that could be read but not decoded or validated.
// The selector shows it on screen instead of aborting.
type SyntaxError struct {
	Path string
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("Could not decode configuration from %q\n%v", e.Path, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// FileError reports an I/O failure on one of the managed files. It is always fatal.
type FileError struct {
	// Title names the file role: "configuration" or "script".
	Title string
	// Op is one of read, write, create, chmod.
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	switch e.Op {
	case "chmod":
		return fmt.Sprintf("could not set execute permissions for %s file %q: %v", e.Title, e.Path, e.Err)
	case "create":
		return fmt.Sprintf("could not create directory for %s file %q: %v", e.Title, e.Path, e.Err)
	default:
		return fmt.Sprintf("could not %s %s file %q: %v", e.Op, e.Title, e.Path, e.Err)
	}
}

func (e *FileError) Unwrap() error { return e.Err }
