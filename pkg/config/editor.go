package config

import (
	"os/exec"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
)

// FilenamePlaceholder is replaced by the configuration path in editor arguments.
const FilenamePlaceholder = "{FILENAME}"

type editorCandidate struct {
	command string
	args    []string
}

// knownEditors are searched on PATH, in order, when no editor is configured.
func knownEditors() []editorCandidate {
	if runtime.GOOS == "windows" {
		return []editorCandidate{
			{"notepad++", []string{"-nosession", "-notabbar", FilenamePlaceholder}},
			{"notepad", []string{FilenamePlaceholder}},
		}
	}
	return []editorCandidate{
		{"vim", []string{FilenamePlaceholder}},
		{"nano", []string{"-l", FilenamePlaceholder}},
		{"vi", []string{FilenamePlaceholder}},
	}
}

// DiscoverEditor returns the first known editor found by lookPath, or "" when none is installed.
// A nil lookPath means exec.LookPath.
func DiscoverEditor(lookPath func(string) (string, error)) string {
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	for _, e := range knownEditors() {
		if _, err := lookPath(e.command); err == nil {
			return e.command
		}
	}
	return ""
}

// DefaultEditorArgs returns the argument template for a known editor, or just the placeholder.
func DefaultEditorArgs(command string) []string {
	name := strings.TrimSuffix(filepath.Base(command), filepath.Ext(command))
	for _, e := range knownEditors() {
		if e.command == name {
			return slices.Clone(e.args)
		}
	}
	return []string{FilenamePlaceholder}
}

// EditorArgs expands an argument template for command and file.
//
// An untouched default template ({FILENAME} alone) is replaced by the known template
// for command first. Every {FILENAME} is substituted with file; when no argument ends
// up referring to file, file is appended.
func EditorArgs(command string, args []string, file string) []string {
	if len(args) == 0 || slices.Equal(args, []string{FilenamePlaceholder}) {
		args = DefaultEditorArgs(command)
	}

	out := make([]string, 0, len(args)+1)
	appendFile := true
	for _, a := range args {
		expanded := strings.ReplaceAll(a, FilenamePlaceholder, file)
		if expanded != a || a == file {
			appendFile = false
		}
		out = append(out, expanded)
	}
	if appendFile {
		out = append(out, file)
	}
	return out
}
