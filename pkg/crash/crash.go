// Package crash prints a report when sssh panics.
package crash

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"
	"strings"
)

// ExitCode is used after a crash report has been printed.
const ExitCode = 101

// Info identifies the build in the report.
type Info struct {
	Name    string
	Version string
	Issues  string
}

// Error carries a panic that was recovered away from main, such as inside the
// terminal UI loop, so main can still report it.
type Error struct {
	Value any
	Stack []byte
}

func (e *Error) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Handle must be deferred directly in main. It recovers a panic, writes a report to w
// and exits with ExitCode.
func Handle(w io.Writer, info Info) {
	r := recover()
	if r == nil {
		return
	}
	Report(w, info, r, debug.Stack(), os.Args)
	os.Exit(ExitCode)
}

// Report writes a human readable crash report.
func Report(w io.Writer, info Info, cause any, stack []byte, args []string) {
	command := strings.TrimSpace(strings.Join(args, " "))
	if command != "" {
		command = fmt.Sprintf(" when running `%s`", command)
	}
	issues := ""
	if info.Issues != "" {
		issues = fmt.Sprintf("Please submit an issue at %s with the report below.\n", info.Issues)
	}

	fmt.Fprintf(w, "%s had a problem and crashed. To help us diagnose the problem you can send us a crash report.\n", info.Name)
	fmt.Fprint(w, issues)
	fmt.Fprintf(w, "\n# Crash report\nPanic%s (version %s).\n\n", command, info.Version)
	fmt.Fprintf(w, "### Cause\n```text\n%v\n```\n\n", cause)
	trace := strings.TrimRight(string(stack), "\n")
	if trace == "" {
		trace = "not available"
	}
	fmt.Fprintf(w, "#### Stack\n```text\n%s\n```\n\n", trace)
	fmt.Fprintf(w, "#### OS info\n%s/%s, %s\n\n", runtime.GOOS, runtime.GOARCH, runtime.Version())
	fmt.Fprintf(w, "#### Logs\n```text\nNote that you can rerun `%s` with `-v` flag and include debug logging here.\n```\n", info.Name)
}
