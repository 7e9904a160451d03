// Package runner starts external processes (the editor and the connect script)
// attached to the terminal and reports how they ended.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

// Stage tells where running a process went wrong.
type Stage int

const (
	StageStart Stage = iota
	StageWait
	StageFailed
)

func (s Stage) String() string {
	switch s {
	case StageStart:
		return "start"
	case StageWait:
		return "wait"
	case StageFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ProcessError describes a process that could not be started, waited for, or exited non-zero.
type ProcessError struct {
	Title   string
	Command string
	Args    []string
	Stage   Stage

	// ExitCode is the child's exit status for StageFailed, otherwise 0.
	ExitCode int

	Err error
}

func (e *ProcessError) Error() string {
	switch e.Stage {
	case StageStart:
		return fmt.Sprintf("Could not start %s process with command %q and arguments %q\n%v", e.Title, e.Command, e.Args, e.Err)
	case StageWait:
		return fmt.Sprintf("Could not wait for %s process running command %q with arguments %q\n%v", e.Title, e.Command, e.Args, e.Err)
	default:
		return fmt.Sprintf("%s process running command %q with arguments %q failed\n%v", e.Title, e.Command, e.Args, e.Err)
	}
}

func (e *ProcessError) Unwrap() error { return e.Err }

// Command is one process invocation.
type Command struct {
	// Title names the process in messages, e.g. "Editor" or "Script".
	Title string
	Path  string
	Args  []string

	// Env entries (KEY=value) are appended to the current environment.
	Env []string
}

// Output holds the captured tail of the streams that were not a terminal.
type Output struct {
	Stdout string
	Stderr string
}

// Runner runs commands synchronously. Zero values of the stream fields mean the
// process standard streams.
type Runner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New returns a Runner attached to the process standard streams.
func New() *Runner {
	return &Runner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// captureLimit bounds how much output is kept from a stream that is not a terminal.
const captureLimit = 64 << 10

// Run starts c and blocks until it exits. There is no timeout: a hung child hangs the caller.
//
// A stream that is a terminal is handed to the child as is, so editors and ssh see a
// real tty; nothing is captured from it. Any other stream is passed through and its
// tail is captured for the error message.
func (r *Runner) Run(ctx context.Context, c Command) (Output, error) {
	log.Debug("Attempt to start process", "title", c.Title, "command", c.Path, "arguments", c.Args)

	stdout, stderr := &tailBuffer{limit: captureLimit}, &tailBuffer{limit: captureLimit}
	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	cmd.Stdin = r.stdin()
	cmd.Stdout = attach(r.stdout(), stdout)
	cmd.Stderr = attach(r.stderr(), stderr)
	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}

	if err := cmd.Start(); err != nil {
		return Output{}, &ProcessError{Title: c.Title, Command: c.Path, Args: c.Args, Stage: StageStart, Err: err}
	}

	werr := cmd.Wait()
	out := Output{Stdout: stdout.String(), Stderr: stderr.String()}
	if werr == nil {
		log.Debug("Process exited successfully", "title", c.Title, "command", c.Path, "stdout", out.Stdout, "stderr", out.Stderr)
		return out, nil
	}

	var ee *exec.ExitError
	if !errors.As(werr, &ee) {
		return out, &ProcessError{Title: c.Title, Command: c.Path, Args: c.Args, Stage: StageWait, Err: werr}
	}

	combined := out.Stderr + out.Stdout
	log.Error("Process failed", "title", c.Title, "command", c.Path, "arguments", c.Args, "output", combined)
	cause := errors.New(strings.TrimSpace(combined))
	if strings.TrimSpace(combined) == "" {
		cause = fmt.Errorf("%s process failed", c.Title)
	}
	return out, &ProcessError{
		Title:    c.Title,
		Command:  c.Path,
		Args:     c.Args,
		Stage:    StageFailed,
		ExitCode: ee.ExitCode(),
		Err:      cause,
	}
}

// RunEditor runs the editor and reports how long it was open.
func (r *Runner) RunEditor(ctx context.Context, command string, args []string) (time.Duration, error) {
	if strings.TrimSpace(command) == "" {
		return 0, &ProcessError{
			Title: "Editor",
			Stage: StageStart,
			Args:  args,
			Err:   errors.New("no editor found; set --editor-command or SSSH_EDITOR_COMMAND"),
		}
	}
	start := time.Now()
	_, err := r.Run(ctx, Command{Title: "Editor", Path: command, Args: args})
	return time.Since(start), err
}

// attach returns w itself when it is a terminal, otherwise w teed into capture.
func attach(w io.Writer, capture *tailBuffer) io.Writer {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return f
	}
	return io.MultiWriter(w, capture)
}

// tailBuffer keeps the last limit bytes written to it.
type tailBuffer struct {
	buf   bytes.Buffer
	limit int
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	n := len(p)
	if len(p) > t.limit {
		p = p[len(p)-t.limit:]
	}
	if over := t.buf.Len() + len(p) - t.limit; over > 0 {
		t.buf.Next(over)
	}
	t.buf.Write(p)
	return n, nil
}

func (t *tailBuffer) String() string { return t.buf.String() }

func (r *Runner) stdin() io.Reader {
	if r.Stdin == nil {
		return os.Stdin
	}
	return r.Stdin
}

func (r *Runner) stdout() io.Writer {
	if r.Stdout == nil {
		return os.Stdout
	}
	return r.Stdout
}

func (r *Runner) stderr() io.Writer {
	if r.Stderr == nil {
		return os.Stderr
	}
	return r.Stderr
}
