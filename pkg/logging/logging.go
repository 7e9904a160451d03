// Package logging builds the application logger.
package logging

import (
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

// ErrVerboseOnTerminal is returned when verbose logging would be written onto the
// terminal the selector draws on.
var ErrVerboseOnTerminal = errors.New("verbose mode (-v or --verbose) with the `select` subcommand " +
	"(the default subcommand) needs `stderr` forwarded somewhere else, e.g. 2>sssh.log")

// Options controls Setup.
type Options struct {
	// Writer receives log lines. Defaults to os.Stderr.
	Writer io.Writer

	Verbose bool
	Quiet   bool

	// Interactive is set for the full-screen selector. Logging is then off unless
	// verbose, and verbose requires Writer not to be a terminal.
	Interactive bool

	// IsTerminal reports whether Writer is a terminal. Defaults to a check of os.Stderr.
	IsTerminal func() bool
}

// Setup builds the logger, installs it as the package default of charmbracelet/log
// and returns it.
func Setup(opts Options) (*log.Logger, error) {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	isTerm := opts.IsTerminal
	if isTerm == nil {
		isTerm = func() bool { return term.IsTerminal(int(os.Stderr.Fd())) }
	}

	if opts.Interactive && opts.Verbose && !opts.Quiet && isTerm() {
		return nil, ErrVerboseOnTerminal
	}

	level := log.InfoLevel
	if opts.Verbose {
		level = log.DebugLevel
	}
	if opts.Quiet || (opts.Interactive && !opts.Verbose) {
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		ReportCaller:    opts.Verbose,
	})
	log.SetDefault(logger)
	return logger, nil
}
