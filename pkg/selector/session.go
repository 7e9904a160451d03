// Package selector implements the interactive server picker: the selection state,
// key bindings, screen layout and the loop that ties them to the configuration,
// the editor and the connect script.
package selector

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"sssh/pkg/config"
	"sssh/pkg/runner"
)

// ConfigLoader loads the configuration file, creating it first if missing.
// A *config.SyntaxError is shown on screen; any other error is fatal.
type ConfigLoader interface {
	LoadConfig() (*config.Config, error)
}

// ScriptEnsurer guarantees the connect script exists and is executable.
type ScriptEnsurer interface {
	EnsureScript() error
}

// ScriptRunner runs the connect script attached to the terminal.
type ScriptRunner interface {
	Run(ctx context.Context, c runner.Command) (runner.Output, error)
}

// Options are the settings the session reads. Nothing else is taken from the environment.
type Options struct {
	Title         string
	ConfigPath    string
	ScriptPath    string
	Verbose       bool
	SkipRun       bool
	EditorCommand string
	EditorArgs    []string
}

// Session is the outer loop of the picker.
type Session struct {
	Options Options

	Config ConfigLoader
	Script ScriptEnsurer
	Editor EditorRunner
	Runner ScriptRunner
	Screen Screen
	Theme  Theme

	// Out receives the skip-mode message. Defaults to os.Stdout.
	Out io.Writer

	// FlushInput discards keys typed while the editor was closing. Optional.
	FlushInput func()
}

// Run loops until the user quits, a fatal error occurs or a choice is confirmed.
// On a confirmed choice the script's result is returned.
func (s *Session) Run(ctx context.Context) error {
	cfg, overlay, err := s.load()
	if err != nil {
		return err
	}

	for {
		if err := s.Script.EnsureScript(); err != nil {
			return err
		}

		picker, err := s.Screen.Run(ctx, NewPicker(s.Options.Title, cfg, overlay, s.Theme))
		if err != nil {
			return err
		}
		outcome, err := picker.Outcome()
		if err != nil {
			return err
		}
		log.Debug("Interactive pass ended", "outcome", outcome.Kind)

		switch outcome.Kind {
		case OutcomeStop:
			return nil
		case OutcomeEdit:
			if cfg, overlay, err = s.edit(ctx, cfg); err != nil {
				return err
			}
		case OutcomeReload:
			if cfg, overlay, err = s.load(); err != nil {
				return err
			}
		case OutcomeChosen:
			return s.connect(ctx, outcome.Server, outcome.Username)
		default:
			return fmt.Errorf("unknown outcome %v", outcome.Kind)
		}
	}
}

// load parses the configuration. A syntax error yields an empty snapshot and its text as overlay.
func (s *Session) load() (*config.Config, string, error) {
	cfg, err := s.Config.LoadConfig()
	var serr *config.SyntaxError
	switch {
	case errors.As(err, &serr):
		log.Debug("Configuration has errors", "error", serr)
		return config.Empty(s.Options.ConfigPath), serr.Error(), nil
	case err != nil:
		return nil, "", err
	}
	return cfg, "", nil
}

// edit runs the editor and reloads. When the editor fails the current snapshot
// is kept and the failure becomes the overlay.
func (s *Session) edit(ctx context.Context, cfg *config.Config) (*config.Config, string, error) {
	err := Edit(ctx, s.Editor, s.Options.EditorCommand, s.Options.EditorArgs, s.Options.ConfigPath)
	if s.FlushInput != nil {
		s.FlushInput()
	}
	if err != nil {
		msg, ok := editOverlay(err, s.Options.ConfigPath)
		if !ok {
			return nil, "", err
		}
		log.Debug("Editing failed", "error", err)
		return cfg, msg, nil
	}
	return s.load()
}

func (s *Session) connect(ctx context.Context, srv config.Server, username string) error {
	if s.Options.SkipRun {
		_, err := fmt.Fprintf(s.out(), "You have selected `%s` (%s). Skip running script file.\n",
			srv.Name, srv.Address(username))
		return err
	}
	_, err := s.Runner.Run(ctx, ScriptCommand(s.Options.ScriptPath, srv, username, s.Options.Verbose))
	return err
}

func (s *Session) out() io.Writer {
	if s.Out == nil {
		return os.Stdout
	}
	return s.Out
}
