package selector

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"sssh/pkg/config"
	"sssh/pkg/runner"
)

// EditorFastStopThreshold is the shortest editor session taken as a real edit.
// Editors that hand the file to an already open window return sooner. This is a
// heuristic: a quick edit in a terminal editor can also trip it.
const EditorFastStopThreshold = 2 * time.Second

// ErrEditorFastStop reports an editor that returned before EditorFastStopThreshold.
var ErrEditorFastStop = errors.New("editor process was running for less than 2 seconds")

// EditorRunner opens a file in an editor and blocks until it exits.
type EditorRunner interface {
	RunEditor(ctx context.Context, command string, args []string) (time.Duration, error)
}

// Edit opens file with command. args may reference the file as {FILENAME}.
func Edit(ctx context.Context, editor EditorRunner, command string, args []string, file string) error {
	expanded := config.EditorArgs(command, args, file)
	log.Debug("Open editor", "command", command, "arguments", expanded)

	elapsed, err := editor.RunEditor(ctx, command, expanded)
	if err != nil {
		return err
	}
	if elapsed < EditorFastStopThreshold {
		log.Debug("Editor returned too quickly", "elapsed", elapsed)
		return ErrEditorFastStop
	}
	return nil
}

// editOverlay turns a recoverable edit failure into overlay text.
func editOverlay(err error, file string) (string, bool) {
	var perr *runner.ProcessError
	var serr *config.SyntaxError
	switch {
	case errors.Is(err, ErrEditorFastStop):
		return fmt.Sprintf("Editor process was running for less than 2 seconds!\n"+
			"Maybe your editor opened the edit tab inside another session.\n"+
			"After editing configuration file press `r` to reload it.\n\nfile: %q", file), true
	case errors.As(err, &perr):
		return fmt.Sprintf("%v\nEdit the file manually and press `r` to reload it.", err), true
	case errors.As(err, &serr):
		return serr.Error(), true
	}
	return "", false
}
