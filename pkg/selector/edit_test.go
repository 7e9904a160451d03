package selector

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sssh/pkg/config"
	"sssh/pkg/runner"
)

func TestEdit_ExpandsArguments(t *testing.T) {
	ed := &fakeEditor{elapsed: EditorFastStopThreshold}
	require.NoError(t, Edit(context.Background(), ed, "code", []string{"--wait", "{FILENAME}"}, "/c/sssh.toml"))
	assert.Equal(t, "code", ed.command)
	assert.Equal(t, []string{"--wait", "/c/sssh.toml"}, ed.args)
}

func TestEdit_FastStop(t *testing.T) {
	ed := &fakeEditor{elapsed: EditorFastStopThreshold - time.Millisecond}
	err := Edit(context.Background(), ed, "vim", nil, "/c/sssh.toml")
	assert.ErrorIs(t, err, ErrEditorFastStop)
}

func TestEdit_ProcessErrorPassesThrough(t *testing.T) {
	perr := &runner.ProcessError{Title: "Editor", Stage: runner.StageWait, Err: errors.New("interrupted")}
	err := Edit(context.Background(), &fakeEditor{err: perr}, "vim", nil, "/c/sssh.toml")
	assert.ErrorIs(t, err, perr)
}

func TestEditOverlay(t *testing.T) {
	msg, ok := editOverlay(ErrEditorFastStop, "/c/sssh.toml")
	require.True(t, ok)
	assert.Contains(t, msg, "Maybe your editor opened the edit tab inside another session.")
	assert.Contains(t, msg, `file: "/c/sssh.toml"`)

	msg, ok = editOverlay(&runner.ProcessError{Title: "Editor", Command: "vim", Stage: runner.StageFailed, Err: errors.New("E37")}, "")
	require.True(t, ok)
	assert.Contains(t, msg, "Editor process running command \"vim\"")
	assert.Contains(t, msg, "Edit the file manually and press `r` to reload it.")

	msg, ok = editOverlay(&config.SyntaxError{Path: "c.toml", Err: errors.New("bad")}, "")
	require.True(t, ok)
	assert.Contains(t, msg, "Could not decode configuration")

	_, ok = editOverlay(errors.New("disk on fire"), "")
	assert.False(t, ok)
}
