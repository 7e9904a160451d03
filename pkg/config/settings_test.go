package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsApplyEnv_FillsUnsetFlags(t *testing.T) {
	env := map[string]string{
		EnvVerbose:        "1",
		EnvConfigFile:     "/tmp/c.toml",
		EnvSkipSelect:     "yes",
		EnvEditorCommand:  "code",
		EnvEditorArgument: "--wait  {FILENAME}",
	}
	lookup := func(k string) (string, bool) { v, ok := env[k]; return v, ok }

	s := Settings{ConfigFile: "default.toml", ScriptFile: "default.sh"}
	require.NoError(t, s.ApplyEnv(lookup, func(string) bool { return false }))

	assert.True(t, s.Verbose)
	assert.False(t, s.Quiet)
	assert.Equal(t, "/tmp/c.toml", s.ConfigFile)
	assert.Equal(t, "default.sh", s.ScriptFile)
	assert.True(t, s.SkipSelect)
	assert.Equal(t, "code", s.EditorCommand)
	assert.Equal(t, []string{"--wait", "{FILENAME}"}, s.EditorArgs)
	assert.Equal(t, []string{"--wait", "/tmp/c.toml"}, s.EditorArguments())
}

func TestSettingsApplyEnv_ExplicitFlagWins(t *testing.T) {
	lookup := func(k string) (string, bool) {
		if k == EnvConfigFile {
			return "/from/env.toml", true
		}
		return "", false
	}
	s := Settings{ConfigFile: "/from/flag.toml"}
	require.NoError(t, s.ApplyEnv(lookup, func(flag string) bool { return flag == "config-file" }))
	assert.Equal(t, "/from/flag.toml", s.ConfigFile)
}

func TestSettingsApplyEnv_BadBool(t *testing.T) {
	lookup := func(k string) (string, bool) {
		if k == EnvQuiet {
			return "maybe", true
		}
		return "", false
	}
	var s Settings
	err := s.ApplyEnv(lookup, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvQuiet)
}
