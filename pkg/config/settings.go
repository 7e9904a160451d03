package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Environment variables consulted for settings that were not given on the command line.
const (
	EnvVerbose        = "SSSH_VERBOSE"
	EnvQuiet          = "SSSH_QUIET"
	EnvConfigFile     = "SSSH_CONFIG_FILE"
	EnvScriptFile     = "SSSH_SCRIPT_FILE"
	EnvSkipSelect     = "SSSH_SKIP_SELECT"
	EnvEditorCommand  = "SSSH_EDITOR_COMMAND"
	EnvEditorArgument = "SSSH_EDITOR_ARGUMENTS"
)

// Settings is the explicit run configuration threaded through the commands.
// Nothing below cmd/ reads flags or the environment directly.
type Settings struct {
	Verbose bool
	Quiet   bool

	ConfigFile string
	ScriptFile string

	// SkipSelect prints the chosen server instead of running the script.
	SkipSelect bool

	EditorCommand string
	EditorArgs    []string
}

// DefaultSettings resolves the defaults: files under the user config directory and
// the first editor found on PATH. EditorArgs stays empty so the template of whichever
// editor ends up configured is used.
func DefaultSettings() Settings {
	return Settings{
		ConfigFile:    DefaultConfigPath(),
		ScriptFile:    DefaultScriptPath(),
		EditorCommand: DiscoverEditor(nil),
	}
}

// envBinding ties a flag name to its environment variable.
type envBinding struct {
	flag  string
	env   string
	apply func(s *Settings, v string) error
}

var envBindings = []envBinding{
	{"verbose", EnvVerbose, func(s *Settings, v string) (err error) { s.Verbose, err = parseBool(v); return }},
	{"quiet", EnvQuiet, func(s *Settings, v string) (err error) { s.Quiet, err = parseBool(v); return }},
	{"config-file", EnvConfigFile, func(s *Settings, v string) error { s.ConfigFile = ExpandPath(v); return nil }},
	{"script-file", EnvScriptFile, func(s *Settings, v string) error { s.ScriptFile = ExpandPath(v); return nil }},
	{"skip-select", EnvSkipSelect, func(s *Settings, v string) (err error) { s.SkipSelect, err = parseBool(v); return }},
	{"editor-command", EnvEditorCommand, func(s *Settings, v string) error { s.EditorCommand = v; return nil }},
	{"editor-argument", EnvEditorArgument, func(s *Settings, v string) error { s.EditorArgs = strings.Fields(v); return nil }},
}

// ApplyEnv fills settings from the environment. Settings whose flag was given
// explicitly (changed reports true) are left alone.
func (s *Settings) ApplyEnv(lookup func(string) (string, bool), changed func(flag string) bool) error {
	for _, b := range envBindings {
		if changed != nil && changed(b.flag) {
			continue
		}
		v, ok := lookup(b.env)
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		if err := b.apply(s, v); err != nil {
			return fmt.Errorf("%s: %w", b.env, err)
		}
	}
	return nil
}

func parseBool(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "yes", "on":
		return true, nil
	case "no", "off":
		return false, nil
	}
	return strconv.ParseBool(strings.TrimSpace(v))
}

// EditorArguments returns the editor argv (without the command) for the configuration file.
func (s Settings) EditorArguments() []string {
	return EditorArgs(s.EditorCommand, s.EditorArgs, s.ConfigFile)
}
