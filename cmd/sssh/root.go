package main

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"sssh/pkg/config"
	"sssh/pkg/logging"
	"sssh/pkg/runner"
	"sssh/pkg/selector"
)

// interactiveAnnotation marks commands that take over the terminal.
const interactiveAnnotation = "sssh/interactive"

// cli holds what the commands share once flags and environment are resolved.
type cli struct {
	settings config.Settings

	out    io.Writer
	errOut io.Writer

	lookupEnv  func(string) (string, bool)
	isTerminal func() bool
	screen     selector.Screen
	runner     *runner.Runner
}

func newCLI(stdout, stderr io.Writer) *cli {
	return &cli{
		settings:   config.DefaultSettings(),
		out:        stdout,
		errOut:     stderr,
		lookupEnv:  os.LookupEnv,
		isTerminal: func() bool { return term.IsTerminal(int(os.Stderr.Fd())) },
		screen:     selector.TeaScreen{},
		runner:     runner.New(),
	}
}

func execute(ctx context.Context, c *cli, args []string) error {
	root := newRootCmd(c)
	root.SetArgs(args)
	root.SetOut(c.out)
	root.SetErr(c.errOut)
	return root.ExecuteContext(ctx)
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Select an SSH server from a list and connect to it",
		Long: `sssh shows the servers of its configuration file in a full-screen list.
Pick a server and a username with the arrow keys and Enter, and sssh runs its
script file with the choice. Without a subcommand, select is run.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Annotations:       map[string]string{interactiveAnnotation: "true"},
		PersistentPreRunE: c.resolve,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runSelect(cmd.Context())
		},
	}
	root.SetVersionTemplate(`{{printf "sssh version %s\n" .Version}}`)

	s := &c.settings
	f := root.PersistentFlags()
	f.BoolVarP(&s.Verbose, "verbose", "v", s.Verbose, "Log debug information to stderr [env: "+config.EnvVerbose+"]")
	f.BoolVarP(&s.Quiet, "quiet", "q", s.Quiet, "Do not log anything [env: "+config.EnvQuiet+"]")
	f.StringVarP(&s.ConfigFile, "config-file", "c", s.ConfigFile, "Configuration file [env: "+config.EnvConfigFile+"]")
	f.StringVarP(&s.ScriptFile, "script-file", "s", s.ScriptFile, "Script run with the chosen server [env: "+config.EnvScriptFile+"]")
	f.BoolVarP(&s.SkipSelect, "skip-select", "S", s.SkipSelect, "Print the chosen server instead of running the script [env: "+config.EnvSkipSelect+"]")
	f.StringVarP(&s.EditorCommand, "editor-command", "e", s.EditorCommand, "Editor for the configuration file [env: "+config.EnvEditorCommand+"]")
	f.StringArrayVarP(&s.EditorArgs, "editor-argument", "E", s.EditorArgs,
		"Editor argument, repeatable; "+config.FilenamePlaceholder+" is the configuration file [env: "+config.EnvEditorArgument+"]")

	root.AddCommand(
		newSelectCmd(c),
		newEditCmd(c),
		newConfigCmd(c),
		newScriptCmd(c),
		newSampleCmd(c),
		newVersionCmd(c),
	)
	return root
}

// resolve applies the environment to flags that were not given and sets up logging.
func (c *cli) resolve(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	changed := func(name string) bool {
		f := flags.Lookup(name)
		return f != nil && f.Changed
	}
	if err := c.settings.ApplyEnv(c.lookupEnv, changed); err != nil {
		return err
	}
	c.settings.ConfigFile = config.ExpandPath(c.settings.ConfigFile)
	c.settings.ScriptFile = config.ExpandPath(c.settings.ScriptFile)

	_, err := logging.Setup(logging.Options{
		Writer:      c.errOut,
		Verbose:     c.settings.Verbose,
		Quiet:       c.settings.Quiet,
		Interactive: cmd.Annotations[interactiveAnnotation] == "true",
		IsTerminal:  c.isTerminal,
	})
	return err
}

func (c *cli) files() config.Files {
	return config.Files{ConfigPath: c.settings.ConfigFile, ScriptPath: c.settings.ScriptFile}
}
