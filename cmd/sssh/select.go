package main

import (
	"context"

	"github.com/spf13/cobra"

	"sssh/pkg/selector"
)

func newSelectCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:         "select",
		Short:       "Choose a server and run the script file with it (default)",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{interactiveAnnotation: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runSelect(cmd.Context())
		},
	}
}

func (c *cli) runSelect(ctx context.Context) error {
	s := c.settings
	files := c.files()
	session := &selector.Session{
		Options: selector.Options{
			Title:         appName,
			ConfigPath:    s.ConfigFile,
			ScriptPath:    s.ScriptFile,
			Verbose:       s.Verbose,
			SkipRun:       s.SkipSelect,
			EditorCommand: s.EditorCommand,
			EditorArgs:    s.EditorArgs,
		},
		Config:     files,
		Script:     files,
		Editor:     c.runner,
		Runner:     c.runner,
		Screen:     c.screen,
		Theme:      selector.DefaultTheme(),
		Out:        c.out,
		FlushInput: selector.FlushTTYInput,
	}
	return session.Run(ctx)
}
