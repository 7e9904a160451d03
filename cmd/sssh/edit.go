package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"sssh/pkg/config"
	"sssh/pkg/selector"
)

func newEditCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit the configuration file and check it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := c.settings.ConfigFile
			if err := config.EnsureConfigFile(path); err != nil {
				return err
			}
			if err := selector.Edit(cmd.Context(), c.runner, c.settings.EditorCommand, c.settings.EditorArgs, path); err != nil {
				return err
			}
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			log.Info("Configuration file is valid", "file", path, "servers", len(cfg.Servers))
			return nil
		},
	}
}
