package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sssh/pkg/config"
)

func newConfigCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.files().LoadConfig()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(c.out, "# file: %s\n# Use `%s edit` to edit this file.\n\n%s", cfg.Path, appName, cfg.Raw)
			return err
		},
	}
}

func newScriptCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "script",
		Short: "Print the script file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			text, err := config.EnsureScript(c.settings.ScriptFile)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(c.out, "%s\n# file: %s\n", text, c.settings.ScriptFile)
			return err
		},
	}
}

func newSampleCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print sample configuration and script files",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "config",
			Short: "Print the default configuration file",
			Args:  cobra.NoArgs,
			RunE: func(*cobra.Command, []string) error {
				_, err := fmt.Fprint(c.out, config.DefaultConfiguration)
				return err
			},
		},
		&cobra.Command{
			Use:   "script",
			Short: "Print the default script file",
			Args:  cobra.NoArgs,
			RunE: func(*cobra.Command, []string) error {
				_, err := fmt.Fprint(c.out, config.DefaultScript)
				return err
			},
		},
		&cobra.Command{
			Use:   "ssh-config [file]",
			Short: "Print a configuration file built from an OpenSSH client config (default ~/.ssh/config)",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				path := config.DefaultSSHConfigPath()
				if len(args) == 1 {
					path = args[0]
				}
				servers, err := config.ImportSSHConfig(path)
				if err != nil {
					return err
				}
				data, err := config.EncodeServers(servers)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(c.out, "# imported from: %s\n\n%s", path, data)
				return err
			},
		},
	)
	return cmd
}

func newVersionCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			_, err := fmt.Fprintf(c.out, "%s version %s\n", appName, version)
			return err
		},
	}
}
