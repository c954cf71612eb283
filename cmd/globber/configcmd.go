package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/globber/pkg/config"
	"github.com/arthur-debert/globber/pkg/errors"
	"github.com/arthur-debert/globber/pkg/style"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the globber configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.UserConfigPath()
		if _, err := os.Stat(path); err == nil {
			return errors.Newf(errors.ErrAlreadyExists, "config file already exists at %s", path)
		}

		body, err := config.Generate()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return errors.Wrap(err, errors.ErrConfigLoad, "cannot create config directory")
		}
		if err := os.WriteFile(path, body, 0644); err != nil {
			return errors.Wrap(err, errors.ErrConfigLoad, "cannot write config file")
		}

		fmt.Println(style.MatchStyle.Render("wrote ") + path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
}
