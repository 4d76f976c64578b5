package main

import (
	"fmt"
	"os"
	"path/filepath"

	"trygo/internal/config"
	"trygo/internal/errors"

	"github.com/spf13/cobra"
)

// NewThemesCmd lists the available color themes.
func NewThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List available color themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ThemeNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

// NewConfigCmd groups config inspection and initialization.
func NewConfigCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or initialize the configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*flags)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "config file:", config.FilePath())
			fmt.Fprintln(out, "tries dir:  ", cfg.TriesDir())
			fmt.Fprintln(out, "theme:      ", cfg.Theme)
			fmt.Fprintln(out, "date prefix:", cfg.DatePrefix())
			if editor := cfg.EditorCommand(); editor != "" {
				fmt.Fprintln(out, "editor:     ", editor)
			}
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write a commented default config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.FilePath()
			if _, err := os.Stat(path); err == nil {
				return errors.NewConfigError("config file already exists", path, errors.ConfigWriteFailed, nil)
			}
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return errors.NewConfigError("failed to create config directory", path, errors.ConfigWriteFailed, err)
			}
			if err := os.WriteFile(path, []byte(config.DefaultFileContent()), 0644); err != nil {
				return errors.NewConfigError("failed to write config file", path, errors.ConfigWriteFailed, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "wrote", path)
			return nil
		},
	})

	return cmd
}
