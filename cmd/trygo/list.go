package main

import (
	"fmt"
	"path/filepath"

	"trygo/internal/scan"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
)

// NewListCmd creates the list command: a non-interactive table of the
// current tries, most recent first.
func NewListCmd(flags *rootFlags) *cobra.Command {
	var showSize bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List try folders without the picker",
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(flags.debug)

			cfg, err := loadConfig(*flags)
			if err != nil {
				return err
			}

			baseDir := cfg.TriesDir()
			entries := scan.List(baseDir, cfg.IgnoreGlobs())
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no tries in", baseDir)
				return nil
			}

			table := uitable.New()
			table.MaxColWidth = 60
			if showSize {
				table.AddRow("NAME", "MODIFIED", "SIZE", "GIT")
			} else {
				table.AddRow("NAME", "MODIFIED", "GIT")
			}

			for _, e := range entries {
				path := filepath.Join(baseDir, e.Name)
				git := scan.GitStateOf(path).String()
				if showSize {
					size := fmt.Sprintf("%d MB", scan.FolderSizeMB(path))
					table.AddRow(e.Name, e.Modified.Format("2006-01-02 15:04"), size, git)
				} else {
					table.AddRow(e.Name, e.Modified.Format("2006-01-02 15:04"), git)
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showSize, "size", false, "include folder sizes (slower)")
	return cmd
}
