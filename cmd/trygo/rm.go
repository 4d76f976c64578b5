package main

import (
	"fmt"
	"os"
	"path/filepath"

	"trygo/internal/errors"
	"trygo/internal/log"
	"trygo/internal/resolve"
	"trygo/internal/scan"

	"github.com/spf13/cobra"
)

// NewRmCmd creates the rm command: removes a try folder, with the same
// name lookup as the picker (literal first, then date-prefixed
// variant). Linked git worktrees are detached via git so the main
// repository's worktree list stays clean; locked worktrees are refused
// without --force.
func NewRmCmd(flags *rootFlags) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "rm <name>",
		Short: "Remove a try folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(flags.debug)
			defer log.Close()

			cfg, err := loadConfig(*flags)
			if err != nil {
				return err
			}
			baseDir := cfg.TriesDir()

			name, ok := resolve.Existing(baseDir, args[0])
			if !ok {
				return errors.NewPathError("no such try", args[0], errors.PathNotFound, nil)
			}
			path := filepath.Join(baseDir, name)

			switch scan.GitStateOf(path) {
			case scan.GitWorktreeLocked:
				if !force {
					return errors.Newf("%q is a locked git worktree; pass --force to remove it anyway", name)
				}
			case scan.GitWorktree:
				if err := scan.RemoveGitWorktree(path); err != nil {
					log.LogWithFields(log.F("name", name), log.F("error", err)).Debug("git worktree remove failed, deleting directly")
				}
			}

			if err := os.RemoveAll(path); err != nil {
				return errors.NewPathError("failed to remove try folder", path, errors.RemoveFailed, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "removed", name)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "remove locked git worktrees too")
	return cmd
}
