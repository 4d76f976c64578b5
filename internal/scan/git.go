package scan

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// GitState describes how a try folder relates to git.
type GitState int

const (
	GitNone GitState = iota
	GitRepo
	GitWorktree
	GitWorktreeLocked
)

func (s GitState) String() string {
	switch s {
	case GitRepo:
		return "git"
	case GitWorktree:
		return "worktree"
	case GitWorktreeLocked:
		return "worktree (locked)"
	default:
		return ""
	}
}

// GitStateOf inspects a folder's .git entry. A .git directory means a
// normal repository; a .git file marks a linked worktree, locked when
// the pointed-to admin directory contains a "locked" file.
func GitStateOf(path string) GitState {
	dotGit := filepath.Join(path, ".git")
	info, err := os.Stat(dotGit)
	if err != nil {
		return GitNone
	}
	if info.IsDir() {
		return GitRepo
	}

	adminDir, err := parseDotGitFile(dotGit)
	if err == nil && adminDir != "" {
		if _, err := os.Stat(filepath.Join(adminDir, "locked")); err == nil {
			return GitWorktreeLocked
		}
	}
	return GitWorktree
}

// RemoveGitWorktree asks git to detach the worktree at path.
func RemoveGitWorktree(path string) error {
	cmd := exec.Command("git", "worktree", "remove", ".")
	cmd.Dir = path
	return cmd.Run()
}

// parseDotGitFile reads a worktree's .git file, which holds a single
// "gitdir: <path>" line pointing at the worktree admin directory.
func parseDotGitFile(dotGit string) (string, error) {
	data, err := os.ReadFile(dotGit)
	if err != nil {
		return "", err
	}
	line := data
	if idx := bytes.IndexByte(line, '\n'); idx >= 0 {
		line = line[:idx]
	}
	s := strings.TrimSpace(string(line))
	s = strings.TrimPrefix(s, "gitdir:")
	return strings.TrimSpace(s), nil
}
