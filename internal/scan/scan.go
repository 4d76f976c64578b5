// Package scan reads the tries directory into entry snapshots and
// answers questions about individual folders (size, git state).
package scan

import (
	"os"
	"sort"

	"trygo/internal/log"
	"trygo/pkg/types"

	"github.com/gobwas/glob"
)

// List returns the immediate child directories of baseDir as entries,
// most recently modified first. Non-directories, entries with
// unreadable metadata, and names matching an ignore glob are skipped.
// An unreadable baseDir yields an empty snapshot so a fresh or broken
// project store never aborts the session.
func List(baseDir string, ignore []glob.Glob) []types.Entry {
	dirEntries, err := os.ReadDir(baseDir)
	if err != nil {
		log.LogWithFields(log.F("dir", baseDir), log.F("error", err)).Debug("tries directory not readable, treating as empty")
		return []types.Entry{}
	}

	entries := make([]types.Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		if !de.IsDir() {
			continue
		}
		if ignored(de.Name(), ignore) {
			continue
		}
		info, err := de.Info()
		if err != nil {
			continue
		}
		entries = append(entries, types.Entry{
			Name:     de.Name(),
			Modified: info.ModTime(),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Modified.After(entries[j].Modified)
	})
	return entries
}

func ignored(name string, ignore []glob.Glob) bool {
	for _, g := range ignore {
		if g.Match(name) {
			return true
		}
	}
	return false
}
