// Package resolve turns the picker's final candidate string into a
// concrete directory under the tries dir, creating it when needed.
package resolve

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"trygo/internal/errors"
	"trygo/internal/log"
	"trygo/pkg/types"
)

// Options adjusts name resolution.
type Options struct {
	// ApplyDatePrefix prefixes newly created folders with today's date.
	ApplyDatePrefix bool
	// Now supplies "today" for the date prefix; zero means time.Now().
	Now time.Time
}

// Resolve maps candidate onto a directory under baseDir and returns
// the outcome plus the directory's absolute path.
//
// Existing folders are reused: first a folder literally named
// candidate, then any date-prefixed folder whose rest equals candidate
// (oldest wins when several exist, matching the listing order). When
// neither exists a new folder is created with MkdirAll, so racing with
// another process creating the same name is harmless. Only creation
// failure is an error.
func Resolve(baseDir, candidate string, opts Options) (types.Resolved, string, error) {
	if candidate == "" {
		return types.Resolved{Kind: types.ResolvedNone}, "", nil
	}

	if name, ok := Existing(baseDir, candidate); ok {
		log.LogWithFields(log.F("name", name)).Debug("reusing existing folder")
		return types.Resolved{Kind: types.ResolvedFolder, Name: name}, filepath.Join(baseDir, name), nil
	}

	name := newFolderName(candidate, opts)
	path := filepath.Join(baseDir, name)
	if err := os.MkdirAll(path, 0755); err != nil {
		return types.Resolved{Kind: types.ResolvedNone}, "",
			errors.NewPathError("failed to create try folder", path, errors.CreateFailed, err)
	}

	log.LogWithFields(log.F("name", name)).Debug("created new folder")
	return types.Resolved{Kind: types.ResolvedNew, Name: name}, path, nil
}

// Existing finds a directory under baseDir that candidate already
// refers to: a literal name match, or a date-prefixed variant whose
// rest matches. The date-prefixed variant takes priority over creating
// a duplicate.
func Existing(baseDir, candidate string) (string, bool) {
	if info, err := os.Stat(filepath.Join(baseDir, candidate)); err == nil && info.IsDir() {
		return candidate, true
	}

	dirEntries, err := os.ReadDir(baseDir)
	if err != nil {
		return "", false
	}
	for _, de := range dirEntries {
		if !de.IsDir() {
			continue
		}
		if _, rest, ok := SplitDatePrefix(de.Name()); ok && rest == candidate {
			return de.Name(), true
		}
	}
	return "", false
}

func newFolderName(candidate string, opts Options) string {
	if !opts.ApplyDatePrefix {
		return candidate
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	prefix := DatePrefix(now)
	// No double prefix when the user already typed today's date
	if strings.HasPrefix(candidate, prefix) {
		return candidate
	}
	return prefix + " " + candidate
}
