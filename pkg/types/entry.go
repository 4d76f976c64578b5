package types

import (
	"time"
)

// Entry represents one candidate scratch folder inside the tries
// directory. Name is always a single path segment and is unique within
// one loaded snapshot. Score and Matched are transient: they are set by
// the filter engine during a ranking pass and mean nothing outside it.
type Entry struct {
	Name     string
	Modified time.Time

	// Score is the fuzzy match score from the last ranking pass.
	// Higher is better. Zero when the query was empty.
	Score int

	// Matched holds the rune indexes of Name that matched the query,
	// for highlighting in the picker. Nil when the query was empty.
	Matched []int
}

// Age returns how long ago the entry was last modified.
func (e Entry) Age(now time.Time) time.Duration {
	return now.Sub(e.Modified)
}
