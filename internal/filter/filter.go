// Package filter ranks entry snapshots against a live query.
package filter

import (
	"trygo/pkg/types"

	"github.com/sahilm/fuzzy"
)

// entrySource adapts an entry slice to the fuzzy matcher without
// building an intermediate name slice per keystroke.
type entrySource []types.Entry

func (s entrySource) String(i int) string { return s[i].Name }
func (s entrySource) Len() int            { return len(s) }

// Rank derives the filtered, ordered view of all for the given query.
//
// An empty query returns a copy of all in its input order (the recents
// view: the loader sorts by modification time). Otherwise each name is
// fuzzy-matched against the query; names with no subsequence match are
// dropped, the rest carry the scorer's score and matched indexes and
// come back in descending score order. The relative order of
// equal-score matches follows the scorer and is not part of the
// contract.
//
// Rank always re-derives from the full snapshot, never from a previous
// filtered view, so re-running the same query is idempotent.
func Rank(all []types.Entry, query string) []types.Entry {
	if query == "" {
		out := make([]types.Entry, len(all))
		copy(out, all)
		return out
	}

	matches := fuzzy.FindFrom(query, entrySource(all))
	out := make([]types.Entry, 0, len(matches))
	for _, m := range matches {
		e := all[m.Index]
		e.Score = m.Score
		e.Matched = m.MatchedIndexes
		out = append(out, e)
	}
	return out
}
