package resolve

import (
	"strings"
	"time"
)

// DatePrefixFormat is the calendar layout of a dated folder prefix.
const DatePrefixFormat = "2006-01-02"

// SplitDatePrefix decomposes a folder name of the form
// "YYYY-MM-DD <rest>" into its date and rest. The name is split on the
// first space; the left side must parse as a calendar date and the
// rest must be non-empty. A bare date folder is deliberately not a
// match, so it can never shadow a plain name.
func SplitDatePrefix(name string) (time.Time, string, bool) {
	lhs, rhs, found := strings.Cut(name, " ")
	if !found || rhs == "" {
		return time.Time{}, "", false
	}
	date, err := time.ParseInLocation(DatePrefixFormat, lhs, time.Local)
	if err != nil {
		return time.Time{}, "", false
	}
	return date, rhs, true
}

// DatePrefix formats the given day as a folder name prefix.
func DatePrefix(day time.Time) string {
	return day.Format(DatePrefixFormat)
}
