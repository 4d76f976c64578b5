package resolve

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitDatePrefixValid(t *testing.T) {
	date, rest, ok := SplitDatePrefix("2024-06-15 my-project")
	require.True(t, ok)
	assert.Equal(t, "my-project", rest)
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.Local), date)
}

func TestSplitDatePrefixRestMayContainSpaces(t *testing.T) {
	_, rest, ok := SplitDatePrefix("2024-06-15 my project idea")
	require.True(t, ok)
	assert.Equal(t, "my project idea", rest)
}

func TestSplitDatePrefixInvalid(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"no_space", "nodate"},
		{"not_a_date", "not-a-date project"},
		{"bare_date", "2024-06-15"},
		{"bare_date_trailing_space", "2024-06-15 "},
		{"wrong_format", "15-06-2024 project"},
		{"impossible_date", "2024-13-45 project"},
		{"empty", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, ok := SplitDatePrefix(tc.input)
			assert.False(t, ok)
		})
	}
}

func TestDatePrefixFormat(t *testing.T) {
	day := time.Date(2026, 8, 29, 17, 30, 0, 0, time.Local)
	assert.Equal(t, "2026-08-29", DatePrefix(day))
}
