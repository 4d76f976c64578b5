package tui

import (
	"os"

	"trygo/internal/errors"

	tea "github.com/charmbracelet/bubbletea"
)

// Run drives one picker session and returns the candidate name the
// user confirmed. aborted is true when the session ended without a
// selection (escape, or confirm with nothing typed and nothing
// listed).
//
// The program renders on stderr in the alternate screen; bubbletea
// scopes raw mode to the program lifetime and restores the terminal on
// every exit path, including panics inside Update or View.
func Run(opts Options) (candidate string, aborted bool, err error) {
	m := NewModel(opts)

	p := tea.NewProgram(m,
		tea.WithOutput(os.Stderr),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return "", false, errors.NewSetupError("terminal session failed", "picker", errors.TerminalSetupFailed, err)
	}

	result, ok := final.(*Model)
	if !ok {
		return "", true, nil
	}
	return result.Candidate(), result.Aborted() || result.Candidate() == "", nil
}
