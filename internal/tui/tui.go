// Package tui provides the interactive bump picker.
package tui

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fsmiamoto/bumpver/internal/version"
)

// ErrAborted is returned when the picker is closed without confirming.
var ErrAborted = errors.New("bump aborted")

// Pick runs the picker on in/out and returns the confirmed flags.
func Pick(current version.Version, initial version.Flags, in io.Reader, out io.Writer) (version.Flags, error) {
	p := tea.NewProgram(NewModel(current, initial), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return version.Flags{}, fmt.Errorf("run picker: %w", err)
	}
	m, ok := final.(Model)
	if !ok || !m.Confirmed() {
		return version.Flags{}, ErrAborted
	}
	return m.Flags(), nil
}
