package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fsmiamoto/bumpver/internal/version"
)

// components are listed most significant first, the order bumps apply in.
var components = [...]string{"major", "minor", "micro"}

// Model is the Bubble Tea model for the bump picker.
type Model struct {
	current   version.Version
	flags     version.Flags
	cursor    int
	confirmed bool
	aborted   bool
}

// NewModel creates a picker for current with initial preselected.
func NewModel(current version.Version, initial version.Flags) Model {
	return Model{current: current, flags: initial}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.aborted = true
		return m, tea.Quit

	case "enter":
		m.confirmed = true
		return m, tea.Quit

	case "j", "down":
		if m.cursor < len(components)-1 {
			m.cursor++
		}

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}

	case " ", "space", "x":
		m.toggle(m.cursor)
	}
	return m, nil
}

func (m *Model) toggle(i int) {
	switch i {
	case 0:
		m.flags.Major = !m.flags.Major
	case 1:
		m.flags.Minor = !m.flags.Minor
	case 2:
		m.flags.Micro = !m.flags.Micro
	}
}

func (m Model) checked(i int) bool {
	switch i {
	case 0:
		return m.flags.Major
	case 1:
		return m.flags.Minor
	case 2:
		return m.flags.Micro
	}
	return false
}

// Flags returns the current selection.
func (m Model) Flags() version.Flags {
	return m.flags
}

// Confirmed reports whether the user accepted the selection with enter.
func (m Model) Confirmed() bool {
	return m.confirmed
}

// View implements tea.Model.
func (m Model) View() string {
	if m.confirmed || m.aborted {
		return ""
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("bumpver"))
	b.WriteString("\n\n")

	for i, name := range components {
		box := "[ ]"
		if m.checked(i) {
			box = checkedStyle.Render("[x]")
		}
		line := fmt.Sprintf("%s %s", box, name)
		if i == m.cursor {
			b.WriteString(selectedIndicator.Render("> "))
			b.WriteString(selectedStyle.Render(line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	next := version.Bump(m.current, m.flags)
	fmt.Fprintf(&b, "\n%s -> %s\n\n", m.current, previewStyle.Render(next.String()))
	b.WriteString(helpStyle.Render("↑↓:move  space:toggle  enter:bump  q:quit"))
	b.WriteString("\n")
	return b.String()
}
