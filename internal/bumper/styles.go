package bumper

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.Color("69")  // blue
	colorNew    = lipgloss.Color("114") // soft green
	colorWarn   = lipgloss.Color("214") // orange
	colorDim    = lipgloss.Color("242") // gray
)

var (
	labelStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	oldVersionStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	newVersionStyle = lipgloss.NewStyle().
			Foreground(colorNew).
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(colorWarn)
)
