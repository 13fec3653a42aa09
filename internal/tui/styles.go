package tui

import "github.com/charmbracelet/lipgloss"

// Color constants for the blue-accent theme.
var (
	colorAccent = lipgloss.Color("69")  // blue, primary accent
	colorNew    = lipgloss.Color("114") // soft green
	colorDim    = lipgloss.Color("242") // gray
	colorBright = lipgloss.Color("255") // white
)

var (
	headerStyle = lipgloss.NewStyle().
			Background(colorAccent).
			Foreground(colorBright).
			Bold(true).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(colorBright).
			Bold(true)

	selectedIndicator = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true)

	checkedStyle = lipgloss.NewStyle().
			Foreground(colorNew).
			Bold(true)

	previewStyle = lipgloss.NewStyle().
			Foreground(colorNew).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)
