// Package theme holds the terminal tutor's colors and styles.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Chalkboard palette.
var (
	Board   = lipgloss.Color("#1F2D27")
	Chalk   = lipgloss.Color("#EDEBE3")
	Dust    = lipgloss.Color("#8FA39A")
	Frame   = lipgloss.Color("#3E5449")
	Yellow  = lipgloss.Color("#F2C94C")
	Sky     = lipgloss.Color("#56CCF2")
	Green   = lipgloss.Color("#6FCF97")
	Red     = lipgloss.Color("#EB5757")
	Lettuce = lipgloss.Color("#A3E635")
)

var (
	Prompt = lipgloss.NewStyle().Bold(true).Foreground(Chalk).MarginBottom(1)
	Body   = lipgloss.NewStyle().Foreground(Chalk)
	Hint   = lipgloss.NewStyle().Italic(true).Foreground(Dust)
	Muted  = lipgloss.NewStyle().Foreground(Dust)

	Correct   = lipgloss.NewStyle().Bold(true).Foreground(Green)
	Incorrect = lipgloss.NewStyle().Bold(true).Foreground(Red)

	// Bar is the background strip behind the header and footer.
	Bar = lipgloss.NewStyle().
		Background(Board).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Frame)
	Brand = lipgloss.NewStyle().Bold(true).Foreground(Lettuce)
	Score = lipgloss.NewStyle().Foreground(Yellow)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(Chalk)

	TabActive   = lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(Board).Background(Yellow)
	TabInactive = lipgloss.NewStyle().Padding(0, 1).Foreground(Dust)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Frame).
		Padding(1, 2)

	BarFilled = lipgloss.NewStyle().Background(Sky)
	BarEmpty  = lipgloss.NewStyle().Background(Frame)
)
