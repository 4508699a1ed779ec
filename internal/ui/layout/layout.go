// Package layout composes the terminal tutor's screen: a header bar with
// the score, the exercise area and a footer of key hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/fractiz/internal/ui/theme"
)

// Smallest terminal the frame renders in.
const (
	MinWidth  = 60
	MinHeight = 16
)

// KeyHint is one "key description" pair in the footer.
type KeyHint struct {
	Key         string
	Description string
}

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks the user to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	msg := fmt.Sprintf("The board needs at least %dx%d.\nThis terminal is %dx%d.",
		MinWidth, MinHeight, width, height)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Body.Render(msg))
}

// Score formats the running tally, e.g. "✓ 1/2 (50%)". The percentage is
// left off until there is an attempt.
func Score(correct, attempts, accuracy int, hasAccuracy bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "✓ %d/%d", correct, attempts)
	if hasAccuracy {
		fmt.Fprintf(&b, " (%d%%)", accuracy)
	}
	return b.String()
}

// RenderHeader centers title between the app name and the score.
func RenderHeader(title, score string, width int) string {
	brand := theme.Brand.Render("  Fractiz")
	tally := theme.Score.Render(score)
	inner := max(0, width-4)

	side := max(lipgloss.Width(brand), lipgloss.Width(tally))
	middle := max(0, inner-2*side)
	row := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(side).Render(brand),
		lipgloss.NewStyle().Width(middle).Align(lipgloss.Center).Render(theme.Body.Render(title)),
		lipgloss.NewStyle().Width(side).Align(lipgloss.Right).Render(tally),
	)
	return theme.Bar.Width(width).Render(row)
}

func RenderFooter(hints []KeyHint, width int) string {
	var b strings.Builder
	b.WriteString("  ")
	for i, h := range hints {
		if i > 0 {
			b.WriteString("   ")
		}
		b.WriteString(theme.Key.Render(h.Key))
		b.WriteString(" ")
		b.WriteString(theme.Muted.Render(h.Description))
	}
	return theme.Bar.Width(width).Render(b.String())
}

// RenderFrame stacks header, content and footer, giving the content
// whatever height is left.
func RenderFrame(header, content, footer string, width, height int) string {
	rest := max(0, height-lipgloss.Height(header)-lipgloss.Height(footer))
	body := lipgloss.NewStyle().Width(width).Height(rest).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
