package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/fractiz/internal/ui/theme"
)

// Meter shows how far through the current level the learner is, e.g.
// "Exercise  ██████░░░░  3 of 5".
type Meter struct {
	Label string
	At    int
	Of    int
	Width int
}

// Filled returns the share of the bar to fill, clamped to [0, 1].
func (m Meter) Filled() float64 {
	if m.Of <= 0 {
		return 0
	}
	return min(1, max(0, float64(m.At)/float64(m.Of)))
}

func (m Meter) View() string {
	label := ""
	if m.Label != "" {
		label = theme.Body.Render(m.Label) + "  "
	}
	count := fmt.Sprintf("  %d of %d", m.At, m.Of)

	cells := max(4, m.Width-lipgloss.Width(label)-len(count))
	on := int(float64(cells) * m.Filled())

	return label +
		theme.BarFilled.Render(strings.Repeat(" ", on)) +
		theme.BarEmpty.Render(strings.Repeat(" ", cells-on)) +
		theme.Muted.Render(count)
}
