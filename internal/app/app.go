// Package app is the terminal front end: the same practice loop as the web
// page, driven by keys instead of form buttons.
package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/fractiz/internal/exercise"
	"github.com/abhisek/fractiz/internal/session"
	"github.com/abhisek/fractiz/internal/store"
	"github.com/abhisek/fractiz/internal/tutor"
	"github.com/abhisek/fractiz/internal/ui/components"
	"github.com/abhisek/fractiz/internal/ui/layout"
	"github.com/abhisek/fractiz/internal/ui/theme"
)

const eventTimeout = 2 * time.Second

// recordErrMsg reports a failed event-log write.
type recordErrMsg struct{ err error }

// AppModel is the root Bubble Tea model.
type AppModel struct {
	tutor  *tutor.Tutor
	events store.EventRepo

	state session.State
	level exercise.Level
	index int
	view  *tutor.View
	input components.AnswerInput

	// status is the last event-log failure, shown in the footer.
	status string

	width  int
	height int
}

// New creates the model positioned on the first exercise. A nil events
// repo discards events.
func New(t *tutor.Tutor, events store.EventRepo) AppModel {
	if events == nil {
		events = store.NopRepo{}
	}
	m := AppModel{
		tutor:  t,
		events: events,
		state:  session.New(),
		input:  components.NewAnswerInput("1/2", 16),
	}
	m.show()
	return m
}

func (m AppModel) Init() tea.Cmd {
	return m.input.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case recordErrMsg:
		m.status = "Could not save progress: " + msg.err.Error()
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			cmd := m.dispatch(tutor.ActionSubmit)
			return m, cmd
		case "ctrl+n", "down":
			cmd := m.dispatch(tutor.ActionNext)
			return m, cmd
		case "ctrl+p", "up":
			cmd := m.dispatch(tutor.ActionPrev)
			return m, cmd
		case "ctrl+r":
			cmd := m.dispatch(tutor.ActionReset)
			return m, cmd
		case "tab":
			m.level = m.nextLevel()
			m.index = 0
			m.show()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// dispatch runs one action through the tutor. Redirects are followed
// immediately, the way a browser would.
func (m *AppModel) dispatch(action tutor.Action) tea.Cmd {
	if m.view != nil && m.view.Empty {
		return nil
	}
	before := m.state
	out := m.tutor.Handle(m.request(action), before)
	m.state = out.State

	if out.Redirect != nil {
		m.index, m.level = out.Redirect.Index, out.Redirect.Level
		m.show()
	} else {
		m.setView(out.View)
		if out.Graded != nil {
			m.input.Grade(out.Graded.Correct)
		}
	}
	return m.record(before, out)
}

func (m *AppModel) request(action tutor.Action) tutor.Request {
	req := tutor.Request{
		Action: action,
		Level:  string(m.level),
		Index:  strconv.Itoa(m.index),
	}
	if action == tutor.ActionSubmit {
		req.Answer = m.input.Value()
	}
	return req
}

func (m *AppModel) show() {
	out := m.tutor.Handle(m.request(tutor.ActionShow), m.state)
	m.setView(out.View)
}

func (m *AppModel) setView(v *tutor.View) {
	m.view = v
	m.index, m.level = v.Index, v.Level
	m.input.SetValue(v.Prefill())
}

// nextLevel cycles all → each level with exercises → all.
func (m AppModel) nextLevel() exercise.Level {
	counts := m.tutor.Catalog().Counts()
	var cycle []exercise.Level
	cycle = append(cycle, "")
	for _, l := range exercise.Levels() {
		if counts[l] > 0 {
			cycle = append(cycle, l)
		}
	}
	for i, l := range cycle {
		if l == m.level {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return ""
}

func (m AppModel) record(before session.State, out tutor.Outcome) tea.Cmd {
	if out.Graded == nil && !out.Reset {
		return nil
	}
	events := m.events
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), eventTimeout)
		defer cancel()
		if err := tutor.Record(ctx, events, before, out); err != nil {
			return recordErrMsg{err: err}
		}
		return nil
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.frame())
	return v
}

// frame renders the whole screen for the current size.
func (m AppModel) frame() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	title := "All levels"
	if m.view.Level != "" {
		title = string(m.view.Level)
	}
	score := layout.Score(m.view.CorrectCount, m.view.Attempts, m.view.Accuracy, m.view.HasAccuracy)
	header := layout.RenderHeader(title, score, m.width)

	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Check"},
		{Key: "↑↓", Description: "Prev/Next"},
		{Key: "Tab", Description: "Level"},
		{Key: "Ctrl+R", Description: "Reset"},
		{Key: "Esc", Description: "Quit"},
	}
	if m.view.Empty {
		hints = []layout.KeyHint{{Key: "Esc", Description: "Quit"}}
	}
	footer := layout.RenderFooter(hints, m.width)

	return layout.RenderFrame(header, m.renderContent(), footer, m.width, m.height)
}

// renderContent renders the level tabs and the exercise card.
func (m AppModel) renderContent() string {
	var b strings.Builder
	cv := m.view

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	var card strings.Builder
	card.WriteString(theme.Prompt.Render(cv.Prompt))
	card.WriteString("\n")
	if !cv.Empty {
		card.WriteString(m.input.View())
		card.WriteString("\n\n")
	}
	if cv.Feedback != "" {
		style := theme.Incorrect
		if cv.Correct {
			style = theme.Correct
		}
		card.WriteString(style.Render(cv.Feedback))
		card.WriteString("\n")
	}
	if cv.Hint != "" {
		card.WriteString(theme.Hint.Render("Hint: " + cv.Hint))
		card.WriteString("\n")
	}
	width := max(20, min(m.width-4, 72))
	b.WriteString(theme.Card.Width(width).Render(strings.TrimRight(card.String(), "\n")))
	b.WriteString("\n\n")

	if !cv.Empty {
		meter := components.Meter{Label: "Exercise", At: cv.Position(), Of: cv.Total, Width: width}
		b.WriteString(meter.View())
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(theme.Incorrect.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(theme.Hint.Render("Knowledge base: " + cv.KnowledgeBase))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (m AppModel) renderTabs() string {
	tabs := make([]string, 0, 4)
	tab := func(label string, active bool) string {
		if active {
			return theme.TabActive.Render(label)
		}
		return theme.TabInactive.Render(label)
	}
	tabs = append(tabs, tab("All", m.view.Level == ""))
	for _, l := range m.view.Levels {
		tabs = append(tabs, tab(string(l), l == m.view.Level))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// Run starts the Bubble Tea program.
func Run(t *tutor.Tutor, events store.EventRepo) error {
	p := tea.NewProgram(New(t, events))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
