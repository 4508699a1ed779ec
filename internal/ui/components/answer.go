// Package components holds the small widgets the terminal tutor draws.
package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/fractiz/internal/ui/theme"
)

// answerRunes are the printable characters an answer may contain.
const answerRunes = "0123456789/-+ "

type mark int

const (
	unmarked mark = iota
	markedRight
	markedWrong
)

// AnswerInput is a single-line box for typing a fraction. Letters and
// other printable characters outside a fraction are ignored.
type AnswerInput struct {
	box  textinput.Model
	mark mark
}

// NewAnswerInput returns a focused input. A positive limit caps the
// answer length.
func NewAnswerInput(placeholder string, limit int) AnswerInput {
	box := textinput.New()
	box.Placeholder = placeholder
	if limit > 0 {
		box.CharLimit = limit
	}
	box.Focus()
	return AnswerInput{box: box}
}

// Init starts the cursor blinking.
func (a AnswerInput) Init() tea.Cmd {
	return textinput.Blink
}

func (a AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok && !accepts(key.String()) {
		return a, nil
	}
	var cmd tea.Cmd
	a.box, cmd = a.box.Update(msg)
	return a, cmd
}

// accepts reports whether a key may reach the box. Named keys such as
// "backspace" or "left" always pass.
func accepts(key string) bool {
	if len([]rune(key)) != 1 {
		return true
	}
	return strings.Contains(answerRunes, key)
}

func (a AnswerInput) Value() string {
	return a.box.Value()
}

// SetValue replaces the text, moves the cursor to the end and clears the
// grade mark.
func (a *AnswerInput) SetValue(s string) {
	a.box.SetValue(s)
	a.box.CursorEnd()
	a.mark = unmarked
}

// Grade shows a check or cross next to the box until the text is replaced.
func (a *AnswerInput) Grade(correct bool) {
	a.mark = markedWrong
	if correct {
		a.mark = markedRight
	}
}

func (a AnswerInput) View() string {
	switch a.mark {
	case markedRight:
		return a.box.View() + " " + theme.Correct.Render("✓")
	case markedWrong:
		return a.box.View() + " " + theme.Incorrect.Render("✗")
	}
	return a.box.View()
}
