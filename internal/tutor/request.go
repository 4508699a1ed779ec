package tutor

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/abhisek/fractiz/internal/diagnosis"
	"github.com/abhisek/fractiz/internal/exercise"
	"github.com/abhisek/fractiz/internal/session"
)

// Action is what the learner asked for.
type Action int

const (
	ActionShow   Action = iota // look at the current exercise
	ActionSubmit               // grade an answer
	ActionNext                 // move forward, wrapping around
	ActionPrev                 // move back, wrapping around
	ActionReset                // clear score and answers
)

func (a Action) String() string {
	switch a {
	case ActionShow:
		return "show"
	case ActionSubmit:
		return "submit"
	case ActionNext:
		return "next"
	case ActionPrev:
		return "prev"
	case ActionReset:
		return "reset"
	default:
		return "unknown"
	}
}

// ActionFromNav maps the form's nav button to an action. Anything other
// than reset, next or prev is an answer submission.
func ActionFromNav(nav string) Action {
	switch nav {
	case "reset":
		return ActionReset
	case "next":
		return ActionNext
	case "prev":
		return ActionPrev
	default:
		return ActionSubmit
	}
}

// Request is one learner interaction. Level and Index are the raw query
// values; the tutor corrects them.
type Request struct {
	Action Action
	Level  string
	Index  string
	Answer string
}

// ParseIndex reads the i parameter. Anything that is not an integer is 0.
func ParseIndex(raw string) int {
	i, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return i
}

// Location addresses an exercise within a level filter.
type Location struct {
	Index int
	Level exercise.Level
}

// URL returns the page address for l, e.g. "/?i=2&level=Beginner".
func (l Location) URL() string {
	q := url.Values{}
	q.Set("i", strconv.Itoa(l.Index))
	if l.Level != "" {
		q.Set("level", string(l.Level))
	}
	return "/?" + q.Encode()
}

// Graded describes a submission that was checked.
type Graded struct {
	Exercise exercise.Exercise
	Answer   string
	Category diagnosis.Category
	Correct  bool
}

// Outcome is the result of handling a Request. Exactly one of Redirect and
// View is set.
type Outcome struct {
	State    session.State
	Redirect *Location
	View     *View

	// Graded is set when an answer was submitted.
	Graded *Graded

	// Reset is set when the learner cleared their progress.
	Reset bool
}
