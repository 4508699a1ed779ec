// Package tutor implements the practice loop: it takes a learner request
// and their session state and returns the new state plus either a page to
// render or a location to redirect to. Handle does no I/O; Record
// persists what an outcome carries.
package tutor

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/abhisek/fractiz/internal/diagnosis"
	"github.com/abhisek/fractiz/internal/exercise"
	"github.com/abhisek/fractiz/internal/fraction"
	"github.com/abhisek/fractiz/internal/session"
)

// MaxStoredAnswer caps, in runes, the answer kept in the session. The
// whole session travels in one cookie, which browsers drop past ~4 KB.
const MaxStoredAnswer = 32

const (
	emptyPrompt   = "(No exercises found)"
	emptyFeedback = "Add Exercise individuals to the ontology."
)

// Tutor is safe for concurrent use; it only reads the catalog.
type Tutor struct {
	catalog *exercise.Catalog
	kbPath  string
	loadErr string
}

// Option configures a Tutor.
type Option func(*Tutor)

// WithKnowledgeBase records where the catalog came from and, if loading
// failed, the message to show instead of exercises.
func WithKnowledgeBase(path, loadErr string) Option {
	return func(t *Tutor) {
		t.kbPath = path
		t.loadErr = loadErr
	}
}

// New creates a Tutor over catalog. A nil catalog is treated as empty.
func New(catalog *exercise.Catalog, opts ...Option) *Tutor {
	if catalog == nil {
		catalog = exercise.NewCatalog(nil)
	}
	t := &Tutor{catalog: catalog}
	for _, o := range opts {
		o(t)
	}
	return t
}

// Catalog returns the exercises being practiced.
func (t *Tutor) Catalog() *exercise.Catalog {
	return t.catalog
}

// LoadError returns the knowledge-base load failure, if any.
func (t *Tutor) LoadError() string {
	return t.loadErr
}

// Handle processes one request.
func (t *Tutor) Handle(req Request, s session.State) Outcome {
	if t.catalog.Empty() {
		return Outcome{State: s, View: t.emptyView(s)}
	}

	list, level := t.catalog.Filter(req.Level)
	total := len(list)
	i := exercise.Clamp(ParseIndex(req.Index), total)
	ex := list[i]

	switch req.Action {
	case ActionReset:
		return Outcome{
			State:    s.Reset(),
			Redirect: &Location{Index: 0, Level: level},
			Reset:    true,
		}
	case ActionNext:
		return Outcome{State: s, Redirect: &Location{Index: (i + 1) % total, Level: level}}
	case ActionPrev:
		return Outcome{State: s, Redirect: &Location{Index: (i - 1 + total) % total, Level: level}}
	case ActionSubmit:
		return t.submit(req, s, ex, i, total, level)
	default:
		return t.show(s, ex, i, total, level)
	}
}

func (t *Tutor) submit(req Request, s session.State, ex exercise.Exercise, i, total int, level exercise.Level) Outcome {
	answer := strings.TrimSpace(req.Answer)
	stored := truncateRunes(answer, MaxStoredAnswer)
	s = s.Submit(ex.Name, stored)

	graded := &Graded{Exercise: ex, Answer: stored}
	v := t.exerciseView(s, ex, i, total, level)
	v.LastAnswer = stored

	res, err := Grade(ex, answer)
	if err != nil {
		graded.Category = diagnosis.CategoryUnparsable
		v.Feedback = ParseErrorMessage(err)
	} else {
		if res.Correct {
			s = s.MarkCorrect()
		}
		graded.Category = res.Category
		graded.Correct = res.Correct
		v.Feedback = res.Feedback
		v.Hint = res.Hint
		v.Correct = res.Correct
	}

	fillScore(v, s)
	return Outcome{State: s, View: v, Graded: graded}
}

func (t *Tutor) show(s session.State, ex exercise.Exercise, i, total int, level exercise.Level) Outcome {
	v := t.exerciseView(s, ex, i, total, level)
	if v.StoredAnswer != "" {
		if res, err := Grade(ex, v.StoredAnswer); err == nil && res.Correct {
			v.Feedback = res.Feedback
			v.Correct = true
		}
	}
	return Outcome{State: s, View: v}
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// Grade parses answer and checks it against ex.
func Grade(ex exercise.Exercise, answer string) (diagnosis.Result, error) {
	f, err := fraction.Parse(answer)
	if err != nil {
		return diagnosis.Result{}, err
	}
	return diagnosis.Check(diagnosis.Input{
		Submitted: f,
		Original:  ex.Original,
		Expected:  ex.Expected,
		Hints:     ex.Hints,
	}), nil
}

// ParseErrorMessage turns a fraction.Parse error into feedback.
func ParseErrorMessage(err error) string {
	if errors.Is(err, fraction.ErrZeroDenominator) {
		return diagnosis.ZeroDenominatorMessage
	}
	return diagnosis.FormatMessage
}

func (t *Tutor) exerciseView(s session.State, ex exercise.Exercise, i, total int, level exercise.Level) *View {
	stored, _ := s.Answer(ex.Name)
	v := &View{
		Exercise:      ex.Name,
		Prompt:        ex.Prompt,
		Hints:         ex.Hints,
		Index:         i,
		Total:         total,
		StoredAnswer:  stored,
		Levels:        exercise.Levels(),
		Level:         level,
		KnowledgeBase: t.kbPath,
	}
	fillScore(v, s)
	return v
}

func (t *Tutor) emptyView(s session.State) *View {
	feedback := t.loadErr
	if feedback == "" {
		feedback = emptyFeedback
	}
	v := &View{
		Empty:         true,
		Prompt:        emptyPrompt,
		Feedback:      feedback,
		Levels:        exercise.Levels(),
		KnowledgeBase: t.kbPath,
	}
	fillScore(v, s)
	return v
}

func fillScore(v *View, s session.State) {
	v.CorrectCount = s.Correct
	v.Attempts = s.Attempts
	v.Accuracy, v.HasAccuracy = s.Accuracy()
}
