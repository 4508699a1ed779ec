package tutor

import "github.com/abhisek/fractiz/internal/exercise"

// View is everything the page shows.
type View struct {
	Empty bool // no exercises could be loaded

	Exercise string
	Prompt   string
	Feedback string
	Hint     string
	Correct  bool
	Hints    []string

	Index int
	Total int

	// LastAnswer is the answer submitted in this request.
	LastAnswer string
	// StoredAnswer is the last answer on record for this exercise.
	StoredAnswer string

	Levels []exercise.Level
	Level  exercise.Level

	CorrectCount int
	Attempts     int
	Accuracy     int
	HasAccuracy  bool

	KnowledgeBase string
}

// Prefill is the value to put back in the answer box.
func (v *View) Prefill() string {
	if v.LastAnswer != "" {
		return v.LastAnswer
	}
	return v.StoredAnswer
}

// Position is the 1-based exercise number.
func (v *View) Position() int {
	return v.Index + 1
}

// URL is the address of the page itself, used as the form target.
func (v *View) URL() string {
	return Location{Index: v.Index, Level: v.Level}.URL()
}

// LevelURL links to the first exercise of level; "" means all levels.
func (v *View) LevelURL(level exercise.Level) string {
	return Location{Level: level}.URL()
}
