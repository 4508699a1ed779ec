package tutor

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/fractiz/internal/diagnosis"
	"github.com/abhisek/fractiz/internal/exercise"
	"github.com/abhisek/fractiz/internal/fraction"
	"github.com/abhisek/fractiz/internal/session"
)

func testTutor() *Tutor {
	return New(exercise.NewCatalog([]exercise.Exercise{
		{
			Name: "Ex_4_8", Prompt: "Simplify 4/8", Level: exercise.Beginner,
			Hints:    []string{"Both numbers are even."},
			Original: fraction.New(4, 8), Expected: fraction.New(1, 2),
		},
		{
			Name: "Ex_2_6", Prompt: "Simplify 2/6", Level: exercise.Beginner,
			Original: fraction.New(2, 6), Expected: fraction.New(1, 3),
		},
		{
			Name: "Ex_6_9", Prompt: "Simplify 6/9", Level: exercise.Intermediate,
			Original: fraction.New(6, 9), Expected: fraction.New(2, 3),
		},
		{
			Name: "Ex_10_15", Prompt: "Simplify 10/15",
			Original: fraction.New(10, 15), Expected: fraction.New(2, 3),
		},
	}), WithKnowledgeBase("kb/fractions_its.owl", ""))
}

// Order is Ex_2_6, Ex_4_8 (Beginner), Ex_6_9 (Intermediate), Ex_10_15 (none).
func submit(t *testing.T, tu *Tutor, s session.State, level, index, answer string) Outcome {
	t.Helper()
	out := tu.Handle(Request{Action: ActionSubmit, Level: level, Index: index, Answer: answer}, s)
	require.NotNil(t, out.View)
	require.Nil(t, out.Redirect)
	return out
}

func TestHandle_ShowFirstExercise(t *testing.T) {
	out := testTutor().Handle(Request{}, session.New())

	require.NotNil(t, out.View)
	assert.Equal(t, "Ex_2_6", out.View.Exercise)
	assert.Equal(t, "Simplify 2/6", out.View.Prompt)
	assert.Equal(t, 0, out.View.Index)
	assert.Equal(t, 4, out.View.Total)
	assert.Empty(t, out.View.Feedback)
	assert.False(t, out.View.HasAccuracy)
	assert.Equal(t, exercise.Levels(), out.View.Levels)
	assert.Equal(t, "kb/fractions_its.owl", out.View.KnowledgeBase)
	assert.Nil(t, out.Graded)
}

func TestHandle_IndexAndLevel(t *testing.T) {
	tu := testTutor()
	tests := []struct {
		level, index string
		wantName     string
		wantIndex    int
		wantTotal    int
		wantLevel    exercise.Level
	}{
		{"", "1", "Ex_4_8", 1, 4, ""},
		{"", "abc", "Ex_2_6", 0, 4, ""},
		{"", "-5", "Ex_2_6", 0, 4, ""},
		{"", "99", "Ex_10_15", 3, 4, ""},
		{"Beginner", "1", "Ex_4_8", 1, 2, exercise.Beginner},
		{"Beginner", "7", "Ex_4_8", 1, 2, exercise.Beginner},
		{"Intermediate", "0", "Ex_6_9", 0, 1, exercise.Intermediate},
		{"Advanced", "0", "Ex_2_6", 0, 4, ""},
		{"Expert", "2", "Ex_6_9", 2, 4, ""},
	}
	for _, tc := range tests {
		out := tu.Handle(Request{Level: tc.level, Index: tc.index}, session.New())
		require.NotNil(t, out.View)
		assert.Equal(t, tc.wantName, out.View.Exercise, "level=%q i=%q", tc.level, tc.index)
		assert.Equal(t, tc.wantIndex, out.View.Index, "level=%q i=%q", tc.level, tc.index)
		assert.Equal(t, tc.wantTotal, out.View.Total, "level=%q i=%q", tc.level, tc.index)
		assert.Equal(t, tc.wantLevel, out.View.Level, "level=%q i=%q", tc.level, tc.index)
	}
}

func TestHandle_SubmitScenarios(t *testing.T) {
	tests := []struct {
		answer       string
		wantCorrect  bool
		wantCategory diagnosis.Category
		wantFeedback string
		wantHint     string
	}{
		{"1/2", true, diagnosis.CategoryCorrect, "✅ Correct!", ""},
		{" 1 / 2 ", true, diagnosis.CategoryCorrect, "✅ Correct!", ""},
		{"2/8", false, diagnosis.CategoryNumeratorOnly, "You simplified only the numerator — divide both parts by the same number.", "Divide both numerator and denominator by the same factor."},
		{"2/4", false, diagnosis.CategorySimplifyFurther, "You can simplify further — try the greatest common factor.", "Try a bigger common factor (2, 3, 5, 7...)."},
		{"8/4", false, diagnosis.CategorySwapped, "Careful! Don’t swap numerator and denominator.", "Numerator (top) comes first."},
		{"-1/-2", false, diagnosis.CategoryEquivalentUnexpected, "Equivalent but unexpected — recheck your factors.", "Both numbers are even."},
		{"abc", false, diagnosis.CategoryUnparsable, "Please enter your answer like 1/2", ""},
		{"3/0", false, diagnosis.CategoryUnparsable, "A fraction can't have 0 on the bottom — try something like 1/2", ""},
	}
	for _, tc := range tests {
		t.Run(tc.answer, func(t *testing.T) {
			s := session.New()
			out := submit(t, testTutor(), s, "Beginner", "1", tc.answer)

			v := out.View
			assert.Equal(t, "Ex_4_8", v.Exercise)
			assert.Equal(t, tc.wantCorrect, v.Correct)
			assert.Equal(t, tc.wantFeedback, v.Feedback)
			assert.Equal(t, tc.wantHint, v.Hint)

			require.NotNil(t, out.Graded)
			assert.Equal(t, tc.wantCategory, out.Graded.Category)
			assert.Equal(t, tc.wantCorrect, out.Graded.Correct)

			assert.Equal(t, 1, out.State.Attempts)
			wantCorrect := 0
			if tc.wantCorrect {
				wantCorrect = 1
			}
			assert.Equal(t, wantCorrect, out.State.Correct)

			stored, _ := out.State.Answer("Ex_4_8")
			assert.Equal(t, out.Graded.Answer, stored)
			assert.Equal(t, stored, v.LastAnswer)
			assert.Equal(t, 1, v.Attempts)
			assert.True(t, v.HasAccuracy)

			assert.Zero(t, s.Attempts, "input state must not change")
		})
	}
}

func TestHandle_UnparsableStillCountsAttempt(t *testing.T) {
	tu := testTutor()
	s := session.New()

	s = submit(t, tu, s, "", "0", "1/3").State
	out := submit(t, tu, s, "", "0", "one third")

	assert.Equal(t, 2, out.State.Attempts)
	assert.Equal(t, 1, out.State.Correct)
	assert.Equal(t, 50, out.View.Accuracy)
	stored, _ := out.State.Answer("Ex_2_6")
	assert.Equal(t, "one third", stored)
}

func TestHandle_LongAnswerIsTruncated(t *testing.T) {
	long := strings.Repeat("½", 200)
	out := submit(t, testTutor(), session.New(), "", "0", "  "+long+"  ")

	stored, _ := out.State.Answer("Ex_2_6")
	assert.Equal(t, MaxStoredAnswer, utf8.RuneCountInString(stored))
	assert.Equal(t, strings.Repeat("½", MaxStoredAnswer), stored)
	assert.Equal(t, stored, out.View.LastAnswer)
	require.NotNil(t, out.Graded)
	assert.Equal(t, stored, out.Graded.Answer)
	assert.Equal(t, diagnosis.CategoryUnparsable, out.Graded.Category)
	assert.Equal(t, 1, out.State.Attempts)
}

func TestHandle_ShowStoredCorrectAnswer(t *testing.T) {
	tu := testTutor()
	s := submit(t, tu, session.New(), "", "1", "1/2").State

	out := tu.Handle(Request{Index: "1"}, s)
	require.NotNil(t, out.View)
	assert.True(t, out.View.Correct)
	assert.Equal(t, "✅ Correct!", out.View.Feedback)
	assert.Equal(t, "1/2", out.View.StoredAnswer)
	assert.Equal(t, "1/2", out.View.Prefill())
	assert.Equal(t, s, out.State, "showing must not change counters")
}

func TestHandle_ShowStoredWrongAnswer(t *testing.T) {
	tu := testTutor()
	for _, answer := range []string{"2/4", "garbage", "1/0"} {
		s := submit(t, tu, session.New(), "", "1", answer).State

		out := tu.Handle(Request{Index: "1"}, s)
		assert.False(t, out.View.Correct, answer)
		assert.Empty(t, out.View.Feedback, answer)
		assert.Empty(t, out.View.Hint, answer)
		assert.Equal(t, answer, out.View.Prefill())
	}
}

func TestHandle_NextPrevWrap(t *testing.T) {
	tu := testTutor()
	s := session.New()

	tests := []struct {
		action    Action
		level     string
		index     string
		wantIndex int
		wantLevel exercise.Level
	}{
		{ActionNext, "", "0", 1, ""},
		{ActionNext, "", "3", 0, ""},
		{ActionPrev, "", "0", 3, ""},
		{ActionPrev, "", "2", 1, ""},
		{ActionNext, "Beginner", "1", 0, exercise.Beginner},
		{ActionPrev, "Beginner", "0", 1, exercise.Beginner},
		{ActionNext, "Intermediate", "0", 0, exercise.Intermediate},
		{ActionNext, "Advanced", "0", 1, ""},
		{ActionNext, "", "junk", 1, ""},
	}
	for _, tc := range tests {
		out := tu.Handle(Request{Action: tc.action, Level: tc.level, Index: tc.index}, s)
		require.NotNil(t, out.Redirect)
		assert.Nil(t, out.View)
		assert.Equal(t, Location{Index: tc.wantIndex, Level: tc.wantLevel}, *out.Redirect, "%v level=%q i=%q", tc.action, tc.level, tc.index)
		assert.Equal(t, s, out.State)
	}
}

func TestHandle_Reset(t *testing.T) {
	tu := testTutor()
	s := submit(t, tu, session.New(), "", "0", "1/3").State
	s = submit(t, tu, s, "", "1", "2/4").State
	require.Equal(t, 2, s.Attempts)

	out := tu.Handle(Request{Action: ActionReset, Level: "Beginner", Index: "1"}, s)
	require.NotNil(t, out.Redirect)
	assert.True(t, out.Reset)
	assert.Equal(t, Location{Index: 0, Level: exercise.Beginner}, *out.Redirect)
	assert.Zero(t, out.State.Attempts)
	assert.Zero(t, out.State.Correct)
	assert.Empty(t, out.State.Answers)
	assert.Equal(t, s.ID, out.State.ID)
}

func TestHandle_EmptyCatalog(t *testing.T) {
	s := session.New().Submit("x", "1/2")

	for _, action := range []Action{ActionShow, ActionSubmit, ActionNext, ActionPrev, ActionReset} {
		out := New(nil).Handle(Request{Action: action, Answer: "1/2"}, s)
		require.NotNil(t, out.View, action.String())
		assert.Nil(t, out.Redirect)
		assert.True(t, out.View.Empty)
		assert.Equal(t, "(No exercises found)", out.View.Prompt)
		assert.Equal(t, "Add Exercise individuals to the ontology.", out.View.Feedback)
		assert.Equal(t, s, out.State)
		assert.Equal(t, 1, out.View.Attempts)
	}
}

func TestHandle_EmptyCatalogShowsLoadError(t *testing.T) {
	tu := New(exercise.NewCatalog(nil), WithKnowledgeBase("/x/kb.owl", "OWL file not found at: /x/kb.owl"))
	out := tu.Handle(Request{}, session.New())
	assert.Equal(t, "OWL file not found at: /x/kb.owl", out.View.Feedback)
	assert.Equal(t, "OWL file not found at: /x/kb.owl", tu.LoadError())
}

func TestActionFromNav(t *testing.T) {
	tests := map[string]Action{
		"reset":  ActionReset,
		"next":   ActionNext,
		"prev":   ActionPrev,
		"":       ActionSubmit,
		"submit": ActionSubmit,
		"NEXT":   ActionSubmit,
	}
	for nav, want := range tests {
		if got := ActionFromNav(nav); got != want {
			t.Errorf("ActionFromNav(%q) = %v, want %v", nav, got, want)
		}
	}
}

func TestLocationURL(t *testing.T) {
	assert.Equal(t, "/?i=0", Location{}.URL())
	assert.Equal(t, "/?i=3&level=Intermediate", Location{Index: 3, Level: exercise.Intermediate}.URL())
}
