package cmd

import (
	"bytes"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/fractiz/internal/exercise"
	"github.com/abhisek/fractiz/internal/fraction"
	"github.com/abhisek/fractiz/internal/store"
)

var testKB = filepath.Join("..", "internal", "ontology", "testdata", "fractions_its.owl")

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "fractiz "), lines[0])
	assert.Contains(t, lines[1], runtime.GOOS+"/"+runtime.GOARCH)
}

func TestKBCheckCommand(t *testing.T) {
	out, err := execute(t, "kb", "check", testKB)
	require.NoError(t, err)
	assert.Contains(t, out, "ok    Ex_2_6")
	assert.Contains(t, out, "4/8 -> 1/2")
	assert.Contains(t, out, "skip  Ex_9_12")
	assert.Contains(t, out, "7 usable, 1 skipped, Beginner 2, Intermediate 2, Advanced 2")
}

func TestKBCheckCommand_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "none.owl")
	_, err := execute(t, "kb", "check", path)
	require.Error(t, err)
	assert.Equal(t, "OWL file not found at: "+path, err.Error())
}

func TestExercisesCommand_Level(t *testing.T) {
	out, err := execute(t, "--kb", testKB, "exercises", "--level", "Advanced")
	require.NoError(t, err)
	assert.Contains(t, out, "Ex_18_24")
	assert.Contains(t, out, "Ex_45_60")
	assert.NotContains(t, out, "Ex_2_6")
	assert.Contains(t, out, "2 exercises")

	_, err = execute(t, "--kb", testKB, "exercises", "--level", "Expert")
	assert.ErrorContains(t, err, `unknown level "Expert"`)
}

func TestResetRequiresConfirmation(t *testing.T) {
	_, err := execute(t, "reset")
	assert.ErrorContains(t, err, "--yes")
}

func TestPrintExercises(t *testing.T) {
	cat := exercise.NewCatalog([]exercise.Exercise{
		{Name: "Ex_6_9", Prompt: "Simplify 6/9", Level: exercise.Intermediate, Original: fraction.New(6, 9), Expected: fraction.New(2, 3)},
		{Name: "Ex_4_8", Prompt: "Simplify 4/8", Level: exercise.Beginner, Original: fraction.New(4, 8), Expected: fraction.New(1, 2)},
		{Name: "Ex_10_15", Prompt: "Simplify 10/15", Original: fraction.New(10, 15), Expected: fraction.New(2, 3)},
	})

	var buf bytes.Buffer
	printExercises(&buf, cat, "")
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 7)
	assert.Contains(t, lines[2], "Ex_4_8")
	assert.Contains(t, lines[3], "Ex_6_9")
	assert.Contains(t, lines[4], "Ex_10_15")
	assert.Contains(t, lines[4], " - ")
	assert.Equal(t, "3 exercises", lines[6])
}

func TestPrintStats(t *testing.T) {
	var buf bytes.Buffer
	printStats(&buf, &store.Stats{})
	assert.Equal(t, "No answers recorded yet.\n", buf.String())

	buf.Reset()
	printStats(&buf, &store.Stats{
		Attempts: 4, Correct: 1, Sessions: 2, Resets: 1,
		Categories: []store.CategoryCount{{Category: "numerator-only", Count: 3}, {Category: "correct", Count: 1}},
		Exercises:  []store.ExerciseStats{{Exercise: "Ex_4_8", Attempts: 4, Correct: 1}},
	})
	out := buf.String()
	assert.Contains(t, out, "Correct:   1 (25%)")
	assert.Contains(t, out, "Sessions:  2")
	assert.Contains(t, out, "numerator-only")
	assert.Contains(t, out, "Ex_4_8")
}
