// Package exercise turns knowledge-base individuals into gradable
// exercises and sequences them by skill level.
package exercise

import (
	"fmt"

	"github.com/abhisek/fractiz/internal/fraction"
)

// Exercise is a fully resolved exercise. Records are never partial: an
// exercise with a missing link is dropped at extraction time.
type Exercise struct {
	Name     string
	Prompt   string
	Level    Level // "" when the exercise has no skill level
	Hints    []string
	Original fraction.Fraction
	Expected fraction.Fraction
}

// MissingLinkError explains why an exercise was dropped.
type MissingLinkError struct {
	Exercise string
	Link     string
}

func (e *MissingLinkError) Error() string {
	return fmt.Sprintf("exercise %s: missing %s", e.Exercise, e.Link)
}

// Skipped is an Exercise individual that could not be resolved.
type Skipped struct {
	Name   string
	Reason error
}
