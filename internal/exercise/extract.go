package exercise

import (
	"math"
	"strconv"
	"strings"

	"github.com/abhisek/fractiz/internal/fraction"
	"github.com/abhisek/fractiz/internal/ontology"
)

// ExtractAll resolves every instance of the Exercise class (subclasses
// included). Unresolvable exercises are reported in skipped.
func ExtractAll(g *ontology.Graph) (exercises []Exercise, skipped []Skipped) {
	for _, ind := range g.Instances(ontology.ClassExercise) {
		ex, err := Extract(g, ind)
		if err != nil {
			skipped = append(skipped, Skipped{Name: ind.Name, Reason: err})
			continue
		}
		exercises = append(exercises, ex)
	}
	return exercises, skipped
}

// Extract resolves a single Exercise individual.
//
// Prompt, level and hints are optional. The fraction chain is not:
// about -> hasNumerator/hasDenominator -> numericalValue and
// about -> hasSimplifiedForm -> expectedNumerator/expectedDenominator must
// all resolve to integers, otherwise a *MissingLinkError is returned.
func Extract(g *ontology.Graph, ind *ontology.Individual) (Exercise, error) {
	ex := Exercise{Name: ind.Name}
	missing := func(link string) (Exercise, error) {
		return Exercise{}, &MissingLinkError{Exercise: ind.Name, Link: link}
	}

	ex.Prompt, _ = ind.FirstData(ontology.PropPromptText)
	if lv, ok := ind.FirstObject(ontology.PropHasSkillLevel); ok {
		ex.Level = Level(lv)
	}
	for _, name := range ind.ObjectValues(ontology.PropHasHint) {
		h, ok := g.Individual(name)
		if !ok {
			continue
		}
		if text, ok := h.FirstData(ontology.PropHintText); ok {
			ex.Hints = append(ex.Hints, text)
		}
	}

	frac, ok := follow(g, ind, ontology.PropAbout)
	if !ok {
		return missing(ontology.PropAbout)
	}

	num, ok := integerVia(g, frac, ontology.PropHasNumerator, ontology.PropNumericalValue)
	if !ok {
		return missing(ontology.PropHasNumerator + "." + ontology.PropNumericalValue)
	}
	den, ok := integerVia(g, frac, ontology.PropHasDenominator, ontology.PropNumericalValue)
	if !ok {
		return missing(ontology.PropHasDenominator + "." + ontology.PropNumericalValue)
	}

	simp, ok := follow(g, frac, ontology.PropHasSimplifiedForm)
	if !ok {
		return missing(ontology.PropHasSimplifiedForm)
	}
	en, ok := integerData(simp, ontology.PropExpectedNumerator)
	if !ok {
		return missing(ontology.PropHasSimplifiedForm + "." + ontology.PropExpectedNumerator)
	}
	ed, ok := integerData(simp, ontology.PropExpectedDenominator)
	if !ok {
		return missing(ontology.PropHasSimplifiedForm + "." + ontology.PropExpectedDenominator)
	}

	ex.Original = fraction.New(num, den)
	ex.Expected = fraction.New(en, ed)
	return ex, nil
}

// follow returns the individual named by the first value of prop.
func follow(g *ontology.Graph, ind *ontology.Individual, prop string) (*ontology.Individual, bool) {
	name, ok := ind.FirstObject(prop)
	if !ok {
		return nil, false
	}
	return g.Individual(name)
}

func integerVia(g *ontology.Graph, ind *ontology.Individual, prop, dataProp string) (int64, bool) {
	target, ok := follow(g, ind, prop)
	if !ok {
		return 0, false
	}
	return integerData(target, dataProp)
}

func integerData(ind *ontology.Individual, prop string) (int64, bool) {
	v, ok := ind.FirstData(prop)
	if !ok {
		return 0, false
	}
	return ParseInteger(v)
}

// ParseInteger parses an integer literal. Decimal literals with no
// fractional part ("4.0") are accepted.
func ParseInteger(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}
