package diagnosis

import "github.com/abhisek/fractiz/internal/fraction"

// NumeratorOnlyClassifier catches learners who divided the top of the
// fraction and left the bottom alone, e.g. 4/8 -> 2/8.
type NumeratorOnlyClassifier struct{}

func (c *NumeratorOnlyClassifier) Name() string { return "numerator-only" }

func (c *NumeratorOnlyClassifier) Classify(input *Input) Category {
	s, o := input.Submitted, input.Original
	if s.Den != o.Den || s.Num == o.Num {
		return ""
	}
	if s.Equivalent(o) || dividedNumerator(s, o) {
		return CategoryNumeratorOnly
	}
	return ""
}

// dividedNumerator reports whether s.Num is o.Num divided by some factor
// greater than one that also divides o.Den.
func dividedNumerator(s, o fraction.Fraction) bool {
	if s.Num == 0 || o.Num%s.Num != 0 {
		return false
	}
	f := o.Num / s.Num
	if f < 0 {
		f = -f
	}
	return f > 1 && o.Den%f == 0
}
