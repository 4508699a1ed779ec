package diagnosis

import (
	"testing"

	"github.com/abhisek/fractiz/internal/fraction"
)

func input(sNum, sDen int64) *Input {
	return &Input{
		Submitted: fraction.New(sNum, sDen),
		Original:  fraction.New(4, 8),
		Expected:  fraction.New(1, 2),
	}
}

func TestExactClassifier(t *testing.T) {
	c := &ExactClassifier{}
	if cat := c.Classify(input(1, 2)); cat != CategoryCorrect {
		t.Errorf("got category %q, want %q", cat, CategoryCorrect)
	}
	if cat := c.Classify(input(2, 4)); cat != "" {
		t.Errorf("got category %q for 2/4, want empty", cat)
	}
}

func TestExactClassifier_ReducibleExpected(t *testing.T) {
	// Whatever the knowledge base says is expected wins, reducible or not.
	in := &Input{
		Submitted: fraction.New(2, 4),
		Original:  fraction.New(4, 8),
		Expected:  fraction.New(2, 4),
	}
	if cat := (&ExactClassifier{}).Classify(in); cat != CategoryCorrect {
		t.Errorf("got category %q, want %q", cat, CategoryCorrect)
	}
}

func TestNumeratorOnlyClassifier(t *testing.T) {
	c := &NumeratorOnlyClassifier{}
	tests := []struct {
		num, den int64
		want     Category
	}{
		{2, 8, CategoryNumeratorOnly},
		{1, 8, CategoryNumeratorOnly},
		{-2, 8, CategoryNumeratorOnly},
		{4, 8, ""}, // numerator unchanged
		{3, 8, ""}, // 3 does not divide 4
		{2, 4, ""}, // denominator changed
		{0, 8, ""},
	}
	for _, tc := range tests {
		if cat := c.Classify(input(tc.num, tc.den)); cat != tc.want {
			t.Errorf("%d/%d: got category %q, want %q", tc.num, tc.den, cat, tc.want)
		}
	}
}

func TestNumeratorOnlyClassifier_FactorMustDivideDenominator(t *testing.T) {
	// 6/9 -> 2/9 divides the top by 3, which also divides 9.
	// 6/8 -> 2/8 divides the top by 3, which does not divide 8.
	c := &NumeratorOnlyClassifier{}
	ok := &Input{Submitted: fraction.New(2, 9), Original: fraction.New(6, 9), Expected: fraction.New(2, 3)}
	if cat := c.Classify(ok); cat != CategoryNumeratorOnly {
		t.Errorf("6/9 -> 2/9: got %q, want %q", cat, CategoryNumeratorOnly)
	}
	no := &Input{Submitted: fraction.New(2, 8), Original: fraction.New(6, 8), Expected: fraction.New(3, 4)}
	if cat := c.Classify(no); cat != "" {
		t.Errorf("6/8 -> 2/8: got %q, want empty", cat)
	}
}

func TestEquivalentClassifier(t *testing.T) {
	c := &EquivalentClassifier{}
	tests := []struct {
		num, den int64
		want     Category
	}{
		{2, 4, CategorySimplifyFurther},
		{4, 8, CategorySimplifyFurther},
		{-1, -2, CategoryEquivalentUnexpected},
		{8, 4, ""},
		{3, 5, ""},
	}
	for _, tc := range tests {
		if cat := c.Classify(input(tc.num, tc.den)); cat != tc.want {
			t.Errorf("%d/%d: got category %q, want %q", tc.num, tc.den, cat, tc.want)
		}
	}
}

func TestSwappedClassifier(t *testing.T) {
	c := &SwappedClassifier{}
	if cat := c.Classify(input(8, 4)); cat != CategorySwapped {
		t.Errorf("got category %q, want %q", cat, CategorySwapped)
	}
	if cat := c.Classify(input(2, 1)); cat != "" {
		t.Errorf("got category %q for 2/1, want empty", cat)
	}
}

func TestRunClassifiers_Priority(t *testing.T) {
	tests := []struct {
		num, den int64
		wantCat  Category
		wantName string
	}{
		{1, 2, CategoryCorrect, "exact"},
		{2, 8, CategoryNumeratorOnly, "numerator-only"},
		{2, 4, CategorySimplifyFurther, "equivalent"},
		{-1, -2, CategoryEquivalentUnexpected, "equivalent"},
		{8, 4, CategorySwapped, "swapped"},
		{3, 7, CategoryNotQuite, "not-quite"},
	}
	for _, tc := range tests {
		cat, name := RunClassifiers(DefaultClassifiers(), input(tc.num, tc.den))
		if cat != tc.wantCat {
			t.Errorf("%d/%d: got category %q, want %q", tc.num, tc.den, cat, tc.wantCat)
		}
		if name != tc.wantName {
			t.Errorf("%d/%d: got classifier %q, want %q", tc.num, tc.den, name, tc.wantName)
		}
	}
}

func TestRunClassifiers_NoMatch(t *testing.T) {
	cat, name := RunClassifiers([]Classifier{&SwappedClassifier{}}, input(1, 2))
	if cat != "" || name != "" {
		t.Errorf("got (%q, %q), want empty", cat, name)
	}
}
