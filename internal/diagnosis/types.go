package diagnosis

import "github.com/abhisek/fractiz/internal/fraction"

// Category classifies a submitted answer.
type Category string

const (
	CategoryCorrect              Category = "correct"
	CategoryNumeratorOnly        Category = "numerator-only"
	CategorySimplifyFurther      Category = "simplify-further"
	CategoryEquivalentUnexpected Category = "equivalent-unexpected"
	CategorySwapped              Category = "swapped"
	CategoryNotQuite             Category = "not-quite"

	// CategoryUnparsable marks a submission that was not "a/b". No
	// classifier produces it.
	CategoryUnparsable Category = "unparsable"
)

// AllCategories returns every category in rule priority order.
func AllCategories() []Category {
	return []Category{
		CategoryCorrect,
		CategoryNumeratorOnly,
		CategorySimplifyFurther,
		CategoryEquivalentUnexpected,
		CategorySwapped,
		CategoryNotQuite,
	}
}

// Input holds everything the classifiers look at.
type Input struct {
	Submitted fraction.Fraction
	Original  fraction.Fraction
	Expected  fraction.Fraction // fully reduced form of Original

	// Hints are the exercise's authored hints, used as a fallback when the
	// matching rule has no hint of its own.
	Hints []string
}

// Result is the outcome of checking one submission.
type Result struct {
	Correct        bool
	Category       Category
	Feedback       string
	Hint           string // empty when there is nothing to suggest
	ClassifierName string // which rule matched
}
