package diagnosis

// Classifier is a single diagnosis rule.
// Returns the matched category, or "" if the rule doesn't apply.
type Classifier interface {
	Name() string
	Classify(input *Input) Category
}

// DefaultClassifiers returns the rules in priority order. An exact match
// wins over everything; the not-quite rule always matches and must be last.
func DefaultClassifiers() []Classifier {
	return []Classifier{
		&ExactClassifier{},
		&NumeratorOnlyClassifier{},
		&EquivalentClassifier{},
		&SwappedClassifier{},
		&NotQuiteClassifier{},
	}
}

// RunClassifiers executes classifiers in order.
// Returns the first match, or ("", "") if no rules apply.
func RunClassifiers(classifiers []Classifier, input *Input) (Category, string) {
	for _, c := range classifiers {
		if cat := c.Classify(input); cat != "" {
			return cat, c.Name()
		}
	}
	return "", ""
}

// Check classifies a submission with the default rules and attaches the
// learner-facing feedback.
func Check(input Input) Result {
	return CheckWith(DefaultClassifiers(), input)
}

// CheckWith is Check with an explicit rule set.
func CheckWith(classifiers []Classifier, input Input) Result {
	cat, name := RunClassifiers(classifiers, &input)
	if cat == "" {
		cat, name = CategoryNotQuite, "none"
	}

	msg := FeedbackFor(cat)
	res := Result{
		Correct:        cat == CategoryCorrect,
		Category:       cat,
		Feedback:       msg.Text,
		Hint:           msg.Hint,
		ClassifierName: name,
	}
	if !res.Correct && res.Hint == "" && len(input.Hints) > 0 {
		res.Hint = input.Hints[0]
	}
	return res
}
