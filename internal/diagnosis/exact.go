package diagnosis

// ExactClassifier accepts a submission that matches the expected fraction
// term for term. 2/4 is not accepted when 1/2 is expected.
type ExactClassifier struct{}

func (c *ExactClassifier) Name() string { return "exact" }

func (c *ExactClassifier) Classify(input *Input) Category {
	if input.Submitted.Equal(input.Expected) {
		return CategoryCorrect
	}
	return ""
}
