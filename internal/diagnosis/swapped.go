package diagnosis

// SwappedClassifier flags the original fraction written upside down.
type SwappedClassifier struct{}

func (c *SwappedClassifier) Name() string { return "swapped" }

func (c *SwappedClassifier) Classify(input *Input) Category {
	if input.Submitted.Swapped(input.Original) {
		return CategorySwapped
	}
	return ""
}
