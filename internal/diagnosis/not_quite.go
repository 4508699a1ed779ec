package diagnosis

// NotQuiteClassifier is the catch-all. It always matches.
type NotQuiteClassifier struct{}

func (c *NotQuiteClassifier) Name() string { return "not-quite" }

func (c *NotQuiteClassifier) Classify(_ *Input) Category {
	return CategoryNotQuite
}
