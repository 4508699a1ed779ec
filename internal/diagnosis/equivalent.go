package diagnosis

// EquivalentClassifier handles submissions with the right value in the
// wrong form: either not fully reduced, or reduced to something other than
// the expected fraction (a sign flip such as -1/-2).
type EquivalentClassifier struct{}

func (c *EquivalentClassifier) Name() string { return "equivalent" }

func (c *EquivalentClassifier) Classify(input *Input) Category {
	if !input.Submitted.Equivalent(input.Original) {
		return ""
	}
	if input.Submitted.Reducible() {
		return CategorySimplifyFurther
	}
	return CategoryEquivalentUnexpected
}
