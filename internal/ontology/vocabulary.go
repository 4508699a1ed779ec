package ontology

// Class names used by the fractions knowledge base.
const (
	ClassExercise           = "Exercise"
	ClassFraction           = "Fraction"
	ClassNumerator          = "Numerator"
	ClassDenominator        = "Denominator"
	ClassSimplifiedFraction = "SimplifiedFraction"
	ClassHint               = "Hint"
	ClassSkillLevel         = "SkillLevel"
)

// Object properties.
const (
	PropAbout             = "about"
	PropHasNumerator      = "hasNumerator"
	PropHasDenominator    = "hasDenominator"
	PropHasSimplifiedForm = "hasSimplifiedForm"
	PropHasHint           = "hasHint"
	PropHasSkillLevel     = "hasSkillLevel"
)

// Data properties.
const (
	PropPromptText          = "promptText"
	PropHintText            = "hintText"
	PropNumericalValue      = "numericalValue"
	PropExpectedNumerator   = "expectedNumerator"
	PropExpectedDenominator = "expectedDenominator"
)

// XML namespaces recognized by the RDF/XML reader.
const (
	nsRDF  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	nsRDFS = "http://www.w3.org/2000/01/rdf-schema#"
	nsOWL  = "http://www.w3.org/2002/07/owl#"
)
