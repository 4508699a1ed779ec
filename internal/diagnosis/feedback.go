package diagnosis

// Message is the learner-facing text for a category.
type Message struct {
	Text string
	Hint string
}

// FormatMessage is shown when the answer cannot be parsed as "a/b".
const FormatMessage = "Please enter your answer like 1/2"

// ZeroDenominatorMessage is shown for answers such as "3/0".
const ZeroDenominatorMessage = "A fraction can't have 0 on the bottom — try something like 1/2"

var messages = map[Category]Message{
	CategoryCorrect: {
		Text: "✅ Correct!",
	},
	CategoryNumeratorOnly: {
		Text: "You simplified only the numerator — divide both parts by the same number.",
		Hint: "Divide both numerator and denominator by the same factor.",
	},
	CategorySimplifyFurther: {
		Text: "You can simplify further — try the greatest common factor.",
		Hint: "Try a bigger common factor (2, 3, 5, 7...).",
	},
	CategoryEquivalentUnexpected: {
		Text: "Equivalent but unexpected — recheck your factors.",
	},
	CategorySwapped: {
		Text: "Careful! Don’t swap numerator and denominator.",
		Hint: "Numerator (top) comes first.",
	},
	CategoryNotQuite: {
		Text: "Not quite. Which factor divides both parts?",
		Hint: "Use the same factor for top and bottom.",
	},
}

// FeedbackFor returns the message for cat. Unknown categories get the
// not-quite message.
func FeedbackFor(cat Category) Message {
	if m, ok := messages[cat]; ok {
		return m
	}
	return messages[CategoryNotQuite]
}
