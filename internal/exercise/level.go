package exercise

// Level is a skill level name as it appears in the knowledge base.
type Level string

const (
	Beginner     Level = "Beginner"
	Intermediate Level = "Intermediate"
	Advanced     Level = "Advanced"
)

// unrankedLevel sorts exercises with a missing or unknown level last.
const unrankedLevel = 99

// Levels returns the recognized levels in teaching order.
func Levels() []Level {
	return []Level{Beginner, Intermediate, Advanced}
}

// Rank returns the level's position in Levels, or 99 if it is not one of them.
func (l Level) Rank() int {
	for i, v := range Levels() {
		if v == l {
			return i
		}
	}
	return unrankedLevel
}

// Known reports whether l is one of the recognized levels.
func (l Level) Known() bool {
	return l.Rank() != unrankedLevel
}

// ParseLevel returns the recognized level named s.
func ParseLevel(s string) (Level, bool) {
	l := Level(s)
	return l, l.Known()
}
