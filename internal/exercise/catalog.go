package exercise

import (
	"cmp"
	"slices"

	"github.com/abhisek/fractiz/internal/ontology"
)

// Catalog is the sequenced list of exercises. It is read-only after
// construction and safe for concurrent use.
type Catalog struct {
	all []Exercise
}

// NewCatalog orders exercises by level rank, then by name.
func NewCatalog(exercises []Exercise) *Catalog {
	all := slices.Clone(exercises)
	slices.SortStableFunc(all, func(a, b Exercise) int {
		if c := cmp.Compare(a.Level.Rank(), b.Level.Rank()); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return &Catalog{all: all}
}

// Load reads the knowledge base at path and builds a catalog from it.
// On error the returned catalog is empty but usable, and the error is
// ontology.Load's own so ontology.Message can render it.
func Load(path string) (*Catalog, []Skipped, error) {
	g, err := ontology.Load(path)
	if err != nil {
		return NewCatalog(nil), nil, err
	}
	exercises, skipped := ExtractAll(g)
	return NewCatalog(exercises), skipped, nil
}

// All returns every exercise in sequence order.
func (c *Catalog) All() []Exercise {
	return c.all
}

// Len returns the number of exercises.
func (c *Catalog) Len() int {
	return len(c.all)
}

// Empty reports whether there is nothing to practice.
func (c *Catalog) Empty() bool {
	return len(c.all) == 0
}

// Filter returns the exercises at level together with the level actually
// applied. An empty or unrecognized level, or a recognized level with no
// exercises, yields the full list and an empty level.
func (c *Catalog) Filter(level string) ([]Exercise, Level) {
	l, ok := ParseLevel(level)
	if !ok {
		return c.all, ""
	}
	var out []Exercise
	for _, ex := range c.all {
		if ex.Level == l {
			out = append(out, ex)
		}
	}
	if len(out) == 0 {
		return c.all, ""
	}
	return out, l
}

// Counts returns how many exercises sit at each recognized level.
func (c *Catalog) Counts() map[Level]int {
	counts := make(map[Level]int, len(Levels()))
	for _, ex := range c.all {
		if ex.Level.Known() {
			counts[ex.Level]++
		}
	}
	return counts
}

// Clamp limits i to [0, max(0, total-1)].
func Clamp(i, total int) int {
	return max(0, min(i, max(0, total-1)))
}
