// Package ontology loads the tutoring knowledge base into an in-memory
// graph of named individuals, their classes and their property values.
package ontology

import (
	"slices"
	"strings"
)

// Individual is a named node of the knowledge base. Property values keep
// the order they were declared in.
type Individual struct {
	Name    string
	Classes []string
	Objects map[string][]string // property -> target individual names
	Data    map[string][]string // property -> literal values
}

// FirstObject returns the first target of an object property.
func (i *Individual) FirstObject(prop string) (string, bool) {
	v := i.Objects[prop]
	if len(v) == 0 {
		return "", false
	}
	return v[0], true
}

// ObjectValues returns every target of an object property.
func (i *Individual) ObjectValues(prop string) []string {
	return i.Objects[prop]
}

// FirstData returns the first literal of a data property.
func (i *Individual) FirstData(prop string) (string, bool) {
	v := i.Data[prop]
	if len(v) == 0 {
		return "", false
	}
	return v[0], true
}

// HasClass reports whether the individual is directly asserted to be of class c.
func (i *Individual) HasClass(c string) bool {
	return slices.Contains(i.Classes, c)
}

// Graph is the loaded knowledge base. It is built once and then only read,
// so it is safe for concurrent use after loading.
type Graph struct {
	order       []string
	individuals map[string]*Individual
	classes     map[string]bool
	subclasses  map[string][]string // parent -> direct children
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		individuals: make(map[string]*Individual),
		classes:     make(map[string]bool),
		subclasses:  make(map[string][]string),
	}
}

// AddClass declares a class and, optionally, its direct superclasses.
func (g *Graph) AddClass(name string, parents ...string) {
	g.classes[name] = true
	for _, p := range parents {
		if p == "" || p == name {
			continue
		}
		g.classes[p] = true
		if !slices.Contains(g.subclasses[p], name) {
			g.subclasses[p] = append(g.subclasses[p], name)
		}
	}
}

// HasClass reports whether the class was declared or used as a type.
func (g *Graph) HasClass(name string) bool {
	return g.classes[name]
}

// AddIndividual registers name if it is new and returns it.
func (g *Graph) AddIndividual(name string) *Individual {
	if ind, ok := g.individuals[name]; ok {
		return ind
	}
	ind := &Individual{
		Name:    name,
		Objects: make(map[string][]string),
		Data:    make(map[string][]string),
	}
	g.individuals[name] = ind
	g.order = append(g.order, name)
	return ind
}

// AddType asserts that individual name is of class c.
func (g *Graph) AddType(name, c string) {
	ind := g.AddIndividual(name)
	g.classes[c] = true
	if !ind.HasClass(c) {
		ind.Classes = append(ind.Classes, c)
	}
}

// AddObject appends target to an object property of name.
func (g *Graph) AddObject(name, prop, target string) {
	ind := g.AddIndividual(name)
	ind.Objects[prop] = append(ind.Objects[prop], target)
}

// AddData appends a literal to a data property of name.
func (g *Graph) AddData(name, prop, value string) {
	ind := g.AddIndividual(name)
	ind.Data[prop] = append(ind.Data[prop], value)
}

// Individual looks up an individual by name.
func (g *Graph) Individual(name string) (*Individual, bool) {
	ind, ok := g.individuals[name]
	return ind, ok
}

// Len returns the number of individuals.
func (g *Graph) Len() int {
	return len(g.order)
}

// Instances returns the individuals of class c or any of its transitive
// subclasses, in declaration order.
func (g *Graph) Instances(c string) []*Individual {
	want := g.descendants(c)
	var out []*Individual
	for _, name := range g.order {
		ind := g.individuals[name]
		for _, k := range ind.Classes {
			if want[k] {
				out = append(out, ind)
				break
			}
		}
	}
	return out
}

func (g *Graph) descendants(c string) map[string]bool {
	seen := map[string]bool{c: true}
	queue := []string{c}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, child := range g.subclasses[cur] {
			if !seen[child] {
				seen[child] = true
				queue = append(queue, child)
			}
		}
	}
	return seen
}

// LocalName returns the part of an IRI after the last '#' or, failing
// that, the last '/'.
func LocalName(iri string) string {
	if i := strings.LastIndexByte(iri, '#'); i >= 0 {
		return iri[i+1:]
	}
	if i := strings.LastIndexByte(iri, '/'); i >= 0 {
		return iri[i+1:]
	}
	return iri
}
