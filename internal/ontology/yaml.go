package ontology

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed kb.schema.json
var schemaJSON []byte

const schemaURL = "schema://fractiz/kb.json"

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, doc); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
})

// yamlDoc is the YAML/JSON knowledge-base layout:
//
//	classes:
//	  - name: BeginnerExercise
//	    subClassOf: Exercise
//	individuals:
//	  - name: Ex_4_8
//	    type: Exercise
//	    objects: {about: Frac_4_8, hasHint: [Hint_gcf]}
//	    data: {promptText: "Simplify 4/8"}
type yamlDoc struct {
	Classes []struct {
		Name       string     `yaml:"name"`
		SubClassOf stringList `yaml:"subClassOf"`
	} `yaml:"classes"`
	Individuals []struct {
		Name    string                `yaml:"name"`
		Type    stringList            `yaml:"type"`
		Objects map[string]stringList `yaml:"objects"`
		Data    map[string]stringList `yaml:"data"`
	} `yaml:"individuals"`
}

// stringList accepts either a single scalar or a sequence of scalars.
type stringList []string

func (l *stringList) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		*l = stringList{n.Value}
		return nil
	case yaml.SequenceNode:
		out := make(stringList, 0, len(n.Content))
		for _, c := range n.Content {
			if c.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: expected scalar", c.Line)
			}
			out = append(out, c.Value)
		}
		*l = out
		return nil
	default:
		return fmt.Errorf("line %d: expected scalar or list", n.Line)
	}
}

// ParseYAML reads the YAML (or JSON) knowledge-base format. The document is
// validated against the embedded schema before the graph is built.
func ParseYAML(data []byte) (*Graph, error) {
	if err := validateYAML(data); err != nil {
		return nil, err
	}

	var doc yamlDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	g := NewGraph()
	for _, c := range doc.Classes {
		g.AddClass(c.Name, c.SubClassOf...)
	}
	for _, ind := range doc.Individuals {
		g.AddIndividual(ind.Name)
		for _, t := range ind.Type {
			g.AddType(ind.Name, t)
		}
		for _, prop := range slices.Sorted(maps.Keys(ind.Objects)) {
			for _, v := range ind.Objects[prop] {
				g.AddObject(ind.Name, prop, v)
			}
		}
		for _, prop := range slices.Sorted(maps.Keys(ind.Data)) {
			for _, v := range ind.Data[prop] {
				g.AddData(ind.Name, prop, v)
			}
		}
	}
	return g, nil
}

func validateYAML(data []byte) error {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode yaml: %w", err)
	}
	if raw == nil {
		raw = map[string]any{}
	}

	// The validator wants JSON values; round-trip through encoding/json.
	b, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("convert yaml: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("convert yaml: %w", err)
	}

	schema, err := compileSchema()
	if err != nil {
		return fmt.Errorf("compile knowledge base schema: %w", err)
	}
	if err := schema.Validate(inst); err != nil {
		return fmt.Errorf("knowledge base schema validation failed: %w", err)
	}
	return nil
}
