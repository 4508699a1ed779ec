package ontology

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strings"
)

const nsXML = "http://www.w3.org/XML/1998/namespace"

// rdfNode is a generic RDF/XML element.
type rdfNode struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Text     string     `xml:",chardata"`
	Children []rdfNode  `xml:",any"`
}

func (n *rdfNode) lookup(space, local string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Space == space && a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

func (n *rdfNode) attr(space, local string) string {
	v, _ := n.lookup(space, local)
	return v
}

func (n *rdfNode) is(space, local string) bool {
	return n.XMLName.Space == space && n.XMLName.Local == local
}

// base returns the element's xml:base resolved against the inherited one.
func (n *rdfNode) base(inherited string) string {
	if b, ok := n.lookup(nsXML, "base"); ok {
		return resolve(inherited, b)
	}
	return inherited
}

// ParseOWL reads an OWL ontology serialized as RDF/XML, the format Protégé
// and owlready2 write by default. Only the constructs the tutor needs are
// interpreted: class declarations with rdfs:subClassOf, individuals with
// their types, object properties (rdf:resource, rdf:nodeID, nested nodes,
// rdf:parseType "Resource" and "Collection") and literal data properties.
// Entities declared in the DOCTYPE internal subset are expanded and
// relative IRIs are resolved against xml:base. Everything else is ignored.
func ParseOWL(r io.Reader) (*Graph, error) {
	dec := xml.NewDecoder(r)
	dec.Entity = map[string]string{}

	var root rdfNode
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil, errors.New("decode rdf/xml: no root element")
		}
		if err != nil {
			return nil, fmt.Errorf("decode rdf/xml: %w", err)
		}
		if dir, ok := tok.(xml.Directive); ok {
			for name, value := range doctypeEntities(dir) {
				dec.Entity[name] = value
			}
			continue
		}
		if start, ok := tok.(xml.StartElement); ok {
			if err := dec.DecodeElement(&root, &start); err != nil {
				return nil, fmt.Errorf("decode rdf/xml: %w", err)
			}
			break
		}
	}
	if !root.is(nsRDF, "RDF") {
		return nil, fmt.Errorf("root element <%s> is not rdf:RDF", root.XMLName.Local)
	}

	rd := &rdfReader{g: NewGraph()}
	base := root.base("")
	for i := range root.Children {
		rd.readNode(&root.Children[i], base)
	}
	return rd.g, nil
}

var entityDecl = regexp.MustCompile(`<!ENTITY\s+([A-Za-z_][\w.-]*)\s+(?:"([^"]*)"|'([^']*)')\s*>`)

// doctypeEntities returns the general entities declared in a
// <!DOCTYPE ... [ ... ]> internal subset. Values may use entities
// declared before them.
func doctypeEntities(dir xml.Directive) map[string]string {
	if !strings.HasPrefix(strings.TrimSpace(string(dir)), "DOCTYPE") {
		return nil
	}
	out := map[string]string{}
	for _, m := range entityDecl.FindAllStringSubmatch(string(dir), -1) {
		value := m[2] + m[3]
		for name, v := range out {
			value = strings.ReplaceAll(value, "&"+name+";", v)
		}
		out[m[1]] = value
	}
	return out
}

// resolve resolves ref against base. Unparsable IRIs are returned as is.
func resolve(base, ref string) string {
	if base == "" {
		return ref
	}
	b, err := url.Parse(base)
	if err != nil {
		return ref
	}
	r, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return b.ResolveReference(r).String()
}

// rdfReader accumulates one document into a graph. Blank nodes get names
// starting with "_:", which cannot collide with an IRI local name.
type rdfReader struct {
	g      *Graph
	blanks int
}

func (rd *rdfReader) blank() string {
	rd.blanks++
	return fmt.Sprintf("_:anon%d", rd.blanks)
}

// subject names the node described by n.
func (rd *rdfReader) subject(n *rdfNode, base string) (name string, anonymous bool) {
	if about, ok := n.lookup(nsRDF, "about"); ok {
		return LocalName(resolve(base, about)), false
	}
	if id, ok := n.lookup(nsRDF, "ID"); ok {
		return LocalName(resolve(base, "#"+id)), false
	}
	if id, ok := n.lookup(nsRDF, "nodeID"); ok {
		return "_:" + id, false
	}
	return rd.blank(), true
}

// readNode adds one node element to the graph and returns its name, or ""
// for anonymous classes and schema declarations.
func (rd *rdfReader) readNode(n *rdfNode, inherited string) string {
	base := n.base(inherited)
	name, anonymous := rd.subject(n, base)

	var types []string
	if !n.is(nsRDF, "Description") {
		types = append(types, n.XMLName.Space+n.XMLName.Local)
	}
	for i := range n.Children {
		c := &n.Children[i]
		if c.is(nsRDF, "type") {
			if res, ok := c.lookup(nsRDF, "resource"); ok {
				types = append(types, resolve(c.base(base), res))
			}
		}
	}

	for _, t := range types {
		if t == nsOWL+"Class" || t == nsRDFS+"Class" {
			if anonymous {
				return ""
			}
			rd.readClass(name, n, base)
			return name
		}
	}
	for _, t := range types {
		if isVocabulary(t) && t != nsOWL+"NamedIndividual" {
			// Ontology header, property declarations, restrictions.
			return ""
		}
	}

	rd.g.AddIndividual(name)
	for _, t := range types {
		if !isVocabulary(t) {
			rd.g.AddType(name, LocalName(t))
		}
	}
	for _, a := range n.Attrs {
		if isVocabulary(a.Name.Space) || a.Name.Space == "xmlns" || a.Name.Local == "xmlns" || a.Name.Space == nsXML {
			continue
		}
		rd.g.AddData(name, a.Name.Local, a.Value)
	}
	rd.readProperties(name, n, base)
	return name
}

func (rd *rdfReader) readProperties(name string, n *rdfNode, base string) {
	for i := range n.Children {
		c := &n.Children[i]
		if c.is(nsRDF, "type") {
			continue
		}
		cbase := c.base(base)
		prop := c.XMLName.Local

		if res, ok := c.lookup(nsRDF, "resource"); ok {
			rd.g.AddObject(name, prop, LocalName(resolve(cbase, res)))
			continue
		}
		if id, ok := c.lookup(nsRDF, "nodeID"); ok {
			rd.g.AddObject(name, prop, "_:"+id)
			continue
		}
		switch c.attr(nsRDF, "parseType") {
		case "Resource":
			target := rd.blank()
			rd.g.AddIndividual(target)
			rd.readProperties(target, c, cbase)
			rd.g.AddObject(name, prop, target)
			continue
		case "Literal":
			rd.g.AddData(name, prop, strings.TrimSpace(c.Text))
			continue
		}
		// A nested node, or with parseType "Collection" each member node.
		if len(c.Children) > 0 {
			for j := range c.Children {
				if target := rd.readNode(&c.Children[j], cbase); target != "" {
					rd.g.AddObject(name, prop, target)
				}
			}
			continue
		}
		rd.g.AddData(name, prop, strings.TrimSpace(c.Text))
	}
}

func (rd *rdfReader) readClass(name string, n *rdfNode, base string) {
	var parents []string
	for i := range n.Children {
		c := &n.Children[i]
		if !c.is(nsRDFS, "subClassOf") {
			continue
		}
		if res, ok := c.lookup(nsRDF, "resource"); ok {
			if iri := resolve(c.base(base), res); !isVocabulary(iri) {
				parents = append(parents, LocalName(iri))
			}
		}
	}
	rd.g.AddClass(name, parents...)
}

func isVocabulary(iri string) bool {
	return strings.HasPrefix(iri, nsRDF) || strings.HasPrefix(iri, nsRDFS) || strings.HasPrefix(iri, nsOWL)
}
