// Package export serializes a loaded triple store back to RDF text.
//
// Output follows the store's document order, so dumping a file shows the
// statements in the order the loader saw them.
package export

import (
	"fmt"

	"github.com/c360studio/skosdoc/graph"
	"github.com/c360studio/skosdoc/vocabulary/skos"
)

// Format specifies the output serialization format.
type Format string

const (
	// FormatTurtle produces Turtle (.ttl) output.
	FormatTurtle Format = "turtle"

	// FormatNTriples produces N-Triples (.nt) output.
	FormatNTriples Format = "ntriples"

	// FormatJSONLD produces JSON-LD (.jsonld) output.
	FormatJSONLD Format = "jsonld"
)

// Exporter serializes a store with a configurable prefix table.
type Exporter struct {
	prefixes map[string]string
}

// NewExporter creates an exporter with the default prefixes.
func NewExporter() *Exporter {
	return &Exporter{prefixes: defaultPrefixes()}
}

// defaultPrefixes returns the namespace prefixes used by SKOS vocabularies.
func defaultPrefixes() map[string]string {
	return map[string]string{
		"rdf":    skos.RDFNamespace,
		"rdfs":   skos.RDFSNamespace,
		"owl":    skos.OWLNamespace,
		"xsd":    skos.XSDNamespace,
		"dct":    skos.DCTermsNamespace,
		"skos":   skos.Namespace,
		"schema": skos.SchemaNamespace,
		"pov":    skos.POVNamespace,
		"puv":    skos.PUVNamespace,
	}
}

// SetPrefix adds or replaces a namespace prefix.
func (e *Exporter) SetPrefix(prefix, iri string) {
	e.prefixes[prefix] = iri
}

// Export serializes all triples of the store in the given format.
func (e *Exporter) Export(store *graph.Store, format Format) (string, error) {
	switch format {
	case FormatTurtle:
		return e.toTurtle(store), nil
	case FormatNTriples:
		return toNTriples(store), nil
	case FormatJSONLD:
		return e.toJSONLD(store), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// subjectGroup holds the triples of one subject in document order.
type subjectGroup struct {
	subject graph.Term
	triples []graph.Triple
}

// groupBySubject groups triples by subject, ordered by first appearance.
func groupBySubject(triples []graph.Triple) []subjectGroup {
	var groups []subjectGroup
	index := make(map[graph.Term]int)
	for _, t := range triples {
		i, ok := index[t.Subject]
		if !ok {
			i = len(groups)
			index[t.Subject] = i
			groups = append(groups, subjectGroup{subject: t.Subject})
		}
		groups[i].triples = append(groups[i].triples, t)
	}
	return groups
}

// toTurtle serializes to Turtle format, one block per subject.
func (e *Exporter) toTurtle(store *graph.Store) string {
	w := NewTurtleWriter()
	for prefix, iri := range e.prefixes {
		w.SetPrefix(prefix, iri)
	}
	w.WritePrefixes()

	for _, group := range groupBySubject(store.Triples()) {
		w.WriteSubject(group.subject)
		for i, t := range group.triples {
			last := i == len(group.triples)-1
			if t.Predicate.Value == skos.RDFType && t.Object.IsIRI() {
				w.WriteType(t.Object.Value, last)
				continue
			}
			w.WritePredicate(t.Predicate.Value, t.Object, last)
		}
		w.WriteBlank()
	}

	return w.String()
}

// toNTriples serializes to N-Triples format.
func toNTriples(store *graph.Store) string {
	w := NewNTriplesWriter()
	for _, t := range store.Triples() {
		if t.Predicate.Value == skos.RDFType && t.Object.IsIRI() {
			w.WriteTypeTriple(t.Subject, t.Object.Value)
			continue
		}
		w.WriteTriple(t.Subject, t.Predicate.Value, t.Object)
	}
	return w.String()
}

// toJSONLD serializes to JSON-LD format, one node per subject.
func (e *Exporter) toJSONLD(store *graph.Store) string {
	w := NewJSONLDWriter()
	w.SetContext(e.prefixes)

	for _, group := range groupBySubject(store.Triples()) {
		var types []string
		properties := make(map[string]any)
		for _, t := range group.triples {
			if t.Predicate.Value == skos.RDFType && t.Object.IsIRI() {
				types = append(types, t.Object.Value)
				continue
			}
			values, _ := properties[t.Predicate.Value].([]any)
			properties[t.Predicate.Value] = append(values, formatObjectJSONLD(t.Object))
		}
		w.AddNode(nodeID(group.subject), types, properties)
	}

	return w.String()
}
