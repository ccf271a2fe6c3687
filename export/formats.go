package export

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/c360studio/skosdoc/graph"
	"github.com/c360studio/skosdoc/vocabulary/skos"
)

// FormatInfo provides metadata about an export format.
type FormatInfo struct {
	// Name is the format identifier.
	Name Format

	// MIMEType is the standard MIME type.
	MIMEType string

	// Extension is the file extension (with dot).
	Extension string

	// Description describes the format.
	Description string
}

// FormatRegistry contains metadata for all supported formats.
var FormatRegistry = map[Format]FormatInfo{
	FormatTurtle: {
		Name:        FormatTurtle,
		MIMEType:    "text/turtle",
		Extension:   ".ttl",
		Description: "Turtle - Terse RDF Triple Language",
	},
	FormatNTriples: {
		Name:        FormatNTriples,
		MIMEType:    "application/n-triples",
		Extension:   ".nt",
		Description: "N-Triples - Line-based RDF format",
	},
	FormatJSONLD: {
		Name:        FormatJSONLD,
		MIMEType:    "application/ld+json",
		Extension:   ".jsonld",
		Description: "JSON-LD - JSON for Linked Data",
	},
}

// GetFormatInfo returns metadata for a format.
func GetFormatInfo(format Format) (FormatInfo, bool) {
	info, ok := FormatRegistry[format]
	return info, ok
}

// TurtleWriter writes RDF in Turtle format. IRIs under a known prefix are
// written as prefixed names.
type TurtleWriter struct {
	prefixes map[string]string
	sb       strings.Builder
}

// NewTurtleWriter creates a new Turtle writer with default prefixes.
func NewTurtleWriter() *TurtleWriter {
	return &TurtleWriter{
		prefixes: defaultPrefixes(),
	}
}

// SetPrefix sets a namespace prefix.
func (w *TurtleWriter) SetPrefix(prefix, iri string) {
	w.prefixes[prefix] = iri
}

// WritePrefixes writes prefix declarations.
func (w *TurtleWriter) WritePrefixes() {
	// Sort prefixes for consistent output
	keys := make([]string, 0, len(w.prefixes))
	for k := range w.prefixes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, prefix := range keys {
		w.sb.WriteString(fmt.Sprintf("@prefix %s: <%s> .\n", prefix, w.prefixes[prefix]))
	}
	w.sb.WriteString("\n")
}

// WriteSubject starts a new subject block.
func (w *TurtleWriter) WriteSubject(subject graph.Term) {
	w.sb.WriteString(w.formatTerm(subject))
	w.sb.WriteString("\n")
}

// WriteType writes a type assertion.
func (w *TurtleWriter) WriteType(typeIRI string, last bool) {
	w.sb.WriteString(fmt.Sprintf("    a %s%s\n", w.Name(typeIRI), terminator(last)))
}

// WritePredicate writes a predicate-object pair.
func (w *TurtleWriter) WritePredicate(predicateIRI string, object graph.Term, last bool) {
	w.sb.WriteString(fmt.Sprintf("    %s %s%s\n", w.Name(predicateIRI), w.formatTerm(object), terminator(last)))
}

// WriteBlank writes a blank line for readability.
func (w *TurtleWriter) WriteBlank() {
	w.sb.WriteString("\n")
}

// String returns the accumulated Turtle output.
func (w *TurtleWriter) String() string {
	return w.sb.String()
}

// Name returns the prefixed name for an IRI, or the IRI in angle brackets
// when no prefix covers it. The longest matching namespace wins.
func (w *TurtleWriter) Name(iri string) string {
	best := ""
	for prefix, ns := range w.prefixes {
		if !strings.HasPrefix(iri, ns) || !isLocalName(iri[len(ns):]) {
			continue
		}
		if best == "" || len(ns) > len(w.prefixes[best]) || (len(ns) == len(w.prefixes[best]) && prefix < best) {
			best = prefix
		}
	}
	if best == "" {
		return fmt.Sprintf("<%s>", iri)
	}
	return best + ":" + iri[len(w.prefixes[best]):]
}

func (w *TurtleWriter) formatTerm(t graph.Term) string {
	switch t.Kind {
	case graph.KindIRI:
		return w.Name(t.Value)
	case graph.KindBlank:
		return blankLabel(t)
	default:
		s := fmt.Sprintf("\"%s\"", escapeString(t.Value))
		if t.Lang != "" {
			return s + "@" + t.Lang
		}
		if t.Datatype != "" && t.Datatype != skos.XSDNamespace+"string" {
			return s + "^^" + w.Name(t.Datatype)
		}
		return s
	}
}

func terminator(last bool) string {
	if last {
		return " ."
	}
	return " ;"
}

// isLocalName reports whether s can follow a prefix without escaping.
func isLocalName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		case (r == '-' || r == '.') && i > 0 && i < len(s)-1:
		default:
			return false
		}
	}
	return true
}

// NTriplesWriter writes RDF in N-Triples format.
type NTriplesWriter struct {
	sb strings.Builder
}

// NewNTriplesWriter creates a new N-Triples writer.
func NewNTriplesWriter() *NTriplesWriter {
	return &NTriplesWriter{}
}

// WriteTriple writes a single triple.
func (w *NTriplesWriter) WriteTriple(subject graph.Term, predicate string, object graph.Term) {
	w.sb.WriteString(fmt.Sprintf("%s <%s> %s .\n", formatObjectNTriples(subject), predicate, formatObjectNTriples(object)))
}

// WriteTypeTriple writes a type assertion triple.
func (w *NTriplesWriter) WriteTypeTriple(subject graph.Term, typeIRI string) {
	w.WriteTriple(subject, skos.RDFType, graph.IRI(typeIRI))
}

// String returns the accumulated N-Triples output.
func (w *NTriplesWriter) String() string {
	return w.sb.String()
}

// JSONLDDocument represents a JSON-LD document structure.
type JSONLDDocument struct {
	Context map[string]any `json:"@context"`
	Graph   []JSONLDNode   `json:"@graph"`
}

// JSONLDNode represents a node in a JSON-LD graph.
type JSONLDNode struct {
	ID         string         `json:"@id"`
	Type       []string       `json:"@type,omitempty"`
	Properties map[string]any `json:"-"`
}

// MarshalJSON implements custom JSON marshaling for JSONLDNode.
func (n JSONLDNode) MarshalJSON() ([]byte, error) {
	// Create a map with all fields
	m := make(map[string]any)
	m["@id"] = n.ID
	if len(n.Type) > 0 {
		m["@type"] = n.Type
	}
	for k, v := range n.Properties {
		m[k] = v
	}
	return json.Marshal(m)
}

// JSONLDWriter writes RDF in JSON-LD format.
type JSONLDWriter struct {
	doc JSONLDDocument
}

// NewJSONLDWriter creates a new JSON-LD writer.
func NewJSONLDWriter() *JSONLDWriter {
	return &JSONLDWriter{
		doc: JSONLDDocument{
			Context: make(map[string]any),
			Graph:   make([]JSONLDNode, 0),
		},
	}
}

// SetContext sets the @context with prefixes.
func (w *JSONLDWriter) SetContext(prefixes map[string]string) {
	for k, v := range prefixes {
		w.doc.Context[k] = v
	}
}

// AddNode adds a node to the graph.
func (w *JSONLDWriter) AddNode(id string, types []string, properties map[string]any) {
	node := JSONLDNode{
		ID:         id,
		Type:       types,
		Properties: properties,
	}
	w.doc.Graph = append(w.doc.Graph, node)
}

// String returns the JSON-LD output.
func (w *JSONLDWriter) String() string {
	data, err := json.MarshalIndent(w.doc, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}

// formatObjectNTriples formats a term for N-Triples output.
func formatObjectNTriples(t graph.Term) string {
	switch t.Kind {
	case graph.KindIRI:
		return fmt.Sprintf("<%s>", t.Value)
	case graph.KindBlank:
		return blankLabel(t)
	default:
		s := fmt.Sprintf("\"%s\"", escapeString(t.Value))
		if t.Lang != "" {
			return s + "@" + t.Lang
		}
		if t.Datatype != "" && t.Datatype != skos.XSDNamespace+"string" {
			return s + "^^<" + t.Datatype + ">"
		}
		return s
	}
}

// formatObjectJSONLD formats a term as a JSON-LD value object.
func formatObjectJSONLD(t graph.Term) map[string]string {
	switch t.Kind {
	case graph.KindIRI, graph.KindBlank:
		return map[string]string{"@id": nodeID(t)}
	default:
		v := map[string]string{"@value": t.Value}
		if t.Lang != "" {
			v["@language"] = t.Lang
		} else if t.Datatype != "" && t.Datatype != skos.XSDNamespace+"string" {
			v["@type"] = t.Datatype
		}
		return v
	}
}

func nodeID(t graph.Term) string {
	if t.Kind == graph.KindBlank {
		return blankLabel(t)
	}
	return t.Value
}

func blankLabel(t graph.Term) string {
	if strings.HasPrefix(t.Value, "_:") {
		return t.Value
	}
	return "_:" + t.Value
}

// escapeString escapes special characters in strings for RDF serialization.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}
