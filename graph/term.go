package graph

import (
	"strings"

	"github.com/knakk/rdf"
)

// Kind classifies an RDF term.
type Kind int

const (
	// KindIRI is a named resource.
	KindIRI Kind = iota
	// KindBlank is a blank node.
	KindBlank
	// KindLiteral is a literal value.
	KindLiteral
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindIRI:
		return "iri"
	case KindBlank:
		return "blank"
	case KindLiteral:
		return "literal"
	default:
		return "unknown"
	}
}

// Term is an RDF term as held by the store.
type Term struct {
	Kind  Kind
	Value string
	// Lang is the language tag of a literal, empty otherwise.
	Lang string
	// Datatype is the datatype IRI of a typed literal.
	Datatype string
}

// IRI returns an IRI term.
func IRI(value string) Term {
	return Term{Kind: KindIRI, Value: value}
}

// Literal returns a plain literal term.
func Literal(value string) Term {
	return Term{Kind: KindLiteral, Value: value}
}

// LangLiteral returns a language-tagged literal term.
func LangLiteral(value, lang string) Term {
	return Term{Kind: KindLiteral, Value: value, Lang: lang}
}

// IsIRI reports whether the term is a named resource.
func (t Term) IsIRI() bool { return t.Kind == KindIRI }

// IsLiteral reports whether the term is a literal.
func (t Term) IsLiteral() bool { return t.Kind == KindLiteral }

// String returns the lexical value of the term.
func (t Term) String() string { return t.Value }

// key identifies a term for indexing. Literals with different tags are distinct.
func (t Term) key() string {
	var sb strings.Builder
	sb.WriteByte(byte('0' + t.Kind))
	sb.WriteString(t.Value)
	if t.Lang != "" {
		sb.WriteString("@")
		sb.WriteString(t.Lang)
	}
	if t.Datatype != "" {
		sb.WriteString("^^")
		sb.WriteString(t.Datatype)
	}
	return sb.String()
}

// LocalName returns the fragment or last path segment of an IRI.
func LocalName(iri string) string {
	if i := strings.LastIndex(iri, "#"); i >= 0 {
		return iri[i+1:]
	}
	trimmed := strings.TrimRight(iri, "/")
	if i := strings.LastIndex(trimmed, "/"); i >= 0 {
		return trimmed[i+1:]
	}
	return iri
}

// fromRDF converts a decoded knakk/rdf term.
func fromRDF(t rdf.Term) Term {
	switch t.Type() {
	case rdf.TermIRI:
		return IRI(t.String())
	case rdf.TermBlank:
		return Term{Kind: KindBlank, Value: t.String()}
	default:
		term := Term{Kind: KindLiteral, Value: t.String()}
		if lit, ok := t.(rdf.Literal); ok {
			term.Lang = lit.Lang()
			if term.Lang == "" {
				term.Datatype = lit.DataType.String()
			}
		}
		return term
	}
}
