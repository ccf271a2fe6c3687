package extract

import (
	"fmt"
	"strings"
)

// Namespace binds a prefix to an IRI.
type Namespace struct {
	Prefix string `yaml:"prefix"`
	IRI    string `yaml:"iri"`
}

// Namespaces is an ordered prefix table.
type Namespaces []Namespace

// DefaultNamespaces returns the prefixes shown on eLTER vocabulary pages.
func DefaultNamespaces() Namespaces {
	return Namespaces{
		{Prefix: "schema", IRI: "https://schema.org/"},
		{Prefix: "skos", IRI: "http://www.w3.org/2004/02/skos/core#"},
		{Prefix: "owl", IRI: "http://www.w3.org/2002/07/owl#"},
		{Prefix: "rdf", IRI: "http://www.w3.org/1999/02/22-rdf-syntax-ns#"},
		{Prefix: "rdfs", IRI: "http://www.w3.org/2000/01/rdf-schema#"},
		{Prefix: "dct", IRI: "http://purl.org/dc/terms/"},
		{Prefix: "dwc", IRI: "http://rs.tdwg.org/dwc/terms/"},
		{Prefix: "omv", IRI: "http://omv.ontoware.org/2005/05/ontology"},
		{Prefix: "puv", IRI: "https://w3id.org/env/puv#"},
		{Prefix: "qudt", IRI: "http://qudt.org/vocab/"},
		{Prefix: "unit", IRI: "http://qudt.org/vocab/unit/"},
	}
}

// Lookup returns the IRI bound to prefix.
func (ns Namespaces) Lookup(prefix string) (string, bool) {
	for _, n := range ns {
		if n.Prefix == prefix {
			return n.IRI, true
		}
	}
	return "", false
}

// Resolve expands a qualified name to a full IRI. Full IRIs, bare or in
// angle brackets, are returned unchanged.
func (ns Namespaces) Resolve(name string) (string, error) {
	if strings.HasPrefix(name, "<") && strings.HasSuffix(name, ">") {
		return name[1 : len(name)-1], nil
	}
	if strings.Contains(name, "://") || strings.HasPrefix(name, "urn:") {
		return name, nil
	}
	prefix, local, ok := strings.Cut(name, ":")
	if !ok {
		return "", fmt.Errorf("not a qualified name: %q", name)
	}
	base, ok := ns.Lookup(prefix)
	if !ok {
		return "", &UnresolvedReferenceError{Name: name, Prefix: prefix}
	}
	return base + local, nil
}

// Validate rejects empty or duplicate prefixes.
func (ns Namespaces) Validate() error {
	seen := make(map[string]bool, len(ns))
	for _, n := range ns {
		if n.IRI == "" {
			return fmt.Errorf("namespace %q has no IRI", n.Prefix)
		}
		if seen[n.Prefix] {
			return fmt.Errorf("duplicate namespace prefix %q", n.Prefix)
		}
		seen[n.Prefix] = true
	}
	return nil
}
