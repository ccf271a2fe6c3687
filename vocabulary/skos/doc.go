// Package skos provides the vocabulary predicates skosdoc reads from a SKOS
// controlled vocabulary.
//
// Predicates follow the semstreams three-level dotted notation
// (domain.category.property) and are registered in init() with
// vocabulary.Register(). Each registration carries the standard IRI the
// extractor matches against the parsed Turtle graph:
//
//	skos.concept.pref_label   -> skos:prefLabel
//	skos.hierarchy.broader    -> skos:broader
//	dc.scheme.title           -> dct:title
//	schema.concept.unit_code  -> schema:unitCode
//
// Import the package to register predicates, then resolve IRIs with IRI():
//
//	import "github.com/c360studio/skosdoc/vocabulary/skos"
//
//	label, ok := store.Value(subject, skos.IRI(skos.PrefLabel))
//
// Registered predicates are also rendered in the page metadata section, so
// the documentation lists every property it was built from.
package skos
