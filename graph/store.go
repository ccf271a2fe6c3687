// Package graph loads a Turtle file into an in-memory, order-preserving
// triple store.
//
// Triples are kept in document order and every query returns matches in
// that order. Single-value lookups (Value) take the first match, so results
// are reproducible for a given input file.
package graph

// Triple is a subject-predicate-object statement.
type Triple struct {
	Subject   Term
	Predicate Term
	Object    Term
}

// Store is an immutable triple store built by Load or Parse.
type Store struct {
	triples []Triple
	// bySubject indexes triple positions per subject key.
	bySubject map[string][]int
}

// NewStore builds a store from triples in the given order.
func NewStore(triples []Triple) *Store {
	s := &Store{
		triples:   make([]Triple, 0, len(triples)),
		bySubject: make(map[string][]int),
	}
	for _, t := range triples {
		s.add(t)
	}
	return s
}

func (s *Store) add(t Triple) {
	s.bySubject[t.Subject.key()] = append(s.bySubject[t.Subject.key()], len(s.triples))
	s.triples = append(s.triples, t)
}

// Len returns the number of triples.
func (s *Store) Len() int {
	return len(s.triples)
}

// Triples returns all triples in document order.
func (s *Store) Triples() []Triple {
	out := make([]Triple, len(s.triples))
	copy(out, s.triples)
	return out
}

// Match returns triples matching the pattern. A nil position is a wildcard.
func (s *Store) Match(subject, predicate, object *Term) []Triple {
	var out []Triple
	if subject != nil {
		for _, i := range s.bySubject[subject.key()] {
			if t := s.triples[i]; matches(t, nil, predicate, object) {
				out = append(out, t)
			}
		}
		return out
	}
	for _, t := range s.triples {
		if matches(t, nil, predicate, object) {
			out = append(out, t)
		}
	}
	return out
}

func matches(t Triple, subject, predicate, object *Term) bool {
	if subject != nil && t.Subject.key() != subject.key() {
		return false
	}
	if predicate != nil && t.Predicate.key() != predicate.key() {
		return false
	}
	if object != nil && t.Object.key() != object.key() {
		return false
	}
	return true
}

// SubjectsOfType returns the distinct subjects typed with typeIRI, in order
// of first appearance.
func (s *Store) SubjectsOfType(typeIRI string) []Term {
	pred := IRI(rdfType)
	obj := IRI(typeIRI)
	seen := make(map[string]bool)
	var out []Term
	for _, t := range s.Match(nil, &pred, &obj) {
		if k := t.Subject.key(); !seen[k] {
			seen[k] = true
			out = append(out, t.Subject)
		}
	}
	return out
}

// HasType reports whether subject is typed with typeIRI.
func (s *Store) HasType(subject Term, typeIRI string) bool {
	pred := IRI(rdfType)
	obj := IRI(typeIRI)
	return len(s.Match(&subject, &pred, &obj)) > 0
}

// Objects returns all objects of predicate for subject, in document order.
func (s *Store) Objects(subject Term, predicateIRI string) []Term {
	pred := IRI(predicateIRI)
	matched := s.Match(&subject, &pred, nil)
	out := make([]Term, 0, len(matched))
	for _, t := range matched {
		out = append(out, t.Object)
	}
	return out
}

// Value returns the first object of predicate for subject in document order.
// Multi-valued properties silently yield their first value.
func (s *Store) Value(subject Term, predicateIRI string) (Term, bool) {
	pred := IRI(predicateIRI)
	for _, i := range s.bySubject[subject.key()] {
		if t := s.triples[i]; t.Predicate.key() == pred.key() {
			return t.Object, true
		}
	}
	return Term{}, false
}

// ValueString returns the lexical value of Value, or "" when absent.
func (s *Store) ValueString(subject Term, predicateIRI string) string {
	if v, ok := s.Value(subject, predicateIRI); ok {
		return v.Value
	}
	return ""
}

const rdfType = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
