package graph

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/knakk/rdf"
)

// Load reads and parses a Turtle file. The whole file is read into memory.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	store, err := Parse(bytes.NewReader(data))
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = path
		}
		return nil, err
	}
	return store, nil
}

// Parse decodes Turtle from r, keeping triples in document order.
func Parse(r io.Reader) (*Store, error) {
	dec := rdf.NewTripleDecoder(r, rdf.Turtle)

	var triples []Triple
	for {
		t, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ParseError{Err: err}
		}
		triples = append(triples, Triple{
			Subject:   fromRDF(t.Subj),
			Predicate: fromRDF(t.Pred),
			Object:    fromRDF(t.Obj),
		})
	}
	return NewStore(triples), nil
}
