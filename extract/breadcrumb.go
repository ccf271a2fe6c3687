package extract

import (
	"github.com/c360studio/skosdoc/graph"
	"github.com/c360studio/skosdoc/vocabulary/skos"
)

// breadcrumb follows the first broader edge of each node until none is left
// and returns the chain root first. A node reached twice is a cycle, so the
// walk is bounded by the number of distinct nodes.
func (x *extraction) breadcrumb(c *Concept) ([]Ref, error) {
	broader := skos.IRI(skos.Broader)

	chain := []Ref{{ID: c.ID, URI: c.URI, Label: c.Label, Anchor: c.Anchor}}
	visited := map[string]bool{c.URI: true}
	ids := []string{c.ID}

	current := graph.IRI(c.URI)
	for {
		next, ok := x.store.Value(current, broader)
		if !ok || !next.IsIRI() {
			break
		}
		ids = append(ids, graph.LocalName(next.Value))
		if visited[next.Value] {
			return nil, &CycleError{ID: c.ID, Chain: ids}
		}
		visited[next.Value] = true
		chain = append(chain, x.ref(next))
		current = next
	}

	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain, nil
}
