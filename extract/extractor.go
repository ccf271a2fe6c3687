package extract

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/c360studio/skosdoc/graph"
	"github.com/c360studio/skosdoc/vocabulary/skos"
)

// Options configures an Extractor.
type Options struct {
	// Strategy selects class discovery. Defaults to StrategyCollection.
	Strategy Strategy
	// Namespaces resolves qualified names in ClassOrder.
	Namespaces Namespaces
	// ClassOrder lists classes, as qualified names or IRIs, that are moved to
	// the front of the class list in the given order.
	ClassOrder []string
	Logger     *slog.Logger
}

// Extractor builds a Model from a triple store.
type Extractor struct {
	strategy   Strategy
	namespaces Namespaces
	classOrder []string
	logger     *slog.Logger
}

// New creates an extractor.
func New(opts Options) *Extractor {
	if opts.Strategy == "" {
		opts.Strategy = StrategyCollection
	}
	if opts.Namespaces == nil {
		opts.Namespaces = DefaultNamespaces()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Extractor{
		strategy:   opts.Strategy,
		namespaces: opts.Namespaces,
		classOrder: opts.ClassOrder,
		logger:     opts.Logger,
	}
}

// extraction holds the per-call lookup tables.
type extraction struct {
	store     *graph.Store
	concepts  map[string]*Concept
	classes   map[string]*Class
	prefLabel string
}

// Extract builds the vocabulary model. Any malformed entity aborts the
// whole extraction.
func (e *Extractor) Extract(store *graph.Store) (*Model, error) {
	if !e.strategy.Valid() {
		return nil, fmt.Errorf("unknown class strategy %q", e.strategy)
	}

	x := &extraction{
		store:     store,
		concepts:  make(map[string]*Concept),
		classes:   make(map[string]*Class),
		prefLabel: skos.IRI(skos.PrefLabel),
	}

	schemeTerm, scheme, err := e.extractScheme(x)
	if err != nil {
		return nil, err
	}

	concepts, err := e.extractConcepts(x)
	if err != nil {
		return nil, err
	}

	classes, err := e.discoverClasses(x, schemeTerm)
	if err != nil {
		return nil, err
	}
	classes, err = e.applyClassOrder(classes)
	if err != nil {
		return nil, err
	}
	for _, c := range concepts {
		_, c.IsClass = x.classes[c.URI]
	}

	for _, c := range concepts {
		c.Broaders = x.broaders(c)
		if c.Breadcrumb, err = x.breadcrumb(c); err != nil {
			return nil, err
		}
		c.BreadcrumbPath = breadcrumbPath(c.Breadcrumb)
	}

	listed := e.assignMembers(x, classes, concepts)

	sorted := make([]*Concept, len(concepts))
	copy(sorted, concepts)
	sortConcepts(sorted)

	vocab := make([]*Concept, 0, len(sorted))
	unclassified := []*Concept{}
	for _, c := range sorted {
		if c.IsClass {
			continue
		}
		vocab = append(vocab, c)
		if !listed[c.URI] {
			unclassified = append(unclassified, c)
		}
	}

	e.logger.Debug("Extracted vocabulary",
		"scheme", scheme.URI,
		"strategy", e.strategy,
		"classes", len(classes),
		"concepts", len(concepts),
		"unclassified", len(unclassified))

	return &Model{
		Scheme:       scheme,
		Namespaces:   e.namespaces,
		Strategy:     e.strategy,
		Classes:      classes,
		Concepts:     sorted,
		Vocabulary:   vocab,
		Unclassified: unclassified,
	}, nil
}

// extractScheme reads the scheme metadata. With several schemes the first in
// document order wins.
func (e *Extractor) extractScheme(x *extraction) (graph.Term, Scheme, error) {
	schemes := x.store.SubjectsOfType(skos.ClassConceptScheme)
	if len(schemes) == 0 {
		return graph.Term{}, Scheme{}, &MissingSchemeError{}
	}
	if len(schemes) > 1 {
		e.logger.Warn("Multiple concept schemes found, using the first",
			"scheme", schemes[0].Value,
			"count", len(schemes))
	}

	s := schemes[0]
	title := x.store.ValueString(s, skos.IRI(skos.Title))
	if title == "" {
		title = x.store.ValueString(s, x.prefLabel)
	}

	return s, Scheme{
		URI:          s.Value,
		Title:        title,
		Description:  x.store.ValueString(s, skos.IRI(skos.Description)),
		Version:      x.store.ValueString(s, skos.IRI(skos.VersionInfo)),
		Creators:     values(x.store.Objects(s, skos.IRI(skos.Creator))),
		Contributors: values(x.store.Objects(s, skos.IRI(skos.Contributor))),
		Created:      x.store.ValueString(s, skos.IRI(skos.Created)),
		Modified:     x.store.ValueString(s, skos.IRI(skos.Modified)),
		Languages:    languages(x),
	}, nil
}

// languages collects the distinct language tags on every prefLabel.
func languages(x *extraction) []string {
	pred := graph.IRI(x.prefLabel)
	seen := make(map[string]bool)
	langs := []string{}
	for _, t := range x.store.Match(nil, &pred, nil) {
		if tag := t.Object.Lang; tag != "" && !seen[tag] {
			seen[tag] = true
			langs = append(langs, tag)
		}
	}
	sort.Strings(langs)
	return langs
}

func (e *Extractor) extractConcepts(x *extraction) ([]*Concept, error) {
	byID := make(map[string]string)
	var concepts []*Concept

	for _, s := range x.store.SubjectsOfType(skos.ClassConcept) {
		if !s.IsIRI() {
			e.logger.Debug("Skipping blank concept node", "node", s.Value)
			continue
		}
		id := graph.LocalName(s.Value)
		if other, dup := byID[id]; dup {
			return nil, &DuplicateIdentifierError{ID: id, URIs: []string{other, s.Value}}
		}
		byID[id] = s.Value

		label, ok := x.store.Value(s, x.prefLabel)
		if !ok {
			return nil, &MissingLabelError{ID: id, URI: s.Value}
		}

		unit := x.optional(s, skos.UnitCode)
		if !unit.Present() {
			unit = x.optional(s, skos.POVUnit)
		}

		c := &Concept{
			ID:         id,
			URI:        s.Value,
			Label:      label.Value,
			Definition: x.optional(s, skos.Definition),
			Example:    x.optional(s, skos.Example),
			Unit:       unit,
			Created:    x.optional(s, skos.Created),
			Modified:   x.optional(s, skos.Modified),
			Match:      x.optional(s, skos.CloseMatch),
			Anchor:     conceptAnchor(id),
		}
		x.concepts[c.URI] = c
		concepts = append(concepts, c)
	}
	return concepts, nil
}

func (e *Extractor) discoverClasses(x *extraction, scheme graph.Term) ([]*Class, error) {
	var candidates []graph.Term
	switch e.strategy {
	case StrategyTopConcept:
		candidates = x.store.Objects(scheme, skos.IRI(skos.HasTopConcept))
	default:
		candidates = x.store.SubjectsOfType(skos.ClassCollection)
	}

	var classes []*Class
	for _, t := range candidates {
		if !t.IsIRI() {
			continue
		}
		if _, seen := x.classes[t.Value]; seen {
			continue
		}
		id := graph.LocalName(t.Value)
		if e.strategy == StrategyTopConcept && !x.store.HasType(t, skos.ClassConcept) {
			e.logger.Debug("Top concept is not typed skos:Concept", "class", id, "iri", t.Value)
		}
		label, ok := x.store.Value(t, x.prefLabel)
		if !ok {
			return nil, &MissingLabelError{ID: id, URI: t.Value}
		}
		c := &Class{
			ID:         id,
			URI:        t.Value,
			Label:      label.Value,
			Definition: x.optional(t, skos.Definition),
			Match:      x.optional(t, skos.CloseMatch),
			Anchor:     classAnchor(id),
			Concepts:   []*Concept{},
		}
		x.classes[c.URI] = c
		classes = append(classes, c)
	}
	return classes, nil
}

// applyClassOrder moves the configured classes to the front. Names that
// resolve but match no class are logged and ignored.
func (e *Extractor) applyClassOrder(classes []*Class) ([]*Class, error) {
	if len(e.classOrder) == 0 {
		return classes, nil
	}

	placed := make(map[*Class]bool)
	ordered := make([]*Class, 0, len(classes))
	for _, name := range e.classOrder {
		iri, err := e.namespaces.Resolve(name)
		if err != nil {
			return nil, err
		}
		found := false
		for _, c := range classes {
			if c.URI == iri && !placed[c] {
				ordered = append(ordered, c)
				placed[c] = true
				found = true
				break
			}
		}
		if !found {
			e.logger.Warn("Configured class not found", "class", name, "iri", iri)
		}
	}
	for _, c := range classes {
		if !placed[c] {
			ordered = append(ordered, c)
		}
	}
	return ordered, nil
}

// assignMembers fills each class's member list and returns the URIs of the
// concepts listed by at least one class.
func (e *Extractor) assignMembers(x *extraction, classes []*Class, concepts []*Concept) map[string]bool {
	switch e.strategy {
	case StrategyTopConcept:
		for _, c := range concepts {
			root, ok := c.Root()
			if !ok {
				continue
			}
			if cls, ok := x.classes[root.URI]; ok {
				cls.Concepts = append(cls.Concepts, c)
			}
		}
	default:
		narrower := skos.IRI(skos.Narrower)
		for _, cls := range classes {
			seen := make(map[string]bool)
			for _, n := range x.store.Objects(graph.IRI(cls.URI), narrower) {
				c, ok := x.concepts[n.Value]
				if !ok {
					e.logger.Debug("Narrower target is not a concept",
						"class", cls.ID, "target", n.Value)
					continue
				}
				if !seen[c.URI] {
					seen[c.URI] = true
					cls.Concepts = append(cls.Concepts, c)
				}
			}
		}
	}

	listed := make(map[string]bool)
	for _, cls := range classes {
		sortConcepts(cls.Concepts)
		cls.Members = make([]Member, 0, len(cls.Concepts))
		for _, c := range cls.Concepts {
			m := Member{Concept: c, Anchor: c.Anchor, Primary: !listed[c.URI]}
			if !m.Primary {
				m.Anchor = memberAnchor(cls.ID, c.ID)
			}
			listed[c.URI] = true
			cls.Members = append(cls.Members, m)
		}
	}
	return listed
}

// optional reads a single-valued predicate.
func (x *extraction) optional(s graph.Term, predicate string) Optional {
	v, ok := x.store.Value(s, skos.IRI(predicate))
	if !ok {
		return None()
	}
	return Some(v.Value)
}

// ref describes a node reached through a broader edge.
func (x *extraction) ref(t graph.Term) Ref {
	if cls, ok := x.classes[t.Value]; ok {
		return Ref{ID: cls.ID, URI: cls.URI, Label: cls.Label, Anchor: cls.Anchor}
	}
	if c, ok := x.concepts[t.Value]; ok {
		return Ref{ID: c.ID, URI: c.URI, Label: c.Label, Anchor: c.Anchor}
	}
	id := graph.LocalName(t.Value)
	label := x.store.ValueString(t, x.prefLabel)
	if label == "" {
		label = id
	}
	return Ref{ID: id, URI: t.Value, Label: label}
}

func (x *extraction) broaders(c *Concept) []Ref {
	objs := x.store.Objects(graph.IRI(c.URI), skos.IRI(skos.Broader))
	refs := make([]Ref, 0, len(objs))
	for _, o := range objs {
		if o.IsIRI() {
			refs = append(refs, x.ref(o))
		}
	}
	return refs
}

// sortConcepts orders by case-folded label, ties by identifier.
func sortConcepts(cs []*Concept) {
	sort.SliceStable(cs, func(i, j int) bool {
		li, lj := strings.ToLower(cs[i].Label), strings.ToLower(cs[j].Label)
		if li != lj {
			return li < lj
		}
		return cs[i].ID < cs[j].ID
	})
}

func values(terms []graph.Term) []string {
	out := make([]string, len(terms))
	for i, t := range terms {
		out[i] = t.Value
	}
	return out
}
