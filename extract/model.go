// Package extract turns a parsed SKOS graph into the vocabulary model the
// documentation page is rendered from.
//
// The model is built once per run and is not mutated after Extract returns.
// Every derived value the page shows (anchors, breadcrumbs, sorted member
// lists) is computed here so templates only substitute and iterate.
package extract

import "strings"

// Placeholder is what an absent optional value renders as.
const Placeholder = "-"

// Optional is a text value that may be absent.
type Optional struct {
	value   string
	present bool
}

// Some returns a present value.
func Some(v string) Optional {
	return Optional{value: v, present: true}
}

// None returns an absent value.
func None() Optional {
	return Optional{}
}

// Present reports whether the value is set.
func (o Optional) Present() bool { return o.present }

// Or returns the value, or fallback when absent.
func (o Optional) Or(fallback string) string {
	if !o.present {
		return fallback
	}
	return o.value
}

// String renders the value, or Placeholder when absent.
func (o Optional) String() string {
	return o.Or(Placeholder)
}

// Strategy selects how classes are discovered and populated.
type Strategy string

const (
	// StrategyCollection treats skos:Collection subjects as classes and
	// assigns members through skos:narrower.
	StrategyCollection Strategy = "collection"

	// StrategyTopConcept treats the scheme's skos:hasTopConcept objects as
	// classes and assigns members by breadcrumb root.
	StrategyTopConcept Strategy = "top-concept"
)

// Valid reports whether s is a known strategy.
func (s Strategy) Valid() bool {
	return s == StrategyCollection || s == StrategyTopConcept
}

// Scheme is the vocabulary-level metadata.
type Scheme struct {
	URI          string
	Title        string
	Description  string
	Version      string
	Creators     []string
	Contributors []string
	Created      string
	Modified     string
	// Languages are the distinct prefLabel language tags, sorted.
	Languages []string
}

// Ref points at a concept, class or external resource.
type Ref struct {
	ID     string
	URI    string
	Label  string
	Anchor string
}

// Class is a grouping node under which concepts are listed.
type Class struct {
	ID         string
	URI        string
	Label      string
	Definition Optional
	Match      Optional
	Anchor     string
	// Concepts are the members, sorted case-insensitively by label.
	Concepts []*Concept
	// Members lists Concepts in the same order with their page anchors.
	Members []Member
}

// Member is one listing of a concept inside a class. A concept listed by
// several classes is documented at its first listing in class order. Later
// listings get a class-qualified anchor and point back to it.
type Member struct {
	*Concept
	// Anchor is the element id of this listing.
	Anchor string
	// Primary is set on the listing that carries the concept's own anchor.
	Primary bool
}

// Concept is a documented vocabulary term.
type Concept struct {
	ID         string
	URI        string
	Label      string
	Definition Optional
	Example    Optional
	Unit       Optional
	Created    Optional
	Modified   Optional
	Match      Optional
	Anchor     string
	// Broaders are all broader edges in document order.
	Broaders []Ref
	// Breadcrumb runs from the root ancestor to the concept itself.
	Breadcrumb []Ref
	// BreadcrumbPath is the breadcrumb labels joined with " > ".
	BreadcrumbPath string
	// IsClass is set when the concept is also one of the model's classes.
	IsClass bool
}

// BreadcrumbIDs returns the breadcrumb identifiers, root first.
func (c *Concept) BreadcrumbIDs() []string {
	ids := make([]string, len(c.Breadcrumb))
	for i, r := range c.Breadcrumb {
		ids[i] = r.ID
	}
	return ids
}

// Root returns the first breadcrumb element when the concept has ancestors.
func (c *Concept) Root() (Ref, bool) {
	if len(c.Breadcrumb) < 2 {
		return Ref{}, false
	}
	return c.Breadcrumb[0], true
}

// Model is the extracted vocabulary.
type Model struct {
	Scheme     Scheme
	Namespaces Namespaces
	Strategy   Strategy
	// Classes are in discovery order, adjusted by any configured class order.
	Classes []*Class
	// Concepts are all concepts, sorted case-insensitively by label.
	Concepts []*Concept
	// Vocabulary is Concepts without the ones that are also classes.
	Vocabulary []*Concept
	// Unclassified are the Vocabulary entries no class lists.
	Unclassified []*Concept
}

// Concept returns the concept with the given identifier.
func (m *Model) Concept(id string) (*Concept, bool) {
	for _, c := range m.Concepts {
		if c.ID == id {
			return c, true
		}
	}
	return nil, false
}

// Class returns the class with the given identifier.
func (m *Model) Class(id string) (*Class, bool) {
	for _, c := range m.Classes {
		if c.ID == id {
			return c, true
		}
	}
	return nil, false
}

func classAnchor(id string) string   { return "vclass-" + id }
func conceptAnchor(id string) string { return "vconcept-" + id }

func memberAnchor(classID, id string) string { return "vmember-" + classID + "-" + id }

func breadcrumbPath(refs []Ref) string {
	labels := make([]string, len(refs))
	for i, r := range refs {
		labels[i] = r.Label
	}
	return strings.Join(labels, " > ")
}
