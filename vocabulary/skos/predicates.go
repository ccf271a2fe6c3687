package skos

import "github.com/c360studio/semstreams/vocabulary"

// Labelling predicates.
const (
	// PrefLabel is the preferred label of a scheme, class or concept.
	// Language tags are collected for the page's language list.
	PrefLabel = "skos.concept.pref_label"

	// Definition is the textual definition of a class or concept.
	Definition = "skos.concept.definition"

	// Example is a usage example of a concept.
	Example = "skos.concept.example"
)

// Hierarchy predicates.
const (
	// Broader links a concept to a more general concept or class.
	Broader = "skos.hierarchy.broader"

	// Narrower links a class to its member concepts (collection layout).
	Narrower = "skos.hierarchy.narrower"

	// HasTopConcept links the scheme to its top-level classes (top-concept layout).
	HasTopConcept = "skos.hierarchy.has_top_concept"

	// CloseMatch cross-references an equivalent term in another vocabulary.
	CloseMatch = "skos.mapping.close_match"
)

// Scheme metadata predicates.
const (
	// Title is the explicit scheme title, preferred over PrefLabel.
	Title = "dc.scheme.title"

	// Description is the scheme description.
	Description = "dc.scheme.description"

	// Creator names a scheme creator. Multi-valued.
	Creator = "dc.scheme.creator"

	// Contributor names a scheme contributor. Multi-valued.
	Contributor = "dc.scheme.contributor"

	// Created is the creation date of a scheme or concept.
	Created = "dc.scheme.created"

	// Modified is the modification date of a scheme or concept.
	Modified = "dc.scheme.modified"

	// VersionInfo is the scheme version string.
	VersionInfo = "owl.scheme.version_info"
)

// Unit predicates. UnitCode is checked before POVUnit.
const (
	// UnitCode is the schema.org unit of measure of a concept.
	UnitCode = "schema.concept.unit_code"

	// POVUnit is the alternate unit predicate.
	POVUnit = "pov.concept.unit"
)

// documented lists the predicates in the order the metadata section shows them.
var documented = []string{
	PrefLabel, Definition, Example,
	Broader, Narrower, HasTopConcept, CloseMatch,
	Title, Description, Creator, Contributor, Created, Modified, VersionInfo,
	UnitCode, POVUnit,
}

func init() {
	// Labelling
	vocabulary.Register(PrefLabel,
		vocabulary.WithDescription("Preferred lexical label"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(vocabulary.SkosPrefLabel))

	vocabulary.Register(Definition,
		vocabulary.WithDescription("Textual definition of the term"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"definition"))

	vocabulary.Register(Example,
		vocabulary.WithDescription("Example of use of the term"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(Namespace+"example"))

	// Hierarchy
	vocabulary.Register(Broader,
		vocabulary.WithDescription("More general concept or class"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(vocabulary.SkosBroader))

	vocabulary.Register(Narrower,
		vocabulary.WithDescription("More specific member concept"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(vocabulary.SkosNarrower))

	vocabulary.Register(HasTopConcept,
		vocabulary.WithDescription("Top-level class of the concept scheme"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Namespace+"hasTopConcept"))

	vocabulary.Register(CloseMatch,
		vocabulary.WithDescription("Equivalent term in another vocabulary"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Namespace+"closeMatch"))

	// Scheme metadata
	vocabulary.Register(Title,
		vocabulary.WithDescription("Title of the vocabulary"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(vocabulary.DcTitle))

	vocabulary.Register(Description,
		vocabulary.WithDescription("Description of the vocabulary"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(DCTermsNamespace+"description"))

	vocabulary.Register(Creator,
		vocabulary.WithDescription("Creator of the vocabulary"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(DCTermsNamespace+"creator"))

	vocabulary.Register(Contributor,
		vocabulary.WithDescription("Contributor to the vocabulary"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(DCTermsNamespace+"contributor"))

	vocabulary.Register(Created,
		vocabulary.WithDescription("Creation date"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(DCTermsNamespace+"created"))

	vocabulary.Register(Modified,
		vocabulary.WithDescription("Last modification date"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(DCTermsNamespace+"modified"))

	vocabulary.Register(VersionInfo,
		vocabulary.WithDescription("Version of the vocabulary"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(OWLNamespace+"versionInfo"))

	// Units
	vocabulary.Register(UnitCode,
		vocabulary.WithDescription("Unit of measurement code"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(SchemaNamespace+"unitCode"))

	vocabulary.Register(POVUnit,
		vocabulary.WithDescription("Unit of measurement (alternate predicate)"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(POVNamespace+"unit"))
}

// IRI returns the standard IRI registered for a predicate.
// It panics for unregistered predicates since those are programming errors.
func IRI(predicate string) string {
	meta := vocabulary.GetPredicateMetadata(predicate)
	if meta == nil || meta.StandardIRI == "" {
		panic("skos: predicate not registered: " + predicate)
	}
	return meta.StandardIRI
}

// Property describes a registered predicate for display.
type Property struct {
	Name        string
	IRI         string
	Description string
}

// Documented returns the registered predicates in display order.
func Documented() []Property {
	props := make([]Property, 0, len(documented))
	for _, name := range documented {
		meta := vocabulary.GetPredicateMetadata(name)
		if meta == nil {
			continue
		}
		props = append(props, Property{
			Name:        name,
			IRI:         meta.StandardIRI,
			Description: meta.Description,
		})
	}
	return props
}
