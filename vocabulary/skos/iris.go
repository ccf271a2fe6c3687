package skos

// Namespace IRIs of the vocabularies a SKOS documentation page draws from.
const (
	// Namespace is the SKOS core namespace.
	Namespace = "http://www.w3.org/2004/02/skos/core#"

	// RDFNamespace is the RDF syntax namespace.
	RDFNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

	// RDFSNamespace is the RDF Schema namespace.
	RDFSNamespace = "http://www.w3.org/2000/01/rdf-schema#"

	// OWLNamespace is the OWL namespace.
	OWLNamespace = "http://www.w3.org/2002/07/owl#"

	// DCTermsNamespace is the Dublin Core terms namespace.
	DCTermsNamespace = "http://purl.org/dc/terms/"

	// XSDNamespace is the XML Schema datatypes namespace.
	XSDNamespace = "http://www.w3.org/2001/XMLSchema#"

	// SchemaNamespace is schema.org as used by unit codes in eLTER vocabularies.
	SchemaNamespace = "http://schema.org/"

	// POVNamespace is the property-of-value ontology.
	POVNamespace = "https://w3id.org/pov/"

	// PUVNamespace is the I-ADOPT/eLTER parameter and unit vocabulary.
	PUVNamespace = "https://w3id.org/env/puv#"
)

// Class IRIs.
const (
	// ClassConceptScheme is the vocabulary as a whole.
	ClassConceptScheme = Namespace + "ConceptScheme"

	// ClassConcept is a single vocabulary term.
	ClassConcept = Namespace + "Concept"

	// ClassCollection groups concepts under a class heading.
	ClassCollection = Namespace + "Collection"

	// ClassObjectProperty is owl:ObjectProperty.
	ClassObjectProperty = OWLNamespace + "ObjectProperty"

	// ClassUnitOfMeasurement is the range of puv:uom.
	ClassUnitOfMeasurement = PUVNamespace + "UnitOfMeasurement"
)

// RDFType is rdf:type.
const RDFType = RDFNamespace + "type"

// Property IRIs outside the registered predicate set, used when writing
// Turtle rather than reading it.
const (
	// PropUOM links a variable to its unit of measurement.
	PropUOM = PUVNamespace + "uom"

	// RDFSComment is rdfs:comment.
	RDFSComment = RDFSNamespace + "comment"

	// RDFSLabel is rdfs:label.
	RDFSLabel = RDFSNamespace + "label"

	// RDFSRange is rdfs:range.
	RDFSRange = RDFSNamespace + "range"
)
