package extract

import (
	"errors"
	"fmt"
	"strings"
)

// MissingSchemeError reports a graph without a skos:ConceptScheme subject.
type MissingSchemeError struct{}

func (e *MissingSchemeError) Error() string {
	return "no skos:ConceptScheme found"
}

// MissingLabelError reports a class or concept without skos:prefLabel.
type MissingLabelError struct {
	ID  string
	URI string
}

func (e *MissingLabelError) Error() string {
	return fmt.Sprintf("%s has no skos:prefLabel (%s)", e.ID, e.URI)
}

// UnresolvedReferenceError reports a qualified name with an undeclared prefix.
type UnresolvedReferenceError struct {
	Name   string
	Prefix string
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("unresolved reference %s: prefix %q is not declared", e.Name, e.Prefix)
}

// CycleError reports a skos:broader chain that returns to a visited node.
type CycleError struct {
	ID string
	// Chain lists the identifiers visited, ending with the repeated one.
	Chain []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("broader cycle at %s: %s", e.ID, strings.Join(e.Chain, " -> "))
}

// DuplicateIdentifierError reports two concepts sharing a local name.
type DuplicateIdentifierError struct {
	ID   string
	URIs []string
}

func (e *DuplicateIdentifierError) Error() string {
	return fmt.Sprintf("duplicate identifier %s: %s", e.ID, strings.Join(e.URIs, ", "))
}

// IsModelError returns true if err comes from a malformed vocabulary rather
// than from I/O or parsing.
func IsModelError(err error) bool {
	var (
		ms *MissingSchemeError
		ml *MissingLabelError
		ur *UnresolvedReferenceError
		ce *CycleError
		de *DuplicateIdentifierError
	)
	return errors.As(err, &ms) || errors.As(err, &ml) || errors.As(err, &ur) ||
		errors.As(err, &ce) || errors.As(err, &de)
}
