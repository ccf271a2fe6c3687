// Package patch inserts the puv:uom property declaration into a Turtle
// vocabulary file, directly after its xsd prefix declaration.
package patch

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/c360studio/skosdoc/export"
	"github.com/c360studio/skosdoc/graph"
	"github.com/c360studio/skosdoc/render"
	"github.com/c360studio/skosdoc/vocabulary/skos"
)

// EnvFileName names the environment variable holding the vocabulary base name.
const EnvFileName = "FILE_NAME"

// XSDPrefixLine is the declaration the property block is inserted after.
const XSDPrefixLine = "@prefix xsd: <http://www.w3.org/2001/XMLSchema#> ."

// ErrFileNameUnset is returned when FILE_NAME is missing or empty.
var ErrFileNameUnset = errors.New(EnvFileName + " environment variable is not set")

// uomDeclared matches an existing puv:uom subject at the start of a line.
var uomDeclared = regexp.MustCompile(`(?m)^\s*(puv:uom|<` + regexp.QuoteMeta(skos.PropUOM) + `>)\s`)

// Outcome reports what Apply or File did.
type Outcome int

const (
	// Patched means the block was inserted.
	Patched Outcome = iota
	// AlreadyPatched means puv:uom was already declared.
	AlreadyPatched
	// NoXSDPrefix means the xsd prefix line was not found.
	NoXSDPrefix
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Patched:
		return "patched"
	case AlreadyPatched:
		return "already-patched"
	case NoXSDPrefix:
		return "no-xsd-prefix"
	default:
		return "unknown"
	}
}

// UOMBlock returns the Turtle declaration of puv:uom.
func UOMBlock() string {
	w := export.NewTurtleWriter()
	w.WriteSubject(graph.IRI(skos.PropUOM))
	w.WriteType(skos.ClassObjectProperty, false)
	w.WritePredicate(skos.RDFSComment, graph.Literal("scale or unit of measurement"), false)
	w.WritePredicate(skos.RDFSLabel, graph.Literal("unit-of-measurement "), false)
	w.WritePredicate(skos.RDFSRange, graph.IRI(skos.ClassUnitOfMeasurement), true)
	return w.String()
}

// Apply returns content with the puv:uom block inserted after the xsd
// prefix line. Content is returned unchanged unless the outcome is Patched.
func Apply(content string) (string, Outcome) {
	if uomDeclared.MatchString(content) {
		return content, AlreadyPatched
	}
	if !strings.Contains(content, XSDPrefixLine) {
		return content, NoXSDPrefix
	}
	return strings.Replace(content, XSDPrefixLine, XSDPrefixLine+"\n\n"+UOMBlock(), 1), Patched
}

// PathFromEnv resolves ./$FILE_NAME.ttl using getenv.
func PathFromEnv(getenv func(string) string) (string, error) {
	name := getenv(EnvFileName)
	if name == "" {
		return "", ErrFileNameUnset
	}
	return fmt.Sprintf("./%s.ttl", name), nil
}

// File patches the Turtle file at path in place. The file is only rewritten
// when the outcome is Patched.
func File(path string, logger *slog.Logger) (Outcome, error) {
	if logger == nil {
		logger = slog.Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return 0, &render.IOError{Op: "read", Path: path, Err: err}
	}

	patched, outcome := Apply(string(data))
	switch outcome {
	case AlreadyPatched:
		logger.Info("puv:uom already declared, file left unchanged", slog.String("path", path))
		return outcome, nil
	case NoXSDPrefix:
		logger.Warn("xsd prefix declaration not found, file left unchanged", slog.String("path", path))
		return outcome, nil
	}

	if err := render.WriteFile(path, patched); err != nil {
		return 0, err
	}
	logger.Info("Inserted puv:uom declaration", slog.String("path", path))
	return outcome, nil
}
