// Package render binds an extracted vocabulary model to an HTML template and
// writes the resulting page.
package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/c360studio/skosdoc/extract"
	"github.com/c360studio/skosdoc/vocabulary/skos"
)

// Generator is written into the page's generator meta tag and footer.
const Generator = "skosdoc"

//go:embed templates/page.html
var defaultTemplate string

// Renderer renders a Model with a parsed template.
type Renderer struct {
	tmpl *template.Template
}

// New parses text as the page template.
func New(name, text string) (*Renderer, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", name, err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Default returns a renderer for the built-in page template.
func Default() *Renderer {
	r, err := New("page.html", defaultTemplate)
	if err != nil {
		panic(err)
	}
	return r
}

// FromFile loads a template from path, or the built-in one when path is empty.
func FromFile(path string) (*Renderer, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Op: "read template", Path: path, Err: err}
	}
	return New(path, string(data))
}

// Render produces the HTML page for m. It has no side effects, so rendering
// the same model twice yields the same string.
func (r *Renderer) Render(m *extract.Model) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, Bindings(m)); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return buf.String(), nil
}

// Bindings returns the template variables for m.
func Bindings(m *extract.Model) map[string]any {
	s := m.Scheme
	return map[string]any{
		"scheme_title":        s.Title,
		"scheme_desc":         s.Description,
		"scheme_uri":          s.URI,
		"version":             s.Version,
		"creators":            strings.Join(s.Creators, ", "),
		"contributors":        strings.Join(s.Contributors, ", "),
		"created":             s.Created,
		"modified":            s.Modified,
		"languages":           s.Languages,
		"namespaces":          m.Namespaces,
		"predicates":          skos.Documented(),
		"classes":             m.Classes,
		"vocabulary":          m.Vocabulary,
		"unclassified":        m.Unclassified,
		"vocabulary_classes":  m.Classes,
		"vocabulary_concepts": m.Concepts,
		"strategy":            string(m.Strategy),
		"generator":           Generator,
	}
}
