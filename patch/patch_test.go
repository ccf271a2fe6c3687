package patch

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/skosdoc/graph"
	"github.com/c360studio/skosdoc/render"
)

const vocab = `@prefix owl: <http://www.w3.org/2002/07/owl#> .
@prefix puv: <https://w3id.org/env/puv#> .
@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .
@prefix xsd: <http://www.w3.org/2001/XMLSchema#> .
@prefix skos: <http://www.w3.org/2004/02/skos/core#> .

<http://example.org/s> a skos:ConceptScheme .
`

func TestUOMBlock(t *testing.T) {
	want := "puv:uom\n" +
		"    a owl:ObjectProperty ;\n" +
		"    rdfs:comment \"scale or unit of measurement\" ;\n" +
		"    rdfs:label \"unit-of-measurement \" ;\n" +
		"    rdfs:range puv:UnitOfMeasurement .\n"
	assert.Equal(t, want, UOMBlock())
}

func TestApply(t *testing.T) {
	out, outcome := Apply(vocab)
	require.Equal(t, Patched, outcome)

	assert.Contains(t, out, XSDPrefixLine+"\n\npuv:uom\n    a owl:ObjectProperty ;")
	assert.True(t, strings.HasPrefix(out, "@prefix owl:"))
	assert.Equal(t, 1, strings.Count(out, XSDPrefixLine))

	// The patched file is still valid Turtle and declares the property.
	store, err := graph.Parse(strings.NewReader(out))
	require.NoError(t, err)
	subject := graph.IRI("https://w3id.org/env/puv#uom")
	assert.True(t, store.HasType(subject, "http://www.w3.org/2002/07/owl#ObjectProperty"))
	assert.Equal(t, "unit-of-measurement ", store.ValueString(subject, "http://www.w3.org/2000/01/rdf-schema#label"))
}

func TestApply_Idempotent(t *testing.T) {
	once, outcome := Apply(vocab)
	require.Equal(t, Patched, outcome)

	twice, outcome := Apply(once)
	assert.Equal(t, AlreadyPatched, outcome)
	assert.Equal(t, once, twice)
}

func TestApply_FullIRIDeclaration(t *testing.T) {
	content := vocab + "\n<https://w3id.org/env/puv#uom> a owl:ObjectProperty .\n"
	out, outcome := Apply(content)
	assert.Equal(t, AlreadyPatched, outcome)
	assert.Equal(t, content, out)
}

func TestApply_NoXSDPrefix(t *testing.T) {
	content := "@prefix skos: <http://www.w3.org/2004/02/skos/core#> .\n"
	out, outcome := Apply(content)
	assert.Equal(t, NoXSDPrefix, outcome)
	assert.Equal(t, content, out)
}

func TestPathFromEnv(t *testing.T) {
	env := map[string]string{EnvFileName: "eLTER_DRF"}
	path, err := PathFromEnv(func(k string) string { return env[k] })
	require.NoError(t, err)
	assert.Equal(t, "./eLTER_DRF.ttl", path)

	_, err = PathFromEnv(func(string) string { return "" })
	assert.ErrorIs(t, err, ErrFileNameUnset)
}

func TestFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vocab.ttl")
	require.NoError(t, os.WriteFile(path, []byte(vocab), 0644))

	outcome, err := File(path, nil)
	require.NoError(t, err)
	assert.Equal(t, Patched, outcome)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "puv:uom\n")

	outcome, err = File(path, nil)
	require.NoError(t, err)
	assert.Equal(t, AlreadyPatched, outcome)

	again, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, data, again)
}

func TestFile_KeepsPermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.ttl")
	require.NoError(t, os.WriteFile(path, []byte(vocab), 0640))
	require.NoError(t, os.Chmod(path, 0640))

	outcome, err := File(path, nil)
	require.NoError(t, err)
	require.Equal(t, Patched, outcome)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0640), info.Mode().Perm())
}

func TestFile_Missing(t *testing.T) {
	_, err := File(filepath.Join(t.TempDir(), "absent.ttl"), nil)
	require.Error(t, err)
	assert.True(t, render.IsIOError(err))
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "patched", Patched.String())
	assert.Equal(t, "already-patched", AlreadyPatched.String())
	assert.Equal(t, "no-xsd-prefix", NoXSDPrefix.String())
}
