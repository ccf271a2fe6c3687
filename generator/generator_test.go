package generator

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/skosdoc/config"
	"github.com/c360studio/skosdoc/extract"
	"github.com/c360studio/skosdoc/graph"
	"github.com/c360studio/skosdoc/render"
)

func testConfig(t *testing.T, input string) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Input = input
	cfg.Output = filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, cfg.Validate())
	return cfg
}

func writeVocab(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vocab.ttl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRun_ExampleScenario(t *testing.T) {
	for _, strategy := range []extract.Strategy{extract.StrategyCollection, extract.StrategyTopConcept} {
		t.Run(string(strategy), func(t *testing.T) {
			cfg := testConfig(t, "testdata/example.ttl")
			cfg.ClassStrategy = string(strategy)

			result, err := New(cfg, nil).Run(context.Background())
			require.NoError(t, err)

			require.Len(t, result.Model.Classes, 1)
			class := result.Model.Classes[0]
			assert.Equal(t, "Measurements", class.ID)
			require.Len(t, class.Concepts, 1)
			assert.Equal(t, "Temperature", class.Concepts[0].ID)
			assert.Equal(t, []string{"Measurements", "Temperature"}, class.Concepts[0].BreadcrumbIDs())

			require.Len(t, result.Model.Vocabulary, 1)
			assert.Equal(t, "Temperature", result.Model.Vocabulary[0].Label)

			assert.Equal(t, 10, result.Stats.Triples)
			assert.Equal(t, 1, result.Stats.Classes)
			assert.Empty(t, result.Dangling)

			page, err := os.ReadFile(cfg.Output)
			require.NoError(t, err)
			assert.Contains(t, string(page), "Example Vocabulary")
			assert.Contains(t, string(page), `id="vconcept-Temperature"`)
		})
	}
}

func TestRun_ByteIdenticalOutput(t *testing.T) {
	cfg := testConfig(t, "testdata/example.ttl")
	gen := New(cfg, nil)

	_, err := gen.Run(context.Background())
	require.NoError(t, err)
	first, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)

	_, err = gen.Run(context.Background())
	require.NoError(t, err)
	second, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRun_MissingSchemeWritesNothing(t *testing.T) {
	input := writeVocab(t, `@prefix skos: <http://www.w3.org/2004/02/skos/core#> .
<http://example.org/a> a skos:Concept ; skos:prefLabel "A" .
`)

	t.Run("no previous output", func(t *testing.T) {
		cfg := testConfig(t, input)
		cfg.MarkdownOutput = cfg.Output + ".md"

		_, err := New(cfg, nil).Run(context.Background())
		var mse *extract.MissingSchemeError
		require.ErrorAs(t, err, &mse)

		assert.NoFileExists(t, cfg.Output)
		assert.NoFileExists(t, cfg.MarkdownOutput)
	})

	t.Run("previous output untouched", func(t *testing.T) {
		cfg := testConfig(t, input)
		require.NoError(t, os.WriteFile(cfg.Output, []byte("previous"), 0644))

		_, err := New(cfg, nil).Run(context.Background())
		require.Error(t, err)

		data, err := os.ReadFile(cfg.Output)
		require.NoError(t, err)
		assert.Equal(t, "previous", string(data))
	})
}

func TestRun_Errors(t *testing.T) {
	cycle := writeVocab(t, `@prefix skos: <http://www.w3.org/2004/02/skos/core#> .
@prefix ex: <http://example.org/> .
ex:s a skos:ConceptScheme .
ex:A a skos:Concept ; skos:prefLabel "A" ; skos:broader ex:B .
ex:B a skos:Concept ; skos:prefLabel "B" ; skos:broader ex:A .
`)

	tests := []struct {
		name  string
		setup func(cfg *config.Config)
		check func(t *testing.T, err error)
	}{
		{
			name:  "missing input",
			setup: func(cfg *config.Config) { cfg.Input = filepath.Join(t.TempDir(), "absent.ttl") },
			check: func(t *testing.T, err error) { assert.True(t, graph.IsParseError(err)) },
		},
		{
			name:  "cycle",
			setup: func(cfg *config.Config) { cfg.Input = cycle },
			check: func(t *testing.T, err error) {
				var ce *extract.CycleError
				assert.ErrorAs(t, err, &ce)
			},
		},
		{
			name:  "missing output directory",
			setup: func(cfg *config.Config) { cfg.Output = filepath.Join(t.TempDir(), "missing", "index.html") },
			check: func(t *testing.T, err error) { assert.True(t, render.IsIOError(err)) },
		},
		{
			name:  "missing template",
			setup: func(cfg *config.Config) { cfg.Template = filepath.Join(t.TempDir(), "absent.html") },
			check: func(t *testing.T, err error) { assert.True(t, render.IsIOError(err)) },
		},
		{
			name:  "cancelled",
			setup: func(cfg *config.Config) {},
			check: func(t *testing.T, err error) { assert.True(t, errors.Is(err, context.Canceled)) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t, "testdata/example.ttl")
			tt.setup(cfg)

			ctx := context.Background()
			if tt.name == "cancelled" {
				var cancel context.CancelFunc
				ctx, cancel = context.WithCancel(ctx)
				cancel()
			}

			_, err := New(cfg, nil).Run(ctx)
			require.Error(t, err)
			tt.check(t, err)
			assert.NoFileExists(t, cfg.Output)
		})
	}
}

func TestRun_MarkdownSidecar(t *testing.T) {
	cfg := testConfig(t, "testdata/example.ttl")
	cfg.MarkdownOutput = filepath.Join(filepath.Dir(cfg.Output), "index.md")

	result, err := New(cfg, nil).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cfg.MarkdownOutput, result.MarkdownOutput)

	md, err := os.ReadFile(cfg.MarkdownOutput)
	require.NoError(t, err)
	assert.Contains(t, string(md), "Temperature")
	assert.NotContains(t, string(md), "<article")
}

func TestRun_MetricsFile(t *testing.T) {
	cfg := testConfig(t, "testdata/example.ttl")
	cfg.MetricsFile = filepath.Join(filepath.Dir(cfg.Output), "skosdoc.prom")

	_, err := New(cfg, nil).Run(context.Background())
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.MetricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "skosdoc_graph_triples 10\n")
	assert.Contains(t, string(data), "skosdoc_vocabulary_classes 1\n")
}

func TestRun_FailureStillWritesMetrics(t *testing.T) {
	cfg := testConfig(t, filepath.Join(t.TempDir(), "absent.ttl"))
	cfg.MetricsFile = filepath.Join(filepath.Dir(cfg.Output), "skosdoc.prom")

	_, err := New(cfg, nil).Run(context.Background())
	require.Error(t, err)

	data, err := os.ReadFile(cfg.MetricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "skosdoc_run_failed_total 1\n")
}

func TestRun_UnclassifiedConcept(t *testing.T) {
	input := writeVocab(t, `@prefix skos: <http://www.w3.org/2004/02/skos/core#> .
@prefix ex: <http://example.org/> .
ex:s a skos:ConceptScheme .
ex:Weather a skos:Collection , skos:Concept ; skos:prefLabel "Weather" ; skos:narrower ex:Humidity .
ex:Climate a skos:Concept ; skos:prefLabel "Climate" ; skos:definition "CLIMATE-DEF" .
ex:Humidity a skos:Concept ; skos:prefLabel "Humidity" ; skos:broader ex:Climate .
`)

	cfg := testConfig(t, input)
	result, err := New(cfg, nil).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Model.Unclassified, 1)
	assert.Equal(t, "Climate", result.Model.Unclassified[0].ID)
	assert.Empty(t, result.Dangling)
	assert.Zero(t, result.Stats.DanglingLinks)

	page, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	assert.Contains(t, string(page), `id="vconcept-Climate"`)
	assert.Contains(t, string(page), "CLIMATE-DEF")
}

func TestRun_DanglingLinks(t *testing.T) {
	tmpl := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(tmpl, []byte(`<ul>{{range .vocabulary}}<li><a href="#{{.Anchor}}">{{.Label}}</a></li>{{end}}</ul>`), 0644))

	t.Run("reported", func(t *testing.T) {
		cfg := testConfig(t, "testdata/example.ttl")
		cfg.Template = tmpl
		result, err := New(cfg, nil).Run(context.Background())
		require.NoError(t, err)

		require.Len(t, result.Dangling, 1)
		assert.Equal(t, render.DanglingLink{Target: "vconcept-Temperature", Text: "Temperature"}, result.Dangling[0])
		assert.Equal(t, 1, result.Stats.DanglingLinks)
		assert.FileExists(t, cfg.Output)
	})

	t.Run("skipped", func(t *testing.T) {
		cfg := testConfig(t, "testdata/example.ttl")
		cfg.Template = tmpl
		cfg.SkipLinkCheck = true
		result, err := New(cfg, nil).Run(context.Background())
		require.NoError(t, err)
		assert.Nil(t, result.Dangling)
	})
}

func TestRun_CustomTemplate(t *testing.T) {
	tmpl := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(tmpl, []byte(`{{.scheme_title}}|{{range .vocabulary}}{{.ID}};{{end}}`), 0644))

	cfg := testConfig(t, "testdata/example.ttl")
	cfg.Template = tmpl
	cfg.SkipLinkCheck = true

	_, err := New(cfg, nil).Run(context.Background())
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	assert.Equal(t, "Example Vocabulary|Temperature;", string(data))
}
