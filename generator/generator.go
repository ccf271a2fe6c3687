// Package generator composes the documentation pipeline: load the Turtle
// file, extract the vocabulary model, render the page and write it out.
package generator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/c360studio/skosdoc/config"
	"github.com/c360studio/skosdoc/extract"
	"github.com/c360studio/skosdoc/graph"
	"github.com/c360studio/skosdoc/metric"
	"github.com/c360studio/skosdoc/render"
)

// Result describes a successful run.
type Result struct {
	// Output is the path of the written HTML page.
	Output string
	// MarkdownOutput is the path of the Markdown sidecar, empty if disabled.
	MarkdownOutput string
	// Model is the extracted vocabulary.
	Model *extract.Model
	// Dangling lists in-page links without a target. Nil when the check is skipped.
	Dangling []render.DanglingLink
	Stats    metric.Stats
}

// Generator runs the pipeline for one configuration. It can be run
// repeatedly, as watch mode does; metrics accumulate across runs.
type Generator struct {
	cfg     *config.Config
	logger  *slog.Logger
	metrics *metric.Metrics
	now     func() time.Time
}

// New creates a generator. cfg must already be validated.
func New(cfg *config.Config, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		cfg:     cfg,
		logger:  logger,
		metrics: metric.NewMetrics(),
		now:     time.Now,
	}
}

// Metrics returns the run metrics.
func (g *Generator) Metrics() *metric.Metrics {
	return g.metrics
}

// Run executes the pipeline once. Nothing is written unless every stage
// succeeds; the metrics file, when configured, is written either way.
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	start := g.now()
	result, err := g.run(ctx)
	if err != nil {
		g.metrics.RecordFailure()
	} else {
		result.Stats.Duration = g.now().Sub(start)
		g.metrics.RecordSuccess(result.Stats, g.now())
	}

	if g.cfg.MetricsFile != "" {
		if merr := g.metrics.WriteTextfile(g.cfg.MetricsFile); merr != nil {
			g.logger.Warn("Failed to write metrics", "path", g.cfg.MetricsFile, "error", merr)
		}
	}
	return result, err
}

func (g *Generator) run(ctx context.Context) (*Result, error) {
	cfg := g.cfg

	renderer, err := render.FromFile(cfg.Template)
	if err != nil {
		return nil, err
	}

	store, err := graph.Load(cfg.Input)
	if err != nil {
		return nil, err
	}
	g.logger.Debug("Loaded vocabulary", "path", cfg.Input, "triples", store.Len())

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	model, err := extract.New(extract.Options{
		Strategy:   cfg.Strategy(),
		Namespaces: cfg.Namespaces,
		ClassOrder: cfg.ClassOrder,
		Logger:     g.logger,
	}).Extract(store)
	if err != nil {
		return nil, err
	}
	g.logger.Debug("Extracted vocabulary model",
		"strategy", model.Strategy,
		"classes", len(model.Classes),
		"concepts", len(model.Concepts))

	page, err := renderer.Render(model)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Output: cfg.Output,
		Model:  model,
		Stats: metric.Stats{
			Triples:   store.Len(),
			Concepts:  len(model.Concepts),
			Classes:   len(model.Classes),
			Languages: len(model.Scheme.Languages),
		},
	}

	if !cfg.SkipLinkCheck {
		dangling, err := render.CheckLinks(page)
		if err != nil {
			return nil, err
		}
		for _, d := range dangling {
			g.logger.Warn("Dangling in-page link", "target", d.Target, "text", d.Text)
		}
		result.Dangling = dangling
		result.Stats.DanglingLinks = len(dangling)
	}

	var markdown string
	if cfg.MarkdownOutput != "" {
		markdown, err = render.ToMarkdown(page)
		if err != nil {
			return nil, err
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := render.WriteFile(cfg.Output, page); err != nil {
		return nil, err
	}
	if cfg.MarkdownOutput != "" {
		if err := render.WriteFile(cfg.MarkdownOutput, markdown); err != nil {
			return nil, fmt.Errorf("markdown sidecar: %w", err)
		}
		result.MarkdownOutput = cfg.MarkdownOutput
	}

	return result, nil
}
