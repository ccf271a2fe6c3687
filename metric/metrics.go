// Package metric records generator run statistics as Prometheus gauges and
// writes them in the node-exporter textfile format.
package metric

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Stats summarizes one generator run.
type Stats struct {
	Triples       int
	Concepts      int
	Classes       int
	Languages     int
	DanglingLinks int
	Duration      time.Duration
}

// Metrics holds the run gauges in a private registry.
type Metrics struct {
	registry *prometheus.Registry

	Triples       prometheus.Gauge
	Concepts      prometheus.Gauge
	Classes       prometheus.Gauge
	Languages     prometheus.Gauge
	DanglingLinks prometheus.Gauge
	Duration      prometheus.Gauge
	LastSuccess   prometheus.Gauge
	RunsFailed    prometheus.Counter
}

// NewMetrics creates and registers the run metrics.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		Triples: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "skosdoc",
			Subsystem: "graph",
			Name:      "triples",
			Help:      "Number of triples loaded from the vocabulary file",
		}),
		Concepts: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "skosdoc",
			Subsystem: "vocabulary",
			Name:      "concepts",
			Help:      "Number of concepts on the rendered page",
		}),
		Classes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "skosdoc",
			Subsystem: "vocabulary",
			Name:      "classes",
			Help:      "Number of classes on the rendered page",
		}),
		Languages: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "skosdoc",
			Subsystem: "vocabulary",
			Name:      "languages",
			Help:      "Number of distinct label languages",
		}),
		DanglingLinks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "skosdoc",
			Subsystem: "page",
			Name:      "dangling_links",
			Help:      "In-page links without a matching anchor",
		}),
		Duration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "skosdoc",
			Subsystem: "run",
			Name:      "duration_seconds",
			Help:      "Duration of the last successful run in seconds",
		}),
		LastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "skosdoc",
			Subsystem: "run",
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful run",
		}),
		RunsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "skosdoc",
			Subsystem: "run",
			Name:      "failed_total",
			Help:      "Runs that ended in an error since the process started",
		}),
	}

	m.registry.MustRegister(
		m.Triples,
		m.Concepts,
		m.Classes,
		m.Languages,
		m.DanglingLinks,
		m.Duration,
		m.LastSuccess,
		m.RunsFailed,
	)
	return m
}

// Registry returns the private registry holding the run metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordSuccess sets the gauges from a finished run.
func (m *Metrics) RecordSuccess(s Stats, at time.Time) {
	m.Triples.Set(float64(s.Triples))
	m.Concepts.Set(float64(s.Concepts))
	m.Classes.Set(float64(s.Classes))
	m.Languages.Set(float64(s.Languages))
	m.DanglingLinks.Set(float64(s.DanglingLinks))
	m.Duration.Set(s.Duration.Seconds())
	m.LastSuccess.Set(float64(at.Unix()))
}

// RecordFailure counts a failed run. Gauges keep the last successful values.
func (m *Metrics) RecordFailure() {
	m.RunsFailed.Inc()
}

// WriteTextfile writes the current values to path, replacing it atomically.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
