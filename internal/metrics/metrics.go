// Package metrics exposes Prometheus instrumentation for the analysis
// pipeline.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the pipeline's Prometheus collectors.
type Metrics struct {
	registry *prometheus.Registry

	SessionsAnalyzed prometheus.Counter
	PipelineFailures prometheus.Counter
	PipelineDuration prometheus.Histogram
	LastOverallScore prometheus.Gauge
}

// New creates and registers the pipeline collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		SessionsAnalyzed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "playsight_sessions_analyzed_total",
			Help: "Number of play sessions analyzed successfully.",
		}),
		PipelineFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "playsight_pipeline_failures_total",
			Help: "Number of pipeline runs that failed.",
		}),
		PipelineDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "playsight_pipeline_duration_seconds",
			Help:    "Wall-clock duration of full pipeline runs.",
			Buckets: prometheus.DefBuckets,
		}),
		LastOverallScore: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "playsight_last_overall_score",
			Help: "Overall score of the most recently analyzed session.",
		}),
	}

	m.registry.MustRegister(
		m.SessionsAnalyzed,
		m.PipelineFailures,
		m.PipelineDuration,
		m.LastOverallScore,
	)
	return m
}

// Handler returns the HTTP handler serving the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
