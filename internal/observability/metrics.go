package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the enrichment engine.
type Metrics struct {
	SourceOutcomes  *prometheus.CounterVec // labels: source, outcome={ok,absent}
	ProfileRequests *prometheus.CounterVec // labels: outcome={ok,not_found}
	ProfileDuration prometheus.Histogram
}

// NewMetrics creates and registers all collectors with the default registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		SourceOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "area_profile",
			Name:      "source_outcomes_total",
			Help:      "Adapter outcomes per data source.",
		}, []string{"source", "outcome"}),
		ProfileRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "area_profile",
			Name:      "profile_requests_total",
			Help:      "Composite profile requests by outcome.",
		}, []string{"outcome"}),
		ProfileDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "area_profile",
			Name:      "profile_duration_seconds",
			Help:      "Time to resolve a postcode and settle every adapter.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 3, 5, 7.5, 10},
		}),
	}

	prometheus.MustRegister(
		m.SourceOutcomes,
		m.ProfileRequests,
		m.ProfileDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics with unregistered collectors to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		SourceOutcomes:  prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "area_profile", Name: "source_outcomes_total"}, []string{"source", "outcome"}),
		ProfileRequests: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "area_profile", Name: "profile_requests_total"}, []string{"outcome"}),
		ProfileDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "area_profile", Name: "profile_duration_seconds"}),
	}
}
