// Package metrics defines the Prometheus collectors for the word database and
// the HTTP API and exposes a handler for scraping.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"random-word/internal/wordsdb"
)

// Metrics holds all Prometheus collectors. It implements wordsdb.Observer.
type Metrics struct {
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge
	BuildsTotal          *prometheus.CounterVec
	BuildDuration        *prometheus.HistogramVec
	LookupsTotal         *prometheus.CounterVec
	WordsServedTotal     *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// New creates the collectors and registers them on reg. A nil reg uses a
// fresh private registry.
func New(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests by method, route, and status.",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds.",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
			},
			[]string{"method", "route"},
		),
		HTTPRequestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed.",
			},
		),
		BuildsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wordsdb_builds_total",
				Help: "Vocabulary structures built, by vocabulary, stage, and status.",
			},
			[]string{"vocabulary", "stage", "status"},
		),
		BuildDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "wordsdb_build_duration_seconds",
				Help:    "Time spent building one vocabulary structure.",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
			[]string{"stage"},
		),
		LookupsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wordsdb_lookups_total",
				Help: "Word lookups by vocabulary, kind, and result (found, absent).",
			},
			[]string{"vocabulary", "lookup", "result"},
		),
		WordsServedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "words_served_total",
				Help: "Words returned to API clients by vocabulary.",
			},
			[]string{"vocabulary"},
		),
		gatherer: reg,
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.HTTPRequestsInFlight,
		m.BuildsTotal,
		m.BuildDuration,
		m.LookupsTotal,
		m.WordsServedTotal,
	)

	return m
}

func (m *Metrics) ObserveBuild(v wordsdb.Vocabulary, stage wordsdb.Stage, took time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.BuildsTotal.WithLabelValues(string(v), string(stage), status).Inc()
	m.BuildDuration.WithLabelValues(string(stage)).Observe(took.Seconds())
}

func (m *Metrics) ObserveLookup(v wordsdb.Vocabulary, lookup wordsdb.Lookup, found bool) {
	result := "found"
	if !found {
		result = "absent"
	}
	m.LookupsTotal.WithLabelValues(string(v), string(lookup), result).Inc()
}

// WordsServed counts n words returned for v.
func (m *Metrics) WordsServed(v wordsdb.Vocabulary, n int) {
	m.WordsServedTotal.WithLabelValues(string(v)).Add(float64(n))
}

// Handler returns the Prometheus scrape HTTP handler for the registry the
// collectors live in.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
