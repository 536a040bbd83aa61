// Package metrics provides Prometheus metrics for the service: HTTP request
// totals/latency/in-flight plus domain counters for drug lookups and
// completion calls. All collectors are registered with the default registry
// during package initialization.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestTotals = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_request_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)

	HTTPRequestInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_request_in_flight",
			Help: "Current in-flight requests",
		},
	)

	DrugLookupTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "drug_lookup_total",
			Help: "Drug label lookups by outcome (found / not_found)",
		},
		[]string{"outcome"},
	)

	CompletionTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "completion_request_total",
			Help: "Completion calls by prompt mode and outcome",
		},
		[]string{"mode", "outcome"},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequestTotals)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(HTTPRequestInFlight)
	prometheus.MustRegister(DrugLookupTotal)
	prometheus.MustRegister(CompletionTotal)
}
