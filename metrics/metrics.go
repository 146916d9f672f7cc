// Package metrics provides Prometheus metrics for the Confluence MCP server.
// It tracks tool call counts, latencies, upstream API health, and resource reads.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all metrics
const (
	Namespace = "confluence_mcp"
)

var (
	// RequestsTotal counts total MCP tool calls by tool name and status
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "requests_total",
		Help:      "Total number of MCP tool calls",
	}, []string{"tool", "status"})

	// RequestDuration measures request latency distribution
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "request_duration_seconds",
		Help:      "Request latency distribution by tool",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"tool"})

	// RequestInFlight tracks currently executing requests
	RequestInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "requests_in_flight",
		Help:      "Number of requests currently being processed",
	}, []string{"tool"})

	// APIRequestsTotal counts Confluence API requests by endpoint and status
	APIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "api_requests_total",
		Help:      "Total Confluence API requests by endpoint and status",
	}, []string{"endpoint", "status"})

	// APILatency measures Confluence API call latency by endpoint
	APILatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "api_latency_seconds",
		Help:      "Confluence API call latency by endpoint",
		Buckets:   prometheus.DefBuckets,
	}, []string{"endpoint"})

	// APIErrors counts Confluence API errors by endpoint and HTTP status code
	APIErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "api_errors_total",
		Help:      "Confluence API errors by endpoint and HTTP status code",
	}, []string{"endpoint", "status_code"})

	// ResourceReads counts resource reads by URI kind and status
	ResourceReads = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "resource_reads_total",
		Help:      "Resource reads by URI kind and status",
	}, []string{"kind", "status"})

	// ResourceListings counts resources/list requests served
	ResourceListings = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "resource_listings_total",
		Help:      "Total resource listing requests served",
	})

	// PanicsRecovered counts recovered panics in tool handlers
	PanicsRecovered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "panics_recovered_total",
		Help:      "Number of panics recovered in tool handlers",
	}, []string{"tool"})
)

// RecordRequest records a completed tool call with its duration and status
func RecordRequest(tool string, duration float64, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	RequestsTotal.WithLabelValues(tool, status).Inc()
	RequestDuration.WithLabelValues(tool).Observe(duration)
}

// RecordAPICall records a Confluence API call. A zero statusCode means the
// request failed before a response was received.
func RecordAPICall(endpoint string, duration float64, success bool, statusCode int) {
	status := "success"
	if !success {
		status = "error"
	}
	APIRequestsTotal.WithLabelValues(endpoint, status).Inc()
	APILatency.WithLabelValues(endpoint).Observe(duration)
	if !success && statusCode != 0 {
		APIErrors.WithLabelValues(endpoint, strconv.Itoa(statusCode)).Inc()
	}
}

// RecordResourceRead records a resource read by URI kind
func RecordResourceRead(kind string, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	ResourceReads.WithLabelValues(kind, status).Inc()
}
