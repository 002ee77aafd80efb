// Package observability provides the prometheus metrics collector and the
// tracing bootstrap for the service.
package observability

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Global collector instance for singleton pattern
	globalCollector *Collector
	collectorMutex  sync.Mutex
)

// Collector holds all Prometheus metrics for the application
type Collector struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Query metrics, labeled by data-service operation
	QueryDuration *prometheus.HistogramVec
	QueryFailures *prometheus.CounterVec

	// Expansion outcomes: loaded, empty, failed
	ExpansionOutcomes *prometheus.CounterVec
}

// NewCollector creates a new metrics collector with the given namespace
func NewCollector(namespace string) *Collector {
	// Singleton avoids duplicate registration in tests
	collectorMutex.Lock()
	defer collectorMutex.Unlock()

	if globalCollector != nil {
		return globalCollector
	}

	registry := prometheus.NewRegistry()

	httpRequests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	queryDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_duration_seconds",
			Help:      "Analytical query duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	queryFailures := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "query_failures_total",
			Help:      "Total number of failed analytical queries",
		},
		[]string{"operation"},
	)

	expansionOutcomes := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "expansion_outcomes_total",
			Help:      "Graph expansion outcomes by notice",
		},
		[]string{"outcome"},
	)

	registry.MustRegister(httpRequests, httpDuration, queryDuration, queryFailures, expansionOutcomes)

	globalCollector = &Collector{
		registry:          registry,
		HTTPRequests:      httpRequests,
		HTTPDuration:      httpDuration,
		QueryDuration:     queryDuration,
		QueryFailures:     queryFailures,
		ExpansionOutcomes: expansionOutcomes,
	}
	return globalCollector
}

// ObserveQuery records one data-service operation's duration and outcome.
// Safe to call on a nil collector.
func (c *Collector) ObserveQuery(operation string, started time.Time, err error) {
	if c == nil {
		return
	}
	c.QueryDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
	if err != nil {
		c.QueryFailures.WithLabelValues(operation).Inc()
	}
}

// CountExpansion records one expansion outcome. Safe to call on a nil
// collector.
func (c *Collector) CountExpansion(outcome string) {
	if c == nil {
		return
	}
	c.ExpansionOutcomes.WithLabelValues(outcome).Inc()
}

// Handler returns the /metrics endpoint handler for this collector's
// registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
