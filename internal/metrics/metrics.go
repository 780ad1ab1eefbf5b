// Package metrics exposes Prometheus collectors for the HTTP API and the
// dashboard aggregation.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fintrack"

// Collector owns every fintrack metric and the registry they live in.
type Collector struct {
	registry *prometheus.Registry

	httpRequests      *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
	dashboardDuration *prometheus.HistogramVec
	recordsCreated    *prometheus.CounterVec
	recordsDeleted    *prometheus.CounterVec
}

// New creates a collector backed by a fresh registry that also carries the
// Go runtime and process collectors.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests per route and status",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency per route",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		dashboardDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "dashboard_aggregation_duration_seconds",
				Help:      "Latency of dashboard aggregation including both store reads",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"outcome"},
		),
		recordsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "records_created_total",
				Help:      "Total number of records created per kind",
			},
			[]string{"kind"},
		),
		recordsDeleted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "records_deleted_total",
				Help:      "Total number of records deleted per kind",
			},
			[]string{"kind"},
		),
	}

	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.httpRequests,
		c.httpDuration,
		c.dashboardDuration,
		c.recordsCreated,
		c.recordsDeleted,
	)

	return c
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// ObserveHTTP records one completed request. route is the matched pattern,
// never the raw path, to keep label cardinality bounded.
func (c *Collector) ObserveHTTP(method, route string, status int, d time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// ObserveDashboard records one aggregation.
func (c *Collector) ObserveDashboard(d time.Duration, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	c.dashboardDuration.WithLabelValues(outcome).Observe(d.Seconds())
}

func (c *Collector) RecordCreated(kind string) {
	c.recordsCreated.WithLabelValues(kind).Inc()
}

func (c *Collector) RecordDeleted(kind string) {
	c.recordsDeleted.WithLabelValues(kind).Inc()
}
