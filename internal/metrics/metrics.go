package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry Metrics
var (
	// JobsCreatedTotal tracks records appended to the registry
	JobsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "registry_jobs_created_total",
			Help: "Total job records created",
		},
	)

	// JobsUpdatedTotal tracks successful merges
	JobsUpdatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "registry_jobs_updated_total",
			Help: "Total job records updated",
		},
	)

	// JobsDeletedTotal tracks successful removals
	JobsDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "registry_jobs_deleted_total",
			Help: "Total job records deleted",
		},
	)

	// RegistrySize tracks the current number of records in the registry
	RegistrySize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "registry_size",
			Help: "Current number of job records in the registry",
		},
	)
)

// HTTP Metrics
var (
	// HTTPRequestsTotal tracks completed requests by method, path and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by method, path and status",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration tracks request latency in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "path"},
	)
)
