// Package metrics provides Prometheus instrumentation for the storefront.
//
// It pre-defines the operation and storage metrics the data layer needs and
// gives you helpers to register your own custom metrics. Handler() exposes
// the scrape endpoint for hosts that want one; the CLI does not mount it.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ─────────────────────────────────────────────
// Built-in storefront metrics
// ─────────────────────────────────────────────

var (
	// OperationTotal counts every mutation operation by name and outcome.
	OperationTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dukaan",
			Subsystem: "shop",
			Name:      "operations_total",
			Help:      "Total shop operations.",
		},
		[]string{"op", "status"}, // status: "ok" | "error"
	)

	// BlobAccessDuration tracks blob load/save latency per collection key.
	BlobAccessDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "dukaan",
			Subsystem: "blob",
			Name:      "access_duration_seconds",
			Help:      "Duration of blob reads and writes in seconds.",
			Buckets:   []float64{.0005, .001, .005, .01, .05, .1, .5},
		},
		[]string{"key", "operation"}, // operation: "load" | "save"
	)

	// BootstrapTotal counts catalog bootstrap runs by source.
	BootstrapTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dukaan",
			Subsystem: "catalog",
			Name:      "bootstrap_total",
			Help:      "Total catalog bootstrap runs.",
		},
		[]string{"source"}, // "feed" | "defaults"
	)
)

// ─────────────────────────────────────────────
// Registry
// ─────────────────────────────────────────────

// DefaultRegistry is the Prometheus registry used by the storefront.
// Register your own metrics against this.
var DefaultRegistry = prometheus.NewRegistry()

func init() {
	// Go runtime metrics (GC, goroutines, memory)
	DefaultRegistry.MustRegister(collectors.NewGoCollector())
	// OS process metrics (CPU, open FDs)
	DefaultRegistry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	DefaultRegistry.MustRegister(
		OperationTotal,
		BlobAccessDuration,
		BootstrapTotal,
	)
}

// Register lets you add your own prometheus.Collector to the registry.
func Register(c prometheus.Collector) error {
	return DefaultRegistry.Register(c)
}

// MustRegister panics if registration fails.
func MustRegister(c ...prometheus.Collector) {
	DefaultRegistry.MustRegister(c...)
}

// ─────────────────────────────────────────────
// Helpers for app code
// ─────────────────────────────────────────────

// RecordOperation records one shop operation outcome.
func RecordOperation(op string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	OperationTotal.WithLabelValues(op, status).Inc()
}

// ObserveBlobAccess records a blob access duration with a simple timer:
//
//	defer metrics.ObserveBlobAccess("products", "load", time.Now())
func ObserveBlobAccess(key, operation string, start time.Time) {
	BlobAccessDuration.WithLabelValues(key, operation).Observe(time.Since(start).Seconds())
}

// RecordBootstrap records one catalog bootstrap run by its source
// ("feed" or "defaults").
func RecordBootstrap(source string) {
	BootstrapTotal.WithLabelValues(source).Inc()
}

// ─────────────────────────────────────────────
// /metrics endpoint handler
// ─────────────────────────────────────────────

// Handler returns an http.HandlerFunc that exposes the Prometheus metrics
// page, for embedders that mount one.
func Handler() http.HandlerFunc {
	h := promhttp.HandlerFor(DefaultRegistry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
	return h.ServeHTTP
}
