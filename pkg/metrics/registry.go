// Package metrics exposes Prometheus instrumentation for solver runs.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the application
type Registry struct {
	// Graph Metrics
	GraphVertices prometheus.Gauge
	GraphEdges    prometheus.Gauge

	// Solver Metrics
	RunsTotal           *prometheus.CounterVec
	RunDuration         prometheus.Histogram
	RoundsTotal         prometheus.Counter
	RoundDuration       prometheus.Histogram
	BetweennessDuration prometheus.Histogram
	EdgesKilledTotal    prometheus.Counter
	AliveEdges          prometheus.Gauge
	Communities         prometheus.Gauge
	CurrentModularity   prometheus.Gauge
	BestModularity      prometheus.Gauge
	PlateauRounds       prometheus.Gauge

	// Process Metrics
	GoRoutines       prometheus.Gauge
	MemoryAllocBytes prometheus.Gauge
	MemorySysBytes   prometheus.Gauge

	registry *prometheus.Registry
	mu       sync.Mutex
}

// NewRegistry creates a metrics registry with all metrics initialized.
// Each run gets its own registry, so nothing is shared between solver runs.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}

	r.initGraphMetrics()
	r.initSolverMetrics()
	r.initProcessMetrics()

	return r
}

// WriteTextfile writes the current metric values in the text exposition
// format, suitable for the node_exporter textfile collector.
func (r *Registry) WriteTextfile(path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return prometheus.WriteToTextfile(path, r.registry)
}
