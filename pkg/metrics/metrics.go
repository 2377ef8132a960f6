package metrics

import (
	"runtime"
	"time"
)

// ObserveGraph records the size of the input graph
func (r *Registry) ObserveGraph(vertices, edges int) {
	r.GraphVertices.Set(float64(vertices))
	r.GraphEdges.Set(float64(edges))
	r.AliveEdges.Set(float64(edges))
}

// ObserveBetweenness records one all-sources betweenness computation
func (r *Registry) ObserveBetweenness(duration time.Duration) {
	r.BetweennessDuration.Observe(duration.Seconds())
}

// RecordRound records a completed removal round
func (r *Registry) RecordRound(duration time.Duration, killed, alive, communities int, modularity, best float64, plateau int) {
	r.RoundsTotal.Inc()
	r.RoundDuration.Observe(duration.Seconds())
	r.EdgesKilledTotal.Add(float64(killed))
	r.AliveEdges.Set(float64(alive))
	r.Communities.Set(float64(communities))
	r.CurrentModularity.Set(modularity)
	r.BestModularity.Set(best)
	r.PlateauRounds.Set(float64(plateau))
}

// RecordRun records a finished run labelled by its stop reason
func (r *Registry) RecordRun(reason string, duration time.Duration) {
	r.RunsTotal.WithLabelValues(reason).Inc()
	r.RunDuration.Observe(duration.Seconds())
}

// UpdateProcessMetrics samples goroutine and memory statistics
func (r *Registry) UpdateProcessMetrics() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	r.GoRoutines.Set(float64(runtime.NumGoroutine()))
	r.MemoryAllocBytes.Set(float64(m.Alloc))
	r.MemorySysBytes.Set(float64(m.Sys))
}
