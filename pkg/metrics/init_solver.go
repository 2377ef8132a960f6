package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initGraphMetrics() {
	r.GraphVertices = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "girvan_newman_graph_vertices",
			Help: "Number of vertices in the graph being partitioned",
		},
	)

	r.GraphEdges = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "girvan_newman_graph_edges",
			Help: "Number of edges in the original graph",
		},
	)
}

func (r *Registry) initSolverMetrics() {
	r.RunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "girvan_newman_runs_total",
			Help: "Total number of solver runs by stop reason",
		},
		[]string{"reason"},
	)

	r.RunDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "girvan_newman_run_duration_seconds",
			Help:    "Wall time of a complete solver run in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		},
	)

	r.RoundsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "girvan_newman_rounds_total",
			Help: "Total number of edge removal rounds executed",
		},
	)

	r.RoundDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "girvan_newman_round_duration_seconds",
			Help:    "Duration of one betweenness, removal and evaluation round",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		},
	)

	r.BetweennessDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "girvan_newman_betweenness_duration_seconds",
			Help:    "Duration of the all-sources edge betweenness pass",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		},
	)

	r.EdgesKilledTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "girvan_newman_edges_killed_total",
			Help: "Total number of edges removed",
		},
	)

	r.AliveEdges = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "girvan_newman_alive_edges",
			Help: "Edges still alive after the latest round",
		},
	)

	r.Communities = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "girvan_newman_communities",
			Help: "Connected components after the latest round",
		},
	)

	r.CurrentModularity = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "girvan_newman_modularity",
			Help: "Modularity of the latest round's partition",
		},
	)

	r.BestModularity = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "girvan_newman_best_modularity",
			Help: "Best modularity seen so far",
		},
	)

	r.PlateauRounds = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "girvan_newman_plateau_rounds",
			Help: "Consecutive rounds without matching the best modularity",
		},
	)
}
