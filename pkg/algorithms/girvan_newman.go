package algorithms

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/jameshskoh/girvan-newman/pkg/graph"
	"github.com/jameshskoh/girvan-newman/pkg/logging"
)

// Solver runs Girvan–Newman edge removal rounds
type Solver struct {
	opts   GirvanNewmanOptions
	logger logging.Logger
}

// NewSolver validates opts and creates a solver
func NewSolver(opts GirvanNewmanOptions) (*Solver, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Solver{
		opts:   opts,
		logger: logger.With(logging.Component("girvan-newman")),
	}, nil
}

// GirvanNewman partitions g with a solver built from opts
func GirvanNewman(ctx context.Context, g *graph.Graph, opts GirvanNewmanOptions) (*Solution, error) {
	sv, err := NewSolver(opts)
	if err != nil {
		return nil, err
	}
	return sv.Solve(ctx, g)
}

// Start prepares a run over g: every edge alive, best objective -Inf and
// the baseline modularity of the untouched graph recorded.
func (sv *Solver) Start(g *graph.Graph) (*Solution, error) {
	if g.NumEdges() == 0 {
		return nil, ErrNoEdges
	}

	edges := NewEdgeTable(g)
	engine, err := NewBetweennessEngine(g, edges)
	if err != nil {
		return nil, err
	}
	acc, err := NewAccumulator(edges.Len())
	if err != nil {
		return nil, err
	}

	_, baseline, err := EvaluateCommunities(g, edges, sv.opts.Modularity)
	if err != nil {
		return nil, err
	}

	if sv.opts.Metrics != nil {
		sv.opts.Metrics.ObserveGraph(g.NumVertices(), g.NumEdges())
	}

	return &Solution{
		graph:         g,
		edges:         edges,
		engine:        engine,
		acc:           acc,
		baseline:      baseline,
		bestObjective: math.Inf(-1),
		bestPartition: &Partition{},
		threshold:     sv.opts.Threshold(g.NumEdges()),
		state:         Running,
	}, nil
}

// Solve runs rounds until the solution converges. Cancelling ctx stops the
// run between rounds; the partial solution is returned with ctx's error.
func (sv *Solver) Solve(ctx context.Context, g *graph.Graph) (*Solution, error) {
	s, err := sv.Start(g)
	if err != nil {
		return nil, err
	}

	timer := logging.StartTimer(sv.logger, "girvan-newman finished")
	sv.logger.Info("girvan-newman started",
		logging.Int("vertices", g.NumVertices()),
		logging.Int("edges", g.NumEdges()),
		logging.Int("threshold", s.threshold),
		logging.Modularity(s.baseline),
		logging.String("form", sv.opts.Modularity.String()))

	for s.state == Running {
		if ctxErr := ctx.Err(); ctxErr != nil {
			s.finish(StopCancelled)
			sv.recordRun(s, timer)
			return s, fmt.Errorf("girvan-newman cancelled after %d rounds: %w", len(s.rounds), ctxErr)
		}
		if err := sv.Step(s); err != nil {
			timer.EndError(err)
			return s, err
		}
	}

	sv.recordRun(s, timer)
	return s, nil
}

func (sv *Solver) recordRun(s *Solution, timer *logging.TimedOperation) {
	if sv.opts.Metrics != nil {
		sv.opts.Metrics.RecordRun(s.stopReason.String(), timer.Elapsed())
		sv.opts.Metrics.UpdateProcessMetrics()
	}
	fields := []logging.Field{
		logging.String("reason", s.stopReason.String()),
		logging.Int("rounds", len(s.rounds)),
		logging.Int("best_iteration", s.bestIteration),
		logging.Int("communities", s.bestPartition.Len()),
	}
	// No round has scored yet; -Inf cannot be encoded as JSON.
	if !math.IsInf(s.bestObjective, 0) {
		fields = append(fields, logging.Float64("best_modularity", s.bestObjective))
	}
	timer.End(fields...)
}

// Step runs one round: betweenness over the alive subgraph, removal of
// every edge tied for the maximum, then community evaluation and the
// stopping rule.
func (sv *Solver) Step(s *Solution) error {
	if s.state == Converged {
		return ErrConverged
	}
	if s.edges.AliveCount() == 0 {
		s.finish(StopExhausted)
		return nil
	}

	iter := len(s.rounds) + 1
	roundStart := time.Now()

	if err := s.engine.Compute(s.acc); err != nil {
		return fmt.Errorf("round %d betweenness: %w", iter, err)
	}
	if sv.opts.Metrics != nil {
		sv.opts.Metrics.ObserveBetweenness(time.Since(roundStart))
	}
	if iter == 1 {
		s.initialBetweenness = s.acc.Values()
	}

	maxBetweenness, killed := s.acc.Max(s.edges.IsAlive, sv.opts.TieTolerance)
	if len(killed) == 0 {
		return fmt.Errorf("round %d: %w", iter, ErrNoAliveEdges)
	}
	if err := s.edges.Kill(killed, iter); err != nil {
		return fmt.Errorf("round %d removal: %w", iter, err)
	}

	partition, q, err := EvaluateCommunities(s.graph, s.edges, sv.opts.Modularity)
	if err != nil {
		return fmt.Errorf("round %d evaluation: %w", iter, err)
	}

	// Ties prefer the latest round and reset the plateau counter.
	if q >= s.bestObjective {
		s.bestObjective = q
		s.bestPartition = partition
		s.bestIteration = iter
		s.plateau = 0
	} else {
		s.plateau++
	}

	s.rounds = append(s.rounds, RoundResult{
		Iteration:      iter,
		Objective:      q,
		KilledEdges:    killed,
		Communities:    partition.Len(),
		MaxBetweenness: maxBetweenness,
	})

	if sv.opts.Metrics != nil {
		sv.opts.Metrics.RecordRound(time.Since(roundStart), len(killed), s.edges.AliveCount(),
			partition.Len(), q, s.bestObjective, s.plateau)
	}
	sv.logRound(s, iter, q, killed, partition.Len())

	switch {
	case q < s.bestObjective && s.plateau >= s.threshold:
		s.finish(StopPlateau)
	case sv.opts.MaxRounds > 0 && iter >= sv.opts.MaxRounds:
		s.finish(StopMaxRounds)
	case s.edges.AliveCount() == 0:
		s.finish(StopExhausted)
	}
	return nil
}

func (sv *Solver) logRound(s *Solution, iter int, q float64, killed []int, communities int) {
	if sv.opts.ProgressEvery > 0 && iter%sv.opts.ProgressEvery == 0 {
		sv.logger.Info("girvan-newman progress",
			logging.Iteration(iter),
			logging.Modularity(q),
			logging.Float64("best_modularity", s.bestObjective),
			logging.Int("alive_edges", s.edges.AliveCount()))
	}
	if sv.logger.Enabled(logging.DebugLevel) {
		sv.logger.Debug("round complete",
			logging.Iteration(iter),
			logging.Modularity(q),
			logging.Any("killed", killed),
			logging.Int("communities", communities),
			logging.Int("plateau", s.plateau))
	}
}
