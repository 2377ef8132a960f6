package algorithms

import (
	"slices"

	"github.com/jameshskoh/girvan-newman/pkg/graph"
)

// SolverState is the control loop state
type SolverState int

const (
	Running SolverState = iota
	Converged
)

func (s SolverState) String() string {
	if s == Converged {
		return "converged"
	}
	return "running"
}

// StopReason explains why a run converged
type StopReason int

const (
	StopNone      StopReason = iota
	StopPlateau              // worse than best after the patience ran out
	StopExhausted            // every edge removed
	StopMaxRounds            // round budget reached
	StopCancelled            // context cancelled between rounds
)

func (r StopReason) String() string {
	switch r {
	case StopPlateau:
		return "plateau"
	case StopExhausted:
		return "exhausted"
	case StopMaxRounds:
		return "max_rounds"
	case StopCancelled:
		return "cancelled"
	default:
		return "none"
	}
}

// RoundResult records one edge removal round
type RoundResult struct {
	Iteration      int     `json:"iteration"`
	Objective      float64 `json:"objective"`
	KilledEdges    []int   `json:"killed_edges"`
	Communities    int     `json:"communities"`
	MaxBetweenness float64 `json:"max_betweenness"`
}

// Solution is the state owned by one solver run. Only the solver mutates
// it; callers read it through the accessors.
type Solution struct {
	graph  *graph.Graph
	edges  *EdgeTable
	engine *BetweennessEngine
	acc    *Accumulator

	rounds             []RoundResult
	baseline           float64
	initialBetweenness []float64

	bestObjective float64
	bestIteration int
	bestPartition *Partition

	threshold  int
	plateau    int
	state      SolverState
	stopReason StopReason
}

// Graph returns the graph being partitioned
func (s *Solution) Graph() *graph.Graph {
	return s.graph
}

// Edges returns the edge state table
func (s *Solution) Edges() *EdgeTable {
	return s.edges
}

// Rounds returns a copy of the per-round history
func (s *Solution) Rounds() []RoundResult {
	out := make([]RoundResult, len(s.rounds))
	for i, r := range s.rounds {
		r.KilledEdges = slices.Clone(r.KilledEdges)
		out[i] = r
	}
	return out
}

// Objectives returns the modularity of every round in order
func (s *Solution) Objectives() []float64 {
	out := make([]float64, len(s.rounds))
	for i, r := range s.rounds {
		out[i] = r.Objective
	}
	return out
}

// KilledEdgeHistory returns the edges removed in every round in order
func (s *Solution) KilledEdgeHistory() [][]int {
	out := make([][]int, len(s.rounds))
	for i, r := range s.rounds {
		out[i] = slices.Clone(r.KilledEdges)
	}
	return out
}

// Baseline returns the modularity of the untouched graph's components
func (s *Solution) Baseline() float64 {
	return s.baseline
}

// InitialBetweenness returns the edge betweenness of the full graph,
// computed by the first round. Nil before any round ran.
func (s *Solution) InitialBetweenness() []float64 {
	return slices.Clone(s.initialBetweenness)
}

// BestObjective returns the best modularity seen, -Inf before any round
func (s *Solution) BestObjective() float64 {
	return s.bestObjective
}

// BestIteration returns the round that produced the best partition, or 0
func (s *Solution) BestIteration() int {
	return s.bestIteration
}

// BestPartition returns a copy of the best partition
func (s *Solution) BestPartition() *Partition {
	return s.bestPartition.Clone()
}

// BestCommunities returns community id -> members of the best partition
func (s *Solution) BestCommunities() map[int][]int {
	return s.bestPartition.Sets()
}

// Threshold returns the plateau length required to stop
func (s *Solution) Threshold() int {
	return s.threshold
}

// Plateau returns the current count of rounds below the best
func (s *Solution) Plateau() int {
	return s.plateau
}

// State returns the control loop state
func (s *Solution) State() SolverState {
	return s.state
}

// StopReason returns why the run converged
func (s *Solution) StopReason() StopReason {
	return s.stopReason
}

func (s *Solution) finish(reason StopReason) {
	s.state = Converged
	s.stopReason = reason
}
