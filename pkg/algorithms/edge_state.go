package algorithms

import (
	"github.com/jameshskoh/girvan-newman/pkg/graph"
)

// EdgeState tracks whether an edge is still part of the alive subgraph
type EdgeState struct {
	Index     int
	Endpoints graph.EdgeKey
	alive     bool
	killedAt  int // 0 while alive
}

// Alive reports whether the edge has not been removed
func (e *EdgeState) Alive() bool {
	return e.alive
}

// IterationKilled returns the round that removed the edge, or 0
func (e *EdgeState) IterationKilled() int {
	return e.killedAt
}

// Kill marks the edge dead at iteration iter. An edge dies at most once.
func (e *EdgeState) Kill(iter int) error {
	if iter <= 0 {
		return &AlgorithmError{Op: "Kill", Entity: "iteration", ID: iter, Cause: ErrInvalidIteration}
	}
	if !e.alive {
		return edgeErr("Kill", e.Index, ErrEdgeAlreadyDead)
	}
	e.alive = false
	e.killedAt = iter
	return nil
}

// EdgeTable holds the alive/dead state of every edge, indexed like the
// graph's edge index
type EdgeTable struct {
	states []EdgeState
	alive  int
}

// NewEdgeTable creates a table with every edge of g alive
func NewEdgeTable(g *graph.Graph) *EdgeTable {
	edges := g.Edges()
	t := &EdgeTable{
		states: make([]EdgeState, len(edges)),
		alive:  len(edges),
	}
	for i, key := range edges {
		t.states[i] = EdgeState{Index: i, Endpoints: key, alive: true}
	}
	return t
}

// NewEdgeTableSized creates a table of numEdges alive edges without
// endpoint information
func NewEdgeTableSized(numEdges int) (*EdgeTable, error) {
	if numEdges < 0 {
		return nil, &AlgorithmError{Op: "NewEdgeTable", Entity: "edge", ID: numEdges, Cause: ErrNegativeCount}
	}
	t := &EdgeTable{
		states: make([]EdgeState, numEdges),
		alive:  numEdges,
	}
	for i := range t.states {
		t.states[i] = EdgeState{Index: i, alive: true}
	}
	return t, nil
}

// Len returns the number of edges, alive or dead
func (t *EdgeTable) Len() int {
	return len(t.states)
}

// AliveCount returns the number of edges still alive
func (t *EdgeTable) AliveCount() int {
	return t.alive
}

// Get returns the state of edge e
func (t *EdgeTable) Get(e int) (*EdgeState, error) {
	if e < 0 || e >= len(t.states) {
		return nil, edgeErr("Get", e, ErrEdgeOutOfRange)
	}
	return &t.states[e], nil
}

// IsAlive reports whether e is a valid, alive edge
func (t *EdgeTable) IsAlive(e int) bool {
	return e >= 0 && e < len(t.states) && t.states[e].alive
}

// Kill removes every edge in edges at iteration iter. The whole batch is
// validated before any edge changes state.
func (t *EdgeTable) Kill(edges []int, iter int) error {
	if iter <= 0 {
		return &AlgorithmError{Op: "Kill", Entity: "iteration", ID: iter, Cause: ErrInvalidIteration}
	}

	seen := make(map[int]struct{}, len(edges))
	for _, e := range edges {
		state, err := t.Get(e)
		if err != nil {
			return err
		}
		if _, dup := seen[e]; dup || !state.alive {
			return edgeErr("Kill", e, ErrEdgeAlreadyDead)
		}
		seen[e] = struct{}{}
	}

	for _, e := range edges {
		if err := t.states[e].Kill(iter); err != nil {
			return err
		}
		t.alive--
	}
	return nil
}

// KilledIn returns the edges removed at iteration iter, ascending
func (t *EdgeTable) KilledIn(iter int) []int {
	var killed []int
	for i := range t.states {
		if t.states[i].killedAt == iter && iter > 0 {
			killed = append(killed, i)
		}
	}
	return killed
}
