package algorithms

import (
	"container/heap"
	"sort"

	"github.com/jameshskoh/girvan-newman/pkg/graph"
)

// Accumulator collects per-edge betweenness credit for one round. Values
// only grow between resets.
type Accumulator struct {
	values []float64
}

// NewAccumulator creates a zeroed accumulator for numEdges edges
func NewAccumulator(numEdges int) (*Accumulator, error) {
	if numEdges < 0 {
		return nil, &AlgorithmError{Op: "NewAccumulator", Entity: "edge", ID: numEdges, Cause: ErrNegativeCount}
	}
	return &Accumulator{values: make([]float64, numEdges)}, nil
}

// Reset zeroes every edge
func (a *Accumulator) Reset() {
	clear(a.values)
}

// Len returns the number of edges tracked
func (a *Accumulator) Len() int {
	return len(a.values)
}

// Add credits inc to edge e. Negative increments are rejected.
func (a *Accumulator) Add(e int, inc float64) error {
	if e < 0 || e >= len(a.values) {
		return edgeErr("Add", e, ErrEdgeOutOfRange)
	}
	if inc < 0 {
		return edgeErr("Add", e, ErrNegativeIncrement)
	}
	a.values[e] += inc
	return nil
}

// Get returns the accumulated betweenness of edge e
func (a *Accumulator) Get(e int) (float64, error) {
	if e < 0 || e >= len(a.values) {
		return 0, edgeErr("Get", e, ErrEdgeOutOfRange)
	}
	return a.values[e], nil
}

// Values returns a copy of the per-edge scores
func (a *Accumulator) Values() []float64 {
	out := make([]float64, len(a.values))
	copy(out, a.values)
	return out
}

// Total returns the sum of all edge scores
func (a *Accumulator) Total() float64 {
	total := 0.0
	for _, v := range a.values {
		total += v
	}
	return total
}

// Max returns the highest score among edges accepted by include and every
// such edge whose score is within a relative tolerance of it. Scores of
// symmetric edges can differ in the last bits depending on summation
// order, which is what the tolerance absorbs.
func (a *Accumulator) Max(include func(e int) bool, tolerance float64) (float64, []int) {
	best := -1.0
	for e, v := range a.values {
		if include(e) && v > best {
			best = v
		}
	}
	if best < 0 {
		return 0, nil
	}

	cutoff := best - tolerance*best
	var ties []int
	for e, v := range a.values {
		if include(e) && v >= cutoff {
			ties = append(ties, e)
		}
	}
	return best, ties
}

// upstreamLink is a predecessor on the previous BFS level and the edge
// leading to it.
type upstreamLink struct {
	vertex int
	edge   int
}

type flowRecord struct {
	level     int // -1 when not reached
	pathCount float64
	flow      float64
	upstream  []upstreamLink
}

// FlowArena holds the per-vertex traversal state of a single BFS source.
// It is cleared at the start of every pass.
type FlowArena struct {
	records []flowRecord
	order   []int // discovery order, source first
	source  int
}

func newFlowArena(numVertices int) *FlowArena {
	a := &FlowArena{
		records: make([]flowRecord, numVertices),
		order:   make([]int, 0, numVertices),
		source:  -1,
	}
	for i := range a.records {
		a.records[i].level = -1
	}
	return a
}

// reset clears only the records touched by the previous pass
func (a *FlowArena) reset(source int) {
	for _, v := range a.order {
		r := &a.records[v]
		r.level = -1
		r.pathCount = 0
		r.flow = 0
		r.upstream = r.upstream[:0]
	}
	a.order = a.order[:0]
	a.source = source
}

func (a *FlowArena) record(op string, v int) (*flowRecord, error) {
	if v < 0 || v >= len(a.records) {
		return nil, vertexErr(op, v, ErrVertexOutOfRange)
	}
	r := &a.records[v]
	if r.level < 0 {
		return nil, vertexErr(op, v, ErrVertexNotVisited)
	}
	return r, nil
}

// Source returns the source of the last pass, or -1 before any pass
func (a *FlowArena) Source() int {
	return a.source
}

// Order returns the vertices reached by the last pass in discovery order
func (a *FlowArena) Order() []int {
	out := make([]int, len(a.order))
	copy(out, a.order)
	return out
}

// Level returns the BFS distance of v from the source
func (a *FlowArena) Level(v int) (int, error) {
	r, err := a.record("Level", v)
	if err != nil {
		return 0, err
	}
	return r.level, nil
}

// PathCount returns the number of shortest paths from the source to v
func (a *FlowArena) PathCount(v int) (float64, error) {
	r, err := a.record("PathCount", v)
	if err != nil {
		return 0, err
	}
	return r.pathCount, nil
}

// Flow returns the dependency routed through v. For the source it is the
// number of other vertices reached.
func (a *FlowArena) Flow(v int) (float64, error) {
	r, err := a.record("Flow", v)
	if err != nil {
		return 0, err
	}
	return r.flow, nil
}

// Upstream returns v's predecessors on the previous level
func (a *FlowArena) Upstream(v int) ([]int, error) {
	r, err := a.record("Upstream", v)
	if err != nil {
		return nil, err
	}
	ups := make([]int, len(r.upstream))
	for i, u := range r.upstream {
		ups[i] = u.vertex
	}
	return ups, nil
}

// BetweennessEngine computes edge betweenness over the alive subgraph
type BetweennessEngine struct {
	graph *graph.Graph
	edges *EdgeTable
	arena *FlowArena
}

// NewBetweennessEngine binds an engine to a graph and its edge table
func NewBetweennessEngine(g *graph.Graph, edges *EdgeTable) (*BetweennessEngine, error) {
	if edges.Len() != g.NumEdges() {
		return nil, &AlgorithmError{Op: "NewBetweennessEngine", Entity: "edge", ID: edges.Len(), Cause: ErrEdgeOutOfRange}
	}
	return &BetweennessEngine{
		graph: g,
		edges: edges,
		arena: newFlowArena(g.NumVertices()),
	}, nil
}

// Arena exposes the traversal state of the most recent pass
func (b *BetweennessEngine) Arena() *FlowArena {
	return b.arena
}

// Compute resets acc and accumulates the betweenness contribution of every
// vertex as a BFS source.
func (b *BetweennessEngine) Compute(acc *Accumulator) error {
	if acc.Len() != b.edges.Len() {
		return &AlgorithmError{Op: "Compute", Entity: "edge", ID: acc.Len(), Cause: ErrEdgeOutOfRange}
	}
	if b.edges.AliveCount() == 0 {
		return ErrNoAliveEdges
	}

	acc.Reset()
	for source := 0; source < b.graph.NumVertices(); source++ {
		if err := b.Pass(source, acc); err != nil {
			return err
		}
	}
	return nil
}

// Pass runs one BFS from source and adds its dependency flow to acc.
func (b *BetweennessEngine) Pass(source int, acc *Accumulator) error {
	if !b.graph.HasVertex(source) {
		return vertexErr("Pass", source, ErrVertexOutOfRange)
	}

	a := b.arena
	a.reset(source)

	root := &a.records[source]
	root.level = 0
	root.pathCount = 1
	a.order = append(a.order, source)

	// Layering: a neighbor one level deeper is downstream, and every
	// predecessor reaching it is recorded upstream.
	for head := 0; head < len(a.order); head++ {
		v := a.order[head]
		rv := &a.records[v]

		b.graph.EachIncidence(v, func(in graph.Incidence) {
			if !b.edges.IsAlive(in.Edge) {
				return
			}
			rw := &a.records[in.Neighbor]
			if rw.level < 0 {
				rw.level = rv.level + 1
				a.order = append(a.order, in.Neighbor)
			}
			if rw.level == rv.level+1 {
				rw.pathCount += rv.pathCount
				rw.upstream = append(rw.upstream, upstreamLink{vertex: v, edge: in.Edge})
			}
		})
	}

	// Back-propagation, deepest first. Index 0 is the source.
	for i := len(a.order) - 1; i > 0; i-- {
		rv := &a.records[a.order[i]]
		rv.flow += 1.0

		for _, up := range rv.upstream {
			ru := &a.records[up.vertex]
			inc := rv.flow * ru.pathCount / rv.pathCount
			ru.flow += inc
			if err := acc.Add(up.edge, inc); err != nil {
				return err
			}
		}
	}

	return nil
}

// EdgeBetweenness computes raw (unnormalised) edge betweenness for the
// alive subgraph, indexed by edge.
func EdgeBetweenness(g *graph.Graph, edges *EdgeTable) ([]float64, error) {
	engine, err := NewBetweennessEngine(g, edges)
	if err != nil {
		return nil, err
	}
	acc, err := NewAccumulator(edges.Len())
	if err != nil {
		return nil, err
	}
	if err := engine.Compute(acc); err != nil {
		return nil, err
	}
	return acc.Values(), nil
}

// RankedEdge holds an edge with its betweenness score
type RankedEdge struct {
	Edge      int           `json:"edge"`
	Endpoints graph.EdgeKey `json:"endpoints"`
	Score     float64       `json:"score"`
}

// rankedEdgeHeap implements a min-heap for RankedEdge by score. Among equal
// scores the higher edge index sits closer to the root, so it is evicted first.
type rankedEdgeHeap []RankedEdge

func (h rankedEdgeHeap) Len() int { return len(h) }
func (h rankedEdgeHeap) Less(i, j int) bool {
	if h[i].Score != h[j].Score {
		return h[i].Score < h[j].Score
	}
	return h[i].Edge > h[j].Edge
}
func (h rankedEdgeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *rankedEdgeHeap) Push(x any) {
	*h = append(*h, x.(RankedEdge))
}

func (h *rankedEdgeHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// TopEdges returns the n highest scoring edges, ties broken by edge index.
func TopEdges(g *graph.Graph, scores []float64, n int) []RankedEdge {
	if n <= 0 {
		return nil
	}

	h := make(rankedEdgeHeap, 0, n)
	for e, score := range scores {
		key, err := g.Endpoints(e)
		if err != nil {
			continue
		}
		re := RankedEdge{Edge: e, Endpoints: key, Score: score}

		if h.Len() < n {
			heap.Push(&h, re)
		} else if score > h[0].Score {
			heap.Pop(&h)
			heap.Push(&h, re)
		}
	}

	result := []RankedEdge(h)
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Score != result[j].Score {
			return result[i].Score > result[j].Score
		}
		return result[i].Edge < result[j].Edge
	})

	return result
}
