// Package graph holds the finalized, immutable topology of an undirected,
// unweighted graph together with a stable dense edge index.
package graph

import (
	"slices"
)

// EdgeKey identifies an unordered vertex pair. The smaller id is always
// stored first so {a,b} and {b,a} produce the same key.
type EdgeKey struct {
	A int
	B int
}

// NewEdgeKey normalizes an unordered pair into an EdgeKey.
func NewEdgeKey(a, b int) (EdgeKey, error) {
	if a < 0 || b < 0 {
		return EdgeKey{}, pairError("NewEdgeKey", a, b, ErrInvalidVertex)
	}
	if a == b {
		return EdgeKey{}, pairError("NewEdgeKey", a, b, ErrSelfLoop)
	}
	if a > b {
		a, b = b, a
	}
	return EdgeKey{A: a, B: b}, nil
}

// Other returns the endpoint opposite to v.
func (k EdgeKey) Other(v int) int {
	if v == k.A {
		return k.B
	}
	return k.A
}

// Incidence pairs a neighbor with the index of the edge that reaches it.
type Incidence struct {
	Neighbor int
	Edge     int
}

// Graph is a finalized adjacency table. It never changes after
// construction; edge liveness is tracked by the algorithms package.
type Graph struct {
	incidences [][]Incidence // per vertex, ascending by neighbor
	edges      []EdgeKey     // edge index -> endpoints
	index      map[EdgeKey]int
	labels     []int64 // optional input labels, nil means label == id
}

// FromAdjacency finalizes an adjacency table with vertices [0, len(adj)).
// Edge indices are assigned by visiting vertices in id order and each
// vertex's neighbors in ascending order, giving a pair the next index the
// first time it is seen.
func FromAdjacency(adj [][]int) (*Graph, error) {
	n := len(adj)
	sets := make([]map[int]struct{}, n)
	for v, neighbors := range adj {
		sets[v] = make(map[int]struct{}, len(neighbors))
		for _, w := range neighbors {
			if w < 0 || w >= n {
				return nil, vertexError("FromAdjacency", w, ErrInvalidVertex)
			}
			if w == v {
				return nil, pairError("FromAdjacency", v, w, ErrSelfLoop)
			}
			sets[v][w] = struct{}{}
		}
	}

	for v := range sets {
		for w := range sets[v] {
			if _, ok := sets[w][v]; !ok {
				return nil, pairError("FromAdjacency", v, w, ErrAsymmetric)
			}
		}
	}

	return finalize(sets, nil), nil
}

// FromEdgeList builds a graph with numVertices vertices from a list of
// unordered pairs. Repeated pairs collapse into one edge.
func FromEdgeList(numVertices int, edges [][2]int) (*Graph, error) {
	if numVertices < 0 {
		return nil, &GraphError{Op: "FromEdgeList", Entity: "vertex", Context: "count", Cause: ErrNegativeCount}
	}

	sets := make([]map[int]struct{}, numVertices)
	for v := range sets {
		sets[v] = make(map[int]struct{})
	}

	for _, e := range edges {
		key, err := NewEdgeKey(e[0], e[1])
		if err != nil {
			return nil, err
		}
		if key.B >= numVertices {
			return nil, vertexError("FromEdgeList", key.B, ErrInvalidVertex)
		}
		sets[key.A][key.B] = struct{}{}
		sets[key.B][key.A] = struct{}{}
	}

	return finalize(sets, nil), nil
}

// finalize assigns edge indices. The neighbor sets must already be
// symmetric and free of self-loops.
func finalize(sets []map[int]struct{}, labels []int64) *Graph {
	g := &Graph{
		incidences: make([][]Incidence, len(sets)),
		index:      make(map[EdgeKey]int),
		labels:     labels,
	}

	for v, set := range sets {
		neighbors := make([]int, 0, len(set))
		for w := range set {
			neighbors = append(neighbors, w)
		}
		slices.Sort(neighbors)

		g.incidences[v] = make([]Incidence, 0, len(neighbors))
		for _, w := range neighbors {
			key := EdgeKey{A: min(v, w), B: max(v, w)}
			edge, ok := g.index[key]
			if !ok {
				edge = len(g.edges)
				g.index[key] = edge
				g.edges = append(g.edges, key)
			}
			g.incidences[v] = append(g.incidences[v], Incidence{Neighbor: w, Edge: edge})
		}
	}

	return g
}

// NumVertices returns the vertex count.
func (g *Graph) NumVertices() int {
	return len(g.incidences)
}

// NumEdges returns the edge count of the full topology.
func (g *Graph) NumEdges() int {
	return len(g.edges)
}

// HasVertex reports whether v is a valid vertex id.
func (g *Graph) HasVertex(v int) bool {
	return v >= 0 && v < len(g.incidences)
}

// Incidences returns the neighbors of v with their edge indices. The
// returned slice is shared and must not be modified.
func (g *Graph) Incidences(v int) ([]Incidence, error) {
	if !g.HasVertex(v) {
		return nil, vertexError("Incidences", v, ErrInvalidVertex)
	}
	return g.incidences[v], nil
}

// EachIncidence calls fn for every neighbor of v in ascending order.
// Ids outside the graph have no incidences.
func (g *Graph) EachIncidence(v int, fn func(Incidence)) {
	if !g.HasVertex(v) {
		return
	}
	for _, in := range g.incidences[v] {
		fn(in)
	}
}

// Neighbors returns the neighbor ids of v in ascending order.
func (g *Graph) Neighbors(v int) ([]int, error) {
	inc, err := g.Incidences(v)
	if err != nil {
		return nil, err
	}
	neighbors := make([]int, len(inc))
	for i, in := range inc {
		neighbors[i] = in.Neighbor
	}
	return neighbors, nil
}

// Degree returns the degree of v in the full topology.
func (g *Graph) Degree(v int) (int, error) {
	if !g.HasVertex(v) {
		return 0, vertexError("Degree", v, ErrInvalidVertex)
	}
	return len(g.incidences[v]), nil
}

// Adjacent reports whether a and b share an edge.
func (g *Graph) Adjacent(a, b int) bool {
	key, err := NewEdgeKey(a, b)
	if err != nil {
		return false
	}
	_, ok := g.index[key]
	return ok
}

// EdgeIndex returns the stable index of the edge between a and b.
func (g *Graph) EdgeIndex(a, b int) (int, error) {
	key, err := NewEdgeKey(a, b)
	if err != nil {
		return 0, err
	}
	edge, ok := g.index[key]
	if !ok {
		return 0, pairError("EdgeIndex", a, b, ErrEdgeNotFound)
	}
	return edge, nil
}

// Endpoints returns the unordered pair behind an edge index.
func (g *Graph) Endpoints(edge int) (EdgeKey, error) {
	if edge < 0 || edge >= len(g.edges) {
		return EdgeKey{}, edgeError("Endpoints", edge, ErrEdgeOutOfRange)
	}
	return g.edges[edge], nil
}

// Edges returns a copy of every edge key ordered by index.
func (g *Graph) Edges() []EdgeKey {
	return slices.Clone(g.edges)
}

// Label returns the input label of v. Graphs built without a Builder use
// the vertex id as its label.
func (g *Graph) Label(v int) int64 {
	if g.labels == nil || v < 0 || v >= len(g.labels) {
		return int64(v)
	}
	return g.labels[v]
}
