package graph

// Builder accumulates an undirected graph from arbitrary integer labels.
// Labels are interned to dense vertex ids in first-seen order. Repeated
// edges are ignored and self-loops are skipped.
type Builder struct {
	ids       map[int64]int
	labels    []int64
	neighbors []map[int]struct{}
	numEdges  int
	selfLoops int
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		ids: make(map[int64]int),
	}
}

// AddVertex interns label and returns its dense id. Adding a known label
// returns the existing id.
func (b *Builder) AddVertex(label int64) int {
	if id, ok := b.ids[label]; ok {
		return id
	}
	id := len(b.labels)
	b.ids[label] = id
	b.labels = append(b.labels, label)
	b.neighbors = append(b.neighbors, make(map[int]struct{}))
	return id
}

// AddEdge records an undirected edge between two labels, adding either
// vertex if it is new. It reports whether a new edge was created.
func (b *Builder) AddEdge(from, to int64) bool {
	u := b.AddVertex(from)
	v := b.AddVertex(to)
	if u == v {
		b.selfLoops++
		return false
	}
	if _, ok := b.neighbors[u][v]; ok {
		return false
	}
	b.neighbors[u][v] = struct{}{}
	b.neighbors[v][u] = struct{}{}
	b.numEdges++
	return true
}

// VertexID returns the dense id of a label.
func (b *Builder) VertexID(label int64) (int, bool) {
	id, ok := b.ids[label]
	return id, ok
}

// NumVertices returns the number of distinct labels seen.
func (b *Builder) NumVertices() int {
	return len(b.labels)
}

// NumEdges returns the number of distinct undirected edges.
func (b *Builder) NumEdges() int {
	return b.numEdges
}

// SkippedSelfLoops returns how many self-loop pairs were ignored.
func (b *Builder) SkippedSelfLoops() int {
	return b.selfLoops
}

// Build finalizes the graph. The builder may keep being used afterwards;
// later additions do not affect graphs already built.
func (b *Builder) Build() *Graph {
	sets := make([]map[int]struct{}, len(b.neighbors))
	for v, set := range b.neighbors {
		sets[v] = make(map[int]struct{}, len(set))
		for w := range set {
			sets[v][w] = struct{}{}
		}
	}
	labels := make([]int64, len(b.labels))
	copy(labels, b.labels)
	return finalize(sets, labels)
}
