package algorithms

import (
	"math"
	"testing"

	"github.com/jameshskoh/girvan-newman/pkg/graph"
)

const floatTolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= floatTolerance*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

// buildGraph creates a graph from an edge list, failing the test on error
func buildGraph(t *testing.T, n int, edges [][2]int) *graph.Graph {
	t.Helper()

	g, err := graph.FromEdgeList(n, edges)
	if err != nil {
		t.Fatalf("Failed to build graph: %v", err)
	}
	return g
}

// pathGraph creates the chain 0-1-...-(n-1)
func pathGraph(t *testing.T, n int) *graph.Graph {
	t.Helper()

	edges := make([][2]int, 0, n-1)
	for i := 0; i+1 < n; i++ {
		edges = append(edges, [2]int{i, i + 1})
	}
	return buildGraph(t, n, edges)
}

// twoTriangles creates triangles 0-1-2 and 3-4-5 joined by the bridge 2-3.
// Edge indices: 0={0,1} 1={0,2} 2={1,2} 3={2,3} 4={3,4} 5={3,5} 6={4,5}
func twoTriangles(t *testing.T) *graph.Graph {
	t.Helper()

	return buildGraph(t, 6, [][2]int{
		{0, 1}, {0, 2}, {1, 2},
		{2, 3},
		{3, 4}, {3, 5}, {4, 5},
	})
}

// edgeIndex looks up an edge, failing the test if it is missing
func edgeIndex(t *testing.T, g *graph.Graph, a, b int) int {
	t.Helper()

	e, err := g.EdgeIndex(a, b)
	if err != nil {
		t.Fatalf("Edge %d-%d not found: %v", a, b, err)
	}
	return e
}

// aliveDistances runs a plain BFS over alive edges and returns the
// distance to every vertex, -1 when unreachable
func aliveDistances(g *graph.Graph, edges *EdgeTable, source int) []int {
	dist := make([]int, g.NumVertices())
	for i := range dist {
		dist[i] = -1
	}
	dist[source] = 0

	queue := []int{source}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		g.EachIncidence(v, func(in graph.Incidence) {
			if edges.IsAlive(in.Edge) && dist[in.Neighbor] < 0 {
				dist[in.Neighbor] = dist[v] + 1
				queue = append(queue, in.Neighbor)
			}
		})
	}
	return dist
}

// graphFromCodes decodes pair codes into a graph with n vertices, skipping
// self pairs
func graphFromCodes(n int, codes []int) (*graph.Graph, error) {
	edges := make([][2]int, 0, len(codes))
	for _, c := range codes {
		a, b := (c/n)%n, c%n
		if a != b {
			edges = append(edges, [2]int{a, b})
		}
	}
	return graph.FromEdgeList(n, edges)
}

// killByMask removes every edge whose bit is set in mask at iteration 1
func killByMask(edges *EdgeTable, mask uint64) error {
	var victims []int
	for e := 0; e < edges.Len() && e < 64; e++ {
		if mask&(1<<uint(e)) != 0 {
			victims = append(victims, e)
		}
	}
	if len(victims) == 0 {
		return nil
	}
	return edges.Kill(victims, 1)
}
