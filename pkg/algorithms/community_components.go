package algorithms

import (
	"slices"

	"github.com/jameshskoh/girvan-newman/pkg/graph"
)

// ConnectedComponents partitions the graph into the components of its
// alive subgraph. Unassigned vertices seed new communities in id order, so
// community ids follow discovery order starting at 0.
func ConnectedComponents(g *graph.Graph, edges *EdgeTable) *Partition {
	n := g.NumVertices()
	vertexCommunity := make([]int, n)
	for v := range vertexCommunity {
		vertexCommunity[v] = -1
	}

	communities := make([]*Community, 0)
	queue := make([]int, 0, n)

	for start := 0; start < n; start++ {
		if vertexCommunity[start] >= 0 {
			continue
		}

		id := len(communities)
		component := &Community{ID: id}

		queue = append(queue[:0], start)
		vertexCommunity[start] = id

		for head := 0; head < len(queue); head++ {
			v := queue[head]
			component.Members = append(component.Members, v)

			g.EachIncidence(v, func(in graph.Incidence) {
				if vertexCommunity[in.Neighbor] >= 0 || !edges.IsAlive(in.Edge) {
					return
				}
				vertexCommunity[in.Neighbor] = id
				queue = append(queue, in.Neighbor)
			})
		}

		slices.Sort(component.Members)
		communities = append(communities, component)
	}

	return &Partition{
		Communities:     communities,
		VertexCommunity: vertexCommunity,
	}
}
