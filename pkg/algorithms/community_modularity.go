package algorithms

import (
	"fmt"
	"strings"

	"github.com/jameshskoh/girvan-newman/pkg/graph"
)

// ModularityForm selects how same-vertex pairs enter the modularity sum
type ModularityForm int

const (
	// PairwiseModularity sums over ordered pairs i != j within a community
	PairwiseModularity ModularityForm = iota
	// NewmanModularity also includes the i == j term, -k_i^2 / 2m
	NewmanModularity
)

func (f ModularityForm) String() string {
	switch f {
	case PairwiseModularity:
		return "pairwise"
	case NewmanModularity:
		return "newman"
	default:
		return fmt.Sprintf("ModularityForm(%d)", int(f))
	}
}

// ParseModularityForm converts "pairwise" or "newman" to a form
func ParseModularityForm(s string) (ModularityForm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "pairwise":
		return PairwiseModularity, nil
	case "newman":
		return NewmanModularity, nil
	default:
		return 0, fmt.Errorf("%w: unknown modularity form %q", ErrInvalidOptions, s)
	}
}

// Modularity scores a partition against the original topology of g:
//
//	Q = 1/(2m) * sum over same-community pairs (i,j) of [A_ij - k_i*k_j/(2m)]
//
// m, A and k always come from the full graph, never the alive subgraph.
// Cost is O(sum of squared community sizes).
func Modularity(g *graph.Graph, p *Partition, form ModularityForm) (float64, error) {
	m := g.NumEdges()
	if m == 0 {
		return 0, ErrNoEdges
	}
	if len(p.VertexCommunity) != g.NumVertices() {
		return 0, fmt.Errorf("%w: %d vertices assigned, graph has %d",
			ErrPartitionMismatch, len(p.VertexCommunity), g.NumVertices())
	}

	twoM := 2.0 * float64(m)

	degree := make([]float64, g.NumVertices())
	for v := range degree {
		d, _ := g.Degree(v)
		degree[v] = float64(d)
	}

	q := 0.0
	for _, c := range p.Communities {
		for _, i := range c.Members {
			for _, j := range c.Members {
				if i == j {
					if form == NewmanModularity {
						q -= degree[i] * degree[i] / twoM
					}
					continue
				}
				a := 0.0
				if g.Adjacent(i, j) {
					a = 1.0
				}
				q += a - degree[i]*degree[j]/twoM
			}
		}
	}

	return q / twoM, nil
}

// EvaluateCommunities finds the components of the alive subgraph and
// scores them.
func EvaluateCommunities(g *graph.Graph, edges *EdgeTable, form ModularityForm) (*Partition, float64, error) {
	p := ConnectedComponents(g, edges)
	q, err := Modularity(g, p, form)
	if err != nil {
		return nil, 0, err
	}
	return p, q, nil
}
