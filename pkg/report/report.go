// Package report renders the outcome of a solver run for people (styled
// text) and for tools (JSON).
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jameshskoh/girvan-newman/pkg/algorithms"
	"github.com/jameshskoh/girvan-newman/pkg/graph"
)

// MembersPerLine is how many community members the text report prints
// on one line
const MembersPerLine = 10

// DefaultTopEdges is the number of initial betweenness leaders reported
const DefaultTopEdges = 5

// EdgeScore is an edge in input labels with its betweenness
type EdgeScore struct {
	From  int64   `json:"from"`
	To    int64   `json:"to"`
	Score float64 `json:"score"`
}

// Summary is the reportable outcome of one run
type Summary struct {
	RunID         string                   `json:"run_id,omitempty"`
	Vertices      int                      `json:"vertices"`
	Edges         int                      `json:"edges"`
	Rounds        int                      `json:"rounds"`
	Threshold     int                      `json:"threshold"`
	StopReason    string                   `json:"stop_reason"`
	Baseline      float64                  `json:"baseline"`
	BestIteration int                      `json:"best_iteration"`
	BestObjective *float64                 `json:"best_objective,omitempty"` // nil when no round completed
	Communities   [][]int64                `json:"communities"`
	TopEdges      []EdgeScore              `json:"top_edges,omitempty"`
	History       []algorithms.RoundResult `json:"history"`
}

// NewSummary collects the reportable state of s. Vertex ids are translated
// back to the labels of the input file.
func NewSummary(runID string, s *algorithms.Solution) *Summary {
	g := s.Graph()

	sum := &Summary{
		RunID:         runID,
		Vertices:      g.NumVertices(),
		Edges:         g.NumEdges(),
		Rounds:        len(s.Rounds()),
		Threshold:     s.Threshold(),
		StopReason:    s.StopReason().String(),
		Baseline:      s.Baseline(),
		BestIteration: s.BestIteration(),
		Communities:   communityLabels(g, s.BestPartition()),
		History:       s.Rounds(),
	}

	if best := s.BestObjective(); !math.IsInf(best, 0) {
		sum.BestObjective = &best
	}

	if initial := s.InitialBetweenness(); initial != nil {
		for _, re := range algorithms.TopEdges(g, initial, DefaultTopEdges) {
			sum.TopEdges = append(sum.TopEdges, EdgeScore{
				From:  g.Label(re.Endpoints.A),
				To:    g.Label(re.Endpoints.B),
				Score: re.Score,
			})
		}
	}

	return sum
}

func communityLabels(g *graph.Graph, p *algorithms.Partition) [][]int64 {
	out := make([][]int64, 0, p.Len())
	for _, c := range p.Communities {
		labels := make([]int64, len(c.Members))
		for i, v := range c.Members {
			labels[i] = g.Label(v)
		}
		slices.Sort(labels)
		out = append(out, labels)
	}
	return out
}

// WriteJSON writes the summary as an indented JSON document
func WriteJSON(w io.Writer, sum *Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(sum); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// WriteText writes a styled summary followed by every community. Styling
// degrades to plain text when w is not a terminal.
func WriteText(w io.Writer, sum *Summary) error {
	r := lipgloss.NewRenderer(w)

	titleStyle := r.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF00FF"))
	statsBoxStyle := r.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#00FF00")).
		Padding(0, 1)
	headerStyle := r.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00FFFF"))

	objective := "n/a"
	if sum.BestObjective != nil {
		objective = fmt.Sprintf("%f", *sum.BestObjective)
	}

	stats := []string{
		fmt.Sprintf("Vertices        %d", sum.Vertices),
		fmt.Sprintf("Edges           %d", sum.Edges),
		fmt.Sprintf("Rounds          %d (%s)", sum.Rounds, sum.StopReason),
		fmt.Sprintf("Baseline        %f", sum.Baseline),
		fmt.Sprintf("Objective       %s", objective),
		fmt.Sprintf("Best iteration  %d", sum.BestIteration),
		fmt.Sprintf("Communities     %d", len(sum.Communities)),
	}
	if sum.RunID != "" {
		stats = append([]string{fmt.Sprintf("Run             %s", sum.RunID)}, stats...)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Girvan-Newman communities"))
	b.WriteString("\n")
	b.WriteString(statsBoxStyle.Render(strings.Join(stats, "\n")))
	b.WriteString("\n\n")

	for i, members := range sum.Communities {
		b.WriteString(headerStyle.Render(fmt.Sprintf("Set %d", i+1)))
		b.WriteString(fmt.Sprintf(" (%d)\n", len(members)))
		writeMembers(&b, members)
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeMembers(b *strings.Builder, members []int64) {
	for i, m := range members {
		if i%MembersPerLine != 0 {
			b.WriteByte('\t')
		}
		fmt.Fprintf(b, "%d", m)
		if (i+1)%MembersPerLine == 0 || i == len(members)-1 {
			b.WriteByte('\n')
		}
	}
}
