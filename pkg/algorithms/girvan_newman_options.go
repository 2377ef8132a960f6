package algorithms

import (
	"fmt"
	"math"

	"github.com/jameshskoh/girvan-newman/pkg/logging"
	"github.com/jameshskoh/girvan-newman/pkg/metrics"
)

// GirvanNewmanOptions configures the iterative solver
type GirvanNewmanOptions struct {
	// PatienceRatio is the plateau threshold as a fraction of the edge
	// count. The solver stops once a round is worse than the best and at
	// least Threshold(E) rounds have failed to match it.
	PatienceRatio float64
	MinPatience   int
	MaxRounds     int     // 0 means bounded only by the edge count
	TieTolerance  float64 // Relative tolerance when collecting max-betweenness ties
	Modularity    ModularityForm
	ProgressEvery int // Info log every N rounds, 0 disables

	Logger  logging.Logger
	Metrics *metrics.Registry // nil disables instrumentation
}

// DefaultGirvanNewmanOptions returns default solver configuration
func DefaultGirvanNewmanOptions() GirvanNewmanOptions {
	return GirvanNewmanOptions{
		PatienceRatio: 0.001,
		MinPatience:   0,
		MaxRounds:     0,
		TieTolerance:  1e-9,
		Modularity:    PairwiseModularity,
		ProgressEvery: 10,
		Logger:        logging.NewNopLogger(),
	}
}

// Validate checks option ranges
func (o GirvanNewmanOptions) Validate() error {
	switch {
	case math.IsNaN(o.PatienceRatio) || o.PatienceRatio < 0 || o.PatienceRatio > 1:
		return fmt.Errorf("%w: patience ratio %v outside [0, 1]", ErrInvalidOptions, o.PatienceRatio)
	case o.MinPatience < 0:
		return fmt.Errorf("%w: min patience %d is negative", ErrInvalidOptions, o.MinPatience)
	case o.MaxRounds < 0:
		return fmt.Errorf("%w: max rounds %d is negative", ErrInvalidOptions, o.MaxRounds)
	case math.IsNaN(o.TieTolerance) || o.TieTolerance < 0 || o.TieTolerance >= 1:
		return fmt.Errorf("%w: tie tolerance %v outside [0, 1)", ErrInvalidOptions, o.TieTolerance)
	case o.ProgressEvery < 0:
		return fmt.Errorf("%w: progress interval %d is negative", ErrInvalidOptions, o.ProgressEvery)
	case o.Modularity != PairwiseModularity && o.Modularity != NewmanModularity:
		return fmt.Errorf("%w: unknown modularity form %d", ErrInvalidOptions, int(o.Modularity))
	}
	return nil
}

// Threshold returns the plateau length that allows stopping on a graph
// with numEdges edges
func (o GirvanNewmanOptions) Threshold(numEdges int) int {
	t := int(math.Floor(o.PatienceRatio * float64(numEdges)))
	return max(t, o.MinPatience)
}
