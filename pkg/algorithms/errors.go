package algorithms

import (
	"errors"
	"fmt"
)

// Sentinel errors for the solver core
var (
	ErrNegativeCount     = errors.New("negative count")
	ErrInvalidIteration  = errors.New("iteration must be positive")
	ErrEdgeAlreadyDead   = errors.New("edge already dead")
	ErrEdgeOutOfRange    = errors.New("edge index out of range")
	ErrVertexOutOfRange  = errors.New("vertex out of range")
	ErrVertexNotVisited  = errors.New("vertex not visited in current pass")
	ErrNegativeIncrement = errors.New("negative betweenness increment")
	ErrNoAliveEdges      = errors.New("no alive edges")
	ErrNoEdges           = errors.New("graph has no edges")
	ErrPartitionMismatch = errors.New("partition does not cover graph")
	ErrInvalidOptions    = errors.New("invalid options")
	ErrConverged         = errors.New("solver already converged")
)

// AlgorithmError carries the operation and entity that failed
type AlgorithmError struct {
	Op     string // Operation that failed (e.g., "Kill", "Add")
	Entity string // "edge", "vertex", "iteration"
	ID     int
	Cause  error
}

// Error implements the error interface.
func (e *AlgorithmError) Error() string {
	return fmt.Sprintf("%s %s %d: %v", e.Op, e.Entity, e.ID, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *AlgorithmError) Unwrap() error {
	return e.Cause
}

func edgeErr(op string, edge int, cause error) error {
	return &AlgorithmError{Op: op, Entity: "edge", ID: edge, Cause: cause}
}

func vertexErr(op string, v int, cause error) error {
	return &AlgorithmError{Op: op, Entity: "vertex", ID: v, Cause: cause}
}
