package graph

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrSelfLoop       = errors.New("self-loop edge")
	ErrInvalidVertex  = errors.New("invalid vertex")
	ErrAsymmetric     = errors.New("asymmetric adjacency")
	ErrEdgeNotFound   = errors.New("edge not found")
	ErrNegativeCount  = errors.New("negative count")
	ErrEdgeOutOfRange = errors.New("edge index out of range")
)

// GraphError provides structured error information for graph operations.
type GraphError struct {
	Op      string // Operation that failed (e.g., "FromAdjacency", "EdgeIndex")
	Entity  string // Entity type ("vertex", "edge", "pair")
	ID      int    // Entity ID, only meaningful when HasID is set
	HasID   bool
	Context string // Additional context
	Cause   error  // Underlying error
}

// Error implements the error interface.
func (e *GraphError) Error() string {
	if e.HasID {
		if e.Context != "" {
			return fmt.Sprintf("%s %s %d (%s): %v", e.Op, e.Entity, e.ID, e.Context, e.Cause)
		}
		return fmt.Sprintf("%s %s %d: %v", e.Op, e.Entity, e.ID, e.Cause)
	}
	if e.Context != "" {
		return fmt.Sprintf("%s %s (%s): %v", e.Op, e.Entity, e.Context, e.Cause)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *GraphError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error's cause.
func (e *GraphError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

func vertexError(op string, v int, cause error) error {
	return &GraphError{Op: op, Entity: "vertex", ID: v, HasID: true, Cause: cause}
}

func edgeError(op string, e int, cause error) error {
	return &GraphError{Op: op, Entity: "edge", ID: e, HasID: true, Cause: cause}
}

func pairError(op string, a, b int, cause error) error {
	return &GraphError{Op: op, Entity: "pair", Context: fmt.Sprintf("%d-%d", a, b), Cause: cause}
}

// ParseError reports a malformed edge-list line.
type ParseError struct {
	Line  int
	Text  string
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("edge list line %d %q: %v", e.Line, e.Text, e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// IsNotFound returns true if the error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrEdgeNotFound)
}
