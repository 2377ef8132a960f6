package algorithms

import (
	"errors"
	"testing"

	"github.com/jameshskoh/girvan-newman/pkg/graph"
)

// TestEdgeTable_InitiallyAlive tests a fresh table
func TestEdgeTable_InitiallyAlive(t *testing.T) {
	g := twoTriangles(t)
	table := NewEdgeTable(g)

	if table.Len() != 7 {
		t.Fatalf("Expected 7 edges, got %d", table.Len())
	}
	if table.AliveCount() != 7 {
		t.Errorf("Expected 7 alive edges, got %d", table.AliveCount())
	}

	for e := 0; e < table.Len(); e++ {
		state, err := table.Get(e)
		if err != nil {
			t.Fatalf("Get(%d) failed: %v", e, err)
		}
		if !state.Alive() {
			t.Errorf("Expected edge %d alive", e)
		}
		if state.IterationKilled() != 0 {
			t.Errorf("Expected edge %d not killed, got iteration %d", e, state.IterationKilled())
		}
		if state.Index != e {
			t.Errorf("Expected index %d, got %d", e, state.Index)
		}
	}

	bridge, _ := table.Get(3)
	if bridge.Endpoints != (graph.EdgeKey{A: 2, B: 3}) {
		t.Errorf("Expected edge 3 to be 2-3, got %v", bridge.Endpoints)
	}
}

// TestEdgeTable_Kill tests marking edges dead
func TestEdgeTable_Kill(t *testing.T) {
	table := NewEdgeTable(twoTriangles(t))

	if err := table.Kill([]int{3, 0}, 2); err != nil {
		t.Fatalf("Kill failed: %v", err)
	}

	if table.AliveCount() != 5 {
		t.Errorf("Expected 5 alive edges, got %d", table.AliveCount())
	}
	if table.IsAlive(3) || table.IsAlive(0) {
		t.Error("Expected edges 0 and 3 dead")
	}
	if !table.IsAlive(1) {
		t.Error("Expected edge 1 alive")
	}

	state, _ := table.Get(3)
	if state.IterationKilled() != 2 {
		t.Errorf("Expected kill iteration 2, got %d", state.IterationKilled())
	}

	killed := table.KilledIn(2)
	if len(killed) != 2 || killed[0] != 0 || killed[1] != 3 {
		t.Errorf("Expected KilledIn(2) = [0 3], got %v", killed)
	}
	if len(table.KilledIn(1)) != 0 {
		t.Error("Expected nothing killed in iteration 1")
	}
}

// TestEdgeTable_KillErrors tests invalid kills leave the table unchanged
func TestEdgeTable_KillErrors(t *testing.T) {
	table := NewEdgeTable(twoTriangles(t))

	tests := []struct {
		name  string
		edges []int
		iter  int
		want  error
	}{
		{"zero iteration", []int{1}, 0, ErrInvalidIteration},
		{"negative iteration", []int{1}, -3, ErrInvalidIteration},
		{"out of range", []int{1, 7}, 1, ErrEdgeOutOfRange},
		{"duplicate in batch", []int{1, 1}, 1, ErrEdgeAlreadyDead},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := table.Kill(tt.edges, tt.iter)
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
			if table.AliveCount() != 7 {
				t.Errorf("Expected table unchanged, %d alive", table.AliveCount())
			}
		})
	}

	if err := table.Kill([]int{4}, 1); err != nil {
		t.Fatalf("Kill failed: %v", err)
	}
	if err := table.Kill([]int{4}, 2); !errors.Is(err, ErrEdgeAlreadyDead) {
		t.Errorf("Expected ErrEdgeAlreadyDead, got %v", err)
	}
	state, _ := table.Get(4)
	if state.IterationKilled() != 1 {
		t.Errorf("Kill iteration must never be reset, got %d", state.IterationKilled())
	}
}

// TestEdgeState_Kill tests the single-edge kill contract
func TestEdgeState_Kill(t *testing.T) {
	table, err := NewEdgeTableSized(2)
	if err != nil {
		t.Fatalf("NewEdgeTableSized failed: %v", err)
	}
	state, _ := table.Get(1)

	if err := state.Kill(0); !errors.Is(err, ErrInvalidIteration) {
		t.Errorf("Expected ErrInvalidIteration, got %v", err)
	}
	if err := state.Kill(5); err != nil {
		t.Fatalf("Kill failed: %v", err)
	}
	if state.Alive() || state.IterationKilled() != 5 {
		t.Errorf("Expected dead at 5, got alive=%v iteration=%d", state.Alive(), state.IterationKilled())
	}
	if err := state.Kill(6); !errors.Is(err, ErrEdgeAlreadyDead) {
		t.Errorf("Expected ErrEdgeAlreadyDead, got %v", err)
	}

	var algErr *AlgorithmError
	if err := state.Kill(6); !errors.As(err, &algErr) || algErr.ID != 1 {
		t.Errorf("Expected AlgorithmError for edge 1, got %v", err)
	}
}

// TestNewEdgeTableSized_Negative tests construction input validation
func TestNewEdgeTableSized_Negative(t *testing.T) {
	if _, err := NewEdgeTableSized(-1); !errors.Is(err, ErrNegativeCount) {
		t.Errorf("Expected ErrNegativeCount, got %v", err)
	}
	if _, err := NewEdgeTableSized(0); err != nil {
		t.Errorf("Expected empty table to be valid, got %v", err)
	}
}

// TestEdgeTable_GetOutOfRange tests invalid access
func TestEdgeTable_GetOutOfRange(t *testing.T) {
	table := NewEdgeTable(twoTriangles(t))

	if _, err := table.Get(-1); !errors.Is(err, ErrEdgeOutOfRange) {
		t.Errorf("Expected ErrEdgeOutOfRange, got %v", err)
	}
	if table.IsAlive(99) {
		t.Error("Expected out-of-range edge to report not alive")
	}
}
