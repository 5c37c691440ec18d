package robdd

import (
	"errors"
	"testing"

	"flow/internal/application"
	"flow/internal/domain"
)

const (
	andGate = `vars 2
nodes 4
0 1 3 0
1 2 3 1
2 -1 -1 1
3 -1 -1 0`

	// same function, variable 1 tested first
	andReordered = `vars 2
nodes 4
0 1 2 1
1 3 2 0
2 -1 -1 0
3 -1 -1 1`

	orGate = `vars 2
nodes 4
0 3 1 0
1 3 2 1
2 -1 -1 0
3 -1 -1 1`

	xor02 = `vars 3
nodes 5
0 1 2 0
1 4 3 2
2 3 4 2
3 -1 -1 1
4 -1 -1 0`

	selfLoop = "vars 1\nnodes 2\n0 0 1 0\n1 -1 -1 1"
)

func mustParse(t *testing.T, text string) *domain.Bdd {
	t.Helper()
	b, err := domain.Parse(text)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return b
}

func TestCount_MatchesTruthTable(t *testing.T) {
	tests := []struct {
		name       string
		definition string
		want       int64
	}{
		{"and", andGate, 1},
		{"or", orGate, 3},
		{"xor with unused var", xor02, 4},
		{"constant true over three vars", "vars 3\nnodes 1\n0 -1 -1 1", 8},
		{"constant false", "vars 3\nnodes 1\n0 -1 -1 0", 0},
		{"no vars true", "vars 0\nnodes 1\n0 -1 -1 1", 1},
		{"no vars false", "vars 0\nnodes 1\n0 -1 -1 0", 0},
	}

	e := NewEngine(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustParse(t, tt.definition)

			got, err := e.Count(b)
			if err != nil {
				t.Fatalf("Count failed: %v", err)
			}
			if got.Int64() != tt.want {
				t.Errorf("expected %d, got %s", tt.want, got)
			}

			rows, err := b.TruthTable()
			if err != nil {
				t.Fatalf("TruthTable failed: %v", err)
			}
			var trues int64
			for _, row := range rows {
				if row.Result {
					trues++
				}
			}
			if got.Int64() != trues {
				t.Errorf("truth table has %d true rows, Count says %s", trues, got)
			}
		})
	}
}

func TestCount_RejectsCycles(t *testing.T) {
	if _, err := NewEngine(nil).Count(mustParse(t, selfLoop)); !errors.Is(err, domain.ErrCyclic) {
		t.Errorf("expected ErrCyclic, got %v", err)
	}
}

func TestCount_RejectsHugeVariableCounts(t *testing.T) {
	b := mustParse(t, "vars 4611686018427387904\nnodes 1\n0 -1 -1 1\n")

	if _, err := NewEngine(nil).Count(b); !errors.Is(err, domain.ErrTooManyVars) {
		t.Errorf("expected ErrTooManyVars, got %v", err)
	}
}

func TestEquivalent(t *testing.T) {
	tests := []struct {
		name        string
		left, right string
		want        bool
	}{
		{"identical", andGate, andGate, true},
		{"reordered", andGate, andReordered, true},
		{"different", andGate, orGate, false},
		{"constants", "vars 0\nnodes 1\n0 -1 -1 1", "vars 0\nnodes 2\n0 -1 -1 1\n1 -1 -1 0", true},
	}

	e := NewEngine(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Equivalent(mustParse(t, tt.left), mustParse(t, tt.right))
			if err != nil {
				t.Fatalf("Equivalent failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %t, got %t", tt.want, got)
			}
		})
	}
}

func TestEquivalent_Errors(t *testing.T) {
	e := NewEngine(nil)

	_, err := e.Equivalent(mustParse(t, andGate), mustParse(t, xor02))
	if !errors.Is(err, application.ErrVarsMismatch) {
		t.Errorf("expected ErrVarsMismatch, got %v", err)
	}

	loop := "vars 2\nnodes 2\n0 0 1 0\n1 -1 -1 1"
	_, err = e.Equivalent(mustParse(t, andGate), mustParse(t, loop))
	if !errors.Is(err, domain.ErrCyclic) {
		t.Errorf("expected ErrCyclic, got %v", err)
	}
}
