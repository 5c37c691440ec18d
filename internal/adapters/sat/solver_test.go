package sat

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"flow/internal/domain"
)

var diagrams = map[string]string{
	"not": `vars 1
nodes 3
0 2 1 0
1 -1 -1 1
2 -1 -1 0`,
	"and": `vars 2
nodes 4
0 1 3 0
1 2 3 1
2 -1 -1 1
3 -1 -1 0`,
	"xor02": `vars 3
nodes 5
0 1 2 0
1 4 3 2
2 3 4 2
3 -1 -1 1
4 -1 -1 0`,
	"false": "vars 2\nnodes 1\n0 -1 -1 0",
	"true":  "vars 0\nnodes 1\n0 -1 -1 1",
	"shared false": `vars 2
nodes 3
0 1 1 0
1 2 2 1
2 -1 -1 0`,
}

func mustParse(t *testing.T, text string) *domain.Bdd {
	t.Helper()
	b, err := domain.Parse(text)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return b
}

func TestSatisfy_AgreesWithTruthTable(t *testing.T) {
	s := NewSolver(nil)

	for name, def := range diagrams {
		t.Run(name, func(t *testing.T) {
			b := mustParse(t, def)

			rows, err := b.TruthTable()
			if err != nil {
				t.Fatalf("TruthTable failed: %v", err)
			}
			wantSat := false
			for _, row := range rows {
				wantSat = wantSat || row.Result
			}

			assignment, ok, err := s.Satisfy(b)
			if err != nil {
				t.Fatalf("Satisfy failed: %v", err)
			}
			if ok != wantSat {
				t.Fatalf("expected satisfiable=%t, got %t", wantSat, ok)
			}
			if !ok {
				return
			}
			if len(assignment) != b.NumVars() {
				t.Fatalf("expected %d values, got %d", b.NumVars(), len(assignment))
			}
			if got, _ := b.Evaluate(assignment); !got {
				t.Errorf("assignment %v does not satisfy the diagram", assignment)
			}
		})
	}
}

func TestSatisfy_And(t *testing.T) {
	assignment, ok, err := NewSolver(nil).Satisfy(mustParse(t, diagrams["and"]))
	if err != nil || !ok {
		t.Fatalf("expected satisfiable, got ok=%t err=%v", ok, err)
	}
	if !assignment[0] || !assignment[1] {
		t.Errorf("expected both variables true, got %v", assignment)
	}
}

func TestSatisfy_RejectsCycles(t *testing.T) {
	b := mustParse(t, "vars 1\nnodes 2\n0 0 1 0\n1 -1 -1 1")

	if _, _, err := NewSolver(nil).Satisfy(b); !errors.Is(err, domain.ErrCyclic) {
		t.Errorf("expected ErrCyclic, got %v", err)
	}
}

func TestSatisfy_RejectsHugeVariableCounts(t *testing.T) {
	b := mustParse(t, "vars 4611686018427387904\nnodes 1\n0 -1 -1 1\n")
	s := NewSolver(nil)

	if _, _, err := s.Satisfy(b); !errors.Is(err, domain.ErrTooManyVars) {
		t.Errorf("expected ErrTooManyVars, got %v", err)
	}
	var buf bytes.Buffer
	if err := s.WriteDimacs(b, &buf); !errors.Is(err, domain.ErrTooManyVars) {
		t.Errorf("expected ErrTooManyVars from WriteDimacs, got %v", err)
	}
}

func TestWriteDimacs(t *testing.T) {
	var buf bytes.Buffer
	if err := NewSolver(nil).WriteDimacs(mustParse(t, diagrams["and"]), &buf); err != nil {
		t.Fatalf("WriteDimacs failed: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "p cnf ") {
		t.Errorf("expected DIMACS prologue, got %q", out)
	}
	for _, name := range []string{"c n0=", "c x0=", "c x1="} {
		if !strings.Contains(out, name) {
			t.Errorf("expected %q in output:\n%s", name, out)
		}
	}
}
