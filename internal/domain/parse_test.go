package domain

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const (
	notGate = `vars 1
nodes 3
0 2 1 0
1 -1 -1 1
2 -1 -1 0`

	identityGate = `vars 1
nodes 3
0 2 1 0
1 -1 -1 0
2 -1 -1 1`

	andGate = `vars 2
nodes 4
0 1 3 0
1 2 3 1
2 -1 -1 1
3 -1 -1 0`

	// node 0 loops on itself when variable 0 is true
	selfLoop = `vars 1
nodes 2
0 0 1 0
1 -1 -1 1`
)

func mustParse(t *testing.T, text string) *Bdd {
	t.Helper()
	b, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return b
}

func TestParse_NotGate(t *testing.T) {
	b := mustParse(t, notGate)

	if b.NumVars() != 1 {
		t.Errorf("expected 1 variable, got %d", b.NumVars())
	}
	want := []Node{
		Decision{Var: 0, High: 2, Low: 1},
		Terminal{Value: true},
		Terminal{Value: false},
	}
	if diff := cmp.Diff(want, b.Nodes()); diff != "" {
		t.Errorf("nodes mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_NodeLinesInAnyOrder(t *testing.T) {
	b := mustParse(t, `vars 2
nodes 4
3 -1 -1 0
1 2 3 1
2 -1 -1 1
0 1 3 0`)

	if diff := cmp.Diff(mustParse(t, andGate).Nodes(), b.Nodes()); diff != "" {
		t.Errorf("nodes mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_ToleratesBlankLinesAndCRLF(t *testing.T) {
	b := mustParse(t, "\r\nvars 1\r\n\r\nnodes 3\r\n0  2 1 0\r\n1 -1 -1 1\r\n2 -1 -1 0\r\n\r\n")

	if b.Len() != 3 {
		t.Errorf("expected 3 nodes, got %d", b.Len())
	}
}

func TestParse_ConstantDiagram(t *testing.T) {
	b := mustParse(t, "vars 0\nnodes 1\n0 -1 -1 1")

	falses, trues := b.Terminals()
	if falses != 0 || trues != 1 {
		t.Errorf("expected (0, 1) terminals, got (%d, %d)", falses, trues)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantErr  error
		wantLine int
	}{
		{
			name:    "empty input",
			input:   "",
			wantErr: ErrMalformedHeader,
		},
		{
			name:    "vars line only",
			input:   "vars 1",
			wantErr: ErrMalformedHeader,
		},
		{
			name:     "non-integer vars",
			input:    "vars x\nnodes 1\n0 -1 -1 1",
			wantErr:  ErrMalformedHeader,
			wantLine: 1,
		},
		{
			name:     "negative nodes",
			input:    "vars 1\nnodes -1",
			wantErr:  ErrMalformedHeader,
			wantLine: 2,
		},
		{
			name:     "headers swapped",
			input:    "nodes 1\nvars 1\n0 -1 -1 1",
			wantErr:  ErrMalformedHeader,
			wantLine: 1,
		},
		{
			name:    "fewer node lines than declared",
			input:   "vars 1\nnodes 2\n0 -1 -1 1",
			wantErr: ErrNodeCount,
		},
		{
			name:     "more node lines than declared",
			input:    "vars 1\nnodes 1\n0 -1 -1 1\n1 -1 -1 0",
			wantErr:  ErrNodeCount,
			wantLine: 4,
		},
		{
			name:     "wrong field count",
			input:    "vars 1\nnodes 1\n0 -1 -1",
			wantErr:  ErrMalformedNode,
			wantLine: 3,
		},
		{
			name:     "non-integer field",
			input:    "vars 1\nnodes 1\n0 -1 -1 yes",
			wantErr:  ErrMalformedNode,
			wantLine: 3,
		},
		{
			name:     "asymmetric sentinel",
			input:    "vars 1\nnodes 4\n0 -1 3 0\n1 -1 -1 1\n2 -1 -1 0\n3 -1 -1 0",
			wantErr:  ErrInvalidBranch,
			wantLine: 3,
		},
		{
			name:     "branch out of range",
			input:    "vars 1\nnodes 2\n0 1 2 0\n1 -1 -1 1",
			wantErr:  ErrInvalidBranch,
			wantLine: 3,
		},
		{
			name:     "decision selector out of range",
			input:    "vars 1\nnodes 3\n0 2 1 1\n1 -1 -1 1\n2 -1 -1 0",
			wantErr:  ErrInvalidSelector,
			wantLine: 3,
		},
		{
			name:     "terminal value not 0 or 1",
			input:    "vars 1\nnodes 1\n0 -1 -1 2",
			wantErr:  ErrInvalidSelector,
			wantLine: 3,
		},
		{
			name:     "duplicate id",
			input:    "vars 1\nnodes 2\n0 -1 -1 1\n0 -1 -1 0",
			wantErr:  ErrNodeID,
			wantLine: 4,
		},
		{
			name:     "negative id",
			input:    "vars 1\nnodes 1\n-1 0 0 0",
			wantErr:  ErrNodeID,
			wantLine: 3,
		},
		{
			name:     "one-indexed ids",
			input:    "vars 1\nnodes 2\n1 -1 -1 0\n2 -1 -1 1",
			wantErr:  ErrNodeID,
			wantLine: 4,
		},
		{
			name:    "no terminal",
			input:   "vars 1\nnodes 1\n0 0 0 0",
			wantErr: ErrNoTerminal,
		},
		{
			name:    "no nodes",
			input:   "vars 0\nnodes 0",
			wantErr: ErrNoTerminal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("expected error, got diagram %v", b)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}

			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *ParseError, got %T", err)
			}
			if pe.Line != tt.wantLine {
				t.Errorf("expected line %d, got %d (%v)", tt.wantLine, pe.Line, err)
			}
		})
	}
}

func TestNew_ValidatesLikeParse(t *testing.T) {
	tests := []struct {
		name    string
		numVars int
		nodes   []Node
		wantErr error
	}{
		{
			name:    "valid",
			numVars: 1,
			nodes:   []Node{Decision{Var: 0, High: 1, Low: 2}, Terminal{Value: true}, Terminal{}},
		},
		{
			name:    "dangling branch",
			numVars: 1,
			nodes:   []Node{Decision{Var: 0, High: 1, Low: 7}, Terminal{Value: true}},
			wantErr: ErrInvalidBranch,
		},
		{
			name:    "selector out of range",
			numVars: 1,
			nodes:   []Node{Decision{Var: 3, High: 1, Low: 1}, Terminal{Value: true}},
			wantErr: ErrInvalidSelector,
		},
		{
			name:    "no terminal",
			numVars: 1,
			nodes:   []Node{Decision{Var: 0, High: 0, Low: 0}},
			wantErr: ErrNoTerminal,
		},
		{
			name:    "nil node",
			numVars: 1,
			nodes:   []Node{Terminal{}, nil},
			wantErr: ErrMalformedNode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.numVars, tt.nodes)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestNew_CopiesNodes(t *testing.T) {
	nodes := []Node{Terminal{Value: true}}
	b, err := New(0, nodes)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	nodes[0] = Terminal{Value: false}

	got, _ := b.Evaluate(nil)
	if !got {
		t.Error("diagram changed after its input slice was modified")
	}
}
