package sat

import (
	"fmt"
	"io"
	"slices"

	"github.com/crillab/gophersat/bf"
	"github.com/hashicorp/go-hclog"

	"flow/internal/domain"
	"flow/internal/logging"
	"flow/internal/ports"
)

// Solver implements ports.Satisfier with gophersat.
//
// Every reachable node i gets a propositional variable n<i> that is true
// exactly when the walk from node i ends on a true terminal, and variable v
// of the diagram becomes x<v>. A decision node contributes
// n<i> <-> (x<v> & n<high>) | (!x<v> & n<low>), a terminal fixes its n<i>,
// and the root n0 is asserted.
type Solver struct {
	logger hclog.Logger
}

var _ ports.Satisfier = (*Solver)(nil)

// NewSolver creates a solver; a nil logger discards output
func NewSolver(logger hclog.Logger) *Solver {
	return &Solver{logger: logging.OrNull(logger).Named("sat")}
}

// Satisfy returns an assignment under which the diagram evaluates to true
func (s *Solver) Satisfy(b *domain.Bdd) ([]bool, bool, error) {
	f, err := encode(b)
	if err != nil {
		return nil, false, err
	}

	model := bf.Solve(f)
	if model == nil {
		s.logger.Debug("unsatisfiable", "vars", b.NumVars(), "nodes", b.Len())
		return nil, false, nil
	}

	// inputs the formula never mentions are free; false is as good as any
	assignment := make([]bool, b.NumVars())
	for v := range assignment {
		assignment[v] = model[inputVar(v)]
	}

	ok, err := b.Evaluate(assignment)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, fmt.Errorf("solver model %s does not satisfy the diagram", domain.EncodeHex(assignment))
	}

	s.logger.Debug("satisfiable", "assignment", domain.EncodeHex(assignment))
	return assignment, true, nil
}

// WriteDimacs writes the encoding in DIMACS CNF. Comment lines map the
// variable names above to their DIMACS indices.
func (s *Solver) WriteDimacs(b *domain.Bdd, w io.Writer) error {
	f, err := encode(b)
	if err != nil {
		return err
	}
	if err := bf.Dimacs(f, w); err != nil {
		return fmt.Errorf("failed to write cnf: %w", err)
	}
	return nil
}

func encode(b *domain.Bdd) (bf.Formula, error) {
	if b.Len() == 0 {
		return nil, &domain.EvalError{Err: domain.ErrEmptyDiagram}
	}
	if err := b.CheckVars(domain.MaxSolveVars); err != nil {
		return nil, err
	}
	if err := b.Acyclic(); err != nil {
		return nil, err
	}

	ids := b.Reachable().ToSlice()
	slices.Sort(ids)

	clauses := make([]bf.Formula, 0, len(ids)+1)
	clauses = append(clauses, bf.Var(nodeVar(0)))
	for _, id := range ids {
		node, _ := b.Node(id)
		self := bf.Var(nodeVar(id))

		switch n := node.(type) {
		case domain.Terminal:
			if n.Value {
				clauses = append(clauses, self)
			} else {
				clauses = append(clauses, bf.Not(self))
			}
		case domain.Decision:
			x := bf.Var(inputVar(n.Var))
			next := bf.Or(
				bf.And(x, bf.Var(nodeVar(n.High))),
				bf.And(bf.Not(x), bf.Var(nodeVar(n.Low))),
			)
			clauses = append(clauses, bf.Eq(self, next))
		}
	}

	return bf.And(clauses...), nil
}

func nodeVar(id int) string {
	return fmt.Sprintf("n%d", id)
}

func inputVar(v int) string {
	return fmt.Sprintf("x%d", v)
}
