package robdd

import (
	"fmt"
	"math/big"

	"github.com/dalzilio/rudd"
	"github.com/hashicorp/go-hclog"

	"flow/internal/application"
	"flow/internal/domain"
	"flow/internal/logging"
	"flow/internal/ports"
)

// Engine implements ports.Counter by rebuilding diagrams as reduced ordered
// BDDs in rudd. Reduction makes equal functions share one node, so
// equivalence is a node comparison and counting is rudd's Satcount.
type Engine struct {
	logger hclog.Logger
}

var _ ports.Counter = (*Engine)(nil)

// NewEngine creates an engine; a nil logger discards output
func NewEngine(logger hclog.Logger) *Engine {
	return &Engine{logger: logging.OrNull(logger).Named("robdd")}
}

// Count returns the number of assignments that evaluate to true
func (e *Engine) Count(b *domain.Bdd) (*big.Int, error) {
	if err := check(b); err != nil {
		return nil, err
	}
	if b.NumVars() == 0 {
		// rudd needs at least one variable
		v, err := b.Evaluate(nil)
		if err != nil {
			return nil, err
		}
		if v {
			return big.NewInt(1), nil
		}
		return big.NewInt(0), nil
	}

	set, err := rudd.New(b.NumVars())
	if err != nil {
		return nil, fmt.Errorf("failed to create robdd: %w", err)
	}
	root := compile(set, b)
	if set.Errored() {
		return nil, fmt.Errorf("robdd: %s", set.Error())
	}

	count := set.Satcount(root)
	e.logger.Debug("counted", "vars", b.NumVars(), "nodes", b.Len(), "count", count.String())
	return count, nil
}

// Equivalent reports whether two diagrams compute the same function
func (e *Engine) Equivalent(left, right *domain.Bdd) (bool, error) {
	if left.NumVars() != right.NumVars() {
		return false, fmt.Errorf("%w: %d and %d", application.ErrVarsMismatch, left.NumVars(), right.NumVars())
	}
	if err := check(left); err != nil {
		return false, fmt.Errorf("left: %w", err)
	}
	if err := check(right); err != nil {
		return false, fmt.Errorf("right: %w", err)
	}
	if left.NumVars() == 0 {
		l, err := left.Evaluate(nil)
		if err != nil {
			return false, err
		}
		r, err := right.Evaluate(nil)
		if err != nil {
			return false, err
		}
		return l == r, nil
	}

	set, err := rudd.New(left.NumVars())
	if err != nil {
		return false, fmt.Errorf("failed to create robdd: %w", err)
	}
	l := compile(set, left)
	r := compile(set, right)
	if set.Errored() {
		return false, fmt.Errorf("robdd: %s", set.Error())
	}

	same := set.Equal(l, r)
	e.logger.Debug("compared", "vars", left.NumVars(), "equivalent", same)
	return same, nil
}

func check(b *domain.Bdd) error {
	if b.Len() == 0 {
		return &domain.EvalError{Err: domain.ErrEmptyDiagram}
	}
	if err := b.CheckVars(domain.MaxSolveVars); err != nil {
		return err
	}
	return b.Acyclic()
}

// compile translates an acyclic diagram bottom-up with Ite, sharing the
// result of every node across all of its parents.
func compile(set *rudd.BDD, b *domain.Bdd) rudd.Node {
	memo := make(map[int]rudd.Node, b.Len())

	var build func(id int) rudd.Node
	build = func(id int) rudd.Node {
		if n, ok := memo[id]; ok {
			return n
		}
		node, _ := b.Node(id)

		var n rudd.Node
		switch node := node.(type) {
		case domain.Terminal:
			if node.Value {
				n = set.True()
			} else {
				n = set.False()
			}
		case domain.Decision:
			n = set.Ite(set.Ithvar(node.Var), build(node.High), build(node.Low))
		}
		memo[id] = n
		return n
	}

	return build(0)
}
