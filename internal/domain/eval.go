package domain

import "fmt"

// Evaluate walks the diagram from the root, following the branch selected by
// each decision node's variable, and returns the value of the terminal it
// reaches. The assignment holds one value per variable, indexed by variable
// id.
//
// The walk takes at most Len() steps; a diagram that loops instead of
// reaching a terminal yields ErrStepBound.
func (b *Bdd) Evaluate(assignment []bool) (bool, error) {
	if len(assignment) != b.numVars {
		return false, &EvalError{
			Err:    ErrAssignmentLength,
			Detail: fmt.Sprintf("got %d values for %d variables", len(assignment), b.numVars),
		}
	}
	if len(b.nodes) == 0 {
		return false, &EvalError{Err: ErrEmptyDiagram}
	}

	cur := 0
	for range len(b.nodes) {
		switch n := b.nodes[cur].(type) {
		case Terminal:
			return n.Value, nil
		case Decision:
			if assignment[n.Var] {
				cur = n.High
			} else {
				cur = n.Low
			}
		}
	}

	return false, &EvalError{
		Err:    ErrStepBound,
		Detail: fmt.Sprintf("no terminal reached within %d steps", len(b.nodes)),
	}
}
