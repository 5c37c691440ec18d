package domain

import (
	"errors"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

// ErrCyclic is returned by Acyclic when a decision node can reach itself.
var ErrCyclic = errors.New("diagram contains a reachable cycle")

// MaxSolveVars is the largest variable count the solver encodings accept.
const MaxSolveVars = 1 << 16

// CheckVars fails with ErrTooManyVars when the diagram declares more than
// limit variables.
func (b *Bdd) CheckVars(limit int) error {
	if b.numVars > limit {
		return &EvalError{
			Err:    ErrTooManyVars,
			Detail: fmt.Sprintf("%d variables, limit is %d", b.numVars, limit),
		}
	}
	return nil
}

// Reachable returns the ids of the nodes that can be visited from the root
// under some assignment.
func (b *Bdd) Reachable() mapset.Set[int] {
	seen := mapset.NewThreadUnsafeSet[int]()
	if len(b.nodes) == 0 {
		return seen
	}
	stack := []int{0}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !seen.Add(id) {
			continue
		}
		if d, ok := b.nodes[id].(Decision); ok {
			stack = append(stack, d.High, d.Low)
		}
	}
	return seen
}

// Acyclic reports an ErrCyclic error naming one node of the first cycle found
// among the nodes reachable from the root.
func (b *Bdd) Acyclic() error {
	const (
		unvisited = iota
		onPath
		done
	)
	if len(b.nodes) == 0 {
		return nil
	}
	state := make([]uint8, len(b.nodes))

	type frame struct {
		id   int
		next int // 0: high pending, 1: low pending, 2: finished
	}
	stack := []frame{{id: 0}}
	state[0] = onPath
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		d, ok := b.nodes[top.id].(Decision)
		if !ok || top.next == 2 {
			state[top.id] = done
			stack = stack[:len(stack)-1]
			continue
		}
		child := d.High
		if top.next == 1 {
			child = d.Low
		}
		top.next++
		switch state[child] {
		case onPath:
			return fmt.Errorf("%w: node %d", ErrCyclic, child)
		case unvisited:
			state[child] = onPath
			stack = append(stack, frame{id: child})
		}
	}
	return nil
}
