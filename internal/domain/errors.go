package domain

import (
	"errors"
	"fmt"
)

// Parse error kinds. A *ParseError always wraps exactly one of these.
var (
	ErrMalformedHeader = errors.New("malformed header")
	ErrNodeCount       = errors.New("node count mismatch")
	ErrMalformedNode   = errors.New("malformed node line")
	ErrInvalidBranch   = errors.New("invalid branch target")
	ErrInvalidSelector = errors.New("invalid selector")
	ErrNodeID          = errors.New("duplicate or missing node id")
	ErrNoTerminal      = errors.New("no terminal node")
)

// Evaluation error kinds. An *EvalError always wraps exactly one of these.
var (
	ErrAssignmentLength = errors.New("assignment length mismatch")
	ErrEmptyDiagram     = errors.New("empty diagram")
	ErrStepBound        = errors.New("traversal step bound exceeded")
	ErrTableTooLarge    = errors.New("truth table too large")
	ErrTooManyVars      = errors.New("too many variables")
)

// ErrInvalidAssignment is returned when a hex assignment cannot be decoded.
var ErrInvalidAssignment = errors.New("invalid assignment")

// ParseError reports why a textual definition was rejected. Line is 1-based
// and zero when the problem is not tied to a single line.
type ParseError struct {
	Line   int
	Err    error
	Detail string
}

func (e *ParseError) Error() string {
	msg := e.Err.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// EvalError reports why a diagram could not be evaluated.
type EvalError struct {
	Err    error
	Detail string
}

func (e *EvalError) Error() string {
	if e.Detail != "" {
		return e.Err.Error() + ": " + e.Detail
	}
	return e.Err.Error()
}

func (e *EvalError) Unwrap() error {
	return e.Err
}

func nodeDetail(id int, detail string) string {
	return fmt.Sprintf("node %d: %s", id, detail)
}

func branchDetail(high, low, numNodes int) string {
	return fmt.Sprintf("targets (%d, %d) must both be -1 or both lie in [0, %d)", high, low, numNodes)
}

func selectorDetail(v, numVars int) string {
	return fmt.Sprintf("variable %d outside [0, %d)", v, numVars)
}
