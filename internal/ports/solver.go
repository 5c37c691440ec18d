package ports

import (
	"io"
	"math/big"

	"flow/internal/domain"
)

// Satisfier finds assignments that make a diagram evaluate to true without
// enumerating the truth table.
type Satisfier interface {
	// Satisfy returns a satisfying assignment, or ok == false when the
	// diagram is false everywhere
	Satisfy(b *domain.Bdd) (assignment []bool, ok bool, err error)

	// WriteDimacs writes the CNF encoding of the diagram
	WriteDimacs(b *domain.Bdd, w io.Writer) error
}

// Counter answers whole-function questions through a reduced BDD engine
type Counter interface {
	// Count returns the number of assignments evaluating to true
	Count(b *domain.Bdd) (*big.Int, error)

	// Equivalent reports whether two diagrams over the same variables
	// compute the same function
	Equivalent(left, right *domain.Bdd) (bool, error)
}
