package commands

import (
	"context"
	"fmt"
	"math/big"

	"github.com/hashicorp/go-hclog"

	"flow/internal/application"
	"flow/internal/domain"
	"flow/internal/logging"
	"flow/internal/ports"
)

// CountResult contains the number of satisfying assignments
type CountResult struct {
	Count   *big.Int
	Total   *big.Int
	Message string
}

// CountCommand counts the assignments under which a diagram is true
type CountCommand struct {
	counter ports.Counter
	diagram *domain.Bdd
	logger  hclog.Logger
}

// NewCountCommand creates a new CountCommand
func NewCountCommand(counter ports.Counter, diagram *domain.Bdd, logger hclog.Logger) *CountCommand {
	return &CountCommand{
		counter: counter,
		diagram: diagram,
		logger:  logging.OrNull(logger),
	}
}

// Execute runs the count command
func (c *CountCommand) Execute(ctx context.Context) (*CountResult, error) {
	count, err := c.counter.Count(c.diagram)
	if err != nil {
		return nil, unsupported(err)
	}

	total := new(big.Int).Lsh(big.NewInt(1), uint(c.diagram.NumVars()))
	c.logger.Trace("counted", "count", count.String(), "total", total.String())

	return &CountResult{
		Count:   count,
		Total:   total,
		Message: fmt.Sprintf("%s of %s assignments are true", count, total),
	}, nil
}

// EquivalenceResult reports whether two diagrams compute the same function
type EquivalenceResult struct {
	Equivalent bool
	Message    string
}

// EquivalenceCommand compares two diagrams over the same variables
type EquivalenceCommand struct {
	counter     ports.Counter
	left, right *domain.Bdd
}

// NewEquivalenceCommand creates a new EquivalenceCommand
func NewEquivalenceCommand(counter ports.Counter, left, right *domain.Bdd) *EquivalenceCommand {
	return &EquivalenceCommand{
		counter: counter,
		left:    left,
		right:   right,
	}
}

// Validate checks that both diagrams range over the same variables
func (c *EquivalenceCommand) Validate() error {
	if c.left.NumVars() != c.right.NumVars() {
		return fmt.Errorf("%w: %d and %d", application.ErrVarsMismatch, c.left.NumVars(), c.right.NumVars())
	}
	return nil
}

// Execute runs the equivalence command
func (c *EquivalenceCommand) Execute(ctx context.Context) (*EquivalenceResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	same, err := c.counter.Equivalent(c.left, c.right)
	if err != nil {
		return nil, unsupported(err)
	}

	msg := "equivalent"
	if !same {
		msg = "not equivalent"
	}
	return &EquivalenceResult{Equivalent: same, Message: msg}, nil
}
