package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"

	"flow/internal/domain"
	"flow/internal/logging"
	"flow/internal/ports"
)

// SatisfyResult contains a satisfying assignment, if one exists
type SatisfyResult struct {
	Satisfiable bool
	Assignment  []bool
	Hex         string
	Message     string
}

// SatisfyCommand searches for an assignment under which the diagram is true
type SatisfyCommand struct {
	solver  ports.Satisfier
	diagram *domain.Bdd
	logger  hclog.Logger
}

// NewSatisfyCommand creates a new SatisfyCommand
func NewSatisfyCommand(solver ports.Satisfier, diagram *domain.Bdd, logger hclog.Logger) *SatisfyCommand {
	return &SatisfyCommand{
		solver:  solver,
		diagram: diagram,
		logger:  logging.OrNull(logger),
	}
}

// Execute runs the satisfy command
func (c *SatisfyCommand) Execute(ctx context.Context) (*SatisfyResult, error) {
	c.logger.Trace("solving", "vars", c.diagram.NumVars(), "nodes", c.diagram.Len())

	assignment, ok, err := c.solver.Satisfy(c.diagram)
	if err != nil {
		return nil, unsupported(err)
	}
	if !ok {
		return &SatisfyResult{Message: "unsatisfiable: the diagram is false for every assignment"}, nil
	}

	hex := domain.EncodeHex(assignment)
	return &SatisfyResult{
		Satisfiable: true,
		Assignment:  assignment,
		Hex:         hex,
		Message:     fmt.Sprintf("satisfiable: %s", domain.DisplayHex(assignment)),
	}, nil
}

// CNFCommand writes the DIMACS encoding used by SatisfyCommand
type CNFCommand struct {
	solver  ports.Satisfier
	diagram *domain.Bdd
	out     io.Writer
}

// NewCNFCommand creates a new CNFCommand
func NewCNFCommand(solver ports.Satisfier, diagram *domain.Bdd, out io.Writer) *CNFCommand {
	return &CNFCommand{
		solver:  solver,
		diagram: diagram,
		out:     out,
	}
}

// Execute runs the cnf command
func (c *CNFCommand) Execute(ctx context.Context) error {
	return unsupported(c.solver.WriteDimacs(c.diagram, c.out))
}
