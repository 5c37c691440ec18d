package commands

import (
	"context"

	"flow/internal/application"
	"flow/internal/domain"
)

// EvaluateResult contains the outcome of one evaluation
type EvaluateResult struct {
	Assignment []bool
	Hex        string
	Value      bool
}

// EvaluateCommand evaluates a diagram under a hex-encoded assignment
type EvaluateCommand struct {
	diagram    *domain.Bdd
	Assignment string
}

// NewEvaluateCommand creates a new EvaluateCommand
func NewEvaluateCommand(diagram *domain.Bdd, assignment string) *EvaluateCommand {
	return &EvaluateCommand{
		diagram:    diagram,
		Assignment: assignment,
	}
}

// Validate checks the assignment syntax
func (c *EvaluateCommand) Validate() error {
	if c.diagram == nil {
		return &application.ValidationError{Field: "definition", Message: "diagram is required"}
	}
	return application.ValidateHex("assignment", c.Assignment)
}

// Execute runs the evaluate command
func (c *EvaluateCommand) Execute(ctx context.Context) (*EvaluateResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	assignment, err := domain.DecodeHex(c.Assignment, c.diagram.NumVars())
	if err != nil {
		return nil, &application.ValidationError{Field: "assignment", Message: err.Error()}
	}

	value, err := c.diagram.Evaluate(assignment)
	if err != nil {
		return nil, err
	}

	return &EvaluateResult{
		Assignment: assignment,
		Hex:        domain.EncodeHex(assignment),
		Value:      value,
	}, nil
}
