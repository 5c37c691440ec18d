package commands

import (
	"context"
	"fmt"

	"flow/internal/application"
	"flow/internal/domain"
)

// ParseResult summarizes a definition that parsed successfully
type ParseResult struct {
	Diagram   *domain.Bdd
	NumVars   int
	Nodes     int
	Trues     int
	Falses    int
	Reachable int
	Cyclic    bool
	Message   string
}

// ParseCommand validates a raw definition
type ParseCommand struct {
	Definition string
}

// NewParseCommand creates a new ParseCommand
func NewParseCommand(definition string) *ParseCommand {
	return &ParseCommand{Definition: definition}
}

// Validate checks that a definition was provided
func (c *ParseCommand) Validate() error {
	return application.ValidateRequired("definition", c.Definition)
}

// Execute runs the parse command
func (c *ParseCommand) Execute(ctx context.Context) (*ParseResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	b, err := domain.Parse(c.Definition)
	if err != nil {
		return nil, err
	}

	falses, trues := b.Terminals()
	cyclic := b.Acyclic() != nil
	reachable := b.Reachable().Cardinality()

	msg := fmt.Sprintf("%d variables, %d nodes (%d reachable)", b.NumVars(), b.Len(), reachable)
	if cyclic {
		msg += ", contains a cycle"
	}

	return &ParseResult{
		Diagram:   b,
		NumVars:   b.NumVars(),
		Nodes:     b.Len(),
		Trues:     trues,
		Falses:    falses,
		Reachable: reachable,
		Cyclic:    cyclic,
		Message:   msg,
	}, nil
}
