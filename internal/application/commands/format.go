package commands

import (
	"context"

	"flow/internal/application"
	"flow/internal/domain"
)

// FormatCommand rewrites a definition in canonical form: single spaces,
// no blank lines, node lines ordered by id.
type FormatCommand struct {
	Definition string
}

// NewFormatCommand creates a new FormatCommand
func NewFormatCommand(definition string) *FormatCommand {
	return &FormatCommand{Definition: definition}
}

// Execute runs the format command
func (c *FormatCommand) Execute(ctx context.Context) (string, error) {
	if err := application.ValidateRequired("definition", c.Definition); err != nil {
		return "", err
	}
	return domain.Canonical(c.Definition)
}
