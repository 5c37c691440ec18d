package commands

import (
	"context"
	"fmt"

	"flow/internal/domain"
	"flow/internal/ports"
)

// ListDiagramsCommand lists all definitions in the workspace
type ListDiagramsCommand struct {
	repo ports.DiagramRepository
}

// NewListDiagramsCommand creates a new ListDiagramsCommand
func NewListDiagramsCommand(repo ports.DiagramRepository) *ListDiagramsCommand {
	return &ListDiagramsCommand{repo: repo}
}

// Execute runs the list command
func (c *ListDiagramsCommand) Execute(ctx context.Context) ([]domain.DiagramInfo, error) {
	diagrams, err := c.repo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list diagrams: %w", err)
	}
	return diagrams, nil
}
