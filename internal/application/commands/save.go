package commands

import (
	"context"
	"fmt"

	"flow/internal/application"
	"flow/internal/domain"
	"flow/internal/ports"
)

// SaveDiagramResult contains the result of storing a definition
type SaveDiagramResult struct {
	Name    string
	Path    string
	Diagram *domain.Bdd
	Message string
}

// SaveDiagramCommand parses a definition and stores its canonical form
type SaveDiagramCommand struct {
	repo       ports.DiagramRepository
	Name       string
	Definition string
}

// NewSaveDiagramCommand creates a new SaveDiagramCommand
func NewSaveDiagramCommand(repo ports.DiagramRepository, name, definition string) *SaveDiagramCommand {
	return &SaveDiagramCommand{
		repo:       repo,
		Name:       name,
		Definition: definition,
	}
}

// Validate checks the name and the definition text
func (c *SaveDiagramCommand) Validate() error {
	if err := application.ValidateDiagramName("diagramName", c.Name); err != nil {
		return err
	}
	return application.ValidateRequired("definition", c.Definition)
}

// Execute runs the save command
func (c *SaveDiagramCommand) Execute(ctx context.Context) (*SaveDiagramResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	b, err := domain.Parse(c.Definition)
	if err != nil {
		return nil, &application.DiagramError{Name: c.Name, Err: err}
	}

	path, err := c.repo.Save(c.Name, b.String())
	if err != nil {
		return nil, fmt.Errorf("failed to save diagram: %w", err)
	}

	return &SaveDiagramResult{
		Name:    c.Name,
		Path:    path,
		Diagram: b,
		Message: fmt.Sprintf("Saved %s (%d variables, %d nodes)", path, b.NumVars(), b.Len()),
	}, nil
}
