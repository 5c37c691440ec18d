package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"flow/internal/application"
	"flow/internal/domain"
	"flow/internal/ports"
)

// LoadDiagramResult contains a parsed stored definition
type LoadDiagramResult struct {
	Name       string
	Definition string
	Diagram    *domain.Bdd
}

// LoadDiagramCommand reads a definition from the repository and parses it
type LoadDiagramCommand struct {
	repo ports.DiagramRepository
	Name string
}

// NewLoadDiagramCommand creates a new LoadDiagramCommand
func NewLoadDiagramCommand(repo ports.DiagramRepository, name string) *LoadDiagramCommand {
	return &LoadDiagramCommand{
		repo: repo,
		Name: name,
	}
}

// Validate checks the diagram name
func (c *LoadDiagramCommand) Validate() error {
	return application.ValidateDiagramName("diagramName", c.Name)
}

// Execute runs the load command
func (c *LoadDiagramCommand) Execute(ctx context.Context) (*LoadDiagramResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	text, err := c.repo.Load(c.Name)
	if err != nil {
		return nil, repoError(c.Name, err)
	}

	b, err := domain.Parse(text)
	if err != nil {
		return nil, &application.DiagramError{Name: c.Name, Err: err}
	}

	return &LoadDiagramResult{
		Name:       c.Name,
		Definition: text,
		Diagram:    b,
	}, nil
}

// repoError maps a missing file to ErrNotFound
func repoError(name string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return &application.DiagramError{Name: name, Err: application.ErrNotFound}
	}
	return &application.DiagramError{Name: name, Err: fmt.Errorf("repository: %w", err)}
}

// unsupported marks diagrams the solver adapters cannot encode
func unsupported(err error) error {
	if errors.Is(err, domain.ErrCyclic) || errors.Is(err, domain.ErrTooManyVars) {
		return fmt.Errorf("%w: %w", application.ErrUnsupported, err)
	}
	return err
}
