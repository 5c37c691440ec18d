package commands

import (
	"context"
	"fmt"

	"flow/internal/application"
	"flow/internal/domain"
	"flow/internal/ports"
)

// DeleteDiagramResult contains the result of a delete operation
type DeleteDiagramResult struct {
	Name    string
	Message string
}

// DeleteDiagramCommand removes a stored definition and its cached table
type DeleteDiagramCommand struct {
	repo  ports.DiagramRepository
	cache ports.TableCache // optional
	Name  string
}

// NewDeleteDiagramCommand creates a new DeleteDiagramCommand. cache may be nil.
func NewDeleteDiagramCommand(repo ports.DiagramRepository, cache ports.TableCache, name string) *DeleteDiagramCommand {
	return &DeleteDiagramCommand{
		repo:  repo,
		cache: cache,
		Name:  name,
	}
}

// Validate checks the diagram name
func (c *DeleteDiagramCommand) Validate() error {
	return application.ValidateDiagramName("diagramName", c.Name)
}

// Execute runs the delete command
func (c *DeleteDiagramCommand) Execute(ctx context.Context) (*DeleteDiagramResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	text, err := c.repo.Load(c.Name)
	if err != nil {
		return nil, repoError(c.Name, err)
	}

	if err := c.repo.Delete(c.Name); err != nil {
		return nil, repoError(c.Name, err)
	}

	// unparsable definitions never had a table cached
	if b, err := domain.Parse(text); err == nil && c.cache != nil {
		if err := c.cache.Invalidate(b.TableKey()); err != nil {
			return nil, fmt.Errorf("deleted %s but failed to drop its cached table: %w", c.Name, err)
		}
	}

	return &DeleteDiagramResult{
		Name:    c.Name,
		Message: fmt.Sprintf("Deleted: %s", c.Name),
	}, nil
}
