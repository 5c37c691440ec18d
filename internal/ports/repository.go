package ports

import "flow/internal/domain"

// DiagramRepository defines the interface for definition storage operations
type DiagramRepository interface {
	// List returns every stored definition, sorted by name
	List() ([]domain.DiagramInfo, error)

	// Load returns the raw text of a definition
	Load(name string) (string, error)

	// Save writes a definition and returns its path
	Save(name, definition string) (string, error)

	// Delete removes a definition
	Delete(name string) error

	// Path resolves a definition name to its file path
	Path(name string) (string, error)
}
