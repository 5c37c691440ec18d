package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"flow/internal/domain"
	"flow/internal/ports"
)

// Repository implements ports.DiagramRepository on top of an afero filesystem
type Repository struct {
	fs   afero.Fs
	root string
}

var _ ports.DiagramRepository = (*Repository)(nil)

// NewRepository creates a repository rooted at a directory on disk
func NewRepository(root string) *Repository {
	// Expand ~ to home directory
	if strings.HasPrefix(root, "~") {
		home, _ := os.UserHomeDir()
		root = filepath.Join(home, root[1:])
	}
	return NewRepositoryFs(afero.NewOsFs(), root)
}

// NewRepositoryFs creates a repository on an arbitrary afero filesystem
func NewRepositoryFs(fs afero.Fs, root string) *Repository {
	return &Repository{fs: fs, root: root}
}

// Root returns the workspace directory
func (r *Repository) Root() string {
	return r.root
}

// List returns all definitions in the workspace, sorted by name
func (r *Repository) List() ([]domain.DiagramInfo, error) {
	entries, err := afero.ReadDir(r.fs, r.root)
	if err != nil {
		return nil, fmt.Errorf("failed to read workspace: %w", err)
	}

	var diagrams []domain.DiagramInfo
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if filepath.Ext(entry.Name()) != domain.DefinitionExt {
			continue
		}

		diagrams = append(diagrams, domain.DiagramInfo{
			Name:    domain.DiagramName(entry.Name()),
			Path:    filepath.Join(r.root, entry.Name()),
			Size:    entry.Size(),
			ModTime: entry.ModTime(),
		})
	}

	domain.SortDiagrams(diagrams)
	return diagrams, nil
}

// Load reads a definition by name
func (r *Repository) Load(name string) (string, error) {
	data, err := afero.ReadFile(r.fs, r.path(name))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", name, err)
	}
	return string(data), nil
}

// Save writes a definition, creating the workspace if needed
func (r *Repository) Save(name, definition string) (string, error) {
	if err := r.fs.MkdirAll(r.root, 0755); err != nil {
		return "", fmt.Errorf("failed to create workspace: %w", err)
	}

	path := r.path(name)
	if !strings.HasSuffix(definition, "\n") {
		definition += "\n"
	}
	if err := afero.WriteFile(r.fs, path, []byte(definition), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	return path, nil
}

// Delete removes a definition
func (r *Repository) Delete(name string) error {
	path := r.path(name)
	if _, err := r.fs.Stat(path); err != nil {
		return fmt.Errorf("failed to delete %s: %w", name, err)
	}
	if err := r.fs.Remove(path); err != nil {
		return fmt.Errorf("failed to delete %s: %w", name, err)
	}
	return nil
}

// Path resolves a name to an existing file
func (r *Repository) Path(name string) (string, error) {
	path := r.path(name)
	if _, err := r.fs.Stat(path); err != nil {
		return "", fmt.Errorf("diagram %s: %w", name, err)
	}
	return path, nil
}

func (r *Repository) path(name string) string {
	return filepath.Join(r.root, domain.FileName(name))
}
