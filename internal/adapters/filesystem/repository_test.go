package filesystem

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
)

const notGate = "vars 1\nnodes 3\n0 2 1 0\n1 -1 -1 1\n2 -1 -1 0\n"

func setupTestWorkspace(t *testing.T) (*Repository, afero.Fs) {
	t.Helper()

	mem := afero.NewMemMapFs()
	root := "/work"
	if err := mem.MkdirAll(root, 0755); err != nil {
		t.Fatalf("failed to create workspace: %v", err)
	}

	files := map[string]string{
		"not.bdd":      notGate,
		"and.bdd":      "vars 2\nnodes 1\n0 -1 -1 0\n",
		"README.md":    "not a diagram",
		".hidden.bdd":  notGate,
		"sub/deep.bdd": notGate,
	}
	for name, content := range files {
		path := filepath.Join(root, name)
		if err := mem.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
		if err := afero.WriteFile(mem, path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}

	return NewRepositoryFs(mem, root), mem
}

func TestList_OnlyTopLevelDefinitions(t *testing.T) {
	repo, _ := setupTestWorkspace(t)

	diagrams, err := repo.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	var names []string
	for _, d := range diagrams {
		names = append(names, d.Name)
	}
	if diff := cmp.Diff([]string{"and", "not"}, names); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
	if diagrams[1].Path != filepath.Join("/work", "not.bdd") {
		t.Errorf("unexpected path %s", diagrams[1].Path)
	}
	if diagrams[1].Size != int64(len(notGate)) {
		t.Errorf("expected size %d, got %d", len(notGate), diagrams[1].Size)
	}
}

func TestList_MissingWorkspace(t *testing.T) {
	repo := NewRepositoryFs(afero.NewMemMapFs(), "/nowhere")

	if _, err := repo.List(); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	repo, _ := setupTestWorkspace(t)

	for _, name := range []string{"not", "not.bdd"} {
		got, err := repo.Load(name)
		if err != nil {
			t.Fatalf("Load(%s) failed: %v", name, err)
		}
		if got != notGate {
			t.Errorf("Load(%s): expected %q, got %q", name, notGate, got)
		}
	}

	if _, err := repo.Load("missing"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestSave_CreatesWorkspaceAndTerminatesLine(t *testing.T) {
	mem := afero.NewMemMapFs()
	repo := NewRepositoryFs(mem, "/fresh")

	path, err := repo.Save("id", "vars 1\nnodes 1\n0 -1 -1 1")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if path != filepath.Join("/fresh", "id.bdd") {
		t.Errorf("unexpected path %s", path)
	}

	data, err := afero.ReadFile(mem, path)
	if err != nil {
		t.Fatalf("failed to read saved file: %v", err)
	}
	if string(data) != "vars 1\nnodes 1\n0 -1 -1 1\n" {
		t.Errorf("unexpected content %q", data)
	}
}

func TestSave_Overwrites(t *testing.T) {
	repo, _ := setupTestWorkspace(t)

	if _, err := repo.Save("not", "vars 0\nnodes 1\n0 -1 -1 1\n"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, _ := repo.Load("not")
	if got != "vars 0\nnodes 1\n0 -1 -1 1\n" {
		t.Errorf("file was not overwritten: %q", got)
	}
}

func TestDelete(t *testing.T) {
	repo, mem := setupTestWorkspace(t)

	if err := repo.Delete("not"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if ok, _ := afero.Exists(mem, "/work/not.bdd"); ok {
		t.Error("file still exists after delete")
	}

	if err := repo.Delete("not"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected not-exist error on second delete, got %v", err)
	}
}

func TestPath(t *testing.T) {
	repo, _ := setupTestWorkspace(t)

	path, err := repo.Path("and")
	if err != nil {
		t.Fatalf("Path failed: %v", err)
	}
	if path != filepath.Join("/work", "and.bdd") {
		t.Errorf("unexpected path %s", path)
	}

	if _, err := repo.Path("missing"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}
