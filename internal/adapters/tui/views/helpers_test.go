package views

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"

	"flow/internal/adapters/filesystem"
	"flow/internal/adapters/robdd"
	"flow/internal/adapters/sat"
)

const (
	andGate = "vars 2\nnodes 4\n0 1 3 0\n1 2 3 1\n2 -1 -1 1\n3 -1 -1 0\n"
	notGate = "vars 1\nnodes 3\n0 2 1 0\n1 -1 -1 1\n2 -1 -1 0\n"
)

func newTestServices(t *testing.T, defs map[string]string) (*Services, *filesystem.Repository) {
	t.Helper()

	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll("/work", 0o755); err != nil {
		t.Fatal(err)
	}
	repo := filesystem.NewRepositoryFs(fs, "/work")
	for name, def := range defs {
		if _, err := repo.Save(name, def); err != nil {
			t.Fatalf("failed to seed %s: %v", name, err)
		}
	}

	return &Services{
		Repo:    repo,
		Solver:  sat.NewSolver(nil),
		Counter: robdd.NewEngine(nil),
		MaxVars: 16,
		Workers: 1,
	}, repo
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// run executes cmd and feeds its message back into m
func run(t *testing.T, m tea.Model, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg := cmd()
	m.Update(msg)
	return msg
}
