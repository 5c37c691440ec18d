package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"

	"flow/internal/adapters/filesystem"
	"flow/internal/adapters/robdd"
	"flow/internal/adapters/sat"
	"flow/internal/adapters/tui/views"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	repo := filesystem.NewRepositoryFs(afero.NewMemMapFs(), "/work")
	if _, err := repo.Save("not", "vars 1\nnodes 3\n0 2 1 0\n1 -1 -1 1\n2 -1 -1 0\n"); err != nil {
		t.Fatal(err)
	}

	app := NewApp(&views.Services{
		Repo:    repo,
		Solver:  sat.NewSolver(nil),
		Counter: robdd.NewEngine(nil),
		MaxVars: 16,
		Workers: 1,
	}, nil)
	app.Update(app.Init()())
	return app
}

// send delivers msg and then every message its command chain produces
func send(app *App, msg tea.Msg) {
	for msg != nil {
		_, cmd := app.Update(msg)
		if cmd == nil {
			return
		}
		msg = cmd()
	}
}

func TestApp_ViewSwitching(t *testing.T) {
	app := newTestApp(t)

	send(app, tea.KeyMsg{Type: tea.KeyEnter})
	if app.State() != ViewDiagram {
		t.Fatalf("expected diagram view, got %v", app.State())
	}

	send(app, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	if app.State() != ViewHelp {
		t.Fatalf("expected help view, got %v", app.State())
	}

	send(app, tea.KeyMsg{Type: tea.KeyEsc})
	if app.State() != ViewDiagram {
		t.Fatalf("help should return to the diagram, got %v", app.State())
	}

	send(app, tea.KeyMsg{Type: tea.KeyEsc})
	if app.State() != ViewBrowser {
		t.Fatalf("expected browser view, got %v", app.State())
	}
}

func TestApp_DeleteFlow(t *testing.T) {
	app := newTestApp(t)

	send(app, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	if app.State() != ViewDelete {
		t.Fatalf("expected delete view, got %v", app.State())
	}

	send(app, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	if app.State() != ViewBrowser {
		t.Fatalf("expected browser view after delete, got %v", app.State())
	}
	if _, ok := app.browser.Selected(); ok {
		t.Error("deleted definition is still listed")
	}
}
