package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"flow/internal/adapters/tui/views"
	"flow/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewBrowser ViewState = iota
	ViewDiagram
	ViewDelete
	ViewHelp
)

// App is the main TUI application model
type App struct {
	svc    *views.Services
	editor ports.EditorOpener // may be nil

	state    ViewState
	previous ViewState
	browser  *views.BrowserModel
	diagram  *views.DiagramModel
	remove   *views.DeleteModel
	help     *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(svc *views.Services, ed ports.EditorOpener) *App {
	return &App{
		svc:     svc,
		editor:  ed,
		state:   ViewBrowser,
		browser: views.NewBrowserModel(svc),
		diagram: views.NewDiagramModel(svc),
		remove:  views.NewDeleteModel(svc),
		help:    views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.browser.Init()
}

// State returns the active view
func (a *App) State() ViewState {
	return a.state
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.browser.SetSize(msg.Width, msg.Height)
		a.diagram.SetSize(msg.Width, msg.Height)
		a.remove.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

	// View switching messages
	case views.SwitchToDiagramMsg:
		a.state = ViewDiagram
		return a, a.diagram.Load(msg.Diagram)

	case views.SwitchToDeleteMsg:
		a.state = ViewDelete
		a.remove.ClearMessage()
		a.remove.SetTarget(msg.Diagram)
		return a, nil

	case views.SwitchToHelpMsg:
		a.previous = a.state
		a.state = ViewHelp
		return a, nil

	case views.SwitchToBrowserMsg:
		if a.state == ViewHelp && a.previous == ViewDiagram {
			a.state = ViewDiagram
			return a, nil
		}
		a.state = ViewBrowser
		return a, a.browser.Reload()

	case views.DeleteSuccessMsg:
		a.state = ViewBrowser
		_, cmd := a.browser.Update(msg)
		return a, cmd

	case views.OpenEditorMsg:
		return a, a.openEditor(msg.Path)

	case views.EditorFinishedMsg:
		return a, a.editorFinished(msg)
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewBrowser:
		_, cmd = a.browser.Update(msg)
	case ViewDiagram:
		_, cmd = a.diagram.Update(msg)
	case ViewDelete:
		_, cmd = a.remove.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

func (a *App) openEditor(path string) tea.Cmd {
	if a.editor == nil {
		return nil
	}

	cmd, err := a.editor.Command(path)
	if err != nil {
		return func() tea.Msg {
			return views.EditorFinishedMsg{Err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return views.EditorFinishedMsg{Err: err}
	})
}

// editorFinished reloads whatever the edit may have changed
func (a *App) editorFinished(msg views.EditorFinishedMsg) tea.Cmd {
	if msg.Err != nil {
		if a.state == ViewDiagram {
			a.diagram.SetMessage(msg.Err.Error(), true)
		} else {
			a.browser.SetMessage(msg.Err.Error(), true)
		}
		return nil
	}

	if a.state == ViewDiagram {
		return tea.Batch(a.browser.Reload(), a.diagram.Load(a.diagram.Info()))
	}
	return a.browser.Reload()
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewDiagram:
		return a.diagram.View()
	case ViewDelete:
		return a.remove.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.browser.View()
	}
}
