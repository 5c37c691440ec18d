package views

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"flow/internal/adapters/tui/styles"
	"flow/internal/application/commands"
	"flow/internal/domain"
)

// BrowserKeyMap defines key bindings for the browser view
type BrowserKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Open     key.Binding
	Edit     key.Binding
	Delete   key.Binding
	Reload   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("h", "left", "pgup"),
		key.WithHelp("h/←", "prev page"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("l", "right", "pgdown"),
		key.WithHelp("l/→", "next page"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// header, footer and padding lines around the list
const browserChrome = 9

// BrowserModel lists the definitions in the workspace
type BrowserModel struct {
	ViewState
	svc       *Services
	diagrams  []domain.DiagramInfo
	paginator *Paginator
	loaded    bool
}

// NewBrowserModel creates a new browser model
func NewBrowserModel(svc *Services) *BrowserModel {
	return &BrowserModel{
		svc:       svc,
		paginator: NewPaginator(10),
	}
}

type diagramsLoadedMsg struct {
	diagrams []domain.DiagramInfo
}

type errMsg struct {
	err error
}

// Init initializes the browser
func (m *BrowserModel) Init() tea.Cmd {
	return m.load
}

// Reload returns a command that lists the workspace again
func (m *BrowserModel) Reload() tea.Cmd {
	return m.load
}

func (m *BrowserModel) load() tea.Msg {
	diagrams, err := commands.NewListDiagramsCommand(m.svc.Repo).Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return diagramsLoadedMsg{diagrams}
}

// SetSize updates the dimensions and the page size
func (m *BrowserModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.paginator.SetPageSize(height - browserChrome)
}

// Selected returns the definition under the cursor
func (m *BrowserModel) Selected() (domain.DiagramInfo, bool) {
	if len(m.diagrams) == 0 {
		return domain.DiagramInfo{}, false
	}
	return m.diagrams[m.paginator.Cursor()], true
}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case diagramsLoadedMsg:
		m.diagrams = msg.diagrams
		m.paginator.SetTotal(len(m.diagrams))
		m.loaded = true
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case DeleteSuccessMsg:
		m.SetMessage(msg.Message, false)
		return m, m.Reload()

	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, BrowserKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, BrowserKeys.Up):
			m.paginator.CursorUp()

		case key.Matches(msg, BrowserKeys.Down):
			m.paginator.CursorDown()

		case key.Matches(msg, BrowserKeys.PrevPage):
			m.paginator.PrevPage()

		case key.Matches(msg, BrowserKeys.NextPage):
			m.paginator.NextPage()

		case key.Matches(msg, BrowserKeys.Reload):
			return m, m.Reload()

		case key.Matches(msg, BrowserKeys.Help):
			return m, func() tea.Msg { return SwitchToHelpMsg{} }

		case key.Matches(msg, BrowserKeys.Open):
			if d, ok := m.Selected(); ok {
				return m, func() tea.Msg { return SwitchToDiagramMsg{Diagram: d} }
			}

		case key.Matches(msg, BrowserKeys.Edit):
			if d, ok := m.Selected(); ok {
				return m, func() tea.Msg { return OpenEditorMsg{Path: d.Path} }
			}

		case key.Matches(msg, BrowserKeys.Delete):
			if d, ok := m.Selected(); ok {
				return m, func() tea.Msg { return SwitchToDeleteMsg{Diagram: d} }
			}
		}
	}

	return m, nil
}

// View renders the browser
func (m *BrowserModel) View() string {
	v := NewViewBuilder().Title("flow")

	switch {
	case !m.loaded && m.Message == "":
		v.Muted("Loading...")
	case len(m.diagrams) == 0 && m.loaded:
		v.Muted("No .bdd definitions in this workspace.")
	default:
		start, end := m.paginator.VisibleRange()
		for i := start; i < end; i++ {
			v.Line(m.renderDiagram(m.diagrams[i], i == m.paginator.Cursor()))
		}
		if m.paginator.TotalPages() > 1 {
			v.BlankLine().Line(RenderPageInfo(m.paginator))
		}
	}

	v.BlankLine().Message(m.Message, m.MessageErr)
	v.Help(BrowserKeys.Open, BrowserKeys.Edit, BrowserKeys.Delete, BrowserKeys.Help, BrowserKeys.Quit)
	return v.String()
}

func (m *BrowserModel) renderDiagram(d domain.DiagramInfo, selected bool) string {
	detail := styles.ItemDetail.Render(fmt.Sprintf("  %d bytes", d.Size))
	if selected {
		return styles.Cursor + styles.ItemSelected.Render(d.Name) + detail
	}
	return styles.NoCursor + styles.Item.Render(d.Name) + detail
}
