package views

import (
	"context"
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"

	"flow/internal/adapters/tui/styles"
	"flow/internal/application/commands"
	"flow/internal/domain"
)

// DiagramKeyMap defines key bindings for the truth table view
type DiagramKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Evaluate key.Binding
	OnlyTrue key.Binding
	Satisfy  key.Binding
	Count    key.Binding
	Copy     key.Binding
	Edit     key.Binding
	Submit   key.Binding
	Help     key.Binding
	Back     key.Binding
}

var DiagramKeys = DiagramKeyMap{
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
	Evaluate: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "evaluate"),
	),
	OnlyTrue: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "only true"),
	),
	Satisfy: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "satisfy"),
	),
	Count: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "count"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy row"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "evaluate"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
}

const diagramChrome = 12

// DiagramModel shows one definition and its truth table
type DiagramModel struct {
	ViewState
	svc       *Services
	info      domain.DiagramInfo
	diagram   *domain.Bdd
	table     *commands.TruthTableResult
	rows      []domain.Row
	onlyTrue  bool
	paginator *Paginator
	input     textinput.Model
	loading   bool
}

// NewDiagramModel creates a new diagram view model
func NewDiagramModel(svc *Services) *DiagramModel {
	input := textinput.New()
	input.Placeholder = "hex assignment, e.g. 0x3"
	input.CharLimit = 64

	return &DiagramModel{
		svc:       svc,
		paginator: NewPaginator(16),
		input:     input,
	}
}

type diagramLoadedMsg struct {
	name    string
	diagram *domain.Bdd
	table   *commands.TruthTableResult
	err     error
}

type diagramResultMsg struct {
	message string
	err     error
}

// Init initializes the diagram view
func (m *DiagramModel) Init() tea.Cmd {
	return nil
}

// Load resets the view for d and returns the command that reads it
func (m *DiagramModel) Load(d domain.DiagramInfo) tea.Cmd {
	m.info = d
	m.diagram = nil
	m.table = nil
	m.rows = nil
	m.onlyTrue = false
	m.loading = true
	m.paginator.Reset()
	m.input.Blur()
	m.input.SetValue("")
	m.ClearMessage()

	name := d.Name
	return func() tea.Msg {
		return m.load(name)
	}
}

func (m *DiagramModel) load(name string) tea.Msg {
	ctx := context.Background()

	loaded, err := commands.NewLoadDiagramCommand(m.svc.Repo, name).Execute(ctx)
	if err != nil {
		return diagramLoadedMsg{name: name, err: err}
	}

	table, err := commands.NewTruthTableCommand(loaded.Diagram, m.svc.Cache, m.svc.Logger, m.svc.MaxVars, m.svc.Workers).Execute(ctx)
	if err != nil {
		// the diagram is still usable for evaluation and solving
		return diagramLoadedMsg{name: name, diagram: loaded.Diagram, err: err}
	}
	return diagramLoadedMsg{name: name, diagram: loaded.Diagram, table: table}
}

// Info returns the definition currently shown
func (m *DiagramModel) Info() domain.DiagramInfo {
	return m.info
}

// SetSize updates the dimensions and the page size
func (m *DiagramModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.paginator.SetPageSize(height - diagramChrome)
}

// Update handles messages for the diagram view
func (m *DiagramModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case diagramLoadedMsg:
		if msg.name != m.info.Name {
			return m, nil
		}
		m.loading = false
		m.diagram = msg.diagram
		m.table = msg.table
		m.refreshRows()
		if msg.err != nil {
			m.SetMessage(loadMessage(msg.err), true)
		}
		return m, nil

	case diagramResultMsg:
		if msg.err != nil {
			m.SetMessage(msg.err.Error(), true)
		} else {
			m.SetMessage(msg.message, false)
		}
		return m, nil

	case tea.KeyMsg:
		if m.input.Focused() {
			return m.updateInput(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m *DiagramModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, DiagramKeys.Back):
		m.input.Blur()
		return m, nil

	case key.Matches(msg, DiagramKeys.Submit):
		m.input.Blur()
		m.evaluate(m.input.Value())
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *DiagramModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, DiagramKeys.Back):
		return m, func() tea.Msg { return SwitchToBrowserMsg{} }

	case key.Matches(msg, DiagramKeys.Edit):
		path := m.info.Path
		return m, func() tea.Msg { return OpenEditorMsg{Path: path} }

	case key.Matches(msg, DiagramKeys.Help):
		return m, func() tea.Msg { return SwitchToHelpMsg{} }
	}

	if m.diagram == nil {
		return m, nil
	}
	m.ClearMessage()

	switch {
	case key.Matches(msg, DiagramKeys.Up):
		m.paginator.CursorUp()

	case key.Matches(msg, DiagramKeys.Down):
		m.paginator.CursorDown()

	case key.Matches(msg, DiagramKeys.PrevPage):
		m.paginator.PrevPage()

	case key.Matches(msg, DiagramKeys.NextPage):
		m.paginator.NextPage()

	case key.Matches(msg, DiagramKeys.Evaluate):
		m.input.SetValue("")
		return m, m.input.Focus()

	case key.Matches(msg, DiagramKeys.OnlyTrue):
		if m.table != nil {
			m.onlyTrue = !m.onlyTrue
			m.refreshRows()
		}

	case key.Matches(msg, DiagramKeys.Satisfy):
		return m, m.satisfy()

	case key.Matches(msg, DiagramKeys.Count):
		return m, m.count()

	case key.Matches(msg, DiagramKeys.Copy):
		if row, ok := m.SelectedRow(); ok {
			if err := clipboard.WriteAll(row.String()); err != nil {
				m.SetMessage(fmt.Sprintf("copy failed: %v", err), true)
			} else {
				m.SetMessage(fmt.Sprintf("Copied %s", row), false)
			}
		}
	}

	return m, nil
}

func (m *DiagramModel) refreshRows() {
	m.rows = nil
	if m.table != nil {
		m.rows = m.table.Rows
		if m.onlyTrue {
			m.rows = lo.Filter(m.table.Rows, func(r domain.Row, _ int) bool { return r.Result })
		}
	}
	m.paginator.SetTotal(len(m.rows))
	m.paginator.SetCursor(0)
}

// evaluate runs one hex assignment and moves the cursor to its row
func (m *DiagramModel) evaluate(hex string) {
	result, err := commands.NewEvaluateCommand(m.diagram, hex).Execute(context.Background())
	if err != nil {
		m.SetMessage(err.Error(), true)
		return
	}
	m.SetMessage(fmt.Sprintf("%s = %t", domain.DisplayHex(result.Assignment), result.Value), false)

	index := indexOf(result.Assignment)
	for i, row := range m.rows {
		if row.Index == index {
			m.paginator.SetCursor(i)
			return
		}
	}
}

func (m *DiagramModel) satisfy() tea.Cmd {
	diagram := m.diagram
	return func() tea.Msg {
		result, err := commands.NewSatisfyCommand(m.svc.Solver, diagram, m.svc.Logger).Execute(context.Background())
		if err != nil {
			return diagramResultMsg{err: err}
		}
		return diagramResultMsg{message: result.Message}
	}
}

func (m *DiagramModel) count() tea.Cmd {
	diagram := m.diagram
	return func() tea.Msg {
		result, err := commands.NewCountCommand(m.svc.Counter, diagram, m.svc.Logger).Execute(context.Background())
		if err != nil {
			return diagramResultMsg{err: err}
		}
		return diagramResultMsg{message: result.Message}
	}
}

// SelectedRow returns the truth table row under the cursor
func (m *DiagramModel) SelectedRow() (domain.Row, bool) {
	if len(m.rows) == 0 {
		return domain.Row{}, false
	}
	return m.rows[m.paginator.Cursor()], true
}

func indexOf(assignment []bool) int {
	index := 0
	for v, bit := range assignment {
		if bit {
			index |= 1 << v
		}
	}
	return index
}

func loadMessage(err error) string {
	if errors.Is(err, domain.ErrTableTooLarge) {
		return "Truth table too large to list; use / to evaluate, s to satisfy or c to count"
	}
	return err.Error()
}

// View renders the diagram view
func (m *DiagramModel) View() string {
	v := NewViewBuilder().Title(m.info.Name)

	if m.loading {
		return v.Muted("Loading...").String()
	}

	if m.diagram != nil {
		v.Line(RenderLabelValue("Variables", fmt.Sprint(m.diagram.NumVars())) + "   " +
			RenderLabelValue("Nodes", fmt.Sprint(m.diagram.Len())))
	}
	if m.table != nil {
		summary := m.table.Summary()
		if m.onlyTrue {
			summary += ", showing true rows"
		}
		v.Muted(summary)
	}
	v.BlankLine()

	start, end := m.paginator.VisibleRange()
	for i := start; i < end; i++ {
		v.Line(RenderRow(m.rows[i], m.diagram.NumVars(), i == m.paginator.Cursor()))
	}
	if m.paginator.TotalPages() > 1 {
		v.BlankLine().Line(RenderPageInfo(m.paginator))
	}
	v.BlankLine()

	if m.input.Focused() {
		v.Line(styles.InputFocused.Render(m.input.View())).BlankLine()
	}

	v.Message(m.Message, m.MessageErr)
	v.Help(DiagramKeys.Evaluate, DiagramKeys.OnlyTrue, DiagramKeys.Satisfy, DiagramKeys.Count, DiagramKeys.Copy, DiagramKeys.Back)
	return v.String()
}
