package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"flow/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToBrowserMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("flow Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.Subtitle.Render("Binary decision diagram workbench"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Definitions"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / ↑ / ↓", "Move up/down"))
	b.WriteString(helpLine("h / l / ← / →", "Previous/next page"))
	b.WriteString(helpLine("Enter", "Open truth table"))
	b.WriteString(helpLine("e", "Edit in $EDITOR"))
	b.WriteString(helpLine("d", "Delete definition"))
	b.WriteString(helpLine("r", "Reload workspace"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Truth table"))
	b.WriteString("\n")
	b.WriteString(helpLine("/", "Evaluate a hex assignment"))
	b.WriteString(helpLine("t", "Show only true rows"))
	b.WriteString(helpLine("s", "Find a satisfying assignment"))
	b.WriteString(helpLine("c", "Count true assignments"))
	b.WriteString(helpLine("y", "Copy selected row"))
	b.WriteString(helpLine("Esc", "Back to definitions"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Definition format"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  vars <n>"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  nodes <m>"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  <id> <high> <low> <var>     decision"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  <id> -1 -1 <0|1>            terminal"))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	n := len([]rune(s))
	if n >= length {
		return s
	}
	return s + strings.Repeat(" ", length-n)
}
