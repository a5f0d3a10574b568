package helpview

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"jsonpeek/ui"
	"jsonpeek/views/helpbar"
	"jsonpeek/views/view"
)

const ViewName = view.NameHelp

type CommandInfo struct {
	Name        string
	Description string
}

type Model struct {
	content string
	width   int
	height  int
}

var keyBindings = []helpbar.HelpEntry{
	{Key: "tab", Desc: "Cycle input / tree / pretty pane"},
	{Key: "enter, space", Desc: "Fold or unfold the selected node"},
	{Key: "j/k, arrows", Desc: "Move the tree cursor"},
	{Key: "E / C", Desc: "Unfold / fold the whole tree"},
	{Key: "/", Desc: "Search keys and values"},
	{Key: "ctrl+r", Desc: "Toggle the repair pass"},
	{Key: ":", Desc: "Open the command bar"},
	{Key: "esc", Desc: "Leave pane / go back"},
	{Key: "ctrl+c", Desc: "Quit"},
}

func New(width, height int, cmds []CommandInfo) *Model {
	var b strings.Builder

	b.WriteString("Key bindings\n\n")
	for _, k := range keyBindings {
		fmt.Fprintf(&b, "  %-14s %s\n", k.Key, k.Desc)
	}

	b.WriteString("\nCommands (open with :)\n\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "  :%-12s %s\n", c.Name, c.Description)
	}

	return &Model{
		content: b.String(),
		width:   width,
		height:  height,
	}
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Name() string { return ViewName }

func (m *Model) OnEnter() tea.Cmd { return nil }

func (m *Model) OnExit() tea.Cmd { return nil }

func (m *Model) ShortHelpItems() []helpbar.HelpEntry {
	return []helpbar.HelpEntry{
		{Key: "esc", Desc: "Close"},
	}
}

func (m *Model) Update(msg tea.Msg) (view.View, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
	}
	return m, nil
}

func (m *Model) View() string {
	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00d7ff")).
		Render("jsonpeek help")

	footer := ui.FaintStyle.Render("[press esc to go back]")

	return ui.BorderStyle.Render(
		fmt.Sprintf("%s\n\n%s\n%s", header, m.content, footer),
	)
}
