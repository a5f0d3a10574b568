package helpbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type HelpEntry struct {
	Key  string
	Desc string
}

type Model struct {
	globalHelp  []HelpEntry
	viewHelp    []HelpEntry
	width       int
	height      int
	minColWidth int
}

const (
	defaultMinColWidth = 20
	rowsPerColumn      = 4
	logoWidth          = 26
)

func New(width, height int) *Model {
	return &Model{
		globalHelp:  []HelpEntry{{Key: "ctrl+c", Desc: "quit"}, {Key: "?", Desc: "help"}},
		width:       width,
		height:      height,
		minColWidth: defaultMinColWidth,
	}
}

func (m *Model) WithGlobalHelp(entries []HelpEntry) *Model {
	m.globalHelp = entries
	return m
}

func (m *Model) WithViewHelp(entries []HelpEntry) *Model {
	m.viewHelp = entries
	return m
}

func (m *Model) SetWidth(width int) *Model {
	m.width = width
	return m
}

// View renders the status block on the left, the key-binding columns in the
// middle and the logo on the right.
func (m *Model) View(statusInfo string) string {
	allHelp := append(append([]HelpEntry{}, m.globalHelp...), m.viewHelp...)
	if len(allHelp) == 0 {
		return statusInfo
	}

	infoWidth := lipgloss.Width(statusInfo)
	availableWidth := m.width - infoWidth - logoWidth
	if availableWidth < m.minColWidth {
		return statusInfo
	}

	numCols := (len(allHelp) + rowsPerColumn - 1) / rowsPerColumn
	maxCols := availableWidth / m.minColWidth
	if maxCols < 1 {
		maxCols = 1
	}
	if numCols > maxCols {
		numCols = maxCols
	}

	columns := make([][]HelpEntry, numCols)
	for i, entry := range allHelp {
		col := i / rowsPerColumn
		if col >= numCols {
			break
		}
		columns[col] = append(columns[col], entry)
	}

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("39")).
		Bold(true)

	var renderedCols []string
	for colIdx, col := range columns {
		maxKeyLen := 0
		for _, entry := range col {
			if keyLen := lipgloss.Width("<" + entry.Key + ">"); keyLen > maxKeyLen {
				maxKeyLen = keyLen
			}
		}

		var lines []string
		for _, entry := range col {
			styledKey := keyStyle.Render("<" + entry.Key + ">")
			padding := maxKeyLen - lipgloss.Width("<"+entry.Key+">")
			lines = append(lines, styledKey+strings.Repeat(" ", padding+2)+entry.Desc)
		}

		if colIdx > 0 {
			renderedCols = append(renderedCols, "   ")
		}
		renderedCols = append(renderedCols, strings.Join(lines, "\n"))
	}

	helpBlock := lipgloss.JoinHorizontal(lipgloss.Top, renderedCols...)
	helpAligned := lipgloss.NewStyle().
		Width(availableWidth).
		Align(lipgloss.Left).
		Render(helpBlock)

	logo := `    __  ____  ___  ____
   |__||  __|| o ||  _ |
 __|  ||__  ||  _||    |
|_____||____||_|  |_|__|`

	logoStyled := lipgloss.NewStyle().
		Foreground(lipgloss.Color("214")).
		Bold(true).
		Render(logo)

	return lipgloss.JoinHorizontal(lipgloss.Top, statusInfo, helpAligned, "  ", logoStyled)
}
