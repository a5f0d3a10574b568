// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package treeview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"jsonpeek/utils"
)

var (
	symbolStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("81"))
	cursorStyle = lipgloss.NewStyle().Background(lipgloss.Color("236")).Bold(true)
)

// refresh re-renders the visible nodes into the viewport.
func (m *Model) refresh() {
	m.viewport.SetContent(m.renderLines())
}

func (m *Model) renderLines() string {
	if len(m.Visible) == 0 {
		return ""
	}
	lines := make([]string, 0, len(m.Visible))
	for i, n := range m.Visible {
		lines = append(lines, m.renderLine(n, i == m.Cursor))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderLine(n *Node, selected bool) string {
	indent := strings.Repeat("  ", n.Depth)

	symbol := " "
	if n.Container() {
		if n.Collapsed {
			symbol = "▶"
		} else {
			symbol = "▼"
		}
	}

	label := n.Label()
	if m.SearchTerm != "" {
		label = utils.HighlightMatches(label, m.SearchTerm, utils.FindAllMatches(label, m.SearchTerm))
	} else if n.Container() {
		label = keyStyle.Render(label)
	}

	line := indent + symbolStyle.Render(symbol) + " " + label
	if selected {
		line = cursorStyle.Render(indent+symbol+" ") + cursorStyle.Render(n.Label())
	}
	return line
}
