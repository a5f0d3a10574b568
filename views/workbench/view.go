// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package workbenchview

import (
	"github.com/charmbracelet/lipgloss"

	"jsonpeek/ui"
)

// layout distributes the usable width across the visible panes and resizes
// the embedded components to the inner frame area.
func (m *Model) layout() {
	weights := []int{2, 3}
	if m.showRaw {
		weights = []int{2, 3, 2}
	}
	m.paneWidths = ui.DistributeColumns(m.width, 0, 0, weights)

	innerH := m.height - 2
	if innerH < 1 {
		innerH = 1
	}

	m.editor.SetWidth(m.paneWidths[0] - 2)
	m.editor.SetHeight(innerH)
	m.tree.SetSize(m.paneWidths[1]-2, innerH)
	if m.showRaw {
		m.raw.SetWidth(m.paneWidths[2] - 2)
		m.raw.SetHeight(innerH)
	}
}

func (m *Model) View() string {
	innerH := m.height - 2
	if innerH < 1 {
		innerH = 1
	}

	panes := []string{
		ui.RenderFramedBoxHeight("input", m.editor.View(), m.paneWidths[0], innerH, m.focus == focusEditor),
		ui.RenderFramedBoxHeight("tree", m.treeContent(), m.paneWidths[1], innerH, m.focus == focusTree),
	}
	if m.showRaw {
		panes = append(panes,
			ui.RenderFramedBoxHeight("pretty", m.raw.View(), m.paneWidths[2], innerH, m.focus == focusRaw))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, panes...)
}

// treeContent fills the middle pane: the tree on success, the diagnostic on
// failure, a hint while the editor is empty.
func (m *Model) treeContent() string {
	wrap := lipgloss.NewStyle().Width(m.paneWidths[1] - 2)
	if m.hasResult && !m.result.Ok() {
		return wrap.Render(ui.ErrorStyle.Render("parse error: ") + m.result.Err.Error())
	}
	if m.tree.Root == nil {
		return wrap.Render(ui.FaintStyle.Render("Nothing parsed yet. Paste JSON on the left, or run :sample."))
	}
	return m.tree.View()
}
