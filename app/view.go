// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package app

import (
	"github.com/charmbracelet/lipgloss"

	"jsonpeek/ui"
	"jsonpeek/views/helpbar"
	statusbarview "jsonpeek/views/statusbar"
	"jsonpeek/views/view"
)

func (m *Model) View() string {
	// Build global help - exclude "?" when already in help view
	globalHelp := []helpbar.HelpEntry{{Key: "?", Desc: "Help"}, {Key: "ctrl+c", Desc: "Quit"}}
	if m.currentView.Name() == view.NameHelp {
		globalHelp = []helpbar.HelpEntry{}
	}

	help := helpbar.New(m.usableWidth, statusbarview.Height).
		WithGlobalHelp(globalHelp).
		WithViewHelp(m.currentView.ShortHelpItems()).
		View(m.statusBar.View())

	sections := []string{help}

	if m.commandInput.Visible() {
		sections = append(sections,
			ui.RenderFramedBoxHeight("command", m.commandInput.View(), m.usableWidth, 2, true))
	}

	sections = append(sections, m.currentView.View(), m.renderStackBar())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
