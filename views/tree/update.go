// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package treeview

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if m.searchMode {
		return m.updateSearch(key), nil
	}

	switch key.String() {
	case "j", "down":
		m.MoveCursor(1)
	case "k", "up":
		m.MoveCursor(-1)
	case "g", "home":
		m.MoveCursor(-len(m.Visible))
	case "G", "end":
		m.MoveCursor(len(m.Visible))
	case "enter", " ":
		m.Toggle()
	case "E":
		m.ExpandAll()
	case "C":
		m.CollapseAll()
	case "/":
		m.searchMode = true
		m.SearchTerm = ""
	case "esc":
		if m.SearchTerm != "" {
			m.clearSearch()
		}
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// updateSearch reads the search prompt one key at a time, mirroring the
// incremental filter behavior of the rest of the app.
func (m Model) updateSearch(key tea.KeyMsg) Model {
	switch key.Type {
	case tea.KeyEnter:
		m.searchMode = false
	case tea.KeyEsc:
		m.searchMode = false
		m.clearSearch()
	case tea.KeyBackspace:
		if len(m.SearchTerm) > 0 {
			term := m.SearchTerm[:len(m.SearchTerm)-1]
			if term == "" {
				m.clearSearch()
				m.searchMode = true
			} else {
				m.applySearch(term)
			}
		}
	case tea.KeySpace:
		m.applySearch(m.SearchTerm + " ")
	case tea.KeyRunes:
		m.applySearch(m.SearchTerm + string(key.Runes))
	}
	return m
}
