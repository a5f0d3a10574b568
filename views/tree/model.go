// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package treeview

import (
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/valyala/fastjson"

	"jsonpeek/utils"
	"jsonpeek/views/helpbar"
)

// Model is the collapsible tree pane. It is a component embedded in the
// workbench view, not a full-screen view of its own.
type Model struct {
	viewport viewport.Model

	Root    *Node
	Visible []*Node
	Cursor  int

	SearchTerm string
	searchMode bool

	width  int
	height int
}

func New(width, height int) Model {
	vp := viewport.New(width, height)
	return Model{
		viewport: vp,
		width:    width,
		height:   height,
	}
}

// SetValue rebuilds the tree for v. All collapse state and the cursor reset;
// an active search is dropped as well.
func (m *Model) SetValue(v *fastjson.Value) {
	m.Root = Build(v)
	m.Cursor = 0
	m.SearchTerm = ""
	m.searchMode = false
	m.rebuildVisible()
	m.viewport.GotoTop()
	m.refresh()
}

// Clear removes the current tree, e.g. after a failed parse.
func (m *Model) Clear() {
	m.Root = nil
	m.Visible = nil
	m.Cursor = 0
	m.SearchTerm = ""
	m.searchMode = false
	m.refresh()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.refresh()
}

// CapturesInput reports whether keystrokes currently go to the search
// prompt.
func (m *Model) CapturesInput() bool { return m.searchMode }

// rebuildVisible updates the flattened node list based on collapse state and
// the active search term.
func (m *Model) rebuildVisible() {
	if m.Root == nil {
		m.Visible = nil
		return
	}
	if m.SearchTerm == "" {
		var list []*Node
		collectVisible(m.Root, &list)
		m.Visible = list
	} else {
		m.markMatches(m.SearchTerm)
		var list []*Node
		collectFiltered(m.Root, &list)
		m.Visible = list
	}
	if m.Cursor >= len(m.Visible) {
		m.Cursor = len(m.Visible) - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

// collectVisible appends n and, unless n is collapsed, its descendants.
// Collapsed subtrees keep their own flags; they simply are not walked.
func collectVisible(n *Node, out *[]*Node) {
	*out = append(*out, n)
	if n.Collapsed {
		return
	}
	for _, c := range n.Children {
		collectVisible(c, out)
	}
}

// collectFiltered keeps only nodes that match the search or have a matching
// descendant.
func collectFiltered(n *Node, out *[]*Node) {
	if !n.Matches {
		return
	}
	*out = append(*out, n)
	if n.Collapsed {
		return
	}
	for _, c := range n.Children {
		collectFiltered(c, out)
	}
}

// markMatches flags every node whose key or value contains term and
// propagates the flag to ancestors so matches stay reachable. Ancestors of
// matches are expanded, which is the one place search overrides collapse
// state.
func (m *Model) markMatches(term string) {
	var mark func(n *Node) bool
	mark = func(n *Node) bool {
		n.Matches = utils.ContainsFold(n.Key, term) ||
			(n.ValueStr != "" && utils.ContainsFold(n.ValueStr, term))
		for _, c := range n.Children {
			if mark(c) {
				n.Matches = true
				n.Collapsed = false
			}
		}
		return n.Matches
	}
	mark(m.Root)
}

// Toggle flips the collapse state of the node under the cursor. Only that
// node changes; descendants keep their own flags for when it re-expands.
func (m *Model) Toggle() {
	if m.Cursor < 0 || m.Cursor >= len(m.Visible) {
		return
	}
	n := m.Visible[m.Cursor]
	if !n.Container() {
		return
	}
	n.Collapsed = !n.Collapsed
	m.rebuildVisible()
	m.refresh()
}

// ExpandAll expands every container node.
func (m *Model) ExpandAll() {
	walk(m.Root, func(n *Node) { n.Collapsed = false })
	m.rebuildVisible()
	m.refresh()
}

// CollapseAll collapses every container node except the root, so the tree
// stays navigable.
func (m *Model) CollapseAll() {
	walk(m.Root, func(n *Node) {
		if n.Parent != nil && n.Container() {
			n.Collapsed = true
		}
	})
	m.Cursor = 0
	m.rebuildVisible()
	m.refresh()
}

func walk(n *Node, fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, c := range n.Children {
		walk(c, fn)
	}
}

// MoveCursor moves the selection by delta, clamped to the visible list, and
// keeps the selected line inside the viewport.
func (m *Model) MoveCursor(delta int) {
	if len(m.Visible) == 0 {
		return
	}
	m.Cursor += delta
	if m.Cursor < 0 {
		m.Cursor = 0
	}
	if m.Cursor >= len(m.Visible) {
		m.Cursor = len(m.Visible) - 1
	}
	m.scrollToCursor()
	m.refresh()
}

func (m *Model) scrollToCursor() {
	if m.Cursor < m.viewport.YOffset {
		m.viewport.SetYOffset(m.Cursor)
	}
	if m.Cursor >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(m.Cursor - m.viewport.Height + 1)
	}
}

func (m *Model) applySearch(term string) {
	m.SearchTerm = term
	m.Cursor = 0
	m.rebuildVisible()
	// Jump to the first real match, not just the first visible ancestor.
	for i, n := range m.Visible {
		if n.ValueStr != "" && utils.ContainsFold(n.ValueStr, term) ||
			utils.ContainsFold(n.Key, term) {
			m.Cursor = i
			break
		}
	}
	m.scrollToCursor()
	m.refresh()
}

func (m *Model) clearSearch() {
	m.SearchTerm = ""
	m.Cursor = 0
	m.rebuildVisible()
	m.viewport.GotoTop()
	m.refresh()
}

func (m *Model) HelpItems() []helpbar.HelpEntry {
	if m.searchMode {
		return []helpbar.HelpEntry{
			{Key: "enter", Desc: "Apply search"},
			{Key: "esc", Desc: "Cancel search"},
		}
	}
	return []helpbar.HelpEntry{
		{Key: "j/k", Desc: "Move"},
		{Key: "enter", Desc: "Fold/unfold"},
		{Key: "E/C", Desc: "Unfold/fold all"},
		{Key: "/", Desc: "Search"},
	}
}
