// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package workbenchview

import (
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"jsonpeek/core/jsonx"
	"jsonpeek/views/helpbar"
	treeview "jsonpeek/views/tree"
	"jsonpeek/views/view"
)

const ViewName = view.NameWorkbench

// DefaultDebounce is the delay between the last keystroke and re-parsing.
const DefaultDebounce = 150 * time.Millisecond

type focusArea int

const (
	focusEditor focusArea = iota
	focusTree
	focusRaw
)

// Options configure the workbench at startup.
type Options struct {
	Repair   bool
	Debounce time.Duration
}

// Model is the main screen: the input editor on the left, the collapsible
// tree in the middle and the (toggleable) pretty-printed text on the right.
type Model struct {
	editor textarea.Model
	tree   treeview.Model
	raw    textarea.Model

	showRaw bool
	focus   focusArea

	repair   bool
	debounce time.Duration

	// Single-slot pending timer: gen identifies the newest scheduled
	// evaluation, older ticks are dropped.
	gen     int
	pending bool

	lastHash uint64
	hasHash  bool

	result    jsonx.Result
	hasResult bool

	width      int
	height     int
	paneWidths []int
}

func New(width, height int, opts Options) *Model {
	editor := textarea.New()
	editor.Placeholder = "Paste JSON or JSON Lines here…"
	editor.CharLimit = 0
	editor.ShowLineNumbers = false
	editor.Focus()

	raw := textarea.New()
	raw.CharLimit = 0
	raw.ShowLineNumbers = false
	raw.Prompt = ""
	raw.Blur()

	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	m := &Model{
		editor:   editor,
		tree:     treeview.New(width/3, height),
		raw:      raw,
		showRaw:  true,
		focus:    focusEditor,
		repair:   opts.Repair,
		debounce: debounce,
		width:    width,
		height:   height,
	}
	m.layout()
	return m
}

func (m *Model) Init() tea.Cmd { return textarea.Blink }

func (m *Model) Name() string { return ViewName }

func (m *Model) OnEnter() tea.Cmd { return nil }

func (m *Model) OnExit() tea.Cmd { return nil }

// CapturesInput reports whether raw keystrokes belong to this view: typing
// in the editor or raw pane, or an active tree search. The app leaves
// global shortcuts alone while this is true.
func (m *Model) CapturesInput() bool {
	return m.focus == focusEditor || m.focus == focusRaw ||
		m.tree.CapturesInput() || m.tree.SearchTerm != ""
}

func (m *Model) ShortHelpItems() []helpbar.HelpEntry {
	items := []helpbar.HelpEntry{{Key: "tab", Desc: "Switch pane"}}
	switch m.focus {
	case focusEditor:
		items = append(items,
			helpbar.HelpEntry{Key: "esc", Desc: "Leave editor"},
			helpbar.HelpEntry{Key: "ctrl+r", Desc: "Toggle repair"},
			helpbar.HelpEntry{Key: ":", Desc: "Command"},
		)
	case focusTree:
		items = append(items, m.tree.HelpItems()...)
		items = append(items, helpbar.HelpEntry{Key: "ctrl+r", Desc: "Toggle repair"})
	case focusRaw:
		items = append(items,
			helpbar.HelpEntry{Key: "esc", Desc: "Leave pane"},
		)
	}
	return items
}
