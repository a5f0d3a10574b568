// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package workbenchview

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/valyala/fastjson"

	"jsonpeek/core/jsonx"
	"jsonpeek/core/primitives/hash"
	peeklog "jsonpeek/utils/log"
	statusbarview "jsonpeek/views/statusbar"
	"jsonpeek/views/view"
)

func (m *Model) Update(msg tea.Msg) (view.View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case debounceMsg:
		if msg.gen != m.gen {
			// A newer keystroke replaced this timer.
			return m, nil
		}
		m.pending = false
		return m, m.evaluate()

	case ToggleRawMsg:
		m.showRaw = !m.showRaw
		if !m.showRaw && m.focus == focusRaw {
			m.setFocus(focusEditor)
		}
		m.layout()
		return m, nil

	case SetRepairMsg:
		next := !m.repair
		if msg.Enable != nil {
			next = *msg.Enable
		}
		if next == m.repair {
			return m, nil
		}
		m.repair = next
		return m, m.evaluate()

	case ExpandAllMsg:
		m.tree.ExpandAll()
		return m, nil

	case CollapseAllMsg:
		m.tree.CollapseAll()
		return m, nil

	case ClearMsg:
		m.editor.Reset()
		m.setFocus(focusEditor)
		return m, m.evaluate()

	case LoadTextMsg:
		m.editor.SetValue(msg.Text)
		return m, m.evaluate()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, m.forward(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (view.View, tea.Cmd) {
	switch msg.String() {
	case "tab":
		if !m.tree.CapturesInput() {
			m.cycleFocus()
			return m, nil
		}
	case "ctrl+r":
		return m.Update(SetRepairMsg{})
	case "esc":
		if m.focus == focusEditor || m.focus == focusRaw {
			m.setFocus(focusTree)
			return m, nil
		}
	}

	switch m.focus {
	case focusEditor:
		before := m.editor.Value()
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		if m.editor.Value() != before {
			return m, tea.Batch(cmd, m.schedule())
		}
		return m, cmd

	case focusTree:
		var cmd tea.Cmd
		m.tree, cmd = m.tree.Update(msg)
		return m, cmd

	default:
		// Raw pane edits are allowed but never feed back into the
		// pipeline; the next parse overwrites them.
		var cmd tea.Cmd
		m.raw, cmd = m.raw.Update(msg)
		return m, cmd
	}
}

// schedule arms the single-slot pending timer. Scheduling while a timer is
// pending replaces it: the old tick still arrives but carries a stale
// generation.
func (m *Model) schedule() tea.Cmd {
	m.gen++
	m.pending = true
	gen := m.gen
	return tea.Batch(
		func() tea.Msg { return statusbarview.PendingMsg{} },
		tea.Tick(m.debounce, func(time.Time) tea.Msg {
			return debounceMsg{gen: gen}
		}),
	)
}

// evaluate runs the pipeline synchronously over the current editor content
// and pushes the outcome into the tree, the raw pane and the status bar.
func (m *Model) evaluate() tea.Cmd {
	text := m.editor.Value()

	if strings.TrimSpace(text) == "" {
		m.result = jsonx.Result{}
		m.hasResult = false
		m.hasHash = false
		m.tree.Clear()
		m.raw.SetValue("")
		return statusCmd(statusbarview.ResultMsg{Repair: m.repair})
	}

	h, err := hash.Compute(struct {
		Text   string
		Repair bool
	}{text, m.repair})
	if err == nil && m.hasHash && h == m.lastHash {
		// Same content as the last evaluation, just refresh the status.
		return statusCmd(m.statusResult())
	}
	if err == nil {
		m.lastHash = h
		m.hasHash = true
	}

	start := time.Now()
	m.result = jsonx.ParseSmart(text, m.repair)
	m.hasResult = true

	if m.result.Ok() {
		m.tree.SetValue(m.result.Value)
		m.raw.SetValue(jsonx.Pretty(m.result.Value))
		peeklog.L().Debugw("parsed input",
			"bytes", len(text),
			"repair", m.repair,
			"took", time.Since(start),
			"hash", hash.Fmt(m.lastHash),
		)
	} else {
		m.tree.Clear()
		m.raw.SetValue("")
		peeklog.L().Debugw("parse failed",
			"bytes", len(text),
			"repair", m.repair,
			"err", m.result.Err,
		)
	}
	return statusCmd(m.statusResult())
}

func (m *Model) statusResult() statusbarview.ResultMsg {
	if !m.hasResult {
		return statusbarview.ResultMsg{Repair: m.repair}
	}
	if !m.result.Ok() {
		return statusbarview.ResultMsg{Err: m.result.Err.Error(), Repair: m.repair}
	}
	return statusbarview.ResultMsg{Summary: summarize(m.result.Value), Repair: m.repair}
}

func summarize(v *fastjson.Value) string {
	switch v.Type() {
	case fastjson.TypeObject:
		return fmt.Sprintf("object, %d keys", v.GetObject().Len())
	case fastjson.TypeArray:
		return fmt.Sprintf("array, %d items", len(v.GetArray()))
	default:
		return v.Type().String()
	}
}

func statusCmd(msg statusbarview.ResultMsg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func (m *Model) cycleFocus() {
	switch m.focus {
	case focusEditor:
		m.setFocus(focusTree)
	case focusTree:
		if m.showRaw {
			m.setFocus(focusRaw)
		} else {
			m.setFocus(focusEditor)
		}
	default:
		m.setFocus(focusEditor)
	}
}

func (m *Model) setFocus(f focusArea) {
	m.focus = f
	m.editor.Blur()
	m.raw.Blur()
	switch f {
	case focusEditor:
		m.editor.Focus()
	case focusRaw:
		m.raw.Focus()
	}
}

// forward hands non-key messages (mouse wheel, blink ticks) to the embedded
// components.
func (m *Model) forward(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	cmds = append(cmds, cmd)
	m.tree, cmd = m.tree.Update(msg)
	cmds = append(cmds, cmd)
	m.raw, cmd = m.raw.Update(msg)
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...)
}
