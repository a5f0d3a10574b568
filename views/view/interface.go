// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package view

import (
	tea "github.com/charmbracelet/bubbletea"

	"jsonpeek/views/helpbar"
)

// View is a full-screen screen managed by the app model.
type View interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (View, tea.Cmd)
	View() string
	Name() string

	// ShortHelpItems feeds the help bar with the view's key bindings.
	ShortHelpItems() []helpbar.HelpEntry

	// Lifecycle hooks run when the view becomes or stops being current.
	OnEnter() tea.Cmd
	OnExit() tea.Cmd
}

// InputCapturer is implemented by views that are currently consuming raw
// text input (an editor pane, a search prompt). While capture is active the
// app must not interpret global shortcuts like "?" or "q".
type InputCapturer interface {
	CapturesInput() bool
}
