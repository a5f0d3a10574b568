// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"jsonpeek/commands"
	"jsonpeek/commands/api"
	peeklog "jsonpeek/utils/log"
	"jsonpeek/views/commandinput"
	statusbarview "jsonpeek/views/statusbar"
	"jsonpeek/views/view"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case commandinput.SubmitMsg:
		cmd, parsedArgs, err := api.ParseInput(msg.Command, commands.Get)
		if err != nil {
			m.commandInput.ShowError(err.Error())
			return m, nil
		}
		peeklog.L().Debugw("executing command", "name", cmd.Name(), "args", parsedArgs.String())
		return m, cmd.Execute(api.Context{App: m}, parsedArgs)

	case api.ErrorMsg:
		m.commandInput.ShowError(msg.Err.Error())
		return m, m.commandInput.Show()

	case view.NavigateToMsg:
		if msg.Replace {
			return m, m.replaceView(msg.ViewName, msg.Payload)
		}
		return m, m.switchToView(msg.ViewName, msg.Payload)

	case view.NavigateBackMsg:
		return m, m.goBack()

	case tea.WindowSizeMsg:
		return m, m.updateForResize(msg)

	case statusbarview.PendingMsg, statusbarview.ResultMsg, statusbarview.SpinnerTickMsg:
		return m, m.statusBar.Update(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, m.delegateToCurrentView(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The one truly global key.
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// If the command bar is visible, forward all keys to it exclusively.
	if m.commandInput.Visible() {
		return m, m.commandInput.Update(msg)
	}

	// Views that are consuming text input get every key, so typing "?" or
	// "q" into the editor works as expected.
	captures := false
	if c, ok := m.currentView.(view.InputCapturer); ok {
		captures = c.CapturesInput()
	}

	if !captures {
		switch msg.String() {
		case ":":
			return m, m.commandInput.Show()
		case "?":
			if m.currentView.Name() != view.NameHelp {
				return m, m.switchToView(view.NameHelp, helpPayload())
			}
		case "q", "esc":
			return m, m.goBack()
		}
	}

	var cmd tea.Cmd
	m.currentView, cmd = m.currentView.Update(msg)
	return m, cmd
}

func (m *Model) delegateToCurrentView(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.currentView, cmd = m.currentView.Update(msg)
	return cmd
}

func (m *Model) updateForResize(msg tea.WindowSizeMsg) tea.Cmd {
	m.terminalWidth = msg.Width
	m.terminalHeight = msg.Height

	// Leave room for the help/status block above and the stack bar below.
	m.usableWidth = msg.Width
	m.usableHeight = msg.Height - statusbarview.Height - 1
	if m.usableHeight < 3 {
		m.usableHeight = 3
	}

	return handleViewResize(m.currentView, m.usableWidth, m.usableHeight)
}

func handleViewResize(v view.View, width, height int) tea.Cmd {
	var cmd tea.Cmd
	_, cmd = v.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return cmd
}
