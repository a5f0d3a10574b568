// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"jsonpeek/ui"
	"jsonpeek/views/commandinput"
	statusbarview "jsonpeek/views/statusbar"
	"jsonpeek/views/view"
	"jsonpeek/views/viewstack"
)

// Model holds app state
type Model struct {
	terminalWidth  int
	terminalHeight int
	usableWidth    int
	usableHeight   int

	currentView view.View
	viewStack   viewstack.Stack

	commandInput *commandinput.Model
	statusBar    *statusbarview.Model
}

func InitialModel(opts Options) *Model {
	wb, _ := viewRegistry[view.NameWorkbench](80, 20, nil)

	return &Model{
		usableWidth:  80,
		usableHeight: 20,
		currentView:  wb,
		viewStack:    viewstack.Stack{},
		commandInput: commandinput.New(),
		statusBar:    statusbarview.New(opts.Version, opts.Repair),
	}
}

// Init will be automatically called by Bubble Tea when the model is passed
// into tea.NewProgram.
func (m *Model) Init() tea.Cmd {
	return m.currentView.Init()
}

func (m *Model) switchToView(name string, payload any) tea.Cmd {
	factory, ok := viewRegistry[name]
	if !ok {
		return nil
	}

	exitCmd := m.currentView.OnExit()

	newView, loadCmd := factory(m.usableWidth, m.usableHeight, payload)
	resizeCmd := handleViewResize(newView, m.usableWidth, m.usableHeight)

	m.viewStack.Push(m.currentView)
	m.currentView = newView

	enterCmd := newView.OnEnter()

	return tea.Batch(exitCmd, resizeCmd, loadCmd, enterCmd)
}

func (m *Model) replaceView(name string, payload any) tea.Cmd {
	factory, ok := viewRegistry[name]
	if !ok {
		return nil
	}

	exitCmd := m.currentView.OnExit()

	newView, loadCmd := factory(m.usableWidth, m.usableHeight, payload)
	resizeCmd := handleViewResize(newView, m.usableWidth, m.usableHeight)

	m.currentView = newView
	m.viewStack.Reset()

	enterCmd := newView.OnEnter()

	return tea.Batch(exitCmd, resizeCmd, loadCmd, enterCmd)
}

func (m *Model) goBack() tea.Cmd {
	// No parent view left → quit the app
	if m.viewStack.Len() == 0 {
		exitCmd := m.currentView.OnExit()
		return tea.Batch(exitCmd, tea.Quit)
	}

	oldView := m.currentView
	exitCmd := oldView.OnExit()

	m.currentView = m.viewStack.Pop()
	enterCmd := m.currentView.OnEnter()
	resizeCmd := handleViewResize(m.currentView, m.usableWidth, m.usableHeight)

	return tea.Batch(exitCmd, enterCmd, resizeCmd)
}

func (m *Model) renderStackBar() string {
	stack := append(m.viewStack.Views(), m.currentView)

	var parts []string
	for i, v := range stack {
		if i > 0 {
			parts = append(parts, ui.FaintStyle.Render(" → "))
		}
		style := ui.Rainbow[i%len(ui.Rainbow)]
		parts = append(parts, style.Render(fmt.Sprintf(" %s ", v.Name())))
	}

	return lipgloss.JoinHorizontal(lipgloss.Left, parts...)
}
