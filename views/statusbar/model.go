// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package statusbarview

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"jsonpeek/ui"
)

// Height is the number of terminal rows the status block occupies; the app
// subtracts it when sizing the current view.
const Height = 4

const spinnerInterval = 120 * time.Millisecond

type state int

const (
	stateIdle state = iota
	statePending
	stateOK
	stateErr
)

// Model shows the pipeline state next to the help bar: repair flag, pending
// spinner, and the summary or error of the last parse.
type Model struct {
	version string
	repair  bool

	state   state
	summary string
	errMsg  string
	frame   int
}

func New(version string, repair bool) *Model {
	return &Model{
		version: version,
		repair:  repair,
	}
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PendingMsg:
		if m.state == statePending {
			return nil
		}
		m.state = statePending
		return m.spinnerTick()

	case ResultMsg:
		m.repair = msg.Repair
		if msg.Err != "" {
			m.state = stateErr
			m.errMsg = msg.Err
			m.summary = ""
		} else if msg.Summary == "" {
			m.state = stateIdle
		} else {
			m.state = stateOK
			m.summary = msg.Summary
		}
		return nil

	case SpinnerTickMsg:
		if m.state != statePending {
			return nil
		}
		m.frame++
		return m.spinnerTick()
	}
	return nil
}

func (m *Model) spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(time.Time) tea.Msg {
		return SpinnerTickMsg{}
	})
}

var (
	nameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true)
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("120"))
	onStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

func (m *Model) View() string {
	repair := "off"
	if m.repair {
		repair = onStyle.Render("on")
	}

	var status string
	switch m.state {
	case statePending:
		status = ui.SpinnerCharAt(m.frame) + " parsing…"
	case stateOK:
		status = okStyle.Render("✓ " + m.summary)
	case stateErr:
		status = ui.ErrorStyle.Render("✗ " + m.errMsg)
	default:
		status = ui.FaintStyle.Render("waiting for input")
	}

	lines := []string{
		nameStyle.Render("jsonpeek ") + ui.FaintStyle.Render(m.version),
		"repair: " + repair,
		status,
		"",
	}
	block := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return lipgloss.NewStyle().PaddingRight(3).Render(block)
}
