// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package command

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"jsonpeek/args"
	"jsonpeek/commands/api"
	workbenchview "jsonpeek/views/workbench"
)

type Repair struct{}

func (Repair) Name() string        { return "repair" }
func (Repair) Description() string { return "Toggle the repair pass, or set it: repair on|off" }

func (Repair) Execute(ctx api.Context, a args.Args) tea.Cmd {
	var enable *bool
	switch a.First() {
	case "":
		// toggle
	case "on", "true", "1":
		v := true
		enable = &v
	case "off", "false", "0":
		v := false
		enable = &v
	default:
		return func() tea.Msg {
			return api.ErrorMsg{Err: fmt.Errorf("repair: want on or off, got %q", a.First())}
		}
	}
	return func() tea.Msg { return workbenchview.SetRepairMsg{Enable: enable} }
}
