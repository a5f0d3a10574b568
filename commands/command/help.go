// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package command

import (
	tea "github.com/charmbracelet/bubbletea"

	"jsonpeek/args"
	"jsonpeek/commands/api"
	"jsonpeek/commands/internal/registry"
	helpview "jsonpeek/views/help"
	"jsonpeek/views/view"
)

type Help struct{}

func (Help) Name() string        { return "help" }
func (Help) Description() string { return "Show all commands and key bindings" }

func (Help) Execute(ctx api.Context, a args.Args) tea.Cmd {
	var infos []helpview.CommandInfo
	for _, c := range registry.All() {
		infos = append(infos, helpview.CommandInfo{Name: c.Name(), Description: c.Description()})
	}
	return func() tea.Msg {
		return view.NavigateToMsg{ViewName: view.NameHelp, Payload: infos}
	}
}
