// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package command

import (
	tea "github.com/charmbracelet/bubbletea"

	"jsonpeek/args"
	"jsonpeek/commands/api"
	workbenchview "jsonpeek/views/workbench"
)

type Raw struct{}

func (Raw) Name() string        { return "raw" }
func (Raw) Description() string { return "Show or hide the pretty-printed text pane" }

func (Raw) Execute(ctx api.Context, a args.Args) tea.Cmd {
	return func() tea.Msg { return workbenchview.ToggleRawMsg{} }
}
