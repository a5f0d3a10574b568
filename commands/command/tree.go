// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package command

import (
	tea "github.com/charmbracelet/bubbletea"

	"jsonpeek/args"
	"jsonpeek/commands/api"
	workbenchview "jsonpeek/views/workbench"
)

type Expand struct{}

func (Expand) Name() string        { return "expand" }
func (Expand) Description() string { return "Expand every tree node" }

func (Expand) Execute(ctx api.Context, a args.Args) tea.Cmd {
	return func() tea.Msg { return workbenchview.ExpandAllMsg{} }
}

type Collapse struct{}

func (Collapse) Name() string        { return "collapse" }
func (Collapse) Description() string { return "Collapse every tree node" }

func (Collapse) Execute(ctx api.Context, a args.Args) tea.Cmd {
	return func() tea.Msg { return workbenchview.CollapseAllMsg{} }
}

type Clear struct{}

func (Clear) Name() string        { return "clear" }
func (Clear) Description() string { return "Empty the input editor" }

func (Clear) Execute(ctx api.Context, a args.Args) tea.Cmd {
	return func() tea.Msg { return workbenchview.ClearMsg{} }
}
