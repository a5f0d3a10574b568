// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package api

import (
	tea "github.com/charmbracelet/bubbletea"

	"jsonpeek/args"
)

// Context is handed to every executing command.
type Context struct {
	App any // *app.Model, kept as any to avoid an import cycle
}

// Command is a named action reachable from the ":" bar.
type Command interface {
	Name() string
	Description() string
	Execute(ctx Context, args args.Args) tea.Cmd
}
