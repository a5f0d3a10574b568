// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package command

import (
	tea "github.com/charmbracelet/bubbletea"

	"jsonpeek/args"
	"jsonpeek/commands/api"
	workbenchview "jsonpeek/views/workbench"
)

type Sample struct{}

func (Sample) Name() string        { return "sample" }
func (Sample) Description() string { return "Load a sample document into the editor" }

const sampleDoc = `{
  "service": "checkout",
  "healthy": true,
  "replicas": 3,
  "endpoints": ["api", "metrics"],
  "limits": {"cpu": "500m", "memory": "256Mi"},
  "recent_latencies_ms": [12, 9, 31, 8, 14, 27, 11, 19]
}`

func (Sample) Execute(ctx api.Context, a args.Args) tea.Cmd {
	return func() tea.Msg { return workbenchview.LoadTextMsg{Text: sampleDoc} }
}
