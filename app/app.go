// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"jsonpeek/commands"
	helpview "jsonpeek/views/help"
	"jsonpeek/views/view"
	workbenchview "jsonpeek/views/workbench"
)

// Options carry the CLI configuration into the app.
type Options struct {
	Version  string
	Repair   bool
	Debounce time.Duration
}

var viewRegistry = map[string]view.Factory{}

func registerView(name string, factory view.Factory) {
	viewRegistry[name] = factory
}

// Init should be called once at the start of the application to register all
// commands and views.
func Init(opts Options) {
	commands.Init()

	registerView(view.NameWorkbench, func(w, h int, payload any) (view.View, tea.Cmd) {
		m := workbenchview.New(w, h, workbenchview.Options{
			Repair:   opts.Repair,
			Debounce: opts.Debounce,
		})
		return m, m.Init()
	})
	registerView(view.NameHelp, func(w, h int, payload any) (view.View, tea.Cmd) {
		infos, _ := payload.([]helpview.CommandInfo)
		return helpview.New(w, h, infos), nil
	})
}

// helpPayload lists every registered command for the help screen.
func helpPayload() []helpview.CommandInfo {
	var infos []helpview.CommandInfo
	for _, c := range commands.All() {
		infos = append(infos, helpview.CommandInfo{Name: c.Name(), Description: c.Description()})
	}
	return infos
}
