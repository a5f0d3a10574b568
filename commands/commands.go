// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package commands

import (
	"jsonpeek/commands/api"
	"jsonpeek/commands/command"
	"jsonpeek/commands/internal/registry"
)

// Init registers every built-in command. Call once at startup.
func Init() {
	registry.Register(command.Help{})
	registry.Register(command.Raw{})
	registry.Register(command.Repair{})
	registry.Register(command.Expand{})
	registry.Register(command.Collapse{})
	registry.Register(command.Clear{})
	registry.Register(command.Sample{})
}

// Public passthroughs so app code can just use `commands.Get()` or `commands.All()`
func Register(cmd api.Command)            { registry.Register(cmd) }
func Get(name string) (api.Command, bool) { return registry.Get(name) }
func All() []api.Command                  { return registry.All() }
func Suggest(prefix string) []string      { return registry.Suggest(prefix) }
