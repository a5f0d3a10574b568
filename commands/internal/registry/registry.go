// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package registry

import (
	"sort"
	"strings"

	"jsonpeek/commands/api"
)

var commands = map[string]api.Command{}

// Register a new command (called from commands.Init)
func Register(cmd api.Command) {
	commands[cmd.Name()] = cmd
}

// Get returns a command by name
func Get(name string) (api.Command, bool) {
	cmd, ok := commands[name]
	return cmd, ok
}

// All returns every registered command, sorted by name.
func All() []api.Command {
	out := make([]api.Command, 0, len(commands))
	for _, c := range commands {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Suggest returns all command names that start with a given prefix
func Suggest(prefix string) []string {
	var out []string
	for name := range commands {
		if prefix == "" || strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
