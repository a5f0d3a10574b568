// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package api

import (
	"strings"

	"jsonpeek/args"
)

// ParseInput takes a full input string like "repair on --quiet" and splits
// it into the command name and parsed Args. Lookup is against the provided
// resolver so this package stays free of the registry.
func ParseInput(input string, lookup func(name string) (Command, bool)) (Command, args.Args, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, args.Args{}, ErrEmptyCommand
	}

	parts := strings.Fields(input)

	// Find longest matching command name
	var cmd Command
	var ok bool
	for i := len(parts); i > 0; i-- {
		tryName := strings.Join(parts[:i], " ")
		if c, found := lookup(tryName); found {
			cmd = c
			ok = true
			parts = parts[i:] // remaining = args + flags
			break
		}
	}

	if !ok {
		return nil, args.Args{}, ErrUnknownCommand(input)
	}

	return cmd, parseArgs(parts), nil
}

// parseArgs separates flags (--flag or --flag=value) from positionals.
func parseArgs(parts []string) args.Args {
	parsed := args.Args{
		Flags:       make(map[string]string),
		Positionals: []string{},
	}

	for _, p := range parts {
		if strings.HasPrefix(p, "--") {
			p = strings.TrimPrefix(p, "--")
			if eq := strings.Index(p, "="); eq != -1 {
				parsed.Flags[p[:eq]] = p[eq+1:]
			} else {
				parsed.Flags[p] = "true"
			}
		} else {
			parsed.Positionals = append(parsed.Positionals, p)
		}
	}

	return parsed
}
