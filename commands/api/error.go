// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package api

import (
	"errors"
	"fmt"
)

var ErrEmptyCommand = errors.New("empty command")

// ErrorMsg surfaces a command execution error back in the command bar.
type ErrorMsg struct{ Err error }

func ErrUnknownCommand(input string) error {
	return fmt.Errorf("unknown command: %q", input)
}
