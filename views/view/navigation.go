// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package view

type NavigateToMsg struct {
	ViewName string
	Payload  any
	// Replace indicates whether the target view should replace the current
	// view instead of being pushed onto the navigation stack.
	Replace bool
}

type NavigateBackMsg struct{}
