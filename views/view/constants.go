// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package view

// View name constants for type-safe navigation
const (
	NameWorkbench = "workbench"
	NameHelp      = "help"
)
