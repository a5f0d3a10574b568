// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package workbenchview

// Messages produced by ":" commands and handled by the workbench.

// ToggleRawMsg shows or hides the pretty-printed text pane.
type ToggleRawMsg struct{}

// SetRepairMsg changes the repair flag. A nil Enable toggles.
type SetRepairMsg struct{ Enable *bool }

// ExpandAllMsg expands every tree node.
type ExpandAllMsg struct{}

// CollapseAllMsg collapses every tree node below the root.
type CollapseAllMsg struct{}

// ClearMsg empties the editor.
type ClearMsg struct{}

// LoadTextMsg replaces the editor content, e.g. with the sample document.
type LoadTextMsg struct{ Text string }

// debounceMsg fires when the single-slot pending timer elapses. A stale
// generation means a newer keystroke rescheduled the evaluation and this
// tick must be ignored.
type debounceMsg struct{ gen int }
