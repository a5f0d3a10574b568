// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package treeview

import (
	"fmt"
)

// View renders the pane content: an optional search prompt line followed by
// the scrolled tree. Framing is done by the workbench.
func (m Model) View() string {
	if m.searchMode || m.SearchTerm != "" {
		prompt := fmt.Sprintf("search: %s", m.SearchTerm)
		if m.searchMode {
			prompt += "█"
		}
		return prompt + "\n" + m.viewport.View()
	}
	return m.viewport.View()
}
