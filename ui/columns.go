// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package ui

// DistributeColumns splits totalWidth across len(weights) panes separated by
// gapCount gaps of gapWidth each. Each pane gets space proportional to its
// weight; leftover cells from integer division go to the first panes. Every
// pane keeps a minimum width of 1 when any space is available.
func DistributeColumns(totalWidth, gapCount, gapWidth int, weights []int) []int {
	widths := make([]int, len(weights))
	if len(weights) == 0 {
		return widths
	}

	available := totalWidth - gapCount*gapWidth
	if available <= 0 {
		for i := range widths {
			widths[i] = 1
		}
		return widths
	}

	totalWeight := 0
	for _, w := range weights {
		if w < 1 {
			w = 1
		}
		totalWeight += w
	}

	used := 0
	for i, w := range weights {
		if w < 1 {
			w = 1
		}
		widths[i] = available * w / totalWeight
		if widths[i] < 1 {
			widths[i] = 1
		}
		used += widths[i]
	}

	// Hand out rounding leftovers left to right.
	for i := 0; used < available; i = (i + 1) % len(widths) {
		widths[i]++
		used++
	}

	return widths
}
