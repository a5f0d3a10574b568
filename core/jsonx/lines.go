// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package jsonx

import (
	"regexp"
	"strings"
)

// lineBoundary matches a single end-of-line. \r\n is one boundary, so CRLF
// input never produces phantom blank lines.
var lineBoundary = regexp.MustCompile("\r\n|\n")

// SplitLines splits text into lines, dropping lines that are empty or
// whitespace-only.
func SplitLines(text string) []string {
	var out []string
	for _, line := range lineBoundary.Split(text, -1) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
