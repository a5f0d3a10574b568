package utils

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var highlightStyle = lipgloss.NewStyle().Background(lipgloss.Color("205")).Foreground(lipgloss.Color("0"))

// HighlightMatches re-renders text with every occurrence listed in matches
// wrapped in the highlight style. matches holds byte offsets as produced by
// FindAllMatches for the same term.
func HighlightMatches(text, term string, matches []int) string {
	if term == "" || len(matches) == 0 {
		return text
	}

	var b strings.Builder
	last := 0
	for _, idx := range matches {
		if idx < last || idx+len(term) > len(text) {
			continue
		}
		b.WriteString(text[last:idx])
		b.WriteString(highlightStyle.Render(text[idx : idx+len(term)]))
		last = idx + len(term)
	}
	b.WriteString(text[last:])
	return b.String()
}

// FindAllMatches returns the byte offsets of each case-insensitive,
// non-overlapping occurrence of term in text.
func FindAllMatches(text, term string) []int {
	if term == "" {
		return nil
	}
	var matches []int
	textLower := strings.ToLower(text)
	termLower := strings.ToLower(term)
	idx := 0
	for {
		i := strings.Index(textLower[idx:], termLower)
		if i == -1 {
			break
		}
		matches = append(matches, idx+i)
		idx += i + len(term)
	}
	return matches
}

// ContainsFold reports whether s contains substr, ignoring case.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
