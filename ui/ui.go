package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles (you can override these per-view if desired)
var (
	FrameTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")).
			Bold(true)

	FrameBorderColor = lipgloss.Color("117")

	FrameFocusedBorderColor = lipgloss.Color("214")

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Bold(true)

	FaintStyle = lipgloss.NewStyle().Faint(true)

	Rainbow = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
	}
)

// RenderFramedBox draws a bordered frame with a centered title and content.
// If width <= 0 it defaults to content width + padding. When focused the
// border switches to the focus color. ANSI sequences in content are
// preserved.
func RenderFramedBox(title, content string, width int, focused bool) string {
	lines := strings.Split(content, "\n")

	contentWidth := 0
	for _, l := range lines {
		if w := lipgloss.Width(l); w > contentWidth {
			contentWidth = w
		}
	}
	if width <= 0 {
		width = contentWidth + 4
	}

	borderColor := FrameBorderColor
	if focused {
		borderColor = FrameFocusedBorderColor
	}
	borderStyle := lipgloss.NewStyle().Foreground(borderColor)

	titleStyled := FrameTitleStyle.Render(" " + title + " ")
	borderWidth := width - 2

	leftPad := (borderWidth - lipgloss.Width(titleStyled)) / 2
	if leftPad < 0 {
		leftPad = 0
	}
	rightPad := borderWidth - leftPad - lipgloss.Width(titleStyled)
	if rightPad < 0 {
		rightPad = 0
	}

	topLine := fmt.Sprintf(
		"%s%s%s%s%s",
		borderStyle.Render("╭"),
		borderStyle.Render(strings.Repeat("─", leftPad)),
		titleStyled,
		borderStyle.Render(strings.Repeat("─", rightPad)),
		borderStyle.Render("╮"),
	)

	boxLines := []string{topLine}
	for _, l := range lines {
		boxLines = append(boxLines, fmt.Sprintf("%s%s%s",
			borderStyle.Render("│"),
			padLine(l, borderWidth),
			borderStyle.Render("│")))
	}

	bottomLine := fmt.Sprintf("%s%s%s",
		borderStyle.Render("╰"),
		borderStyle.Render(strings.Repeat("─", borderWidth)),
		borderStyle.Render("╯"))
	boxLines = append(boxLines, bottomLine)

	return strings.Join(boxLines, "\n")
}

// RenderFramedBoxHeight is RenderFramedBox with the content padded or
// truncated to exactly height inner lines, so stacked frames line up.
func RenderFramedBoxHeight(title, content string, width, height int, focused bool) string {
	lines := strings.Split(content, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return RenderFramedBox(title, strings.Join(lines, "\n"), width, focused)
}

// padLine fits a line to width, preserving ANSI sequences
func padLine(line string, width int) string {
	l := lipgloss.Width(line)
	if l >= width {
		return lipgloss.NewStyle().MaxWidth(width).Render(line)
	}
	return line + strings.Repeat(" ", width-l)
}
