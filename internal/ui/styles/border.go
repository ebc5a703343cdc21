package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	borderTopLeft     = "╭"
	borderTopRight    = "╮"
	borderBottomLeft  = "╰"
	borderBottomRight = "╯"
	borderHorizontal  = "─"
	borderVertical    = "│"
)

// Panel renders lines inside a rounded border with the title embedded in the
// top edge: ╭─ Title ─────╮. Lines wider than the panel are truncated.
func Panel(title string, lines []string, width int, focused bool) string {
	var borderColor lipgloss.TerminalColor = BorderDefaultColor
	if focused {
		borderColor = BorderFocusColor
	}
	borderStyle := lipgloss.NewStyle().Foreground(borderColor)

	innerWidth := max(width-2, 1)

	var b strings.Builder
	b.WriteString(topBorder(title, innerWidth, borderStyle))
	b.WriteString("\n")
	if len(lines) == 0 {
		lines = []string{MutedStyle.Render("(empty)")}
	}
	for _, line := range lines {
		line = TruncateStyled(line, innerWidth)
		pad := max(innerWidth-lipgloss.Width(line), 0)
		b.WriteString(borderStyle.Render(borderVertical))
		b.WriteString(line)
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(borderStyle.Render(borderVertical))
		b.WriteString("\n")
	}
	b.WriteString(borderStyle.Render(borderBottomLeft + strings.Repeat(borderHorizontal, innerWidth) + borderBottomRight))
	return b.String()
}

func topBorder(title string, innerWidth int, borderStyle lipgloss.Style) string {
	// "─ " before the title and " " after it need 3 columns, plus one dash.
	if title == "" || innerWidth < 4 {
		return borderStyle.Render(borderTopLeft + strings.Repeat(borderHorizontal, innerWidth) + borderTopRight)
	}
	title = TruncateString(title, innerWidth-4)
	dashes := max(innerWidth-3-lipgloss.Width(title), 0)
	return borderStyle.Render(borderTopLeft+borderHorizontal+" ") +
		HeaderStyle.Render(title) +
		borderStyle.Render(" "+strings.Repeat(borderHorizontal, dashes)+borderTopRight)
}
