package styles

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
)

// TruncateString truncates plain text to fit within maxWidth cells, adding
// an ellipsis if needed.
func TruncateString(s string, maxWidth int) string {
	if maxWidth < 1 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return strings.Repeat(".", maxWidth)
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// TruncateStyled truncates a line that may carry ANSI styling without
// cutting through escape sequences.
func TruncateStyled(s string, maxWidth int) string {
	if maxWidth < 1 {
		return ""
	}
	if ansi.StringWidth(s) <= maxWidth {
		return s
	}
	return ansi.Truncate(s, maxWidth, "…")
}

// Wrap word-wraps text to width and returns the lines. Words longer than
// width are kept whole.
func Wrap(s string, width int) []string {
	if width < 1 || s == "" {
		return []string{s}
	}
	return strings.Split(wordwrap.String(s, width), "\n")
}

// State renders a widget's enabled flag as a short colored word.
func State(enabled bool) string {
	if enabled {
		return EnabledStyle.Render("enabled")
	}
	return DisabledStyle.Render("disabled")
}

// DiffLine colors a line of a page diff by its +/- prefix.
func DiffLine(line string) string {
	switch {
	case strings.HasPrefix(line, "+"):
		return DiffAddStyle.Render(line)
	case strings.HasPrefix(line, "-"):
		return DiffRemoveStyle.Render(line)
	default:
		return line
	}
}
