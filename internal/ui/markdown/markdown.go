// Package markdown renders markdown reports for the terminal.
package markdown

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// noMarginStyle removes document margins so reports line up with the rest of
// the CLI output.
const noMarginStyle = `{
	"document": {
		"margin": 0,
		"block_prefix": "",
		"block_suffix": ""
	}
}`

// Renderer wraps glamour with pagekit's configuration.
type Renderer struct {
	renderer *glamour.TermRenderer
	width    int
}

// New creates a renderer that picks a dark or light style from the terminal
// and wraps at width.
func New(width int) (*Renderer, error) {
	return newRenderer(width, glamour.WithAutoStyle())
}

// NewPlain creates a renderer that emits no color, for pipes and tests.
func NewPlain(width int) (*Renderer, error) {
	return newRenderer(width, glamour.WithStandardStyle("notty"))
}

func newRenderer(width int, style glamour.TermRendererOption) (*Renderer, error) {
	r, err := glamour.NewTermRenderer(
		style,
		glamour.WithStylesFromJSONBytes([]byte(noMarginStyle)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	return &Renderer{renderer: r, width: width}, nil
}

// Width returns the configured word wrap width.
func (r *Renderer) Width() int {
	return r.width
}

// Render transforms markdown to styled terminal output.
func (r *Renderer) Render(markdown string) (string, error) {
	out, err := r.renderer.Render(markdown)
	if err != nil {
		return "", err
	}
	return strings.TrimLeft(out, "\n"), nil
}

// Escape backslash-escapes characters that glamour would treat as inline
// markup in a plain value such as a widget name.
func Escape(s string) string {
	return markdownEscaper.Replace(s)
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "*", `\*`, "_", `\_`, "`", "\\`", "[", `\[`, "]", `\]`, "|", `\|`,
)
