package presentation

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/pagekit/internal/ui/markdown"
	"github.com/zjrosen/pagekit/internal/ui/styles"
)

// Format selects the output encoding.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML, FormatMarkdown:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, json, yaml or markdown)", s)
	}
}

// Formatter handles output formatting
type Formatter struct {
	writer io.Writer
	format Format
	width  int

	markdownRenderer func(width int) (*markdown.Renderer, error)
}

// NewFormatter creates a new formatter
func NewFormatter(writer io.Writer, format Format) *Formatter {
	return &Formatter{
		writer: writer,
		format: format,
		width:  72,

		markdownRenderer: markdown.New,
	}
}

func (f *Formatter) encode(v any) error {
	switch f.format {
	case FormatYAML:
		encoder := yaml.NewEncoder(f.writer)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return err
		}
		return encoder.Close()
	default:
		encoder := json.NewEncoder(f.writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	}
}

// FormatLayout writes the editor state after a bootstrap run.
func (f *Formatter) FormatLayout(layout LayoutDTO) error {
	if f.format == FormatMarkdown {
		return f.renderMarkdown(LayoutMarkdown(layout))
	}
	if f.format != FormatText {
		return f.encode(layout)
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Editor layout"))
	b.WriteString("\n")
	if layout.Document != nil {
		fmt.Fprintf(&b, "page: %s  document: %s\n", layout.Document.PageID, styles.MutedStyle.Render(layout.Document.ID))
	}
	if layout.Assets != nil {
		fmt.Fprintf(&b, "assets: %s (%d packages, %d components)\n",
			valueOr(layout.Assets.Version, "unversioned"), layout.Assets.Packages, layout.Assets.Components)
	}
	fmt.Fprintf(&b, "renderer: %s\n\n", readyLabel(layout.RendererReady))

	for _, area := range layout.Areas {
		lines := make([]string, 0, len(area.Widgets))
		for _, w := range area.Widgets {
			line := fmt.Sprintf("%-20s %-9s %s", w.Name, w.Type, styles.State(w.Enabled))
			if w.Content != "" {
				line += "  " + styles.DetailStyle.Render(w.Content)
			}
			lines = append(lines, line)
		}
		b.WriteString(styles.Panel(area.Name, lines, f.width, false))
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\nplugins (%d): %s\n", len(layout.Plugins), strings.Join(layout.Plugins, ", "))
	fmt.Fprintf(&b, "setters (%d): %s\n", len(layout.Setters), strings.Join(layout.Setters, ", "))
	fmt.Fprintf(&b, "actions: %s\n", strings.Join(layout.Actions, ", "))

	_, err := io.WriteString(f.writer, b.String())
	return err
}

// FormatNames writes a plain list, one name per line in text and markdown mode.
func (f *Formatter) FormatNames(names []string) error {
	if f.format != FormatText && f.format != FormatMarkdown {
		return f.encode(nonNil(names))
	}
	for i, name := range names {
		if _, err := fmt.Fprintf(f.writer, "%3d  %s\n", i+1, name); err != nil {
			return err
		}
	}
	return nil
}

// FormatPages writes stored pages.
func (f *Formatter) FormatPages(list []PageDTO) error {
	if f.format == FormatMarkdown {
		return f.renderMarkdown(PagesMarkdown(list))
	}
	if f.format != FormatText {
		return f.encode(list)
	}
	if len(list) == 0 {
		_, err := fmt.Fprintln(f.writer, styles.MutedStyle.Render("no stored pages"))
		return err
	}
	for _, p := range list {
		if _, err := fmt.Fprintf(f.writer, "%-24s v%-4d %6dB  %s\n",
			p.ID, p.Version, p.Size, p.UpdatedAt.Local().Format("2006-01-02 15:04:05")); err != nil {
			return err
		}
	}
	return nil
}

// FormatDiff writes a page diff, coloring added and removed lines.
func (f *Formatter) FormatDiff(diff string) error {
	if diff == "" {
		_, err := fmt.Fprintln(f.writer, styles.MutedStyle.Render("no changes"))
		return err
	}
	for _, line := range strings.Split(strings.TrimRight(diff, "\n"), "\n") {
		if _, err := fmt.Fprintln(f.writer, styles.DiffLine(line)); err != nil {
			return err
		}
	}
	return nil
}

// FormatResult writes any value as JSON or YAML; text and markdown fall back to JSON.
func (f *Formatter) FormatResult(result any) error {
	return f.encode(result)
}

func readyLabel(ready bool) string {
	if ready {
		return styles.EnabledStyle.Render("ready")
	}
	return styles.DisabledStyle.Render("waiting")
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
