package presentation

import (
	"fmt"
	"strings"

	"github.com/zjrosen/pagekit/internal/ui/markdown"
)

// LayoutMarkdown describes the editor layout as a markdown report.
func LayoutMarkdown(layout LayoutDTO) string {
	var b strings.Builder
	b.WriteString("# Editor layout\n\n")
	if layout.Document != nil {
		fmt.Fprintf(&b, "- **page**: %s\n", markdown.Escape(layout.Document.PageID))
		fmt.Fprintf(&b, "- **document**: `%s`\n", layout.Document.ID)
	}
	if layout.Assets != nil {
		fmt.Fprintf(&b, "- **assets**: %s, %d packages, %d components\n",
			markdown.Escape(valueOr(layout.Assets.Version, "unversioned")), layout.Assets.Packages, layout.Assets.Components)
	}
	state := "waiting"
	if layout.RendererReady {
		state = "ready"
	}
	fmt.Fprintf(&b, "- **renderer**: %s\n", state)

	for _, area := range layout.Areas {
		fmt.Fprintf(&b, "\n## %s\n\n", markdown.Escape(area.Name))
		if len(area.Widgets) == 0 {
			b.WriteString("_empty_\n")
			continue
		}
		b.WriteString("| widget | type | state | content |\n|---|---|---|---|\n")
		for _, w := range area.Widgets {
			state := "enabled"
			if !w.Enabled {
				state = "disabled"
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
				markdown.Escape(w.Name), markdown.Escape(w.Type), state, markdown.Escape(w.Content))
		}
	}

	writeList(&b, fmt.Sprintf("Plugins (%d)", len(layout.Plugins)), layout.Plugins, true)
	writeList(&b, fmt.Sprintf("Setters (%d)", len(layout.Setters)), layout.Setters, false)
	writeList(&b, "Actions", layout.Actions, false)
	return b.String()
}

// PagesMarkdown describes stored pages as a markdown table.
func PagesMarkdown(list []PageDTO) string {
	var b strings.Builder
	b.WriteString("# Stored pages\n\n")
	if len(list) == 0 {
		b.WriteString("_no stored pages_\n")
		return b.String()
	}
	b.WriteString("| page | version | size | updated |\n|---|---|---|---|\n")
	for _, p := range list {
		fmt.Fprintf(&b, "| %s | %d | %d | %s |\n",
			markdown.Escape(p.ID), p.Version, p.Size, p.UpdatedAt.Local().Format("2006-01-02 15:04:05"))
	}
	return b.String()
}

func writeList(b *strings.Builder, title string, items []string, ordered bool) {
	fmt.Fprintf(b, "\n## %s\n\n", title)
	for i, item := range items {
		if ordered {
			fmt.Fprintf(b, "%d. %s\n", i+1, markdown.Escape(item))
		} else {
			fmt.Fprintf(b, "- %s\n", markdown.Escape(item))
		}
	}
}

func (f *Formatter) renderMarkdown(md string) error {
	r, err := f.markdownRenderer(f.width)
	if err != nil {
		return fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("rendering markdown: %w", err)
	}
	_, err = fmt.Fprint(f.writer, out)
	return err
}
