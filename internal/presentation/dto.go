// Package presentation converts engine state into output-ready DTOs and
// formats them for the CLI.
package presentation

import (
	"fmt"
	"sort"
	"time"

	"github.com/zjrosen/pagekit/internal/engine"
	"github.com/zjrosen/pagekit/internal/host"
	"github.com/zjrosen/pagekit/internal/pages"
)

// LayoutDTO is the editor state after a bootstrap run.
type LayoutDTO struct {
	Plugins       []string     `json:"plugins" yaml:"plugins"`
	Areas         []AreaDTO    `json:"areas" yaml:"areas"`
	Setters       []string     `json:"setters" yaml:"setters"`
	Actions       []string     `json:"actions" yaml:"actions"`
	Assets        *AssetsDTO   `json:"assets,omitempty" yaml:"assets,omitempty"`
	Document      *DocumentDTO `json:"document,omitempty" yaml:"document,omitempty"`
	RendererReady bool         `json:"renderer_ready" yaml:"renderer_ready"`
}

// AreaDTO lists the widgets of one layout area in display order.
type AreaDTO struct {
	Name    string      `json:"name" yaml:"name"`
	Widgets []WidgetDTO `json:"widgets" yaml:"widgets"`
}

// WidgetDTO represents a placed widget.
type WidgetDTO struct {
	Name    string         `json:"name" yaml:"name"`
	Type    string         `json:"type" yaml:"type"`
	Index   int            `json:"index" yaml:"index"`
	Enabled bool           `json:"enabled" yaml:"enabled"`
	Content string         `json:"content,omitempty" yaml:"content,omitempty"`
	Props   map[string]any `json:"props,omitempty" yaml:"props,omitempty"`
}

// AssetsDTO summarizes the installed manifest.
type AssetsDTO struct {
	Version    string `json:"version,omitempty" yaml:"version,omitempty"`
	Packages   int    `json:"packages" yaml:"packages"`
	Components int    `json:"components" yaml:"components"`
}

// DocumentDTO identifies the active document.
type DocumentDTO struct {
	ID     string `json:"id" yaml:"id"`
	PageID string `json:"page_id" yaml:"page_id"`
}

// PageDTO represents a stored page.
type PageDTO struct {
	ID        string    `json:"id" yaml:"id"`
	Version   int       `json:"version" yaml:"version"`
	Size      int       `json:"size" yaml:"size"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

// FromSnapshot converts an engine snapshot to a DTO. Empty areas are omitted.
func FromSnapshot(snap engine.Snapshot) LayoutDTO {
	dto := LayoutDTO{
		Plugins:       nonNil(snap.Plugins),
		Areas:         make([]AreaDTO, 0, len(snap.Layout)),
		Setters:       nonNil(snap.Setters),
		Actions:       nonNil(snap.Actions),
		RendererReady: snap.RendererReady,
	}
	for _, area := range host.Areas() {
		views, ok := snap.Layout[area]
		if !ok {
			continue
		}
		a := AreaDTO{Name: string(area), Widgets: make([]WidgetDTO, 0, len(views))}
		for _, v := range views {
			a.Widgets = append(a.Widgets, FromWidget(v))
		}
		dto.Areas = append(dto.Areas, a)
	}
	if snap.Assets != nil {
		dto.Assets = &AssetsDTO{
			Version:    snap.Assets.Version,
			Packages:   len(snap.Assets.Packages),
			Components: len(snap.Assets.Components),
		}
	}
	if snap.Document != nil {
		dto.Document = &DocumentDTO{ID: snap.Document.ID, PageID: snap.Document.Schema.PageID}
	}
	return dto
}

// FromWidget converts a widget view to a DTO.
func FromWidget(v engine.WidgetView) WidgetDTO {
	return WidgetDTO{
		Name:    v.Name,
		Type:    string(v.Type),
		Index:   v.Index,
		Enabled: v.Enabled,
		Content: DescribeContent(v.Content),
		Props:   v.Props,
	}
}

// DescribeContent renders opaque widget content as a short label.
func DescribeContent(c host.Content) string {
	switch v := c.(type) {
	case nil:
		return ""
	case host.Button:
		if v.Primary {
			return fmt.Sprintf("Button(%s, primary)", v.Label)
		}
		return fmt.Sprintf("Button(%s)", v.Label)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// FromPages converts stored pages to DTOs sorted by id.
func FromPages(list []*pages.Page) []PageDTO {
	out := make([]PageDTO, 0, len(list))
	for _, p := range list {
		out = append(out, PageDTO{
			ID:        p.ID,
			Version:   p.Version,
			Size:      len(p.Body),
			UpdatedAt: p.UpdatedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
