package engine

import (
	"github.com/zjrosen/pagekit/internal/host"
)

// Snapshot is a point-in-time copy of the engine state.
type Snapshot struct {
	Plugins       []string
	Layout        map[host.Area][]WidgetView
	Setters       []string
	Actions       []string
	Assets        *host.Assets
	Document      *host.Document
	RendererReady bool
}

// Snapshot copies the current engine state.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Plugins:       e.plugins.Names(),
		Layout:        make(map[host.Area][]WidgetView),
		Setters:       e.setters.Names(),
		RendererReady: e.project.RendererReady(),
	}
	for _, area := range host.Areas() {
		if widgets := e.skeleton.Area(area); len(widgets) > 0 {
			snap.Layout[area] = widgets
		}
	}
	for _, a := range e.material.Actions() {
		snap.Actions = append(snap.Actions, a.Name)
	}
	if assets, ok := e.material.Assets(); ok {
		snap.Assets = &assets
	}
	if doc, ok := e.project.ActiveDocument(); ok {
		snap.Document = &doc
	}
	return snap
}
