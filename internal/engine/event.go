package engine

import "github.com/zjrosen/pagekit/internal/host"

// EventKind identifies what changed in the engine.
type EventKind string

const (
	EventPluginRegistered EventKind = "plugin.registered"
	EventWidgetAdded      EventKind = "widget.added"
	EventWidgetEnabled    EventKind = "widget.enabled"
	EventWidgetDisabled   EventKind = "widget.disabled"
	EventSetterRegistered EventKind = "setter.registered"
	EventAssetsInstalled  EventKind = "assets.installed"
	EventActionAdded      EventKind = "action.added"
	EventDocumentOpened   EventKind = "document.opened"
	EventDocumentChanged  EventKind = "document.changed"
	EventRendererReady    EventKind = "renderer.ready"
)

// Event describes one engine mutation.
type Event struct {
	Kind EventKind
	Name string    // plugin, widget, setter, action or document id
	Area host.Area // widget events only
}
