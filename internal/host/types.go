package host

import (
	"context"
	"encoding/json"
)

// Area names a region of the editor layout.
type Area string

const (
	AreaTop    Area = "topArea"
	AreaLeft   Area = "leftArea"
	AreaCenter Area = "centerArea"
	AreaRight  Area = "rightArea"
	AreaBottom Area = "bottomArea"
	AreaBar    Area = "toolbar"
)

// Areas lists every known area in display order.
func Areas() []Area {
	return []Area{AreaTop, AreaLeft, AreaCenter, AreaRight, AreaBottom, AreaBar}
}

// Valid reports whether a is a known area.
func (a Area) Valid() bool {
	for _, known := range Areas() {
		if a == known {
			return true
		}
	}
	return false
}

// WidgetType selects how the host renders a widget.
type WidgetType string

const (
	TypeWidget    WidgetType = "Widget"
	TypePanelDock WidgetType = "PanelDock"
	TypePanel     WidgetType = "Panel"
	TypeDock      WidgetType = "Dock"
)

// Content is an opaque reference to a UI component owned by a plugin.
type Content any

// Setter is an opaque property renderer.
type Setter any

// WidgetConfig describes a widget to add to the skeleton.
type WidgetConfig struct {
	Area         Area
	Type         WidgetType
	Name         string
	Index        int // ordering within the area; lower first, ties keep insertion order
	Content      Content
	ContentProps map[string]any
	Props        map[string]any
}

// Button is widget content for a clickable toolbar button.
type Button struct {
	Label   string
	Primary bool
	OnClick func(ctx context.Context) error
}

// ComponentAction is an action offered on every component in the canvas.
type ComponentAction struct {
	Name      string
	Title     string
	Icon      string
	Important bool
	Action    func(ctx context.Context, nodeID string) error
}

// Assets is the component catalog manifest.
type Assets struct {
	Version    string          `json:"version,omitempty"`
	Packages   []AssetPackage  `json:"packages"`
	Components []ComponentMeta `json:"components"`
}

// AssetPackage is a library the renderer loads.
type AssetPackage struct {
	Package string   `json:"package"`
	Version string   `json:"version,omitempty"`
	Library string   `json:"library,omitempty"`
	URLs    []string `json:"urls,omitempty"`
}

// ComponentMeta describes one component in the catalog.
type ComponentMeta struct {
	ComponentName string   `json:"componentName"`
	Title         string   `json:"title,omitempty"`
	Category      string   `json:"category,omitempty"`
	NPM           *NPMInfo `json:"npm,omitempty"`
}

// NPMInfo locates a component's implementation.
type NPMInfo struct {
	Package    string `json:"package"`
	Version    string `json:"version,omitempty"`
	ExportName string `json:"exportName,omitempty"`
}

// Schema is a serialized page tree.
type Schema struct {
	PageID string
	Body   json.RawMessage
}

// Document is an opened schema.
type Document struct {
	ID     string
	Schema Schema
}

// MapConfig is a ConfigStore backed by a plain map.
type MapConfig map[string]any

// Get implements ConfigStore. Nil and empty-string values count as unset.
func (m MapConfig) Get(key string) (any, bool) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, false
	}
	if s, isString := v.(string); isString && s == "" {
		return nil, false
	}
	return v, true
}
