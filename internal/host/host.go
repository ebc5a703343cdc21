package host

import (
	"context"
	"errors"
)

// Host errors
var (
	ErrEmptyPluginName = errors.New("plugin name is required")
	ErrNilInit         = errors.New("plugin init function is required")
	ErrUnknownArea     = errors.New("unknown skeleton area")
	ErrEmptyWidgetName = errors.New("widget name is required")
	ErrDuplicateWidget = errors.New("widget name already in use")
	ErrEmptySetterName = errors.New("setter name is required")
)

// PluginRegistry accepts plugins and runs their initializers.
// Registration is keyed by plugin name.
type PluginRegistry interface {
	// Register adds the plugin and runs its Init with the host Context.
	// Returns the initializer's error, if any.
	Register(ctx context.Context, p Plugin) error
}

// Skeleton is the host layout: named areas holding ordered widgets.
type Skeleton interface {
	// Add appends a widget to the area named in cfg and returns its handle.
	Add(cfg WidgetConfig) (Widget, error)
}

// Widget is the handle returned by Skeleton.Add.
type Widget interface {
	Name() string
	Enable()
	Disable()
	Enabled() bool
}

// SetterRegistry maps setter names to renderers.
type SetterRegistry interface {
	RegisterSetter(name string, setter Setter) error
	RegisterSetters(setters map[string]Setter) error
}

// ConfigStore is read-only access to editor settings.
type ConfigStore interface {
	// Get returns the value for key and whether it was set.
	Get(key string) (any, bool)
}

// Material holds the component catalog for the editor.
type Material interface {
	SetAssets(assets Assets)
	AddBuiltinComponentAction(action ComponentAction)
}

// Project owns documents and the live preview surface.
type Project interface {
	// OpenDocument loads schema as the active document.
	OpenDocument(schema Schema) (Document, error)

	// OnSimulatorRendererReady runs fn once the preview surface is usable.
	// If the surface is already ready, fn runs immediately.
	OnSimulatorRendererReady(fn func())
}

// Context is what a plugin initializer receives.
type Context struct {
	Skeleton Skeleton
	Setters  SetterRegistry
	Material Material
	Project  Project
	Config   ConfigStore
}
