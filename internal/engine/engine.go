// Package engine is an in-memory editor host. It implements every capability
// in internal/host so the bootstrap sequence can run end to end from the CLI,
// the shell view and integration tests.
package engine

import (
	"github.com/zjrosen/pagekit/internal/host"
	"github.com/zjrosen/pagekit/internal/pubsub"
)

// Option configures an Engine.
type Option func(*options)

type options struct {
	strict bool
	config host.ConfigStore
}

// WithStrictPlugins rejects duplicate plugin names instead of ignoring them.
func WithStrictPlugins(strict bool) Option {
	return func(o *options) { o.strict = strict }
}

// WithConfig sets the store plugins read settings from.
func WithConfig(store host.ConfigStore) Option {
	return func(o *options) { o.config = store }
}

// Engine aggregates the in-memory host capabilities.
type Engine struct {
	plugins  *PluginRegistry
	skeleton *Skeleton
	setters  *SetterRegistry
	material *Material
	project  *Project
	config   host.ConfigStore
	events   *pubsub.Broker[Event]
}

// New creates an empty engine.
func New(opts ...Option) *Engine {
	o := options{config: host.MapConfig{}}
	for _, opt := range opts {
		opt(&o)
	}

	e := &Engine{
		config: o.config,
		events: pubsub.NewBroker[Event](),
	}
	publish := e.publish
	e.skeleton = newSkeleton(publish)
	e.setters = newSetterRegistry(publish)
	e.material = newMaterial(publish)
	e.project = newProject(publish)
	e.plugins = newPluginRegistry(o.strict, e.Context, publish)
	return e
}

func (e *Engine) publish(ev Event) {
	e.events.Publish(pubsub.UpdatedEvent, ev)
}

// Context returns the capability bundle handed to plugin initializers.
func (e *Engine) Context() host.Context {
	return host.Context{
		Skeleton: e.skeleton,
		Setters:  e.setters,
		Material: e.material,
		Project:  e.project,
		Config:   e.config,
	}
}

// Plugins returns the plugin registry.
func (e *Engine) Plugins() *PluginRegistry { return e.plugins }

// Skeleton returns the layout.
func (e *Engine) Skeleton() *Skeleton { return e.skeleton }

// Setters returns the setter registry.
func (e *Engine) Setters() *SetterRegistry { return e.setters }

// Material returns the asset store.
func (e *Engine) Material() *Material { return e.material }

// Project returns the document store.
func (e *Engine) Project() *Project { return e.project }

// Config returns the settings store.
func (e *Engine) Config() host.ConfigStore { return e.config }

// Events returns the broker every mutation is published on.
func (e *Engine) Events() *pubsub.Broker[Event] { return e.events }

// Close shuts down the event broker.
func (e *Engine) Close() {
	e.events.Close()
}
