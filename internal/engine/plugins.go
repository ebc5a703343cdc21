package engine

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/zjrosen/pagekit/internal/host"
	"github.com/zjrosen/pagekit/internal/log"
)

// ErrPluginExists is returned in strict mode when a name is registered twice.
var ErrPluginExists = errors.New("plugin already registered")

// PluginRegistry is the engine's ordered, name-keyed plugin registry.
type PluginRegistry struct {
	mu       sync.Mutex
	order    []string
	pending  map[string]struct{}
	strict   bool
	hostCtx  func() host.Context
	onChange func(Event)
}

func newPluginRegistry(strict bool, hostCtx func() host.Context, onChange func(Event)) *PluginRegistry {
	return &PluginRegistry{
		pending:  make(map[string]struct{}),
		strict:   strict,
		hostCtx:  hostCtx,
		onChange: onChange,
	}
}

var _ host.PluginRegistry = (*PluginRegistry)(nil)

// Register runs the plugin's initializer and records it under its name.
//
// A name that is already registered (or mid-initialization) is ignored, or
// rejected with ErrPluginExists in strict mode. A failing initializer leaves
// the name unregistered so a later attempt may succeed.
func (r *PluginRegistry) Register(ctx context.Context, p host.Plugin) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	_, busy := r.pending[p.Name]
	if busy || slices.Contains(r.order, p.Name) {
		r.mu.Unlock()
		if r.strict {
			return fmt.Errorf("%w: %s", ErrPluginExists, p.Name)
		}
		log.Debug(log.CatPlugin, "Plugin already registered, skipping", "plugin", p.Name)
		return nil
	}
	r.pending[p.Name] = struct{}{}
	r.mu.Unlock()

	// Init runs without the lock; initializers may register further plugins.
	err := p.Init(ctx, r.hostCtx())

	r.mu.Lock()
	delete(r.pending, p.Name)
	if err == nil {
		r.order = append(r.order, p.Name)
	}
	r.mu.Unlock()

	if err != nil {
		log.ErrorErr(log.CatPlugin, "Plugin init failed", err, "plugin", p.Name)
		return fmt.Errorf("init plugin %s: %w", p.Name, err)
	}

	log.Debug(log.CatPlugin, "Plugin registered", "plugin", p.Name)
	r.onChange(Event{Kind: EventPluginRegistered, Name: p.Name})
	return nil
}

// Has reports whether name is registered.
func (r *PluginRegistry) Has(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Contains(r.order, name)
}

// Names returns registered plugin names in registration order.
func (r *PluginRegistry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.order)
}
