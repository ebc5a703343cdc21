// Package flags provides feature flags read from the flags section of the
// config file. Flags are read-only after initialization and default to off.
package flags

import (
	"maps"
	"slices"

	"github.com/zjrosen/pagekit/internal/log"
)

// Flag name constants for type-safe flag access.
const (
	// FlagBestEffortBootstrap keeps the bootstrap sequence running after a
	// failed step and reports every failure at the end.
	FlagBestEffortBootstrap = "best-effort-bootstrap"

	// FlagStrictPlugins makes the engine reject a second registration of a
	// plugin name instead of ignoring it.
	FlagStrictPlugins = "strict-plugins"

	// FlagWatchAssets reinstalls the asset manifest when assets.json changes.
	FlagWatchAssets = "watch-assets"
)

// Known returns every flag name pagekit reads.
func Known() []string {
	return []string{FlagBestEffortBootstrap, FlagStrictPlugins, FlagWatchAssets}
}

// Registry holds feature flag state loaded from configuration.
type Registry struct {
	flags map[string]bool
}

// New creates a Registry from a config map.
// A nil map yields an empty registry (all flags disabled).
func New(flags map[string]bool) *Registry {
	if flags == nil {
		flags = make(map[string]bool)
	}
	r := &Registry{flags: maps.Clone(flags)}
	for name := range flags {
		if !slices.Contains(Known(), name) {
			log.Warn(log.CatConfig, "Unrecognized feature flag", "flag", name)
		}
	}
	log.Debug(log.CatConfig, "Feature flags initialized", "count", len(flags), "flags", r.All())
	return r
}

// Enabled returns true if the named flag is enabled.
// Unknown flags and a nil registry report false.
func (r *Registry) Enabled(name string) bool {
	if r == nil || r.flags == nil {
		return false
	}
	return r.flags[name]
}

// All returns a copy of all flags.
func (r *Registry) All() map[string]bool {
	if r == nil || r.flags == nil {
		return make(map[string]bool)
	}
	return maps.Clone(r.flags)
}
