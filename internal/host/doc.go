// Package host defines the capabilities an editor host exposes to plugins.
//
// The bootstrap sequencer never reaches for a global registry. Every capability
// it touches is one of the interfaces below, passed in by whoever builds the
// editor:
//
//   - PluginRegistry: name-keyed, append-only registration of plugins
//   - Skeleton: named layout areas holding widgets and panels
//   - SetterRegistry: property renderers looked up by name
//   - ConfigStore: read-only editor settings
//   - Material: the asset manifest and built-in component actions
//   - Project: documents and the renderer-ready notification
//
// Context bundles these for a plugin initializer. Plugin is the uniform
// descriptor registered into a PluginRegistry; NewPlugin builds one.
//
// The reference in-memory implementation lives in internal/engine.
package host
