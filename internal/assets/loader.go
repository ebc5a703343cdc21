// Package assets loads the component asset manifest installed into the editor.
package assets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/zjrosen/pagekit/internal/cachemanager"
	"github.com/zjrosen/pagekit/internal/defaults"
	"github.com/zjrosen/pagekit/internal/host"
	"github.com/zjrosen/pagekit/internal/log"
)

// ErrInvalidManifest is returned for manifests that fail to parse or validate.
var ErrInvalidManifest = errors.New("invalid asset manifest")

// embeddedKey is the cache key used when no manifest path is configured.
const embeddedKey = "embedded:" + defaults.AssetsFile

// Loader reads the manifest from disk, or the embedded default when no path is
// set or the file does not exist. Parsed manifests are cached for the TTL.
type Loader struct {
	path  string
	cache *cachemanager.ReadThroughCache[string, host.Assets]
}

// NewLoader creates a loader for path. A non-positive ttl disables caching.
func NewLoader(path string, ttl time.Duration) *Loader {
	l := &Loader{path: path}
	l.cache = cachemanager.NewReadThroughCache[string, host.Assets](
		cachemanager.NewInMemoryCacheManager[string, host.Assets]("assets", ttl, cachemanager.DefaultCleanupInterval),
		l.load,
		ttl,
	)
	return l
}

// Path returns the configured manifest path, or "" for the embedded default.
func (l *Loader) Path() string {
	return l.path
}

func (l *Loader) key() string {
	if l.path == "" {
		return embeddedKey
	}
	return l.path
}

// Fetch returns the current manifest.
func (l *Loader) Fetch(ctx context.Context) (host.Assets, error) {
	if err := ctx.Err(); err != nil {
		return host.Assets{}, err
	}
	return l.cache.Get(ctx, l.key())
}

// Invalidate drops the cached manifest so the next Fetch rereads it.
func (l *Loader) Invalidate(ctx context.Context) error {
	log.Debug(log.CatAssets, "Asset manifest invalidated", "path", l.key())
	return l.cache.Invalidate(ctx, l.key())
}

func (l *Loader) load(_ context.Context, key string) (host.Assets, error) {
	if key == embeddedKey {
		return parseSource(defaults.Assets(), "embedded")
	}

	data, err := os.ReadFile(filepath.Clean(key))
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn(log.CatAssets, "Asset manifest not found, using embedded default", "path", key)
		return parseSource(defaults.Assets(), "embedded")
	}
	if err != nil {
		return host.Assets{}, fmt.Errorf("read asset manifest %s: %w", key, err)
	}
	return parseSource(data, key)
}

func parseSource(data []byte, source string) (host.Assets, error) {
	assets, err := Parse(data)
	if err != nil {
		return host.Assets{}, fmt.Errorf("%s: %w", source, err)
	}
	log.Info(log.CatAssets, "Asset manifest loaded", "source", source,
		"version", assets.Version, "packages", len(assets.Packages), "components", len(assets.Components))
	return assets, nil
}

// Parse decodes and validates a manifest.
func Parse(data []byte) (host.Assets, error) {
	var assets host.Assets
	if err := json.Unmarshal(data, &assets); err != nil {
		return host.Assets{}, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	for i, pkg := range assets.Packages {
		if pkg.Package == "" {
			return host.Assets{}, fmt.Errorf("%w: packages[%d] has no package name", ErrInvalidManifest, i)
		}
	}
	seen := make(map[string]bool, len(assets.Components))
	for i, c := range assets.Components {
		if c.ComponentName == "" {
			return host.Assets{}, fmt.Errorf("%w: components[%d] has no componentName", ErrInvalidManifest, i)
		}
		if seen[c.ComponentName] {
			return host.Assets{}, fmt.Errorf("%w: duplicate component %q", ErrInvalidManifest, c.ComponentName)
		}
		seen[c.ComponentName] = true
	}
	return assets, nil
}
