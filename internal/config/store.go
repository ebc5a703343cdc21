package config

import (
	"sort"
	"sync"

	"github.com/zjrosen/pagekit/internal/host"
)

// Keys plugins use to read editor settings.
const (
	KeyCurrentPage = "currentPage"
	KeyLocale      = "locale"
	KeyLogo        = "logo"
	KeyLogoHref    = "logoHref"
	KeyPreviewBase = "previewBase"
)

// Store is the host config store backed by the loaded configuration.
// Empty settings read as unset.
type Store struct {
	mu     sync.RWMutex
	values host.MapConfig
}

var _ host.ConfigStore = (*Store)(nil)

// NewStore exposes cfg's editor settings under their plugin-facing keys.
func NewStore(cfg Config) *Store {
	return &Store{values: host.MapConfig{
		KeyCurrentPage: cfg.Editor.CurrentPage,
		KeyLocale:      cfg.Editor.Locale,
		KeyLogo:        cfg.Editor.Logo,
		KeyLogoHref:    cfg.Editor.LogoHref,
		KeyPreviewBase: cfg.Editor.PreviewBase,
	}}
}

// Get implements host.ConfigStore.
func (s *Store) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values.Get(key)
}

// Set overrides a value, e.g. from a command-line flag.
func (s *Store) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// Keys returns the keys that currently have a value, sorted.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		if _, ok := s.values.Get(k); ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
