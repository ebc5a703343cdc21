package engine

import (
	"sync"

	"github.com/zjrosen/pagekit/internal/host"
	"github.com/zjrosen/pagekit/internal/log"
)

// Material stores the installed asset manifest and component actions.
type Material struct {
	mu       sync.RWMutex
	assets   *host.Assets
	actions  []host.ComponentAction
	onChange func(Event)
}

func newMaterial(onChange func(Event)) *Material {
	return &Material{onChange: onChange}
}

var _ host.Material = (*Material)(nil)

// SetAssets replaces the installed manifest.
func (m *Material) SetAssets(assets host.Assets) {
	m.mu.Lock()
	m.assets = &assets
	m.mu.Unlock()

	log.Info(log.CatAssets, "Assets installed",
		"version", assets.Version,
		"packages", len(assets.Packages),
		"components", len(assets.Components))
	m.onChange(Event{Kind: EventAssetsInstalled, Name: assets.Version})
}

// Assets returns the installed manifest, if any.
func (m *Material) Assets() (host.Assets, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.assets == nil {
		return host.Assets{}, false
	}
	return *m.assets, true
}

// AddBuiltinComponentAction appends an action offered on every component.
// An action whose name is already present replaces it.
func (m *Material) AddBuiltinComponentAction(action host.ComponentAction) {
	m.mu.Lock()
	replaced := false
	for i, existing := range m.actions {
		if existing.Name == action.Name {
			m.actions[i] = action
			replaced = true
			break
		}
	}
	if !replaced {
		m.actions = append(m.actions, action)
	}
	m.mu.Unlock()

	m.onChange(Event{Kind: EventActionAdded, Name: action.Name})
}

// Actions returns the built-in component actions.
func (m *Material) Actions() []host.ComponentAction {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]host.ComponentAction, len(m.actions))
	copy(out, m.actions)
	return out
}
