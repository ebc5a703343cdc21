package engine

import (
	"slices"
	"sort"
	"sync"

	"github.com/zjrosen/pagekit/internal/host"
	"github.com/zjrosen/pagekit/internal/log"
)

// SetterRegistry maps setter names to renderers. Re-registering a name
// replaces its renderer.
type SetterRegistry struct {
	mu       sync.RWMutex
	setters  map[string]host.Setter
	order    []string
	onChange func(Event)
}

func newSetterRegistry(onChange func(Event)) *SetterRegistry {
	return &SetterRegistry{
		setters:  make(map[string]host.Setter),
		onChange: onChange,
	}
}

var _ host.SetterRegistry = (*SetterRegistry)(nil)

// RegisterSetter registers one setter.
func (r *SetterRegistry) RegisterSetter(name string, setter host.Setter) error {
	if name == "" {
		return host.ErrEmptySetterName
	}

	r.mu.Lock()
	if _, exists := r.setters[name]; exists {
		log.Debug(log.CatSetter, "Replacing setter", "name", name)
	} else {
		r.order = append(r.order, name)
	}
	r.setters[name] = setter
	r.mu.Unlock()

	r.onChange(Event{Kind: EventSetterRegistered, Name: name})
	return nil
}

// RegisterSetters registers a setter map in name order.
// Nothing is registered if any name is empty.
func (r *SetterRegistry) RegisterSetters(setters map[string]host.Setter) error {
	names := make([]string, 0, len(setters))
	for name := range setters {
		if name == "" {
			return host.ErrEmptySetterName
		}
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := r.RegisterSetter(name, setters[name]); err != nil {
			return err
		}
	}
	log.Debug(log.CatSetter, "Setter map registered", "count", len(names))
	return nil
}

// Get returns the renderer for name.
func (r *SetterRegistry) Get(name string) (host.Setter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.setters[name]
	return s, ok
}

// Names returns setter names in first-registration order.
func (r *SetterRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.order)
}
