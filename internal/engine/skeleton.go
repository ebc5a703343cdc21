package engine

import (
	"fmt"
	"maps"
	"sort"
	"sync"

	"github.com/zjrosen/pagekit/internal/host"
	"github.com/zjrosen/pagekit/internal/log"
)

// Skeleton is the engine's layout: each area holds widgets ordered by Index.
type Skeleton struct {
	mu       sync.RWMutex
	areas    map[host.Area][]*widget
	byName   map[string]*widget
	onChange func(Event)
}

func newSkeleton(onChange func(Event)) *Skeleton {
	return &Skeleton{
		areas:    make(map[host.Area][]*widget),
		byName:   make(map[string]*widget),
		onChange: onChange,
	}
}

var _ host.Skeleton = (*Skeleton)(nil)

// Add places a widget in its area. Widgets start enabled.
func (s *Skeleton) Add(cfg host.WidgetConfig) (host.Widget, error) {
	if !cfg.Area.Valid() {
		return nil, fmt.Errorf("%w: %q", host.ErrUnknownArea, cfg.Area)
	}
	if cfg.Name == "" {
		return nil, host.ErrEmptyWidgetName
	}
	if cfg.Type == "" {
		cfg.Type = host.TypeWidget
	}

	s.mu.Lock()
	if _, exists := s.byName[cfg.Name]; exists {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", host.ErrDuplicateWidget, cfg.Name)
	}
	w := &widget{cfg: cfg, enabled: true, skeleton: s}
	list := append(s.areas[cfg.Area], w)
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].cfg.Index < list[j].cfg.Index
	})
	s.areas[cfg.Area] = list
	s.byName[cfg.Name] = w
	s.mu.Unlock()

	log.Debug(log.CatSkeleton, "Widget added", "name", cfg.Name, "area", cfg.Area, "type", cfg.Type)
	s.onChange(Event{Kind: EventWidgetAdded, Name: cfg.Name, Area: cfg.Area})
	return w, nil
}

// Widget looks up a widget handle by name.
func (s *Skeleton) Widget(name string) (host.Widget, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.byName[name]
	if !ok {
		return nil, false
	}
	return w, true
}

// Area returns views of the widgets in area, in display order.
func (s *Skeleton) Area(area host.Area) []WidgetView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	views := make([]WidgetView, 0, len(s.areas[area]))
	for _, w := range s.areas[area] {
		views = append(views, w.view())
	}
	return views
}

// WidgetView is a read-only copy of a widget's state.
type WidgetView struct {
	Name         string
	Area         host.Area
	Type         host.WidgetType
	Index        int
	Enabled      bool
	Content      host.Content
	ContentProps map[string]any
	Props        map[string]any
}

type widget struct {
	cfg      host.WidgetConfig
	enabled  bool // guarded by skeleton.mu
	skeleton *Skeleton
}

func (w *widget) Name() string { return w.cfg.Name }

func (w *widget) Enable() { w.setEnabled(true) }

func (w *widget) Disable() { w.setEnabled(false) }

func (w *widget) Enabled() bool {
	w.skeleton.mu.RLock()
	defer w.skeleton.mu.RUnlock()
	return w.enabled
}

func (w *widget) setEnabled(enabled bool) {
	w.skeleton.mu.Lock()
	changed := w.enabled != enabled
	w.enabled = enabled
	w.skeleton.mu.Unlock()

	if !changed {
		return
	}
	kind := EventWidgetDisabled
	if enabled {
		kind = EventWidgetEnabled
	}
	log.Debug(log.CatSkeleton, "Widget state changed", "name", w.cfg.Name, "enabled", enabled)
	w.skeleton.onChange(Event{Kind: kind, Name: w.cfg.Name, Area: w.cfg.Area})
}

// view must be called with skeleton.mu held.
func (w *widget) view() WidgetView {
	return WidgetView{
		Name:         w.cfg.Name,
		Area:         w.cfg.Area,
		Type:         w.cfg.Type,
		Index:        w.cfg.Index,
		Enabled:      w.enabled,
		Content:      w.cfg.Content,
		ContentProps: maps.Clone(w.cfg.ContentProps),
		Props:        maps.Clone(w.cfg.Props),
	}
}
