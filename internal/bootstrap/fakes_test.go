package bootstrap

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/zjrosen/pagekit/internal/host"
)

// recorder collects host calls in the order they happen.
type recorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *recorder) add(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.calls))
	copy(out, r.calls)
	return out
}

// fakeHost implements every host capability and records what plugins do.
type fakeHost struct {
	rec *recorder

	mu        sync.Mutex
	plugins   map[string]bool
	widgets   map[string]*fakeWidget
	setters   map[string]host.Setter
	actions   []host.ComponentAction
	assets    *host.Assets
	documents []host.Schema
	onReady   []func()
	config    host.ConfigStore
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		rec:     &recorder{},
		plugins: make(map[string]bool),
		widgets: make(map[string]*fakeWidget),
		setters: make(map[string]host.Setter),
		config:  host.MapConfig{},
	}
}

func (f *fakeHost) context() host.Context {
	return host.Context{
		Skeleton: fakeSkeleton{f},
		Setters:  fakeSetters{f},
		Material: fakeMaterial{f},
		Project:  fakeProject{f},
		Config:   f.config,
	}
}

func (f *fakeHost) Register(ctx context.Context, p host.Plugin) error {
	f.rec.add("register:%s", p.Name)
	f.mu.Lock()
	if f.plugins[p.Name] {
		f.mu.Unlock()
		return nil
	}
	f.plugins[p.Name] = true
	f.mu.Unlock()
	return p.Init(ctx, f.context())
}

func (f *fakeHost) widget(name string) *fakeWidget {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.widgets[name]
}

func (f *fakeHost) fireRendererReady() {
	f.mu.Lock()
	fns := f.onReady
	f.onReady = nil
	f.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

type fakeWidget struct {
	cfg     host.WidgetConfig
	rec     *recorder
	mu      sync.Mutex
	enabled bool
}

func (w *fakeWidget) Name() string { return w.cfg.Name }

func (w *fakeWidget) Enable() {
	w.rec.add("enable:%s", w.cfg.Name)
	w.mu.Lock()
	w.enabled = true
	w.mu.Unlock()
}

func (w *fakeWidget) Disable() {
	w.rec.add("disable:%s", w.cfg.Name)
	w.mu.Lock()
	w.enabled = false
	w.mu.Unlock()
}

func (w *fakeWidget) Enabled() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.enabled
}

type fakeSkeleton struct{ f *fakeHost }

func (s fakeSkeleton) Add(cfg host.WidgetConfig) (host.Widget, error) {
	s.f.rec.add("widget:%s:%s", cfg.Area, cfg.Name)
	w := &fakeWidget{cfg: cfg, rec: s.f.rec, enabled: true}
	s.f.mu.Lock()
	s.f.widgets[cfg.Name] = w
	s.f.mu.Unlock()
	return w, nil
}

type fakeSetters struct{ f *fakeHost }

func (s fakeSetters) RegisterSetter(name string, setter host.Setter) error {
	s.f.rec.add("setter:%s", name)
	s.f.mu.Lock()
	s.f.setters[name] = setter
	s.f.mu.Unlock()
	return nil
}

func (s fakeSetters) RegisterSetters(setters map[string]host.Setter) error {
	names := make([]string, 0, len(setters))
	for name := range setters {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := s.RegisterSetter(name, setters[name]); err != nil {
			return err
		}
	}
	return nil
}

type fakeMaterial struct{ f *fakeHost }

func (m fakeMaterial) SetAssets(assets host.Assets) {
	m.f.rec.add("assets:%s", assets.Version)
	m.f.mu.Lock()
	m.f.assets = &assets
	m.f.mu.Unlock()
}

func (m fakeMaterial) AddBuiltinComponentAction(action host.ComponentAction) {
	m.f.rec.add("action:%s", action.Name)
	m.f.mu.Lock()
	m.f.actions = append(m.f.actions, action)
	m.f.mu.Unlock()
}

type fakeProject struct{ f *fakeHost }

func (p fakeProject) OpenDocument(schema host.Schema) (host.Document, error) {
	p.f.rec.add("open:%s", schema.PageID)
	p.f.mu.Lock()
	p.f.documents = append(p.f.documents, schema)
	p.f.mu.Unlock()
	return host.Document{ID: "doc-" + schema.PageID, Schema: schema}, nil
}

func (p fakeProject) OnSimulatorRendererReady(fn func()) {
	p.f.rec.add("onReady")
	p.f.mu.Lock()
	p.f.onReady = append(p.f.onReady, fn)
	p.f.mu.Unlock()
}

func module(name string) host.Plugin {
	return host.Noop(name)
}

// testDeps returns a complete dependency set wired to plugins and material.
func testDeps(plugins host.PluginRegistry, material host.Material) Deps {
	return Deps{
		Plugins:  plugins,
		Material: material,
		Modules: Modules{
			Inject:           module("inject"),
			BlockPane:        module("blockPane"),
			Schema:           module("schema"),
			SimulatorResizer: module("simulatorResizer"),
			UndoRedo:         module("undoRedo"),
			ZhEn:             module("zhEn"),
			DataSourcePane:   module("dataSource"),
			CodeEditor:       module("codeEditor"),
			CodeGenerator:    module("codeGenerator"),
		},
		Contents: Contents{
			Logo:               "logo-component",
			LogoURL:            "https://example.com/logo.png",
			LogoHref:           "https://example.com",
			ComponentsPane:     "components-pane",
			PagesPane:          "pages-pane",
			EventBindDialog:    "event-bind-dialog",
			VariableBindDialog: "variable-bind-dialog",
		},
		Setters: Setters{
			Extension: map[string]host.Setter{
				"ColorSetter": "color",
				"JsonSetter":  "json",
			},
			Title:    "title",
			Behavior: "behavior",
			Custom:   "custom",
		},
		SaveAsBlock: host.ComponentAction{Name: "add", Title: "Save as block"},
		FetchAssets: func(context.Context) (host.Assets, error) {
			return host.Assets{Version: "1.0.0"}, nil
		},
		FetchPageSchema: func(_ context.Context, pageID string) (host.Schema, error) {
			return host.Schema{PageID: pageID, Body: json.RawMessage(`{"componentName":"Page"}`)}, nil
		},
		Save:    func(context.Context) error { return nil },
		Preview: func(context.Context) error { return nil },
	}
}

// filter keeps entries with the given prefix, dropping any listed in skip.
func filter(calls []string, prefix string, skip ...string) []string {
	var out []string
	for _, c := range calls {
		if strings.HasPrefix(c, prefix) && !slices.Contains(skip, c) {
			out = append(out, c)
		}
	}
	return out
}
