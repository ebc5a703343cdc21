package builtin

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/pagekit/internal/assets"
	"github.com/zjrosen/pagekit/internal/bootstrap"
	"github.com/zjrosen/pagekit/internal/config"
	"github.com/zjrosen/pagekit/internal/defaults"
	"github.com/zjrosen/pagekit/internal/engine"
	"github.com/zjrosen/pagekit/internal/host"
	"github.com/zjrosen/pagekit/internal/pages"
)

// fakePages serves embedded defaults and records saves.
type fakePages struct {
	mu         sync.Mutex
	saved      []host.Schema
	saves      int
	previewErr error
}

func (f *fakePages) FetchPageSchema(_ context.Context, pageID string) (host.Schema, error) {
	if body, ok := defaults.Page(pageID); ok {
		return host.Schema{PageID: pageID, Body: body}, nil
	}
	return host.Schema{PageID: pageID, Body: defaults.BlankPage(pageID)}, nil
}

func (f *fakePages) SaveSchema(_ context.Context, schema host.Schema) (pages.SaveResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved = append(f.saved, schema)
	return pages.SaveResult{Page: &pages.Page{ID: schema.PageID, Body: schema.Body, Version: 1}, Created: true}, nil
}

func (f *fakePages) Save(context.Context) (pages.SaveResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves++
	return pages.SaveResult{Page: &pages.Page{ID: "home", Version: f.saves}}, nil
}

func (f *fakePages) Preview(context.Context) (string, error) {
	if f.previewErr != nil {
		return "", f.previewErr
	}
	return "./preview.html?page=home", nil
}

type bootResult struct {
	engine *engine.Engine
	pages  *fakePages
	saves  []pages.SaveResult
	urls   []string
}

func boot(t *testing.T, cfg config.Config) *bootResult {
	t.Helper()
	e := engine.New(engine.WithConfig(config.NewStore(cfg)))
	t.Cleanup(e.Close)

	r := &bootResult{engine: e, pages: &fakePages{}}
	deps := Deps(Options{
		Plugins:   e.Plugins(),
		Material:  e.Material(),
		Project:   e.Project(),
		Pages:     r.pages,
		Assets:    assets.NewLoader("", 0),
		Editor:    cfg.Editor,
		OnSave:    func(res pages.SaveResult) { r.saves = append(r.saves, res) },
		OnPreview: func(url string) { r.urls = append(r.urls, url) },
	})
	seq, err := bootstrap.New(deps)
	require.NoError(t, err)
	require.NoError(t, seq.Run(context.Background()))
	require.NoError(t, seq.Wait())
	return r
}

func widget(t *testing.T, snap engine.Snapshot, area host.Area, name string) engine.WidgetView {
	t.Helper()
	for _, w := range snap.Layout[area] {
		if w.Name == name {
			return w
		}
	}
	t.Fatalf("widget %s not found in %s", name, area)
	return engine.WidgetView{}
}

func TestDeps_BootsEngine(t *testing.T) {
	r := boot(t, config.Defaults())
	snap := r.engine.Snapshot()

	require.Len(t, snap.Plugins, 15)
	require.Equal(t, ModuleInject, snap.Plugins[0])
	require.Contains(t, snap.Plugins, bootstrap.PluginSchema)
	require.Contains(t, snap.Plugins, bootstrap.PluginCustomSetter)

	require.Equal(t, []string{"add"}, snap.Actions)
	require.NotNil(t, snap.Assets)
	require.NotEmpty(t, snap.Assets.Components)
	require.NotNil(t, snap.Document)
	require.Equal(t, "home", snap.Document.Schema.PageID)

	for _, name := range []string{"TitleSetter", "BehaviorSetter", "CustomSetter", "ColorSetter", "JsonSetter"} {
		require.Contains(t, snap.Setters, name)
	}

	logo := widget(t, snap, host.AreaTop, bootstrap.WidgetLogo)
	require.Equal(t, ContentLogo, logo.Content)
	require.Equal(t, config.Defaults().Editor.Logo, logo.ContentProps["logo"])

	require.Equal(t, bootstrap.WidgetPagesPane, snap.Layout[host.AreaLeft][0].Name)
	require.False(t, widget(t, snap, host.AreaLeft, bootstrap.WidgetComponentsPane).Enabled)
	widget(t, snap, host.AreaLeft, WidgetSchemaPane)
	widget(t, snap, host.AreaTop, WidgetSimulatorResizer)
	widget(t, snap, host.AreaCenter, bootstrap.WidgetEventBindDialog)

	r.engine.Project().MarkRendererReady()
	require.True(t, widget(t, r.engine.Snapshot(), host.AreaLeft, bootstrap.WidgetComponentsPane).Enabled)
}

func TestDeps_ZhEnReadsLocale(t *testing.T) {
	cfg := config.Defaults()
	cfg.Editor.Locale = "en-US"
	r := boot(t, cfg)

	w := widget(t, r.engine.Snapshot(), host.AreaTop, WidgetZhEn)
	require.Equal(t, "en-US", w.ContentProps["locale"])
}

func TestDeps_ToolbarButtons(t *testing.T) {
	r := boot(t, config.Defaults())
	snap := r.engine.Snapshot()

	save, ok := widget(t, snap, host.AreaTop, bootstrap.WidgetSave).Content.(host.Button)
	require.True(t, ok)
	require.NoError(t, save.OnClick(context.Background()))
	require.Len(t, r.saves, 1)
	require.Equal(t, "home", r.saves[0].Page.ID)

	preview, ok := widget(t, snap, host.AreaTop, bootstrap.WidgetPreview).Content.(host.Button)
	require.True(t, ok)
	require.True(t, preview.Primary)
	require.NoError(t, preview.OnClick(context.Background()))
	require.Equal(t, []string{"./preview.html?page=home"}, r.urls)

	r.pages.previewErr = errors.New("store offline")
	require.ErrorContains(t, preview.OnClick(context.Background()), "store offline")
	require.Len(t, r.urls, 1)
}

func TestSaveAsBlock(t *testing.T) {
	r := boot(t, config.Defaults())
	actions := r.engine.Material().Actions()
	require.Len(t, actions, 1)

	require.NoError(t, actions[0].Action(context.Background(), "node_welcome"))
	require.Len(t, r.pages.saved, 1)
	require.Equal(t, "block-node_welcome", r.pages.saved[0].PageID)

	var block map[string]any
	require.NoError(t, json.Unmarshal(r.pages.saved[0].Body, &block))
	require.Equal(t, "Button", block["componentName"])

	err := actions[0].Action(context.Background(), "node_missing")
	require.ErrorIs(t, err, ErrNodeNotFound)
}

func TestSaveAsBlock_NoActiveDocument(t *testing.T) {
	e := engine.New()
	defer e.Close()

	action := SaveAsBlock(e.Project(), &fakePages{})
	require.ErrorIs(t, action.Action(context.Background(), "node_home"), pages.ErrNoActiveDocument)
}

func TestFindNode(t *testing.T) {
	body := json.RawMessage(`{"id":"root","children":["text",{"id":"a","children":[{"id":"b"}]}]}`)

	found, err := findNode(body, "b")
	require.NoError(t, err)
	require.JSONEq(t, `{"id":"b"}`, string(found))

	found, err = findNode(body, "root")
	require.NoError(t, err)
	require.JSONEq(t, string(body), string(found))

	_, err = findNode(body, "text")
	require.ErrorIs(t, err, ErrNodeNotFound)
}

func TestFindNode_ChildrenShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
		id   string
		want string
	}{
		{"string children on the match", `{"id":"n1","children":"hello"}`, "n1", `{"id":"n1","children":"hello"}`},
		{"single object child", `{"id":"root","children":{"id":"n2"}}`, "n2", `{"id":"n2"}`},
		{"string children below a list", `{"id":"root","children":[{"id":"n3","children":"hi"}]}`, "n3", `{"id":"n3","children":"hi"}`},
		{"null children", `{"id":"root","children":null}`, "root", `{"id":"root","children":null}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := findNode(json.RawMessage(tt.body), tt.id)
			require.NoError(t, err)
			require.JSONEq(t, tt.want, string(found))
		})
	}

	_, err := findNode(json.RawMessage(`{"id":"root","children":"hello"}`), "hello")
	require.ErrorIs(t, err, ErrNodeNotFound)
}

func TestSetters(t *testing.T) {
	s := Setters()
	require.Len(t, s.Extension, len(extensionSetters))
	require.Equal(t, Renderer("ColorSetter"), s.Extension["ColorSetter"])
	require.Equal(t, Renderer("TitleSetter"), s.Title)
}
