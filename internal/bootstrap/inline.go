package bootstrap

import (
	"context"
	"fmt"

	"github.com/zjrosen/pagekit/internal/host"
	"github.com/zjrosen/pagekit/internal/log"
)

// Names of the plugins defined in this package.
const (
	PluginEditorInit      = "editor-init"
	PluginBuiltinRegistry = "builtin-plugin-registry"
	PluginSetterRegistry  = "ext-setters-registry"
	PluginSaveSample      = "saveSample"
	PluginPreviewSample   = "previewSample"
	PluginCustomSetter    = "___registerCustomSetter___"
)

// Names assigned to renamed modules.
const (
	PluginSchema           = "SchemaPlugin"
	PluginSimulatorResizer = "SimulatorResizer"
	PluginDataSourcePane   = "DataSourcePane"
	PluginCodeEditor       = "CodeEditor"
	PluginCodeGenerator    = "CodeGenPlugin"
)

// Widget and setter names placed by the inline plugins.
const (
	WidgetLogo               = "logo"
	WidgetComponentsPane     = "componentsPane"
	WidgetPagesPane          = "pagesPane"
	WidgetEventBindDialog    = "eventBindDialog"
	WidgetVariableBindDialog = "variableBindDialog"
	WidgetSave               = "saveSample"
	WidgetPreview            = "previewSample"

	SetterTitle    = "TitleSetter"
	SetterBehavior = "BehaviorSetter"
	SetterCustom   = "CustomSetter"
)

const (
	// ConfigKeyCurrentPage selects the page opened at startup.
	ConfigKeyCurrentPage = "currentPage"
	// DefaultPage is opened when ConfigKeyCurrentPage is unset or empty.
	DefaultPage = "home"
)

// currentPage reads the configured start page, falling back to DefaultPage.
func currentPage(cfg host.ConfigStore) string {
	if cfg == nil {
		return DefaultPage
	}
	v, ok := cfg.Get(ConfigKeyCurrentPage)
	if !ok {
		return DefaultPage
	}
	page, isString := v.(string)
	if !isString {
		log.Warn(log.CatBoot, "Ignoring non-string currentPage", "value", v)
		return DefaultPage
	}
	if page == "" {
		log.Debug(log.CatBoot, "currentPage is empty, using default", "page", DefaultPage)
		return DefaultPage
	}
	return page
}

func editorInit(d Deps) host.Plugin {
	return host.NewPlugin(PluginEditorInit, func(ctx context.Context, hc host.Context) error {
		page := currentPage(hc.Config)

		assets, err := d.FetchAssets(ctx)
		if err != nil {
			return fmt.Errorf("fetch assets: %w", err)
		}
		hc.Material.SetAssets(assets)

		schema, err := d.FetchPageSchema(ctx, page)
		if err != nil {
			return fmt.Errorf("fetch page schema %q: %w", page, err)
		}

		if _, err := hc.Project.OpenDocument(schema); err != nil {
			return fmt.Errorf("open document %q: %w", page, err)
		}
		return nil
	})
}

func builtinPluginRegistry(c Contents) host.Plugin {
	return host.NewPlugin(PluginBuiltinRegistry, func(_ context.Context, hc host.Context) error {
		if _, err := hc.Skeleton.Add(host.WidgetConfig{
			Area:    host.AreaTop,
			Type:    host.TypeWidget,
			Name:    WidgetLogo,
			Content: c.Logo,
			ContentProps: map[string]any{
				"logo": c.LogoURL,
				"href": c.LogoHref,
			},
			Props: map[string]any{"align": "left"},
		}); err != nil {
			return fmt.Errorf("add %s: %w", WidgetLogo, err)
		}

		// The components pane stays unusable until the preview surface exists.
		pane, err := hc.Skeleton.Add(host.WidgetConfig{
			Area:         host.AreaLeft,
			Type:         host.TypePanelDock,
			Name:         WidgetComponentsPane,
			Content:      c.ComponentsPane,
			ContentProps: map[string]any{},
			Props: map[string]any{
				"align":       "top",
				"icon":        "zujianku",
				"description": "Components",
			},
		})
		if err != nil {
			return fmt.Errorf("add %s: %w", WidgetComponentsPane, err)
		}
		pane.Disable()
		hc.Project.OnSimulatorRendererReady(pane.Enable)

		if _, err := hc.Skeleton.Add(host.WidgetConfig{
			Area:         host.AreaLeft,
			Type:         host.TypePanelDock,
			Name:         WidgetPagesPane,
			Index:        -1,
			Content:      c.PagesPane,
			ContentProps: map[string]any{},
			Props: map[string]any{
				"align":       "top",
				"icon":        "kaiwenjianjia",
				"description": "Pages",
			},
		}); err != nil {
			return fmt.Errorf("add %s: %w", WidgetPagesPane, err)
		}
		return nil
	})
}

func setterRegistry(c Contents, s Setters) host.Plugin {
	return host.NewPlugin(PluginSetterRegistry, func(_ context.Context, hc host.Context) error {
		if err := hc.Setters.RegisterSetters(s.Extension); err != nil {
			return fmt.Errorf("register extension setters: %w", err)
		}

		dialogs := []struct {
			name    string
			content host.Content
		}{
			{WidgetEventBindDialog, c.EventBindDialog},
			{WidgetVariableBindDialog, c.VariableBindDialog},
		}
		for _, dlg := range dialogs {
			if _, err := hc.Skeleton.Add(host.WidgetConfig{
				Area:    host.AreaCenter,
				Type:    host.TypeWidget,
				Name:    dlg.name,
				Content: dlg.content,
				Props:   map[string]any{},
			}); err != nil {
				return fmt.Errorf("add %s: %w", dlg.name, err)
			}
		}
		return nil
	})
}

func buttonPlugin(pluginName, widgetName string, button host.Button) host.Plugin {
	return host.NewPlugin(pluginName, func(_ context.Context, hc host.Context) error {
		_, err := hc.Skeleton.Add(host.WidgetConfig{
			Area:    host.AreaTop,
			Type:    host.TypeWidget,
			Name:    widgetName,
			Content: button,
			Props:   map[string]any{"align": "right"},
		})
		if err != nil {
			return fmt.Errorf("add %s: %w", widgetName, err)
		}
		return nil
	})
}

func saveSample(save func(context.Context) error) host.Plugin {
	return buttonPlugin(PluginSaveSample, WidgetSave, host.Button{Label: "Save", OnClick: save})
}

func previewSample(preview func(context.Context) error) host.Plugin {
	return buttonPlugin(PluginPreviewSample, WidgetPreview, host.Button{Label: "Preview", Primary: true, OnClick: preview})
}

func customSetter(s Setters) host.Plugin {
	return host.NewPlugin(PluginCustomSetter, func(_ context.Context, hc host.Context) error {
		for _, entry := range []struct {
			name   string
			setter host.Setter
		}{
			{SetterTitle, s.Title},
			{SetterBehavior, s.Behavior},
			{SetterCustom, s.Custom},
		} {
			if err := hc.Setters.RegisterSetter(entry.name, entry.setter); err != nil {
				return fmt.Errorf("register %s: %w", entry.name, err)
			}
		}
		return nil
	})
}
