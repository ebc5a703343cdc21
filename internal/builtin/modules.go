package builtin

import (
	"context"
	"fmt"

	"github.com/zjrosen/pagekit/internal/bootstrap"
	"github.com/zjrosen/pagekit/internal/host"
	"github.com/zjrosen/pagekit/internal/log"
)

// Names the stand-in modules register under before any renaming.
const (
	ModuleInject           = "inject"
	ModuleBlockPane        = "blockPane"
	ModuleSchema           = "schema"
	ModuleSimulatorResizer = "simulatorResizer"
	ModuleUndoRedo         = "undoRedo"
	ModuleZhEn             = "zhEn"
	ModuleDataSourcePane   = "dataSourcePane"
	ModuleCodeEditor       = "codeEditor"
	ModuleCodeGenerator    = "codeGenerator"
)

// Widgets the stand-in modules place.
const (
	WidgetBlockPane        = "blockPane"
	WidgetSchemaPane       = "schemaPane"
	WidgetSimulatorResizer = "simulatorResizer"
	WidgetUndoRedo         = "undoRedo"
	WidgetZhEn             = "zhEn"
	WidgetDataSourcePane   = "dataSourcePane"
	WidgetCodeEditor       = "codeEditor"
	WidgetCodeGenerator    = "codeGenerator"
)

// widgetModule returns a plugin that adds a single widget.
func widgetModule(name string, cfg host.WidgetConfig) host.Plugin {
	return host.NewPlugin(name, func(_ context.Context, hc host.Context) error {
		if _, err := hc.Skeleton.Add(cfg); err != nil {
			return fmt.Errorf("add %s: %w", cfg.Name, err)
		}
		return nil
	})
}

func dock(name string, content Component, icon, description string, align string) host.WidgetConfig {
	return host.WidgetConfig{
		Area:         host.AreaLeft,
		Type:         host.TypePanelDock,
		Name:         name,
		Content:      content,
		ContentProps: map[string]any{},
		Props: map[string]any{
			"align":       align,
			"icon":        icon,
			"description": description,
		},
	}
}

func topWidget(name string, content Component, align string) host.WidgetConfig {
	return host.WidgetConfig{
		Area:    host.AreaTop,
		Type:    host.TypeWidget,
		Name:    name,
		Content: content,
		Props:   map[string]any{"align": align},
	}
}

// inject lets components from a local dev server override the manifest. There
// is no dev server outside the browser, so it only records that it ran.
func inject() host.Plugin {
	return host.NewPlugin(ModuleInject, func(context.Context, host.Context) error {
		log.Debug(log.CatPlugin, "Inject plugin active, no dev server configured")
		return nil
	})
}

// zhEn adds the language switch, labelled with the configured locale.
func zhEn() host.Plugin {
	return host.NewPlugin(ModuleZhEn, func(_ context.Context, hc host.Context) error {
		locale := "zh-CN"
		if hc.Config != nil {
			if v, ok := hc.Config.Get("locale"); ok {
				if s, isString := v.(string); isString {
					locale = s
				}
			}
		}
		cfg := topWidget(WidgetZhEn, "LocaleSwitch", "right")
		cfg.ContentProps = map[string]any{"locale": locale}
		if _, err := hc.Skeleton.Add(cfg); err != nil {
			return fmt.Errorf("add %s: %w", WidgetZhEn, err)
		}
		return nil
	})
}

// Modules returns the stand-in module set.
func Modules() bootstrap.Modules {
	return bootstrap.Modules{
		Inject:           inject(),
		BlockPane:        widgetModule(ModuleBlockPane, dock(WidgetBlockPane, "BlockPane", "zujian", "Blocks", "top")),
		Schema:           widgetModule(ModuleSchema, dock(WidgetSchemaPane, "SchemaEditor", "ic_json", "Schema", "bottom")),
		SimulatorResizer: widgetModule(ModuleSimulatorResizer, topWidget(WidgetSimulatorResizer, "SimulatorResizer", "center")),
		UndoRedo:         widgetModule(ModuleUndoRedo, topWidget(WidgetUndoRedo, "UndoRedo", "right")),
		ZhEn:             zhEn(),
		DataSourcePane:   widgetModule(ModuleDataSourcePane, dock(WidgetDataSourcePane, "DataSourcePane", "shujuyuan", "Data sources", "top")),
		CodeEditor:       widgetModule(ModuleCodeEditor, dock(WidgetCodeEditor, "CodeEditor", "ic_code", "Source", "top")),
		CodeGenerator:    widgetModule(ModuleCodeGenerator, topWidget(WidgetCodeGenerator, "CodeGenerate", "right")),
	}
}
