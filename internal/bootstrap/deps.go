package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/zjrosen/pagekit/internal/host"
)

// ErrMissingDependency is returned by New when a required collaborator is unset.
var ErrMissingDependency = errors.New("missing bootstrap dependency")

// Modules are the self-contained plugins registered as-is.
type Modules struct {
	Inject           host.Plugin
	BlockPane        host.Plugin
	Schema           host.Plugin
	SimulatorResizer host.Plugin
	UndoRedo         host.Plugin
	ZhEn             host.Plugin
	DataSourcePane   host.Plugin
	CodeEditor       host.Plugin
	CodeGenerator    host.Plugin
}

// Contents are the UI components placed by the inline plugins.
type Contents struct {
	Logo               host.Content
	LogoURL            string
	LogoHref           string
	ComponentsPane     host.Content
	PagesPane          host.Content
	EventBindDialog    host.Content
	VariableBindDialog host.Content
}

// Setters are the property renderers registered during bootstrap.
type Setters struct {
	Extension map[string]host.Setter // bulk map from the setter extension package
	Title     host.Setter
	Behavior  host.Setter
	Custom    host.Setter
}

// Deps is everything the sequencer needs from the outside.
type Deps struct {
	Plugins  host.PluginRegistry
	Material host.Material // target of the synchronous save-as-block step

	Modules  Modules
	Contents Contents
	Setters  Setters

	SaveAsBlock host.ComponentAction

	FetchAssets     func(ctx context.Context) (host.Assets, error)
	FetchPageSchema func(ctx context.Context, pageID string) (host.Schema, error)
	Save            func(ctx context.Context) error
	Preview         func(ctx context.Context) error
}

func (d Deps) validate() error {
	var missing []string
	if d.Plugins == nil {
		missing = append(missing, "Plugins")
	}
	if d.Material == nil {
		missing = append(missing, "Material")
	}
	if d.FetchAssets == nil {
		missing = append(missing, "FetchAssets")
	}
	if d.FetchPageSchema == nil {
		missing = append(missing, "FetchPageSchema")
	}
	if d.Save == nil {
		missing = append(missing, "Save")
	}
	if d.Preview == nil {
		missing = append(missing, "Preview")
	}
	if d.SaveAsBlock.Name == "" {
		missing = append(missing, "SaveAsBlock")
	}
	if d.Setters.Title == nil {
		missing = append(missing, "Setters.Title")
	}
	if d.Setters.Behavior == nil {
		missing = append(missing, "Setters.Behavior")
	}
	if d.Setters.Custom == nil {
		missing = append(missing, "Setters.Custom")
	}

	modules := []struct {
		field   string
		p       host.Plugin
		renamed bool
	}{
		{"Modules.Inject", d.Modules.Inject, false},
		{"Modules.BlockPane", d.Modules.BlockPane, false},
		{"Modules.Schema", d.Modules.Schema, true},
		{"Modules.SimulatorResizer", d.Modules.SimulatorResizer, true},
		{"Modules.UndoRedo", d.Modules.UndoRedo, false},
		{"Modules.ZhEn", d.Modules.ZhEn, false},
		{"Modules.DataSourcePane", d.Modules.DataSourcePane, true},
		{"Modules.CodeEditor", d.Modules.CodeEditor, true},
		{"Modules.CodeGenerator", d.Modules.CodeGenerator, true},
	}
	for _, m := range modules {
		// Renamed modules only need an initializer; the sequencer assigns the name.
		if m.p.Init == nil || (!m.renamed && m.p.Name == "") {
			missing = append(missing, m.field)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %v", ErrMissingDependency, missing)
	}
	return nil
}
