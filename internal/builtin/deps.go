package builtin

import (
	"context"

	"github.com/zjrosen/pagekit/internal/bootstrap"
	"github.com/zjrosen/pagekit/internal/config"
	"github.com/zjrosen/pagekit/internal/host"
	"github.com/zjrosen/pagekit/internal/log"
	"github.com/zjrosen/pagekit/internal/pages"
)

// PageService is the page store surface the editor needs.
type PageService interface {
	BlockSaver
	FetchPageSchema(ctx context.Context, pageID string) (host.Schema, error)
	Save(ctx context.Context) (pages.SaveResult, error)
	Preview(ctx context.Context) (string, error)
}

// AssetSource yields the component asset manifest.
type AssetSource interface {
	Fetch(ctx context.Context) (host.Assets, error)
}

// Options wires the built-in plugins to their collaborators.
type Options struct {
	Plugins  host.PluginRegistry
	Material host.Material
	Project  pages.ActiveDocumenter
	Pages    PageService
	Assets   AssetSource
	Editor   config.EditorConfig

	// OnSave and OnPreview observe the toolbar buttons; either may be nil.
	OnSave    func(pages.SaveResult)
	OnPreview func(url string)
}

// Contents returns the UI components placed by the inline plugins.
func Contents(editor config.EditorConfig) bootstrap.Contents {
	return bootstrap.Contents{
		Logo:               ContentLogo,
		LogoURL:            editor.Logo,
		LogoHref:           editor.LogoHref,
		ComponentsPane:     ContentComponentsPane,
		PagesPane:          ContentPagesPane,
		EventBindDialog:    ContentEventBindDialog,
		VariableBindDialog: ContentVariableBindDialog,
	}
}

// Deps builds the bootstrap dependencies.
func Deps(o Options) bootstrap.Deps {
	return bootstrap.Deps{
		Plugins:         o.Plugins,
		Material:        o.Material,
		Modules:         Modules(),
		Contents:        Contents(o.Editor),
		Setters:         Setters(),
		SaveAsBlock:     SaveAsBlock(o.Project, o.Pages),
		FetchAssets:     o.Assets.Fetch,
		FetchPageSchema: o.Pages.FetchPageSchema,
		Save: func(ctx context.Context) error {
			result, err := o.Pages.Save(ctx)
			if err != nil {
				log.ErrorErr(log.CatPages, "Save failed", err)
				return err
			}
			if o.OnSave != nil {
				o.OnSave(result)
			}
			return nil
		},
		Preview: func(ctx context.Context) error {
			url, err := o.Pages.Preview(ctx)
			if err != nil {
				log.ErrorErr(log.CatPages, "Preview failed", err)
				return err
			}
			log.Info(log.CatPages, "Preview ready", "url", url)
			if o.OnPreview != nil {
				o.OnPreview(url)
			}
			return nil
		},
	}
}
