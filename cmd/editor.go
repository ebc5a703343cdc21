package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/zjrosen/pagekit/internal/assets"
	"github.com/zjrosen/pagekit/internal/bootstrap"
	"github.com/zjrosen/pagekit/internal/builtin"
	"github.com/zjrosen/pagekit/internal/config"
	"github.com/zjrosen/pagekit/internal/engine"
	"github.com/zjrosen/pagekit/internal/flags"
	"github.com/zjrosen/pagekit/internal/infrastructure/sqlite"
	"github.com/zjrosen/pagekit/internal/log"
	"github.com/zjrosen/pagekit/internal/pages"
	"github.com/zjrosen/pagekit/internal/tracing"
)

// editor is one wired editor: engine, page store, asset loader and the
// bootstrap sequence that ties them together.
type editor struct {
	cfg    config.Config
	flags  *flags.Registry
	engine *engine.Engine
	store  *config.Store
	db     *sqlite.DB
	pages  *pages.Service
	assets *assets.Loader
	tracer *tracing.Provider
	seq    *bootstrap.Sequencer
}

// openPages opens the page store without an engine, for commands that only
// touch stored pages.
func openPages(cfg config.Config) (*pages.Service, *sqlite.DB, error) {
	db, err := sqlite.NewDB(cfg.Store.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening page store: %w", err)
	}
	return pages.NewService(db.PageRepository(), nil, cfg.Editor.PreviewBase), db, nil
}

// newEditor wires an editor from cfg. onSave and onPreview observe the
// toolbar buttons and may be nil.
func newEditor(cfg config.Config, onSave func(pages.SaveResult), onPreview func(string)) (*editor, error) {
	reg := cfg.FeatureFlags()

	provider, err := tracing.NewProvider(cfg.Tracing.ToTracing())
	if err != nil {
		return nil, fmt.Errorf("creating tracer: %w", err)
	}

	db, err := sqlite.NewDB(cfg.Store.Path)
	if err != nil {
		_ = provider.Shutdown(context.Background())
		return nil, fmt.Errorf("opening page store: %w", err)
	}

	store := config.NewStore(cfg)
	e := engine.New(
		engine.WithStrictPlugins(reg.Enabled(flags.FlagStrictPlugins)),
		engine.WithConfig(store),
	)
	svc := pages.NewService(db.PageRepository(), e.Project(), cfg.Editor.PreviewBase)
	loader := assets.NewLoader(cfg.Assets.Path, cfg.Assets.CacheTTL)

	seq, err := bootstrap.New(builtin.Deps(builtin.Options{
		Plugins:   e.Plugins(),
		Material:  e.Material(),
		Project:   e.Project(),
		Pages:     svc,
		Assets:    loader,
		Editor:    cfg.Editor,
		OnSave:    onSave,
		OnPreview: onPreview,
	}),
		bootstrap.WithBestEffort(reg.Enabled(flags.FlagBestEffortBootstrap)),
		bootstrap.WithTracer(provider.Tracer()),
	)
	if err != nil {
		e.Close()
		_ = db.Close()
		_ = provider.Shutdown(context.Background())
		return nil, err
	}

	return &editor{
		cfg:    cfg,
		flags:  reg,
		engine: e,
		store:  store,
		db:     db,
		pages:  svc,
		assets: loader,
		tracer: provider,
		seq:    seq,
	}, nil
}

// boot runs the sequence and waits for the background registration.
func (ed *editor) boot(ctx context.Context) error {
	runErr := ed.seq.Run(ctx)
	waitErr := ed.seq.Wait()
	return errors.Join(runErr, waitErr)
}

// reinstallAssets drops the cached manifest and installs a fresh one.
func (ed *editor) reinstallAssets(ctx context.Context) error {
	if err := ed.assets.Invalidate(ctx); err != nil {
		return err
	}
	manifest, err := ed.assets.Fetch(ctx)
	if err != nil {
		return err
	}
	ed.engine.Material().SetAssets(manifest)
	log.Info(log.CatAssets, "Assets reinstalled", "version", manifest.Version, "components", len(manifest.Components))
	return nil
}

func (ed *editor) Close() error {
	ed.engine.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return errors.Join(ed.db.Close(), ed.tracer.Shutdown(ctx))
}
