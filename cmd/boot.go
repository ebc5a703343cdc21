package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/zjrosen/pagekit/internal/config"
	"github.com/zjrosen/pagekit/internal/flags"
	"github.com/zjrosen/pagekit/internal/log"
	"github.com/zjrosen/pagekit/internal/presentation"
	"github.com/zjrosen/pagekit/internal/watcher"
)

var (
	bootFormat  string
	bootWatch   bool
	bootNoReady bool
	bootPage    string
)

var bootCmd = &cobra.Command{
	Use:   "boot",
	Short: "Run the bootstrap sequence and print the editor layout",
	Long: `Register every editor plugin in order against an in-memory host, mark the
preview renderer ready, and print the resulting layout.

Examples:
  pagekit boot
  pagekit boot --format json | jq '.areas[].widgets[].name'
  pagekit boot --page settings
  pagekit boot --assets ./assets.json --watch`,
	RunE: runBoot,
}

func init() {
	bootCmd.Flags().StringVarP(&bootFormat, "format", "f", "text", "output format: text, json, yaml or markdown")
	bootCmd.Flags().BoolVarP(&bootWatch, "watch", "w", false, "keep running and reinstall assets when assets.json changes")
	bootCmd.Flags().BoolVar(&bootNoReady, "no-ready", false, "leave the preview renderer not ready")
	bootCmd.Flags().StringVar(&bootPage, "page", "", "page to open (overrides editor.current_page)")
	rootCmd.AddCommand(bootCmd)
}

func runBoot(cmd *cobra.Command, _ []string) error {
	format, err := presentation.ParseFormat(bootFormat)
	if err != nil {
		return err
	}

	ed, err := newEditor(cfg, nil, nil)
	if err != nil {
		return err
	}
	defer func() { _ = ed.Close() }()
	if bootPage != "" {
		ed.store.Set(config.KeyCurrentPage, bootPage)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := ed.boot(ctx); err != nil {
		return err
	}
	if !bootNoReady {
		ed.engine.Project().MarkRendererReady()
	}

	formatter := presentation.NewFormatter(cmd.OutOrStdout(), format)
	if err := formatter.FormatLayout(presentation.FromSnapshot(ed.engine.Snapshot())); err != nil {
		return err
	}

	if bootWatch || ed.flags.Enabled(flags.FlagWatchAssets) {
		return watchAssets(ctx, cmd, ed)
	}
	return nil
}

// watchAssets reinstalls the manifest on every change until ctx ends.
func watchAssets(ctx context.Context, cmd *cobra.Command, ed *editor) error {
	path := ed.assets.Path()
	if path == "" {
		return fmt.Errorf("--watch needs assets.path; the built-in manifest never changes")
	}

	w, err := watcher.New(watcher.DefaultConfig(path))
	if err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	changes, err := w.Start()
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "watching %s (ctrl+c to stop)\n", path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-changes:
			if err := ed.reinstallAssets(ctx); err != nil {
				log.ErrorErr(log.CatAssets, "Reinstalling assets failed", err, "path", path)
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "assets: %v\n", err)
				continue
			}
			manifest, _ := ed.engine.Material().Assets()
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "assets reinstalled: version %s, %d components\n",
				manifest.Version, len(manifest.Components))
		}
	}
}
