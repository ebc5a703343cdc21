package cmd

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/zjrosen/pagekit/internal/log"
	"github.com/zjrosen/pagekit/internal/pages"
	"github.com/zjrosen/pagekit/internal/ui/shell"
)

var shellReadyAfter time.Duration

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Watch the editor boot in an interactive view",
	Long: `Open a terminal view of the editor layout while the bootstrap sequence runs.
The preview renderer reports ready after --ready-after (or when r is pressed),
which enables the components pane.

Keys: s save, p preview, r renderer ready, q quit. Toolbar buttons in the
top area also respond to mouse clicks.`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func init() {
	shellCmd.Flags().DurationVar(&shellReadyAfter, "ready-after", time.Second, "delay before the renderer reports ready; 0 waits for r")
	rootCmd.AddCommand(shellCmd)
}

func runShell(_ *cobra.Command, _ []string) error {
	onSave := func(result pages.SaveResult) {
		log.Info(log.CatUI, "Saved from shell", "page", result.Page.ID, "version", result.Page.Version)
	}
	ed, err := newEditor(cfg, onSave, nil)
	if err != nil {
		return err
	}
	defer func() { _ = ed.Close() }()

	model := shell.New(shell.Config{
		Engine:     ed.engine,
		Boot:       ed.boot,
		ReadyAfter: shellReadyAfter,
	})
	final, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	if m, ok := final.(shell.Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
