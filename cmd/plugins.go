package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/spf13/cobra"

	"github.com/zjrosen/pagekit/internal/presentation"
)

var listFormat string

var pluginsCmd = &cobra.Command{
	Use:   "plugins",
	Short: "List registered plugins in registration order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		names, err := bootedNames(cmd, func(ed *editor) []string { return ed.engine.Plugins().Names() })
		if err != nil {
			return err
		}
		format, err := presentation.ParseFormat(listFormat)
		if err != nil {
			return err
		}
		return presentation.NewFormatter(cmd.OutOrStdout(), format).FormatNames(names)
	},
}

var pluginsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show where a plugin is registered",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := bootedNames(cmd, func(ed *editor) []string { return ed.engine.Plugins().Names() })
		if err != nil {
			return err
		}
		name := args[0]
		i := slices.Index(names, name)
		if i < 0 {
			return unknownName("plugin", name, names)
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: registered %d of %d\n", name, i+1, len(names))
		return err
	},
}

func init() {
	pluginsCmd.PersistentFlags().StringVarP(&listFormat, "format", "f", "text", "output format: text, json, yaml or markdown")
	pluginsCmd.AddCommand(pluginsShowCmd)
	rootCmd.AddCommand(pluginsCmd)
}

// bootedNames boots an editor and reads a name list from it.
func bootedNames(cmd *cobra.Command, read func(*editor) []string) ([]string, error) {
	ed, err := newEditor(cfg, nil, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = ed.Close() }()

	if err := ed.boot(cmd.Context()); err != nil {
		return nil, err
	}
	return read(ed), nil
}

// unknownName reports a missing name, suggesting the closest known one.
func unknownName(kind, name string, known []string) error {
	if suggestion, ok := closest(name, known); ok {
		return fmt.Errorf("unknown %s %q; did you mean %q?", kind, name, suggestion)
	}
	return fmt.Errorf("unknown %s %q", kind, name)
}

// closest returns the candidate with the smallest edit distance to name, if
// that distance is small enough to be a plausible typo.
func closest(name string, candidates []string) (string, bool) {
	best, bestDist := "", -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(strings.ToLower(name), strings.ToLower(c))
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist < 0 || bestDist > max(2, len(name)/3) {
		return "", false
	}
	return best, true
}
