package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/pagekit/internal/presentation"
)

var settersCmd = &cobra.Command{
	Use:   "setters [name]",
	Short: "List registered setters, or check one by name",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ed, err := newEditor(cfg, nil, nil)
		if err != nil {
			return err
		}
		defer func() { _ = ed.Close() }()

		if err := ed.boot(cmd.Context()); err != nil {
			return err
		}
		names := ed.engine.Setters().Names()

		if len(args) == 1 {
			setter, ok := ed.engine.Setters().Get(args[0])
			if !ok {
				return unknownName("setter", args[0], names)
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", args[0], presentation.DescribeContent(setter))
			return err
		}

		format, err := presentation.ParseFormat(settersFormat)
		if err != nil {
			return err
		}
		return presentation.NewFormatter(cmd.OutOrStdout(), format).FormatNames(names)
	},
}

var settersFormat string

func init() {
	settersCmd.Flags().StringVarP(&settersFormat, "format", "f", "text", "output format: text, json, yaml or markdown")
	rootCmd.AddCommand(settersCmd)
}
