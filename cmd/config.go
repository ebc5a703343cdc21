package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zjrosen/pagekit/internal/config"
	"github.com/zjrosen/pagekit/internal/presentation"
)

var (
	configInitForce bool
	configShowFmt   string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Create, edit or inspect the config file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the editor settings plugins read at boot",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		format, err := presentation.ParseFormat(configShowFmt)
		if err != nil {
			return err
		}
		store := config.NewStore(cfg)
		values := make(map[string]any, len(store.Keys()))
		for _, key := range store.Keys() {
			values[key], _ = store.Get(key)
		}
		if format != presentation.FormatText && format != presentation.FormatMarkdown {
			return presentation.NewFormatter(cmd.OutOrStdout(), format).FormatResult(values)
		}
		for _, key := range store.Keys() {
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-12s = %v\n", key, values[key]); err != nil {
				return err
			}
		}
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a commented default config file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := localConfigPath
		if len(args) == 1 {
			path = args[0]
		}
		if _, err := os.Stat(path); err == nil && !configInitForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if err := config.WriteDefaultConfig(path); err != nil {
			return err
		}
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return err
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a value in the config file, keeping its comments",
	Long: `Set a value in the config file, keeping its comments.

Examples:
  pagekit config set editor.current_page about
  pagekit config set flags.strict-plugins true`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configFilePath()
		if err := config.SetValue(path, args[0], args[1]); err != nil {
			return err
		}
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s = %s (%s)\n", args[0], args[1], path)
		return err
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing file")
	configShowCmd.Flags().StringVarP(&configShowFmt, "format", "f", "text", "output format: text, json or yaml")
	configCmd.AddCommand(configInitCmd, configSetCmd, configShowCmd)
	rootCmd.AddCommand(configCmd)
}
