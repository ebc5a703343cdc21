package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/pagekit/internal/config"
	"github.com/zjrosen/pagekit/internal/log"
)

func init() {
	// Query the terminal background before any Bubble Tea program starts so the
	// OSC 11 reply cannot race with the shell's input loop.
	_ = lipgloss.HasDarkBackground()
}

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	cfg       config.Config

	logCleanup func()
)

var rootCmd = &cobra.Command{
	Use:   "pagekit",
	Short: "Boot and inspect a low-code page editor",
	Long: `pagekit registers the editor's plugins in a fixed order against an
in-memory editor host, then shows the resulting layout, plugins and setters.

Page schemas are kept in a local SQLite store and the component asset manifest
is read from assets.json (or the built-in manifest).`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(*cobra.Command, []string) {
		if logCleanup != nil {
			logCleanup()
			logCleanup = nil
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .pagekit/config.yaml, then ~/.config/pagekit/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false,
		"write debug logs to debug.log (or $PAGEKIT_LOG)")
	rootCmd.PersistentFlags().String("store", "", "path to the page store database")
	rootCmd.PersistentFlags().String("assets", "", "path to assets.json")

	_ = viper.BindPFlag("store.path", rootCmd.PersistentFlags().Lookup("store"))
	_ = viper.BindPFlag("assets.path", rootCmd.PersistentFlags().Lookup("assets"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("editor.current_page", defaults.Editor.CurrentPage)
	viper.SetDefault("editor.locale", defaults.Editor.Locale)
	viper.SetDefault("editor.logo", defaults.Editor.Logo)
	viper.SetDefault("editor.logo_href", defaults.Editor.LogoHref)
	viper.SetDefault("editor.preview_base", defaults.Editor.PreviewBase)
	viper.SetDefault("assets.path", defaults.Assets.Path)
	viper.SetDefault("assets.cache_ttl", defaults.Assets.CacheTTL)
	viper.SetDefault("store.path", defaults.Store.Path)
	viper.SetDefault("tracing.enabled", defaults.Tracing.Enabled)
	viper.SetDefault("tracing.exporter", defaults.Tracing.Exporter)
	viper.SetDefault("tracing.otlp_endpoint", defaults.Tracing.OTLPEndpoint)
	viper.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)
	viper.SetDefault("log.level", defaults.Log.Level)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .pagekit/config.yaml (current directory)
		// 2. ~/.config/pagekit/config.yaml (user config)
		if _, err := os.Stat(localConfigPath); err == nil {
			viper.SetConfigFile(localConfigPath)
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "pagekit"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	// A missing config file is fine; defaults apply.
	_ = viper.ReadInConfig()

	cfg = config.Defaults()
	_ = viper.Unmarshal(&cfg)
	cfg.ExpandPaths()
}

const localConfigPath = ".pagekit/config.yaml"

// setup enables debug logging and validates the loaded configuration.
func setup(cmd *cobra.Command, _ []string) error {
	if debugFlag || os.Getenv("PAGEKIT_DEBUG") != "" {
		logPath := os.Getenv("PAGEKIT_LOG")
		if logPath == "" {
			logPath = "debug.log"
		}
		cleanup, err := log.InitWithTeaLog(logPath, "pagekit")
		if err != nil {
			return fmt.Errorf("initializing logging: %w", err)
		}
		logCleanup = cleanup
		log.SetMinLevel(log.ParseLevel(cfg.Log.Level))
		log.Info(log.CatConfig, "pagekit starting", "command", cmd.Name(), "config", viper.ConfigFileUsed())
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// configFilePath is where config edits are written.
func configFilePath() string {
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}
	return localConfigPath
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
