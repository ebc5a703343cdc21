// Package config provides configuration types, defaults and persistence for pagekit.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/zjrosen/pagekit/internal/flags"
	"github.com/zjrosen/pagekit/internal/log"
	"github.com/zjrosen/pagekit/internal/paths"
	"github.com/zjrosen/pagekit/internal/tracing"
)

// Config holds all configuration options for pagekit.
type Config struct {
	Editor  EditorConfig    `mapstructure:"editor"`
	Assets  AssetsConfig    `mapstructure:"assets"`
	Store   StoreConfig     `mapstructure:"store"`
	Tracing TracingConfig   `mapstructure:"tracing"`
	Log     LogConfig       `mapstructure:"log"`
	Flags   map[string]bool `mapstructure:"flags"`
}

// LogConfig tunes the debug log enabled by --debug or PAGEKIT_DEBUG.
type LogConfig struct {
	// Level is the minimum level written: "debug", "info", "warn" or "error".
	Level string `mapstructure:"level"`
}

// EditorConfig holds the settings plugins read through the host config store.
type EditorConfig struct {
	CurrentPage string `mapstructure:"current_page"` // page opened at startup; "home" when empty
	Locale      string `mapstructure:"locale"`       // "zh-CN" or "en-US"
	Logo        string `mapstructure:"logo"`         // logo image URL
	LogoHref    string `mapstructure:"logo_href"`    // link opened from the logo
	PreviewBase string `mapstructure:"preview_base"` // preview page; ?page=<id> is appended
}

// AssetsConfig locates the component asset manifest.
type AssetsConfig struct {
	// Path to assets.json. Empty uses the manifest shipped with pagekit.
	Path string `mapstructure:"path"`
	// CacheTTL is how long a parsed manifest is reused. 0 rereads every fetch.
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// StoreConfig locates the page schema database.
type StoreConfig struct {
	Path string `mapstructure:"path"`
}

// TracingConfig holds tracing options for bootstrap runs.
type TracingConfig struct {
	// Enabled controls whether bootstrap spans are recorded.
	// Default: false
	Enabled bool `mapstructure:"enabled"`

	// Exporter selects the trace export backend.
	// Options: "none", "file", "stdout", "otlp"
	// Default: "file"
	Exporter string `mapstructure:"exporter"`

	// FilePath is the output file for the "file" exporter.
	// Default: ~/.config/pagekit/traces/traces.jsonl
	FilePath string `mapstructure:"file_path"`

	// OTLPEndpoint is the collector endpoint for the "otlp" exporter.
	// Default: "localhost:4317"
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`

	// SampleRate controls trace sampling (0.0 to 1.0).
	// Default: 1.0
	SampleRate float64 `mapstructure:"sample_rate"`
}

// ToTracing converts to the tracing package's config.
func (t TracingConfig) ToTracing() tracing.Config {
	cfg := tracing.DefaultConfig()
	cfg.Enabled = t.Enabled
	if t.Exporter != "" {
		cfg.Exporter = t.Exporter
	}
	cfg.FilePath = t.FilePath
	if cfg.FilePath == "" {
		cfg.FilePath = DefaultTracesFilePath()
	}
	if t.OTLPEndpoint != "" {
		cfg.OTLPEndpoint = t.OTLPEndpoint
	}
	cfg.SampleRate = t.SampleRate
	return cfg
}

// DefaultTracesFilePath returns ~/.config/pagekit/traces/traces.jsonl, or ""
// when the home directory is unknown.
func DefaultTracesFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "pagekit", "traces", "traces.jsonl")
}

// DefaultStorePath returns ~/.pagekit/pages.db, or a relative path when the
// home directory is unknown.
func DefaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".pagekit", "pages.db")
	}
	return filepath.Join(home, ".pagekit", "pages.db")
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Editor: EditorConfig{
			CurrentPage: "home",
			Locale:      "zh-CN",
			Logo:        "https://img.alicdn.com/imgextra/i4/O1CN013w2bmQ25WAIha4Hx9_!!6000000007533-55-tps-137-26.svg",
			LogoHref:    "https://lowcode-engine.cn",
			PreviewBase: "./preview.html",
		},
		Assets: AssetsConfig{
			CacheTTL: 5 * time.Minute,
		},
		Store: StoreConfig{
			Path: DefaultStorePath(),
		},
		Tracing: TracingConfig{
			Enabled:      false,
			Exporter:     "file",
			OTLPEndpoint: "localhost:4317",
			SampleRate:   1.0,
		},
		Log:   LogConfig{Level: "debug"},
		Flags: map[string]bool{},
	}
}

// ExpandPaths resolves "~" and environment variables in every file path.
func (c *Config) ExpandPaths() {
	c.Assets.Path = paths.Expand(c.Assets.Path)
	c.Store.Path = paths.Expand(c.Store.Path)
	c.Tracing.FilePath = paths.Expand(c.Tracing.FilePath)
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := ValidateEditor(c.Editor); err != nil {
		return err
	}
	if c.Assets.CacheTTL < 0 {
		return fmt.Errorf("assets.cache_ttl must not be negative, got %s", c.Assets.CacheTTL)
	}
	if c.Store.Path == "" {
		return fmt.Errorf("store.path is required")
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level must be \"debug\", \"info\", \"warn\" or \"error\", got %q", c.Log.Level)
	}
	return ValidateTracing(c.Tracing)
}

// ValidateEditor checks editor settings.
func ValidateEditor(e EditorConfig) error {
	switch e.Locale {
	case "", "zh-CN", "en-US":
	default:
		return fmt.Errorf("editor.locale must be \"zh-CN\" or \"en-US\", got %q", e.Locale)
	}
	if e.PreviewBase != "" {
		if _, err := url.Parse(e.PreviewBase); err != nil {
			return fmt.Errorf("editor.preview_base is not a valid URL: %w", err)
		}
	}
	return nil
}

// ValidateTracing checks tracing settings.
func ValidateTracing(t TracingConfig) error {
	if t.SampleRate < 0.0 || t.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", t.SampleRate)
	}

	if t.Exporter != "" {
		switch t.Exporter {
		case "none", "file", "stdout", "otlp":
		default:
			return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", t.Exporter)
		}
	}

	if t.Enabled && t.Exporter == "otlp" && t.OTLPEndpoint == "" {
		return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
	}
	return nil
}

// FeatureFlags returns the configured flags as a registry.
func (c Config) FeatureFlags() *flags.Registry {
	return flags.New(c.Flags)
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# pagekit configuration

# Editor settings, visible to plugins through the host config store
editor:
  current_page: home          # page opened at startup
  locale: zh-CN               # "zh-CN" or "en-US"
  # logo: https://example.com/logo.svg
  # logo_href: https://example.com
  preview_base: ./preview.html  # preview URL; ?page=<id> is appended

# Component asset manifest
assets:
  # path: ./assets.json       # empty uses the built-in manifest
  cache_ttl: 5m               # reuse a parsed manifest this long; 0 disables caching

# Page schema store (SQLite)
# store:
#   path: ~/.pagekit/pages.db

# Feature flags
flags:
  best-effort-bootstrap: false  # keep registering plugins after a failure
  strict-plugins: false         # fail on duplicate plugin names
  watch-assets: false           # reinstall assets when the manifest changes

# Debug log (written when --debug or PAGEKIT_DEBUG is set)
log:
  level: debug                # debug, info, warn, error

# Tracing of bootstrap runs
# tracing:
#   enabled: true
#   exporter: file            # none, file, stdout, otlp
#   file_path: ~/.config/pagekit/traces/traces.jsonl
#
# Example: send traces to a collector over OTLP
# tracing:
#   enabled: true
#   exporter: otlp
#   otlp_endpoint: localhost:4317
#   sample_rate: 0.5
`
}

// WriteDefaultConfig creates a config file at configPath with default settings
// and comments, creating the parent directory if needed.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
