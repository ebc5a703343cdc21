package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/pagekit/internal/flags"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	require.Equal(t, "home", cfg.Editor.CurrentPage)
	require.Equal(t, "zh-CN", cfg.Editor.Locale)
	require.Equal(t, "./preview.html", cfg.Editor.PreviewBase)
	require.Equal(t, 5*time.Minute, cfg.Assets.CacheTTL)
	require.Empty(t, cfg.Assets.Path)
	require.NotEmpty(t, cfg.Store.Path)
	require.False(t, cfg.Tracing.Enabled)
	require.Equal(t, "file", cfg.Tracing.Exporter)
	require.Equal(t, "debug", cfg.Log.Level)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"bad locale", func(c *Config) { c.Editor.Locale = "fr-FR" }, "editor.locale"},
		{"empty locale ok", func(c *Config) { c.Editor.Locale = "" }, ""},
		{"bad preview base", func(c *Config) { c.Editor.PreviewBase = "http://[::1" }, "editor.preview_base"},
		{"negative ttl", func(c *Config) { c.Assets.CacheTTL = -time.Second }, "assets.cache_ttl"},
		{"zero ttl ok", func(c *Config) { c.Assets.CacheTTL = 0 }, ""},
		{"no store path", func(c *Config) { c.Store.Path = "" }, "store.path"},
		{"sample rate", func(c *Config) { c.Tracing.SampleRate = 1.5 }, "sample_rate"},
		{"exporter", func(c *Config) { c.Tracing.Exporter = "jaeger" }, "tracing.exporter"},
		{"log level", func(c *Config) { c.Log.Level = "verbose" }, "log.level"},
		{"log level any case", func(c *Config) { c.Log.Level = "WARN" }, ""},
		{"otlp without endpoint", func(c *Config) {
			c.Tracing.Enabled = true
			c.Tracing.Exporter = "otlp"
			c.Tracing.OTLPEndpoint = ""
		}, "otlp_endpoint"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestTracingConfig_ToTracing(t *testing.T) {
	got := TracingConfig{Enabled: true, Exporter: "stdout", SampleRate: 0.5}.ToTracing()
	require.True(t, got.Enabled)
	require.Equal(t, "stdout", got.Exporter)
	require.Equal(t, 0.5, got.SampleRate)
	require.Equal(t, "localhost:4317", got.OTLPEndpoint)
	require.Equal(t, "pagekit", got.ServiceName)

	withPath := TracingConfig{Exporter: "file", FilePath: "/tmp/traces.jsonl"}.ToTracing()
	require.Equal(t, "/tmp/traces.jsonl", withPath.FilePath)
}

func TestDefaultConfigTemplate_LoadsThroughViper(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault("store.path", DefaultStorePath())
	require.NoError(t, v.ReadConfig(strings.NewReader(DefaultConfigTemplate())))

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))
	require.Equal(t, "home", cfg.Editor.CurrentPage)
	require.Equal(t, "zh-CN", cfg.Editor.Locale)
	require.Equal(t, 5*time.Minute, cfg.Assets.CacheTTL)
	require.Equal(t, DefaultStorePath(), cfg.Store.Path)
	require.Equal(t, "debug", cfg.Log.Level)

	reg := cfg.FeatureFlags()
	for _, name := range flags.Known() {
		_, ok := reg.All()[name]
		require.True(t, ok, "template should list flag %s", name)
		require.False(t, reg.Enabled(name))
	}
	require.NoError(t, cfg.Validate())
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	require.NoError(t, WriteDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, DefaultConfigTemplate(), string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestExpandPaths(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("PAGEKIT_ASSETS", "/opt/assets")

	cfg := Defaults()
	cfg.Store.Path = "~/sites/pages.db"
	cfg.Assets.Path = "$PAGEKIT_ASSETS/assets.json"
	cfg.Tracing.FilePath = ""
	cfg.ExpandPaths()

	require.Equal(t, filepath.Join(home, "sites", "pages.db"), cfg.Store.Path)
	require.Equal(t, "/opt/assets/assets.json", cfg.Assets.Path)
	require.Empty(t, cfg.Tracing.FilePath)
}
