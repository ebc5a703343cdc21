package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestSetValue_PreservesComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, WriteDefaultConfig(path))

	require.NoError(t, SetValue(path, "editor.current_page", "about"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	require.Contains(t, content, "current_page: about")
	require.Contains(t, content, "# page opened at startup")
	require.Contains(t, content, "locale: zh-CN")
}

func TestSetValue_CreatesFileAndSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	require.NoError(t, SetValue(path, "assets.path", "/srv/assets.json"))
	require.NoError(t, SetValue(path, "flags.strict-plugins", "true"))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())
	require.Equal(t, "/srv/assets.json", v.GetString("assets.path"))
	require.True(t, v.GetBool("flags.strict-plugins"))
}

func TestSetValue_ReplacesScalarSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store: none\n"), 0o600))

	require.NoError(t, SetValue(path, "store.path", "/tmp/pages.db"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(data), "path: /tmp/pages.db"))
}

func TestSetValue_InvalidKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.Error(t, SetValue(path, "editor..page", "x"))
	require.Error(t, SetValue(path, "", "x"))
}

func TestSetValue_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("editor: [unclosed\n"), 0o600))

	require.ErrorContains(t, SetValue(path, "editor.locale", "en-US"), "parsing config")
}
