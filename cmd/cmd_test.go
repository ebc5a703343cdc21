package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/pagekit/internal/bootstrap"
	"github.com/zjrosen/pagekit/internal/config"
	"github.com/zjrosen/pagekit/internal/presentation"
	"github.com/zjrosen/pagekit/internal/testutil"
)

// resetFlags restores every flag to its default; cobra keeps values between
// Execute calls.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// testConfig writes a config file pointing the page store into a temp dir.
func testConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, config.SetValue(path, "store.path", filepath.Join(dir, "pages.db")))
	return path
}

func execute(t *testing.T, configPath, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"--config", configPath}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestBoot_Text(t *testing.T) {
	out, err := execute(t, testConfig(t), "", "boot")
	require.NoError(t, err)

	require.Contains(t, out, "page: home")
	require.Contains(t, out, "renderer: ready")
	require.Contains(t, out, bootstrap.WidgetComponentsPane)
	require.Contains(t, out, bootstrap.PluginEditorInit)
	require.NotContains(t, out, "disabled")
}

func TestBoot_JSONWithoutRenderer(t *testing.T) {
	out, err := execute(t, testConfig(t), "", "boot", "--format", "json", "--no-ready", "--page", "about")
	require.NoError(t, err)

	var layout presentation.LayoutDTO
	require.NoError(t, json.Unmarshal([]byte(out), &layout))
	require.False(t, layout.RendererReady)
	require.Equal(t, "about", layout.Document.PageID)
	require.Len(t, layout.Plugins, 15)

	var pane *presentation.WidgetDTO
	for _, area := range layout.Areas {
		for i, w := range area.Widgets {
			if w.Name == bootstrap.WidgetComponentsPane {
				pane = &area.Widgets[i]
			}
		}
	}
	require.NotNil(t, pane)
	require.False(t, pane.Enabled)
}

func TestBoot_Markdown(t *testing.T) {
	out, err := execute(t, testConfig(t), "", "boot", "--format", "markdown", "--no-ready")
	require.NoError(t, err)
	require.Contains(t, out, "Editor layout")
	require.Contains(t, out, "topArea")
	require.Contains(t, out, bootstrap.PluginSchema)
}

func TestBoot_BadFormat(t *testing.T) {
	_, err := execute(t, testConfig(t), "", "boot", "--format", "xml")
	require.ErrorContains(t, err, "unknown format")
}

func TestBoot_InvalidConfig(t *testing.T) {
	path := testConfig(t)
	require.NoError(t, config.SetValue(path, "editor.locale", "fr-FR"))

	_, err := execute(t, path, "", "boot")
	require.ErrorContains(t, err, "invalid configuration")
}

func TestPages_StoredSchemaWins(t *testing.T) {
	path := testConfig(t)
	_, err := execute(t, path, `{"componentName":"Page","id":"node_home","children":[]}`, "pages", "save", "home")
	require.NoError(t, err)

	out, err := execute(t, path, "", "pages", "show", "home")
	require.NoError(t, err)
	require.Contains(t, out, `"children": []`)
	require.NotContains(t, out, "Welcome")
}

func TestPlugins_ListInOrder(t *testing.T) {
	out, err := execute(t, testConfig(t), "", "plugins")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 15)
	require.Contains(t, lines[0], "inject")
	require.Contains(t, lines[1], "blockPane")
	require.Contains(t, out, bootstrap.PluginCustomSetter)
}

func TestPlugins_Show(t *testing.T) {
	path := testConfig(t)

	out, err := execute(t, path, "", "plugins", "show", bootstrap.PluginSchema)
	require.NoError(t, err)
	require.Contains(t, out, "SchemaPlugin: registered 3 of 15")

	_, err = execute(t, path, "", "plugins", "show", "SchemaPlugn")
	require.ErrorContains(t, err, `did you mean "SchemaPlugin"?`)

	_, err = execute(t, path, "", "plugins", "show", "qqqqqqqqqqqq")
	require.Error(t, err)
	require.NotContains(t, err.Error(), "did you mean")
}

func TestSetters(t *testing.T) {
	path := testConfig(t)

	out, err := execute(t, path, "", "setters", "--format", "json")
	require.NoError(t, err)
	var names []string
	require.NoError(t, json.Unmarshal([]byte(out), &names))
	require.Contains(t, names, bootstrap.SetterTitle)
	require.Contains(t, names, "ColorSetter")

	out, err = execute(t, path, "", "setters", bootstrap.SetterBehavior)
	require.NoError(t, err)
	require.Equal(t, "BehaviorSetter: BehaviorSetter\n", out)

	_, err = execute(t, path, "", "setters", "TitelSetter")
	require.ErrorContains(t, err, `did you mean "TitleSetter"?`)
}

func TestPages_Lifecycle(t *testing.T) {
	path := testConfig(t)
	dir := t.TempDir()
	schema := filepath.Join(dir, "about.json")
	require.NoError(t, os.WriteFile(schema, []byte(`{"componentName":"Page","title":"About"}`), 0o644))

	out, err := execute(t, path, "", "pages", "save", "about", schema)
	require.NoError(t, err)
	require.Equal(t, "created about (v1)\n", out)

	out, err = execute(t, path, `{"componentName":"Page","title":"About us"}`, "pages", "save", "about", "-")
	require.NoError(t, err)
	require.Contains(t, out, "saved about (v2)")
	require.Contains(t, out, `-  "title": "About"`)
	require.Contains(t, out, `+  "title": "About us"`)

	out, err = execute(t, path, "", "pages", "list", "--format", "json")
	require.NoError(t, err)
	var list []presentation.PageDTO
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	require.Len(t, list, 1)
	require.Equal(t, 2, list[0].Version)

	out, err = execute(t, path, "", "pages", "preview", "about")
	require.NoError(t, err)
	require.Equal(t, "./preview.html?page=about\n", out)

	out, err = execute(t, path, "", "pages", "delete", "about")
	require.NoError(t, err)
	require.Equal(t, "deleted about\n", out)

	_, err = execute(t, path, "", "pages", "delete", "about")
	require.Error(t, err)

	out, err = execute(t, path, "", "pages", "list")
	require.NoError(t, err)
	require.Contains(t, out, "no stored pages")
}

func TestPages_SeededStore(t *testing.T) {
	path := testConfig(t)
	db := testutil.OpenTestDB(t, filepath.Join(filepath.Dir(path), "pages.db"))
	testutil.NewBuilder(t, db.PageRepository()).WithSite().Build()
	require.NoError(t, db.Close())

	out, err := execute(t, path, "", "pages", "list", "--format", "json")
	require.NoError(t, err)
	var list []presentation.PageDTO
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	require.Len(t, list, 3)
	require.Equal(t, "about", list[0].ID)
	require.Equal(t, 2, list[0].Version)

	out, err = execute(t, path, "", "pages", "show", "home")
	require.NoError(t, err)
	require.Contains(t, out, "Get started")
}

func TestPages_SaveRejectsInvalidJSON(t *testing.T) {
	_, err := execute(t, testConfig(t), "{not json", "pages", "save", "home")
	require.ErrorContains(t, err, "not valid JSON")
}

func TestConfig_InitAndSet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	out, err := execute(t, testConfig(t), "", "config", "init", path)
	require.NoError(t, err)
	require.Contains(t, out, "wrote "+path)

	_, err = execute(t, testConfig(t), "", "config", "init", path)
	require.ErrorContains(t, err, "already exists")

	_, err = execute(t, path, "", "config", "set", "editor.current_page", "about")
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "current_page: about")
}

func TestConfig_Show(t *testing.T) {
	path := testConfig(t)
	require.NoError(t, config.SetValue(path, "editor.current_page", "about"))

	out, err := execute(t, path, "", "config", "show")
	require.NoError(t, err)
	require.Contains(t, out, "currentPage  = about")
	require.Contains(t, out, "locale       = zh-CN")

	out, err = execute(t, path, "", "config", "show", "--format", "json")
	require.NoError(t, err)
	var values map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &values))
	require.Equal(t, "about", values[config.KeyCurrentPage])
	require.Equal(t, "./preview.html", values[config.KeyPreviewBase])
}

func TestBoot_RejectsUnknownLogLevel(t *testing.T) {
	path := testConfig(t)
	require.NoError(t, config.SetValue(path, "log.level", "loud"))

	_, err := execute(t, path, "", "boot", "--no-ready")
	require.ErrorContains(t, err, "log.level")
}

func TestClosest(t *testing.T) {
	names := []string{"editor-init", "SchemaPlugin", "saveSample"}

	got, ok := closest("editorinit", names)
	require.True(t, ok)
	require.Equal(t, "editor-init", got)

	got, ok = closest("schemaplugin", names)
	require.True(t, ok)
	require.Equal(t, "SchemaPlugin", got)

	_, ok = closest("zzzzzzzz", names)
	require.False(t, ok)

	_, ok = closest("x", nil)
	require.False(t, ok)
}
