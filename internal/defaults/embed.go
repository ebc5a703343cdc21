// Package defaults holds the manifests and page schemas pagekit ships with.
package defaults

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// AssetsFile is the name of the embedded asset manifest.
const AssetsFile = "assets.json"

//go:embed assets.json pages
var files embed.FS

// FS returns the embedded defaults.
//   - assets.json: the default asset manifest
//   - pages/<id>.json: default page schemas
func FS() fs.FS {
	return files
}

// Assets returns the embedded asset manifest.
func Assets() []byte {
	data, err := files.ReadFile(AssetsFile)
	if err != nil {
		panic(fmt.Sprintf("embedded %s missing: %v", AssetsFile, err))
	}
	return data
}

// Page returns the embedded schema for pageID, if one ships.
func Page(pageID string) (json.RawMessage, bool) {
	if pageID == "" || strings.ContainsAny(pageID, `/\`) || strings.HasPrefix(pageID, ".") {
		return nil, false
	}
	data, err := fs.ReadFile(files, path.Join("pages", pageID+".json"))
	if err != nil {
		return nil, false
	}
	return json.RawMessage(data), true
}

// BlankPage returns the schema used for pages with no stored or shipped body.
func BlankPage(pageID string) json.RawMessage {
	body, _ := json.Marshal(map[string]any{
		"componentName": "Page",
		"id":            "node_" + pageID,
		"fileName":      pageID,
		"props":         map[string]any{},
		"children":      []any{},
	})
	return body
}
