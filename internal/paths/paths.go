// Package paths provides path resolution utilities.
package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// Expand resolves a user-supplied path from the config file or a flag.
//
//   - "~" and "~/x" expand to the home directory
//   - $VAR and ${VAR} expand from the environment
//   - "" stays empty so callers can apply their own default
//
// The result is cleaned but not made absolute.
func Expand(path string) string {
	if path == "" {
		return ""
	}
	path = os.ExpandEnv(path)

	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	return filepath.Clean(path)
}
