// Package config holds configuration defaults and path helpers.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultDatabasePath is where the local database lives when the
// config does not override it.
const DefaultDatabasePath = "$HOME/.local/share/saku/saku.db"

// ExpandPath resolves ~ and $VAR references in a file path so values
// from the config file or environment can point at the database.
func ExpandPath(path string) string {
	switch {
	case path == "":
		return path
	case path == "~":
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
	case strings.HasPrefix(path, "~/"):
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	return os.ExpandEnv(path)
}
