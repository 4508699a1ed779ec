package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// dbFile is the database name inside the data directory.
const dbFile = "events.db"

// ResolvePath returns the database file to open and creates its parent
// directory. An empty path means events.db in the user's data directory:
// $XDG_DATA_HOME/fractiz, falling back to ~/.local/share/fractiz.
func ResolvePath(path string) (string, error) {
	if path == "" {
		dir, err := dataDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(dir, dbFile)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}
	return path, nil
}

func dataDir() (string, error) {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "fractiz"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".local", "share", "fractiz"), nil
}
