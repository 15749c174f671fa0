// Package storage persists runs in a SQLite database under the user's data
// directory and provides atomic JSON writes for exports.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
)

// AppName is the directory name used below the user data directory.
const AppName = "runlog"

// DBFileName is the name of the SQLite database inside the data directory.
const DBFileName = "runs.db"

// DataDir returns the runlog data directory, creating it if needed.
// A non-empty override (from config or RUNLOG_DATA_DIR) wins over the
// platform default.
func DataDir(override string) (string, error) {
	dir := override
	if dir == "" {
		base, err := userDataDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(base, AppName)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	return dir, nil
}

// DBPath returns the database path inside dataDir.
func DBPath(dataDir string) string {
	return filepath.Join(dataDir, DBFileName)
}

// userDataDir mirrors the platform data directory conventions:
// $XDG_DATA_HOME or ~/.local/share on Unix, Application Support on macOS,
// %AppData% on Windows.
func userDataDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if dir := os.Getenv("AppData"); dir != "" {
			return dir, nil
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Library", "Application Support"), nil
	default:
		if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
			return dir, nil
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share"), nil
}

// SaveJSON atomically writes data as JSON to the specified path.
// It ensures the parent directory exists, writes to a temp file,
// then renames to the final path.
func SaveJSON(path string, data any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tempPath := path + ".tmp"

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(tempPath, jsonData, 0o600); err != nil {
		return err
	}

	return os.Rename(tempPath, path)
}
