package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// settingsDirName is the directory under ~/.config holding settings.toml.
const settingsDirName = "memorybot"

// GetSettingsFilePath returns ~/.config/memorybot/settings.toml.
func GetSettingsFilePath() string {
	return filepath.Join(homeDir(), ".config", settingsDirName, "settings.toml")
}

// homeDir falls back to the working directory when no home is set, as in
// a bare container.
func homeDir() string {
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return home
	}
	return "."
}

// ExpandPath resolves a leading ~/ and $VARS in a --config path.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		path = filepath.Join(homeDir(), rest)
	}
	return filepath.Clean(os.ExpandEnv(path))
}

// EnsureDir creates path with user-only permissions; settings may hold
// secrets copied in by hand.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0700)
}

// FileExists reports whether path exists. Permission errors count as
// existing so CreateDefaultSettings never overwrites what it cannot read.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !errors.Is(err, fs.ErrNotExist)
}
