package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type CompletionConfig struct {
	Provider      string `toml:"provider"`
	BaseURL       string `toml:"base_url,omitempty"`
	StandardModel string `toml:"standard_model"`
	AdvancedModel string `toml:"advanced_model"`
	Persona       string `toml:"persona,omitempty"`
}

type MemoryConfig struct {
	Endpoint string `toml:"endpoint"`
	SyncKey  string `toml:"sync_key"`
}

type DiscordConfig struct {
	Prefix     string `toml:"prefix"`
	ReplyLimit int    `toml:"reply_limit"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
	Debug bool   `toml:"debug"`
}

// FileConfig mirrors settings.toml.
type FileConfig struct {
	Completion CompletionConfig `toml:"completion"`
	Memory     MemoryConfig     `toml:"memory"`
	Discord    DiscordConfig    `toml:"discord"`
	Logging    LoggingConfig    `toml:"logging"`
}

// LoadFileConfig loads settings from a specific file path.
// Returns nil if the file doesn't exist (not an error).
func LoadFileConfig(path string) (*FileConfig, error) {
	if !FileExists(path) {
		return nil, nil
	}

	cfg := &FileConfig{}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown settings in %s: %v", path, undecoded)
	}

	return cfg, nil
}

// CreateDefaultSettings writes the commented template to path unless a file
// already exists there. It reports whether a file was written.
func CreateDefaultSettings(path string) (bool, error) {
	if FileExists(path) {
		return false, nil
	}
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(GenerateSettingsTemplate()), 0600); err != nil {
		return false, fmt.Errorf("failed to write settings: %w", err)
	}

	return true, nil
}
