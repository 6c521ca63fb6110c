package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the runtime configuration, flattened from the settings file,
// an optional .env file and the process environment (in that order).
type Config struct {
	DiscordToken string `env:"DISCORD_TOKEN" validate:"required"`

	Provider      string `env:"MEMORYBOT_PROVIDER" validate:"required,oneof=openai openrouter anthropic ollama"`
	APIKey        string `env:"MEMORYBOT_API_KEY" validate:"required_unless=Provider ollama"`
	BaseURL       string `env:"MEMORYBOT_BASE_URL" validate:"omitempty,url"`
	StandardModel string `env:"MEMORYBOT_MODEL_STANDARD" validate:"required"`
	AdvancedModel string `env:"MEMORYBOT_MODEL_ADVANCED" validate:"required"`
	Persona       string `env:"MEMORYBOT_PERSONA"`

	MemoryEndpoint string `env:"MEMORYBOT_MEMORY_ENDPOINT" validate:"required,url"`
	SyncKey        string `env:"MEMORYBOT_SYNC_KEY" validate:"required"`

	Prefix     string `env:"MEMORYBOT_PREFIX" validate:"required"`
	ReplyLimit int    `env:"MEMORYBOT_REPLY_LIMIT" validate:"min=1,max=2000"`

	LogLevel string `env:"MEMORYBOT_LOG_LEVEL" validate:"oneof=debug info warn error"`
	Debug    bool   `env:"MEMORYBOT_DEBUG"`
}

// Load builds the configuration from settingsPath (empty means the default
// location), .env in the working directory, and the environment, then
// validates it. A missing settings file or .env file is not an error.
func Load(settingsPath string) (*Config, error) {
	if settingsPath == "" {
		settingsPath = GetSettingsFilePath()
	}

	cfg := DefaultConfig()

	fileCfg, err := LoadFileConfig(settingsPath)
	if err != nil {
		return nil, err
	}
	if fileCfg != nil {
		cfg.applyFile(fileCfg)
	}

	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DefaultConfig returns the built-in defaults. Secrets are always empty.
func DefaultConfig() *Config {
	d := DefaultFileConfig()
	cfg := &Config{}
	cfg.applyFile(d)
	return cfg
}

func (c *Config) applyFile(f *FileConfig) {
	if f.Completion.Provider != "" {
		c.Provider = f.Completion.Provider
	}
	if f.Completion.BaseURL != "" {
		c.BaseURL = f.Completion.BaseURL
	}
	if f.Completion.StandardModel != "" {
		c.StandardModel = f.Completion.StandardModel
	}
	if f.Completion.AdvancedModel != "" {
		c.AdvancedModel = f.Completion.AdvancedModel
	}
	if f.Completion.Persona != "" {
		c.Persona = f.Completion.Persona
	}
	if f.Memory.Endpoint != "" {
		c.MemoryEndpoint = f.Memory.Endpoint
	}
	if f.Memory.SyncKey != "" {
		c.SyncKey = f.Memory.SyncKey
	}
	if f.Discord.Prefix != "" {
		c.Prefix = f.Discord.Prefix
	}
	if f.Discord.ReplyLimit != 0 {
		c.ReplyLimit = f.Discord.ReplyLimit
	}
	if f.Logging.Level != "" {
		c.LogLevel = f.Logging.Level
	}
	if f.Logging.Debug {
		c.Debug = true
	}
}

// applyEnvOverrides only touches fields whose variables are set.
func (c *Config) applyEnvOverrides() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}

	// OPENAI_API_KEY keeps working when MEMORYBOT_API_KEY is not set.
	var keys struct {
		OpenAI string `env:"OPENAI_API_KEY"`
	}
	if err := env.Parse(&keys); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	if c.APIKey == "" && c.usesOpenAIKey() {
		c.APIKey = keys.OpenAI
	}
	c.LogLevel = strings.ToLower(c.LogLevel)
	return nil
}

func (c *Config) usesOpenAIKey() bool {
	return c.Provider == "openai" || c.Provider == ""
}

func loadDotEnv() error {
	err := godotenv.Load()
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load .env: %w", err)
}
