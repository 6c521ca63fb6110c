package config

import "memorybot/model"

const (
	DefaultMemoryEndpoint = "https://memory-proxy-albrenus.vercel.app/api/memory"
	DefaultSyncKey        = "favorite_support_marvel_rivals"
	DefaultPersona        = "You are ChatGPT, a helpful assistant who knows albre."
	DefaultPrefix         = "!"

	// DefaultReplyLimit is Discord's message length limit.
	DefaultReplyLimit = 2000
)

func DefaultFileConfig() *FileConfig {
	return &FileConfig{
		Completion: CompletionConfig{
			Provider:      "openai",
			StandardModel: model.DefaultStandardModel,
			AdvancedModel: model.DefaultAdvancedModel,
			Persona:       DefaultPersona,
		},
		Memory: MemoryConfig{
			Endpoint: DefaultMemoryEndpoint,
			SyncKey:  DefaultSyncKey,
		},
		Discord: DiscordConfig{
			Prefix:     DefaultPrefix,
			ReplyLimit: DefaultReplyLimit,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

func GenerateSettingsTemplate() string {
	return `# memorybot configuration
# Location: ~/.config/memorybot/settings.toml
# This file uses TOML format: https://toml.io
#
# Secrets are never read from this file. Set them in the environment
# (or a .env file in the working directory):
#   DISCORD_TOKEN      Discord bot token
#   OPENAI_API_KEY     OpenAI key (or MEMORYBOT_API_KEY for other providers)

[completion]
# One of: openai, openrouter, anthropic, ollama
provider = "openai"

# Override the API base URL (optional)
# base_url = "https://api.openai.com/v1"

# Model used by !gpt and !summarize
standard_model = "gpt-3.5-turbo"

# Model used by !gpt4
advanced_model = "gpt-4"

# Opening line of the system prompt for !gpt and !gpt4
persona = "You are ChatGPT, a helpful assistant who knows albre."

[memory]
# Shared key-value memory endpoint (GET returns the map, POST stores a key)
endpoint = "https://memory-proxy-albrenus.vercel.app/api/memory"

# Key !checksync looks for
sync_key = "favorite_support_marvel_rivals"

[discord]
prefix = "!"
reply_limit = 2000

[logging]
# One of: debug, info, warn, error
level = "info"
debug = false
`
}
