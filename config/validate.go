package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance for the package.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks cfg against its struct tags and turns validator output into
// messages that name the variable or setting to fix.
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	source := fieldSources[fe.Field()]
	if source == "" {
		source = fe.Field()
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", source)
	case "required_unless":
		return fmt.Sprintf("%s is required for this provider (or set OPENAI_API_KEY for openai)", source)
	case "url":
		return fmt.Sprintf("%s must be a URL, got %q", source, fe.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", source, fe.Param(), fe.Value())
	case "min", "max":
		return fmt.Sprintf("%s must be between 1 and %d, got %v", source, DefaultReplyLimit, fe.Value())
	default:
		return fmt.Sprintf("%s failed %s validation", source, fe.Tag())
	}
}

var fieldSources = map[string]string{
	"DiscordToken":   "DISCORD_TOKEN",
	"Provider":       "completion.provider",
	"APIKey":         "MEMORYBOT_API_KEY",
	"BaseURL":        "completion.base_url",
	"StandardModel":  "completion.standard_model",
	"AdvancedModel":  "completion.advanced_model",
	"MemoryEndpoint": "memory.endpoint",
	"SyncKey":        "memory.sync_key",
	"Prefix":         "discord.prefix",
	"ReplyLimit":     "discord.reply_limit",
	"LogLevel":       "logging.level",
}
