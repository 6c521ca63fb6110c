package model

import "fmt"

// ChatModel selects one of the two model tiers the bot exposes.
// The concrete backend model name for each tier comes from configuration.
type ChatModel int

const (
	// ChatModelStandard backs !gpt and !summarize.
	ChatModelStandard ChatModel = iota
	// ChatModelAdvanced backs !gpt4.
	ChatModelAdvanced
)

// Default backend model names, matching the OpenAI models the bot was built around.
const (
	DefaultStandardModel = "gpt-3.5-turbo"
	DefaultAdvancedModel = "gpt-4"
)

func (m ChatModel) String() string {
	switch m {
	case ChatModelStandard:
		return "standard"
	case ChatModelAdvanced:
		return "advanced"
	default:
		return fmt.Sprintf("ChatModel(%d)", int(m))
	}
}

// ModelNames maps the two tiers to backend model names.
type ModelNames struct {
	Standard string
	Advanced string
}

// Resolve returns the backend model name for m, falling back to the defaults
// when a tier is unset.
func (n ModelNames) Resolve(m ChatModel) string {
	switch m {
	case ChatModelAdvanced:
		if n.Advanced != "" {
			return n.Advanced
		}
		return DefaultAdvancedModel
	default:
		if n.Standard != "" {
			return n.Standard
		}
		return DefaultStandardModel
	}
}
