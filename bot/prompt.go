package bot

import (
	"strings"

	"memorybot/memory"
	"memorybot/model"
)

// SummarizePrompt is the fixed system prompt for !summarize.
const SummarizePrompt = "Summarize the following chat history as if you're a helpful assistant tracking someone's progress or vibe."

const memoryPreamble = "Use the following shared memory when responding: "

// BuildSystemPrompt embeds the whole snapshot into the system prompt.
func BuildSystemPrompt(persona string, snap memory.Snapshot) string {
	persona = strings.TrimSpace(persona)
	if persona == "" {
		return memoryPreamble + snap.JSON()
	}
	return persona + " " + memoryPreamble + snap.JSON()
}

// buildMessages returns the system prompt followed by the user content.
func buildMessages(system, user string) []model.Message {
	return []model.Message{
		model.SystemMessage(system),
		model.UserMessage(user),
	}
}

// transcript joins history (newest first, as transports return it) into
// oldest-first "author: content" lines, leaving out messages by selfID.
func transcript(history []HistoryMessage, selfID string) string {
	lines := make([]string, 0, len(history))
	for i := len(history) - 1; i >= 0; i-- {
		msg := history[i]
		if msg.AuthorID == selfID {
			continue
		}
		lines = append(lines, msg.AuthorName+": "+msg.Content)
	}
	return strings.Join(lines, "\n")
}
