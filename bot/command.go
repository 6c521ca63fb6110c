package bot

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// Command is one parsed invocation. It lives for a single dispatch.
type Command struct {
	ID   uuid.UUID
	Name string
	// Args is everything after the command name, trimmed.
	Args string

	GuildID    string
	ChannelID  string
	AuthorID   string
	AuthorName string
}

// Parse splits content into a command name and its argument text.
// ok is false when content does not start with prefix followed by a name.
func Parse(prefix, content string) (name, args string, ok bool) {
	if prefix == "" || !strings.HasPrefix(content, prefix) {
		return "", "", false
	}
	rest := content[len(prefix):]

	end := strings.IndexFunc(rest, unicode.IsSpace)
	if end < 0 {
		end = len(rest)
	}
	name = rest[:end]
	if name == "" {
		return "", "", false
	}
	return name, strings.TrimSpace(rest[end:]), true
}

// splitFirst takes the first argument off args. The first argument may be
// wrapped in double quotes to include spaces; rest is the remaining text,
// trimmed but otherwise verbatim.
func splitFirst(args string) (first, rest string) {
	args = strings.TrimSpace(args)
	if args == "" {
		return "", ""
	}

	if args[0] == '"' {
		if end := strings.IndexByte(args[1:], '"'); end >= 0 {
			return args[1 : end+1], strings.TrimSpace(args[end+2:])
		}
	}

	end := strings.IndexFunc(args, unicode.IsSpace)
	if end < 0 {
		return args, ""
	}
	return args[:end], strings.TrimSpace(args[end:])
}
