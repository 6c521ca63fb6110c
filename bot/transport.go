package bot

import (
	"context"

	"memorybot/memory"
)

// InboundMessage is a chat message as the transport received it.
type InboundMessage struct {
	GuildID     string
	ChannelID   string
	AuthorID    string
	AuthorName  string
	AuthorIsBot bool
	Content     string
}

// Channel identifies a text channel.
type Channel struct {
	ID   string
	Name string
}

// HistoryMessage is one message read back from channel history.
type HistoryMessage struct {
	AuthorID   string
	AuthorName string
	Content    string
}

// Transport is what the bot needs from the chat platform.
type Transport interface {
	// Send posts content to a channel.
	Send(ctx context.Context, channelID, content string) error

	// FindTextChannel looks a text channel up by name within a guild.
	// found is false when no channel has that name.
	FindTextChannel(ctx context.Context, guildID, name string) (ch Channel, found bool, err error)

	// History returns up to limit of the most recent messages, newest first.
	History(ctx context.Context, channelID string, limit int) ([]HistoryMessage, error)

	// SelfID is the bot account's user ID.
	SelfID() string
}

// MemoryStore is the remote key-value memory. *memory.Client implements it.
type MemoryStore interface {
	Fetch(ctx context.Context) (memory.Snapshot, error)
	Store(ctx context.Context, key, value string) (bool, error)
}

var _ MemoryStore = (*memory.Client)(nil)
