// Package discord connects the bot to the Discord gateway through discordgo.
package discord

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"memorybot/bot"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
)

// Intents needed to read guild messages and their content.
const Intents = discordgo.IntentGuilds | discordgo.IntentGuildMessages | discordgo.IntentMessageContent

// Handler receives gateway events. *bot.Bot implements it.
type Handler interface {
	Dispatch(ctx context.Context, msg bot.InboundMessage)
	Sync(ctx context.Context)
	CheckProvider(ctx context.Context)
}

// restAPI is the part of *discordgo.Session the transport calls.
type restAPI interface {
	ChannelMessageSend(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	GuildChannels(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Channel, error)
	ChannelMessages(channelID string, limit int, beforeID, afterID, aroundID string, options ...discordgo.RequestOption) ([]*discordgo.Message, error)
}

// Gateway is a bot.Transport backed by a Discord session.
type Gateway struct {
	session *discordgo.Session
	api     restAPI
	logger  logrus.FieldLogger

	mu     sync.RWMutex
	selfID string
}

var _ bot.Transport = (*Gateway)(nil)

// NewGateway prepares a session for token. It does not connect.
func NewGateway(token string, logger logrus.FieldLogger) (*Gateway, error) {
	if token == "" {
		return nil, errors.New("discord token is required")
	}
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	session.Identify.Intents = Intents

	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Gateway{session: session, api: session, logger: logger}, nil
}

// Run connects, feeds events to h until ctx is cancelled, then disconnects.
// discordgo runs each event handler on its own goroutine, so commands are
// handled concurrently.
func (g *Gateway) Run(ctx context.Context, h Handler) error {
	removeReady := g.session.AddHandler(func(_ *discordgo.Session, r *discordgo.Ready) {
		g.onReady(ctx, h, r)
	})
	defer removeReady()

	removeMessage := g.session.AddHandler(func(_ *discordgo.Session, m *discordgo.MessageCreate) {
		g.onMessageCreate(ctx, h, m)
	})
	defer removeMessage()

	if err := g.session.Open(); err != nil {
		return fmt.Errorf("failed to connect to discord: %w", err)
	}
	g.logger.Info("Connected to Discord gateway")

	<-ctx.Done()

	g.logger.Info("Disconnecting from Discord")
	if err := g.session.Close(); err != nil {
		return fmt.Errorf("failed to close discord session: %w", err)
	}
	return nil
}

func (g *Gateway) onReady(ctx context.Context, h Handler, r *discordgo.Ready) {
	if r.User == nil {
		return
	}
	g.mu.Lock()
	g.selfID = r.User.ID
	g.mu.Unlock()

	g.logger.WithField("user_id", r.User.ID).Infof("Logged in as %s", r.User.Username)
	h.Sync(ctx)
	h.CheckProvider(ctx)
}

func (g *Gateway) onMessageCreate(ctx context.Context, h Handler, m *discordgo.MessageCreate) {
	msg, ok := toInbound(m)
	if !ok {
		return
	}
	h.Dispatch(ctx, msg)
}

// toInbound converts a gateway message. Messages without an author
// (system notices) are dropped.
func toInbound(m *discordgo.MessageCreate) (bot.InboundMessage, bool) {
	if m == nil || m.Message == nil || m.Author == nil {
		return bot.InboundMessage{}, false
	}
	return bot.InboundMessage{
		GuildID:     m.GuildID,
		ChannelID:   m.ChannelID,
		AuthorID:    m.Author.ID,
		AuthorName:  m.Author.Username,
		AuthorIsBot: m.Author.Bot,
		Content:     m.Content,
	}, true
}

// Send posts content to channelID.
func (g *Gateway) Send(ctx context.Context, channelID, content string) error {
	if _, err := g.api.ChannelMessageSend(channelID, content, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to send message to channel %s: %w", channelID, err)
	}
	return nil
}

// FindTextChannel looks up a text channel of guildID by exact name.
func (g *Gateway) FindTextChannel(ctx context.Context, guildID, name string) (bot.Channel, bool, error) {
	if guildID == "" {
		return bot.Channel{}, false, nil
	}
	channels, err := g.api.GuildChannels(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return bot.Channel{}, false, err
	}
	for _, ch := range channels {
		if ch.Type == discordgo.ChannelTypeGuildText && ch.Name == name {
			return bot.Channel{ID: ch.ID, Name: ch.Name}, true, nil
		}
	}
	return bot.Channel{}, false, nil
}

// History returns up to limit recent messages of channelID, newest first.
func (g *Gateway) History(ctx context.Context, channelID string, limit int) ([]bot.HistoryMessage, error) {
	msgs, err := g.api.ChannelMessages(channelID, limit, "", "", "", discordgo.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	history := make([]bot.HistoryMessage, 0, len(msgs))
	for _, m := range msgs {
		if m.Author == nil {
			continue
		}
		history = append(history, bot.HistoryMessage{
			AuthorID:   m.Author.ID,
			AuthorName: m.Author.Username,
			Content:    m.Content,
		})
	}
	return history, nil
}

// SelfID is the bot's own user ID, known once the gateway is ready.
func (g *Gateway) SelfID() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.selfID
}
