package bot

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"memorybot/model"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Settings are the user-facing knobs of the bot.
type Settings struct {
	Prefix     string
	ReplyLimit int
	Persona    string
	SyncKey    string
	Models     model.ModelNames
}

// Options holds everything New needs. Registry defaults to DefaultCommands.
type Options struct {
	Memory    MemoryStore
	Provider  model.Provider
	Transport Transport
	Settings  Settings
	Registry  *Registry
	Logger    logrus.FieldLogger
}

// Bot is the context passed to every handler.
type Bot struct {
	memory    MemoryStore
	provider  model.Provider
	transport Transport
	settings  Settings
	registry  *Registry
	logger    logrus.FieldLogger
}

// New validates the options and the command registry.
func New(opts Options) (*Bot, error) {
	if opts.Memory == nil {
		return nil, errors.New("bot: memory store is required")
	}
	if opts.Provider == nil {
		return nil, errors.New("bot: completion provider is required")
	}
	if opts.Transport == nil {
		return nil, errors.New("bot: transport is required")
	}
	if opts.Settings.Prefix == "" {
		return nil, errors.New("bot: command prefix is required")
	}
	if opts.Settings.ReplyLimit <= 0 || opts.Settings.ReplyLimit > MaxReplyLength {
		opts.Settings.ReplyLimit = MaxReplyLength
	}

	registry := opts.Registry
	if registry == nil {
		registry = NewRegistry(DefaultCommands()...)
	}
	if err := registry.Validate(); err != nil {
		return nil, fmt.Errorf("bot: invalid command registry: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Bot{
		memory:    opts.Memory,
		provider:  opts.Provider,
		transport: opts.Transport,
		settings:  opts.Settings,
		registry:  registry,
		logger:    logger,
	}, nil
}

// Settings returns the bot's settings.
func (b *Bot) Settings() Settings {
	return b.settings
}

// Dispatch handles one inbound message to completion. Messages from bot
// accounts and messages without the prefix are ignored. It never panics and
// never returns an error: failures end up in the conversation or the log.
func (b *Bot) Dispatch(ctx context.Context, msg InboundMessage) {
	if msg.AuthorIsBot {
		return
	}

	name, args, ok := Parse(b.settings.Prefix, msg.Content)
	if !ok {
		return
	}

	spec, found := b.registry.Lookup(name)
	if !found {
		b.handleUnknown(ctx, msg, name)
		return
	}

	cmd := &Command{
		ID:         uuid.New(),
		Name:       name,
		Args:       args,
		GuildID:    msg.GuildID,
		ChannelID:  msg.ChannelID,
		AuthorID:   msg.AuthorID,
		AuthorName: msg.AuthorName,
	}
	log := b.logger.WithFields(logrus.Fields{
		"command_id": cmd.ID.String(),
		"command":    cmd.Name,
		"guild_id":   cmd.GuildID,
		"channel_id": cmd.ChannelID,
		"author":     cmd.AuthorName,
	})
	log.Debug("Dispatching command")

	reply, err := b.run(ctx, spec, cmd)
	if err != nil {
		log.WithError(err).Warn("Command failed")
		reply = ReportError(err)
	}

	b.send(ctx, log, cmd.ChannelID, reply)
}

// run calls the handler, turning a panic into an error.
func (b *Bot) run(ctx context.Context, spec CommandSpec, cmd *Command) (reply string, err error) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.WithField("stack", string(debug.Stack())).Error("Recovered from handler panic")
			reply, err = "", fmt.Errorf("internal error in !%s: %v", cmd.Name, r)
		}
	}()
	return spec.Handler(ctx, b, cmd)
}

func (b *Bot) handleUnknown(ctx context.Context, msg InboundMessage, name string) {
	log := b.logger.WithFields(logrus.Fields{
		"command":    name,
		"channel_id": msg.ChannelID,
	})

	suggestion, ok := b.registry.Suggest(name)
	if !ok {
		log.Debug("Ignoring unknown command")
		return
	}

	p := b.settings.Prefix
	b.send(ctx, log, msg.ChannelID, fmt.Sprintf("Unknown command `%s%s`. Did you mean `%s%s`?", p, name, p, suggestion))
}

func (b *Bot) send(ctx context.Context, log logrus.FieldLogger, channelID, text string) {
	if text == "" {
		return
	}
	if err := b.transport.Send(ctx, channelID, FormatReply(text, b.settings.ReplyLimit)); err != nil {
		log.WithError(err).Error("Failed to send reply")
	}
}
