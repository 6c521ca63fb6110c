package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"memorybot/model"

	"github.com/sirupsen/logrus"
)

// HistoryLimit is how many recent messages !summarize reads.
const HistoryLimit = 50

// ErrEmptyCompletion reports a completion with no text to post.
var ErrEmptyCompletion = errors.New("the model returned an empty reply")

// Reply templates.
const (
	PongReply           = "Pong!"
	MemoryDumpPrefix    = "🧠 Current memory: "
	RememberedTemplate  = "🧠 Got it! Remembered `%s` as `%s`."
	RememberFailedReply = "❌ Failed to update memory."
	SyncedTemplate      = "✅ Synced! Your favorite Marvel Rivals support is: **%s**"
	NotSyncedReply      = "❌ Not synced yet. Still waiting for ChatGPT to update the memory."
)

// DefaultCommands returns the built-in command set.
func DefaultCommands() []CommandSpec {
	return []CommandSpec{
		{Name: "ping", Summary: "Check that the bot is alive", Handler: handlePing},
		{Name: "gpt", Usage: "<text>", Summary: "Ask the standard model, with shared memory", Handler: handleCompletion(model.ChatModelStandard)},
		{Name: "gpt4", Usage: "<text>", Summary: "Ask the advanced model, with shared memory", Handler: handleCompletion(model.ChatModelAdvanced)},
		{Name: "summarize", Usage: "<channel_name>", Summary: "Summarize the last 50 messages of a channel", Handler: handleSummarize},
		{Name: "memory", Summary: "Show the shared memory", Handler: handleMemory},
		{Name: "remember", Usage: "<key> <value>", Summary: "Store a value in the shared memory", Handler: handleRemember},
		{Name: "checksync", Summary: "Check whether the shared memory has synced", Handler: handleCheckSync},
		{Name: "help", Summary: "List commands", Handler: handleHelp},
	}
}

func (b *Bot) usage(cmd *Command) error {
	spec, _ := b.registry.Lookup(cmd.Name)
	u := b.settings.Prefix + cmd.Name
	if spec.Usage != "" {
		u += " " + spec.Usage
	}
	return &UsageError{Usage: u}
}

func handlePing(_ context.Context, _ *Bot, _ *Command) (string, error) {
	return PongReply, nil
}

// handleCompletion backs !gpt and !gpt4: fetch memory, embed it in the
// system prompt, ask the model.
func handleCompletion(tier model.ChatModel) HandlerFunc {
	return func(ctx context.Context, b *Bot, cmd *Command) (string, error) {
		if cmd.Args == "" {
			return "", b.usage(cmd)
		}

		snap, err := b.memory.Fetch(ctx)
		if err != nil {
			return "", err
		}

		messages := buildMessages(BuildSystemPrompt(b.settings.Persona, snap), cmd.Args)
		return b.complete(ctx, cmd, b.settings.Models.Resolve(tier), messages)
	}
}

// complete asks the provider once. An empty or blank reply is an error:
// Discord refuses to post an empty message.
func (b *Bot) complete(ctx context.Context, cmd *Command, modelName string, messages []model.Message) (string, error) {
	b.logger.WithFields(logrus.Fields{
		"command_id": cmd.ID.String(),
		"provider":   b.provider.Name(),
		"model":      modelName,
	}).Debug("Requesting completion")

	reply, err := b.provider.Complete(ctx, modelName, messages)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(reply) == "" {
		return "", fmt.Errorf("%s model %s: %w", b.provider.Name(), modelName, ErrEmptyCompletion)
	}
	return reply, nil
}

func handleSummarize(ctx context.Context, b *Bot, cmd *Command) (string, error) {
	name, _ := splitFirst(cmd.Args)
	if name == "" {
		return "", b.usage(cmd)
	}

	ch, found, err := b.transport.FindTextChannel(ctx, cmd.GuildID, name)
	if err != nil {
		return "", fmt.Errorf("failed to look up channel %q: %w", name, err)
	}
	if !found {
		return "", &NotFoundError{Kind: "channel", Name: name}
	}

	history, err := b.transport.History(ctx, ch.ID, HistoryLimit)
	if err != nil {
		return "", fmt.Errorf("failed to read history of #%s: %w", ch.Name, err)
	}

	// An empty transcript still goes to the model.
	convo := transcript(history, b.transport.SelfID())
	modelName := b.settings.Models.Resolve(model.ChatModelStandard)
	return b.complete(ctx, cmd, modelName, buildMessages(SummarizePrompt, convo))
}

func handleMemory(ctx context.Context, b *Bot, _ *Command) (string, error) {
	snap, err := b.memory.Fetch(ctx)
	if err != nil {
		return "", err
	}
	return MemoryDumpPrefix + snap.JSON(), nil
}

func handleRemember(ctx context.Context, b *Bot, cmd *Command) (string, error) {
	key, value := splitFirst(cmd.Args)
	if key == "" || value == "" {
		return "", b.usage(cmd)
	}

	ok, err := b.memory.Store(ctx, key, value)
	if err != nil {
		return "", err
	}
	if !ok {
		return RememberFailedReply, nil
	}
	return fmt.Sprintf(RememberedTemplate, key, value), nil
}

func handleCheckSync(ctx context.Context, b *Bot, _ *Command) (string, error) {
	snap, err := b.memory.Fetch(ctx)
	if err != nil {
		return "", err
	}

	value, ok := snap.Get(b.settings.SyncKey)
	if !ok {
		return NotSyncedReply, nil
	}
	return fmt.Sprintf(SyncedTemplate, value), nil
}
