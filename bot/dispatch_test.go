package bot_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"memorybot/bot"
	"memorybot/model"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStaticComplete(reply string) func(context.Context, string, []model.Message) (string, error) {
	return func(context.Context, string, []model.Message) (string, error) { return reply, nil }
}

func testFailingComplete(err error) func(context.Context, string, []model.Message) (string, error) {
	return func(context.Context, string, []model.Message) (string, error) { return "", err }
}

func TestDispatchIgnoresBots(t *testing.T) {
	h := newHarness(t, nil)

	h.bot.Dispatch(context.Background(), bot.InboundMessage{
		ChannelID:   testChannel,
		AuthorID:    "other-bot",
		AuthorIsBot: true,
		Content:     "!ping",
	})
	assert.Empty(t, h.transport.messages())
}

func TestDispatchIgnoresPlainMessages(t *testing.T) {
	h := newHarness(t, nil)

	for _, content := range []string{"ping", "", "!", "! ping", "hello !ping"} {
		assert.Empty(t, h.send(content), "content %q", content)
	}
}

func TestDispatchRepliesInOriginatingChannel(t *testing.T) {
	h := newHarness(t, nil)
	h.send("!ping")

	msgs := h.transport.messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, testChannel, msgs[0].ChannelID)
}

func TestDispatchCustomPrefix(t *testing.T) {
	settings := defaultSettings()
	settings.Prefix = "mb "
	h := newHarnessWith(t, nil, settings, nil)

	assert.Equal(t, "Pong!", h.sendOne(t, "mb ping"))
	assert.Empty(t, h.send("!ping"))
}

func TestUnknownCommandSuggestion(t *testing.T) {
	h := newHarness(t, nil)

	assert.Equal(t, "Unknown command `!sumarize`. Did you mean `!summarize`?", h.sendOne(t, "!sumarize general"))
	assert.Equal(t, "Unknown command `!remembr`. Did you mean `!remember`?", h.sendOne(t, "!remembr k v"))
	assert.Empty(t, h.send("!zzzzzz"))
	assert.Empty(t, h.send("!xy"))
}

func TestCommandNamesAreCaseSensitive(t *testing.T) {
	h := newHarness(t, nil)
	assert.NotEqual(t, "Pong!", h.sendOne(t, "!PING"))
}

func TestHandlerPanicIsReported(t *testing.T) {
	registry := bot.NewRegistry(bot.CommandSpec{
		Name:    "boom",
		Summary: "panics",
		Handler: func(context.Context, *bot.Bot, *bot.Command) (string, error) {
			panic("nil map write")
		},
	})
	h := newHarnessWith(t, nil, defaultSettings(), registry)

	assert.Equal(t, "⚠️ Error: internal error in !boom: nil map write", h.sendOne(t, "!boom"))
}

func TestSendFailureIsLogged(t *testing.T) {
	h := newHarness(t, nil)
	h.transport.sendErr = errors.New("Missing Permissions")

	h.send("!ping")

	entry := h.logs.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "Failed to send reply", entry.Message)
}

func TestConcurrentRemembersAllLand(t *testing.T) {
	h := newHarness(t, nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			h.bot.Dispatch(context.Background(), bot.InboundMessage{
				ChannelID: testChannel,
				AuthorID:  "user-1",
				Content:   fmt.Sprintf("!remember key%d value%d", i, i),
			})
		}(i)
	}
	wg.Wait()

	data := h.store.Data()
	assert.Len(t, data, 20)
	assert.Len(t, h.transport.messages(), 20)
}

func TestHelpListsEveryCommand(t *testing.T) {
	h := newHarness(t, nil)

	reply := h.sendOne(t, "!help")
	for _, spec := range bot.DefaultCommands() {
		assert.Contains(t, reply, "!"+spec.Name)
		assert.Contains(t, reply, spec.Summary)
	}
	assert.Contains(t, reply, "!remember <key> <value>")
}

func TestNewRejectsMissingDependencies(t *testing.T) {
	h := newHarness(t, nil)

	_, err := bot.New(bot.Options{Provider: h.provider, Transport: h.transport, Settings: defaultSettings()})
	assert.ErrorContains(t, err, "memory store")

	_, err = bot.New(bot.Options{Memory: h.memory, Transport: h.transport, Settings: defaultSettings()})
	assert.ErrorContains(t, err, "completion provider")

	_, err = bot.New(bot.Options{Memory: h.memory, Provider: h.provider, Settings: defaultSettings()})
	assert.ErrorContains(t, err, "transport")

	_, err = bot.New(bot.Options{Memory: h.memory, Provider: h.provider, Transport: h.transport})
	assert.ErrorContains(t, err, "prefix")

	_, err = bot.New(bot.Options{
		Memory: h.memory, Provider: h.provider, Transport: h.transport, Settings: defaultSettings(),
		Registry: bot.NewRegistry(bot.CommandSpec{Name: "Bad"}),
	})
	assert.ErrorContains(t, err, "invalid command registry")
}

func TestNewClampsReplyLimit(t *testing.T) {
	settings := defaultSettings()
	settings.ReplyLimit = 0
	h := newHarnessWith(t, nil, settings, nil)
	assert.Equal(t, bot.MaxReplyLength, h.bot.Settings().ReplyLimit)
}
