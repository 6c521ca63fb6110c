package bot_test

import (
	"context"
	"sync"
	"testing"

	"memorybot/bot"
	"memorybot/memory"
	memtest "memorybot/memory/testutil"
	"memorybot/model"
	"memorybot/provider/testutil"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

const (
	testGuild   = "guild-1"
	testChannel = "chan-cmd"
	botUserID   = "bot-self"
)

type sentMessage struct {
	ChannelID string
	Content   string
}

// fakeTransport records sends and serves channels and history from memory.
type fakeTransport struct {
	mu sync.Mutex

	channels     map[string]bot.Channel // guildID + "/" + name
	history      map[string][]bot.HistoryMessage
	historyLimit int
	lookups      int
	historyReads int
	sent         []sentMessage
	findErr      error
	historyErr   error
	sendErr      error
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{
		channels: make(map[string]bot.Channel),
		history:  make(map[string][]bot.HistoryMessage),
	}
}

func (f *fakeTransport) addChannel(guildID string, ch bot.Channel, newestFirst ...bot.HistoryMessage) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.channels[guildID+"/"+ch.Name] = ch
	f.history[ch.ID] = newestFirst
}

func (f *fakeTransport) Send(_ context.Context, channelID, content string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, sentMessage{ChannelID: channelID, Content: content})
	return nil
}

func (f *fakeTransport) FindTextChannel(_ context.Context, guildID, name string) (bot.Channel, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lookups++
	if f.findErr != nil {
		return bot.Channel{}, false, f.findErr
	}
	ch, ok := f.channels[guildID+"/"+name]
	return ch, ok, nil
}

func (f *fakeTransport) History(_ context.Context, channelID string, limit int) ([]bot.HistoryMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.historyReads++
	f.historyLimit = limit
	if f.historyErr != nil {
		return nil, f.historyErr
	}
	msgs := f.history[channelID]
	if len(msgs) > limit {
		msgs = msgs[:limit]
	}
	return msgs, nil
}

func (f *fakeTransport) SelfID() string {
	return botUserID
}

func (f *fakeTransport) messages() []sentMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sentMessage(nil), f.sent...)
}

func (f *fakeTransport) networkCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lookups + f.historyReads
}

type harness struct {
	bot       *bot.Bot
	store     *memtest.Store
	memory    *memory.Client
	provider  *testutil.MockProvider
	transport *fakeTransport
	logs      *logtest.Hook
}

func defaultSettings() bot.Settings {
	return bot.Settings{
		Prefix:     "!",
		ReplyLimit: bot.MaxReplyLength,
		Persona:    "You are ChatGPT, a helpful assistant who knows albre.",
		SyncKey:    "favorite_support_marvel_rivals",
		Models:     model.ModelNames{Standard: "gpt-3.5-turbo", Advanced: "gpt-4"},
	}
}

func newHarness(t *testing.T, data map[string]string) *harness {
	t.Helper()
	return newHarnessWith(t, data, defaultSettings(), nil)
}

func newHarnessWith(t *testing.T, data map[string]string, settings bot.Settings, registry *bot.Registry) *harness {
	t.Helper()

	store := memtest.NewStore(data)
	t.Cleanup(store.Close)

	client, err := memory.NewClient(store.URL, store.Client())
	require.NoError(t, err)

	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	h := &harness{
		store:     store,
		memory:    client,
		provider:  testutil.NewMockProvider("model reply"),
		transport: newFakeTransport(),
		logs:      hook,
	}

	h.bot, err = bot.New(bot.Options{
		Memory:    client,
		Provider:  h.provider,
		Transport: h.transport,
		Settings:  settings,
		Registry:  registry,
		Logger:    logger,
	})
	require.NoError(t, err)
	return h
}

// send dispatches content as a user message and returns what the bot posted.
func (h *harness) send(content string) []string {
	before := len(h.transport.messages())
	h.bot.Dispatch(context.Background(), bot.InboundMessage{
		GuildID:    testGuild,
		ChannelID:  testChannel,
		AuthorID:   "user-1",
		AuthorName: "albre",
		Content:    content,
	})

	var out []string
	for _, m := range h.transport.messages()[before:] {
		out = append(out, m.Content)
	}
	return out
}

// sendOne dispatches content and requires exactly one reply.
func (h *harness) sendOne(t *testing.T, content string) string {
	t.Helper()
	replies := h.send(content)
	require.Len(t, replies, 1, "replies to %q", content)
	return replies[0]
}

// memoryRequests returns GET and POST counts seen by the store.
func (h *harness) memoryRequests() (int, int) {
	return h.store.Requests()
}
